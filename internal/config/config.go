package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Upload    UploadConfig    `yaml:"upload"`
	Chain     ChainConfig     `yaml:"chain"`
	Storage   StorageConfig   `yaml:"storage"`
	Notify    NotifyConfig    `yaml:"notify"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CORSConfig holds CORS settings for the review dashboard and creator portal.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-ID"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"600"`
}

// Origins returns the trimmed, non-empty entries of AllowedOrigins.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// RateLimitConfig caps upload requests per caller. Zero disables the limit.
type RateLimitConfig struct {
	UploadsPerMinute int           `yaml:"uploads_per_minute" env:"RATE_LIMIT_UPLOADS_PER_MINUTE" env-default:"20"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"cnec-submissions"`
}

// AuthConfig holds bearer token settings. AccessTTL applies only to tokens
// minted by local tooling.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"cnec"`
	AccessTTL time.Duration `yaml:"access_ttl" env:"AUTH_ACCESS_TTL" env-default:"15m"`
}

// UploadConfig holds content upload limits and chunking parameters.
type UploadConfig struct {
	CreatorMaxBytes     int64  `yaml:"creator_max_bytes"     env:"UPLOAD_CREATOR_MAX_BYTES"     env-default:"524288000"`
	AdminMaxBytes       int64  `yaml:"admin_max_bytes"       env:"UPLOAD_ADMIN_MAX_BYTES"       env-default:"2147483648"`
	ChunkThresholdBytes int64  `yaml:"chunk_threshold_bytes" env:"UPLOAD_CHUNK_THRESHOLD_BYTES" env-default:"52428800"`
	ChunkSizeBytes      int64  `yaml:"chunk_size_bytes"      env:"UPLOAD_CHUNK_SIZE_BYTES"      env-default:"6291456"`
	AllowedMIMEPrefixes string `yaml:"allowed_mime_prefixes" env:"UPLOAD_ALLOWED_MIME_PREFIXES" env-default:"video/"`
	ContentCategory     string `yaml:"content_category"      env:"UPLOAD_CONTENT_CATEGORY"      env-default:"campaign-videos"`
	CleanCategory       string `yaml:"clean_category"        env:"UPLOAD_CLEAN_CATEGORY"        env-default:"campaign-videos-clean"`
}

// MIMEPrefixes returns the trimmed, non-empty entries of AllowedMIMEPrefixes.
func (c UploadConfig) MIMEPrefixes() []string {
	var out []string
	for _, p := range strings.Split(c.AllowedMIMEPrefixes, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

// ChainConfig holds the version ceilings per submission flow.
type ChainConfig struct {
	StandardCeiling int `yaml:"standard_ceiling" env:"CHAIN_STANDARD_CEILING" env-default:"3"`
	ExtendedCeiling int `yaml:"extended_ceiling" env:"CHAIN_EXTENDED_CEILING" env-default:"10"`
}

// StorageConfig holds S3-compatible object storage settings.
type StorageConfig struct {
	Endpoint      string `yaml:"endpoint"        env:"STORAGE_ENDPOINT"        env-required:"true"`
	AccessKey     string `yaml:"access_key"      env:"STORAGE_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key"      env:"STORAGE_SECRET_KEY"`
	Region        string `yaml:"region"          env:"STORAGE_REGION"`
	Bucket        string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"campaign-content"`
	UseSSL        bool   `yaml:"use_ssl"         env:"STORAGE_USE_SSL"         env-default:"true"`
	PublicBaseURL string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL" env-required:"true"`
}

// NotifyConfig holds the notification transport settings.
// With no brokers configured, events are only logged.
type NotifyConfig struct {
	KafkaBrokers              string        `yaml:"kafka_brokers"               env:"NOTIFY_KAFKA_BROKERS"`
	Topic                     string        `yaml:"topic"                       env:"NOTIFY_TOPIC"                       env-default:"submission-notifications"`
	RedisURL                  string        `yaml:"redis_url"                   env:"NOTIFY_REDIS_URL"`
	DedupTTL                  time.Duration `yaml:"dedup_ttl"                   env:"NOTIFY_DEDUP_TTL"                   env-default:"24h"`
	Timeout                   time.Duration `yaml:"timeout"                     env:"NOTIFY_TIMEOUT"                     env-default:"5s"`
	TemplateRevisionRequested string        `yaml:"template_revision_requested" env:"NOTIFY_TEMPLATE_REVISION_REQUESTED" env-default:"submission_revision_requested"`
	TemplateApproved          string        `yaml:"template_approved"           env:"NOTIFY_TEMPLATE_APPROVED"           env-default:"submission_approved"`
	TemplateNewSubmission     string        `yaml:"template_new_submission"     env:"NOTIFY_TEMPLATE_NEW_SUBMISSION"     env-default:"submission_received"`
}

// Brokers returns the trimmed, non-empty entries of KafkaBrokers.
func (c NotifyConfig) Brokers() []string {
	var out []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
