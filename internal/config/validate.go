package config

import (
	"fmt"
	"net/url"
	"slices"
)

// minChunkSize is the smallest multipart part size accepted by S3-compatible stores.
const minChunkSize = 5 << 20

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Upload.validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	if err := c.Chain.validate(); err != nil {
		return fmt.Errorf("chain: %w", err)
	}

	if _, err := url.ParseRequestURI(c.Storage.PublicBaseURL); err != nil {
		return fmt.Errorf("storage.public_base_url: %w", err)
	}

	if c.Notify.Timeout <= 0 {
		return fmt.Errorf("notify.timeout must be > 0 (got %s)", c.Notify.Timeout)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if c.CORS.AllowCredentials && slices.Contains(c.CORS.Origins(), "*") {
		return fmt.Errorf("cors: allow_credentials cannot be combined with a wildcard origin")
	}

	return nil
}

func (u *UploadConfig) validate() error {
	if u.CreatorMaxBytes <= 0 {
		return fmt.Errorf("creator_max_bytes must be > 0 (got %d)", u.CreatorMaxBytes)
	}
	if u.AdminMaxBytes <= 0 {
		return fmt.Errorf("admin_max_bytes must be > 0 (got %d)", u.AdminMaxBytes)
	}
	if u.ChunkSizeBytes < minChunkSize {
		return fmt.Errorf("chunk_size_bytes must be >= %d (got %d)", minChunkSize, u.ChunkSizeBytes)
	}
	if u.ChunkThresholdBytes < u.ChunkSizeBytes {
		return fmt.Errorf("chunk_threshold_bytes must be >= chunk_size_bytes (got %d < %d)",
			u.ChunkThresholdBytes, u.ChunkSizeBytes)
	}
	if len(u.MIMEPrefixes()) == 0 {
		return fmt.Errorf("allowed_mime_prefixes must not be empty")
	}
	if u.ContentCategory == "" || u.CleanCategory == "" {
		return fmt.Errorf("content_category and clean_category are required")
	}
	return nil
}

func (c *ChainConfig) validate() error {
	if c.StandardCeiling < 1 {
		return fmt.Errorf("standard_ceiling must be >= 1 (got %d)", c.StandardCeiling)
	}
	if c.ExtendedCeiling < 1 {
		return fmt.Errorf("extended_ceiling must be >= 1 (got %d)", c.ExtendedCeiling)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.UploadsPerMinute < 0 {
		return fmt.Errorf("uploads_per_minute must be >= 0 (got %d)", r.UploadsPerMinute)
	}
	if r.UploadsPerMinute > 0 && r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 when the limit is enabled (got %s)", r.CleanupInterval)
	}
	return nil
}
