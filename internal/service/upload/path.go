package upload

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// extByMIME covers the media subtypes whose names are not their usual extension.
var extByMIME = map[string]string{
	"video/quicktime":  "mov",
	"video/x-matroska": "mkv",
	"video/x-msvideo":  "avi",
	"video/x-ms-wmv":   "wmv",
	"video/3gpp":       "3gp",
	"image/jpeg":       "jpg",
	"image/svg+xml":    "svg",
}

// objectPath builds {category}/{owner}_{campaign}_{version?}_{millis}.{ext}.
func objectPath(category string, t Target, f File, now time.Time) string {
	parts := []string{sanitize(t.OwnerID), sanitize(t.CampaignID)}
	if t.Version > 0 {
		parts = append(parts, strconv.Itoa(t.Version))
	}
	parts = append(parts, strconv.FormatInt(now.UnixMilli(), 10))

	return strings.Trim(category, "/") + "/" + strings.Join(parts, "_") + "." + extension(f.Name, f.ContentType)
}

// extension takes the file name's extension, falling back to the MIME subtype.
func extension(name, contentType string) string {
	if ext := strings.TrimPrefix(filepath.Ext(name), "."); ext != "" {
		if clean := strings.ToLower(sanitize(ext)); clean != "" {
			return clean
		}
	}

	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if mediaType, _, ok := strings.Cut(contentType, ";"); ok {
		contentType = strings.TrimSpace(mediaType)
	}
	if ext, ok := extByMIME[contentType]; ok {
		return ext
	}
	if _, sub, ok := strings.Cut(contentType, "/"); ok {
		if clean := sanitize(sub); clean != "" {
			return clean
		}
	}
	return "bin"
}

// sanitize keeps ASCII letters, digits and '-'; everything else becomes '-'.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
