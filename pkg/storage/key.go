package storage

import "strings"

// GenerateCacheKey builds keys of the form version/platform/domain/parts...
//
// version is bumped on incompatible changes of the stored model, platform is the
// messenger (e.g. "telegram"), domain the kind of data (e.g. "notes") and
// uniqueParts identify the record, e.g. a chat id.
func GenerateCacheKey(version, platform, domain string, uniqueParts ...string) string {
	parts := []string{
		version,
		strings.ToLower(platform),
		strings.ToLower(domain),
	}

	parts = append(parts, uniqueParts...)

	return strings.Join(parts, "/")
}
