package main

import (
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

/* MimeTable:
 * Static extension to content-type mapping plus an explicit
 * fallback. Keys are lowercase extensions including the leading
 * dot, lookups are case-insensitive. Read-only once the server
 * is up, so no locking required.
 */
type MimeTable struct {
	Types    map[string]string
	Fallback string
}

func defaultMimeTable() *MimeTable {
	return &MimeTable{
		Types: map[string]string{
			".html": "text/html; charset=utf-8",
			".css":  "text/css; charset=utf-8",
			".js":   "text/javascript; charset=utf-8",
			".txt":  "text/plain; charset=utf-8",
			".png":  "image/png",
			".jpeg": "image/jpeg",
			".jpg":  "image/jpeg",
			".jpe":  "image/jpeg",
			".gif":  "image/gif",
			".svg":  "image/svg+xml",
			".svgz": "image/svg+xml",
			".ico":  "image/vnd.microsoft.icon",
		},
		Fallback: FallbackContentType,
	}
}

/* Resolve a file path to a content-type string. A miss never
 * errors, it always falls through to the fallback entry.
 */
func (mt *MimeTable) Lookup(filePath string) string {
	ext := strings.ToLower(path.Ext(path.Base(filePath)))
	if ext != "" {
		if contentType, ok := mt.Types[ext]; ok {
			return contentType
		}
	}
	return mt.Fallback
}

/* Merge user supplied extension to content-type mappings from a
 * YAML file over the built-in table. Keys may be given with or
 * without the leading dot and in any case.
 */
func (mt *MimeTable) LoadOverrides(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	overrides := make(map[string]string)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return err
	}

	for ext, contentType := range overrides {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		mt.Types[strings.ToLower(ext)] = contentType
	}

	return nil
}
