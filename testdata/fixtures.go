// Package testdata provides JSON fixtures for client and model tests. The
// payload shapes mirror real monitoring API responses.
package testdata

import (
	"embed"
	"testing"
)

// FS embeds all JSON fixture files.
//
//go:embed **/*.json
var FS embed.FS

// LoadFixture reads and returns fixture content as a string. The path is
// slash-separated and relative to the testdata directory
// (e.g. "overview/success.json").
func LoadFixture(t *testing.T, path string) string {
	t.Helper()

	data, err := FS.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return string(data)
}
