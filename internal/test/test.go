// Package test contains helpers for tests.
package test

import (
	"path/filepath"
	"testing"
)

// TmpFile returns the DSN of a SQLite database in a temporary directory
// that is cleaned up after the test. Foreign keys are enabled since the
// store relies on them for RESTRICT and CASCADE behavior.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "despesas.db") + "?_pragma=foreign_keys(1)"
}
