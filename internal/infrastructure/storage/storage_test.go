package storage

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestManager opens a gdata manager rooted in a temporary HOME
func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	m, err := gdata.Open(gdata.Config{AppName: "wudong_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return m
}
