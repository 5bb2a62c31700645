// Package storage persists high scores and menu preferences through gdata.
//
// Every store accepts a nil *gdata.Manager and then keeps its data in
// memory only, so the game still runs where no data directory is writable.
package storage

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// AppName is the gdata application name the game saves under
const AppName = "wudong"

// OpenManager opens the gdata manager for appName. On failure it logs a
// warning and returns nil, which the stores treat as in-memory mode.
func OpenManager(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Storage] Warning: failed to open data directory: %v (scores will not be saved)", err)
		return nil
	}
	return m
}
