package database

import (
	"errors"
	"sync"

	"github.com/mpphp/database/config"
	"github.com/mpphp/database/internal/debug"
)

// Manager opens and caches handles for the connections named in a config
// descriptor. It replaces process-global connection state: callers hold a
// Manager and ask it for handles explicitly.
type Manager struct {
	mu   sync.Mutex
	cfg  *config.Config
	open map[string]*DB
}

// NewManager returns a manager over a loaded descriptor.
func NewManager(cfg *config.Config) *Manager {
	debug.Init(cfg.Debug)
	return &Manager{
		cfg:  cfg,
		open: make(map[string]*DB),
	}
}

// DB returns the handle for the named connection, opening it on first use.
// An empty name selects the descriptor's default backend.
func (m *Manager) DB(name string) (*DB, error) {
	lookup := name
	if lookup == "" {
		lookup = m.cfg.Default
	}
	if lookup == "" {
		return nil, &ConfigError{Backend: "default"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if db, ok := m.open[lookup]; ok {
		return db, nil
	}

	conn, ok := m.cfg.Connection(lookup)
	if !ok {
		return nil, &ConfigError{Backend: lookup}
	}

	driver := conn.Driver
	if driver == "" {
		driver = lookup
	}

	var db *DB
	var err error
	if conn.URL != "" {
		db, err = OpenDSN(driver, conn.URL)
	} else {
		db, err = Open(driver, conn.ConnConfig)
	}
	if err != nil {
		return nil, err
	}

	m.open[lookup] = db
	return db, nil
}

// Default returns the handle for the descriptor's default backend.
func (m *Manager) Default() (*DB, error) { return m.DB("") }

// Close releases every open handle.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for name, db := range m.open {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(m.open, name)
	}
	return errors.Join(errs...)
}
