package hashing

import (
	"fmt"
	"sync"
)

// Manager is a thread-safe driver registry and dispatcher for key digests.
//
// Register one or more named [Hasher] implementations, nominate a default
// driver, and then call [Manager.Key] for day-to-day key derivation.
//
// # Thread safety
//
// All Manager methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (RegisterDriver, SetDefaultDriver) while
// allowing concurrent reads (Key, Sum, etc.).
type Manager struct {
	mu      sync.RWMutex
	drivers map[DriverName]Hasher
	def     DriverName
}

// NewManager creates an empty Manager with the given default driver name.
// Drivers must be registered with [Manager.RegisterDriver] before any
// operation is invoked through the Manager.
func NewManager(defaultDriver DriverName) *Manager {
	return &Manager{
		drivers: make(map[DriverName]Hasher),
		def:     defaultDriver,
	}
}

// NewDefaultManager creates a Manager with both built-in drivers registered.
// The default driver is [DriverBlake2b] with a 32-byte digest.
func NewDefaultManager() *Manager {
	b2, err := NewBlake2bHasher(DefaultBlake2bOptions())
	if err != nil {
		panic(fmt.Sprintf("hashing: default blake2b options rejected: %v", err))
	}
	m := NewManager(DriverBlake2b)
	_ = m.RegisterDriver(DriverBlake2b, b2)
	_ = m.RegisterDriver(DriverSHA3, NewSHA3Hasher())
	return m
}

// RegisterDriver adds or replaces a named hasher in the Manager.
func (m *Manager) RegisterDriver(name DriverName, h Hasher) error {
	if name == "" {
		return ErrEmptyDriverName
	}
	if h == nil {
		return ErrNilHasher
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drivers[name] = h
	return nil
}

// Driver returns the [Hasher] registered under name, or [ErrDriverNotFound]
// if no such driver has been registered.
func (m *Manager) Driver(name DriverName) (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDriverNotFound, name)
	}
	return h, nil
}

// SetDefaultDriver changes the driver used by [Manager.Key] and
// [Manager.Sum]. The named driver must already be registered.
func (m *Manager) SetDefaultDriver(name DriverName) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.drivers[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterDriver first",
			ErrDriverNotFound, name)
	}
	m.def = name
	return nil
}

// DefaultDriver returns the name of the currently configured default driver.
func (m *Manager) DefaultDriver() DriverName {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.def
}

// HasDriver reports whether a driver with the given name is registered.
func (m *Manager) HasDriver(name DriverName) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drivers[name]
	return ok
}

// Sum digests data with the default driver.
func (m *Manager) Sum(data []byte) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return h.Sum(data), nil
}

// Key digests the canonical encoding of v with the default driver.
//
//	k1, _ := m.Key(map[string]any{"a": 1, "b": 2})
//	k2, _ := m.Key(map[string]any{"b": 2, "a": 1})
//	k1 == k2 // true
func (m *Manager) Key(v any) (string, error) {
	h, err := m.resolveDefault()
	if err != nil {
		return "", err
	}
	return keyWith(h, v)
}

// KeyWith is [Manager.Key] using the named driver instead of the default.
func (m *Manager) KeyWith(name DriverName, v any) (string, error) {
	h, err := m.Driver(name)
	if err != nil {
		return "", err
	}
	return keyWith(h, v)
}

// MustKey is like [Manager.Key] but panics on error. It suits key functions,
// which cannot return errors.
func (m *Manager) MustKey(v any) string {
	k, err := m.Key(v)
	if err != nil {
		panic(err)
	}
	return k
}

// KeyFunc adapts fn into a key function for the arr grouping helpers. The
// value fn selects is digested with m's default driver. The returned function
// panics if that value cannot be encoded.
//
//	groups := arr.GroupBy(posts, hashing.KeyFunc(m, func(p Post) any { return p.Tags }))
func KeyFunc[T any](m *Manager, fn func(T) any) func(T) string {
	return func(item T) string {
		return m.MustKey(fn(item))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

func keyWith(h Hasher, v any) (string, error) {
	b, err := Canonical(v)
	if err != nil {
		return "", err
	}
	return h.Sum(b), nil
}

func (m *Manager) resolveDefault() (Hasher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.drivers[m.def]
	if !ok {
		return nil, fmt.Errorf("%w: default driver %q has not been registered",
			ErrDriverNotFound, m.def)
	}
	return h, nil
}
