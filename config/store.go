package config

import "sync/atomic"

// Store publishes the active Snapshot. Readers grab a pointer once per tick
// and keep using it even if a replacement lands mid-tick.
type Store struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// NewStore creates a store holding a sanitized copy of s.
func NewStore(s Snapshot) *Store {
	st := &Store{}
	st.Replace(s)
	return st
}

// Load returns the active snapshot. Callers must not modify it.
func (st *Store) Load() *Snapshot {
	return st.current.Load()
}

// Replace swaps in a sanitized copy of next and returns the new version.
func (st *Store) Replace(next Snapshot) uint64 {
	s := next.Sanitize()
	st.current.Store(&s)
	return st.version.Add(1)
}

// Version increments on every Replace.
func (st *Store) Version() uint64 {
	return st.version.Load()
}
