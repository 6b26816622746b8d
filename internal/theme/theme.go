// Package theme implements the light/dark preference. The persisted entry is
// authoritative; the Marker is only a render target kept in sync with it.
package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Theme is the persisted value of the preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Key is the name of the persisted entry.
const Key = "theme"

var ErrUnknownTheme = errors.New("unknown theme")

// Parse accepts "light" or "dark", case-insensitively.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// FromDark maps a dark flag to its theme.
func FromDark(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

func (t Theme) IsDark() bool { return t == Dark }

// Opposite returns the other theme.
func (t Theme) Opposite() Theme { return FromDark(!t.IsDark()) }

// Store persists one theme entry per visitor.
type Store interface {
	LoadTheme(ctx context.Context, visitorID string) (Theme, bool, error)
	SaveTheme(ctx context.Context, visitorID string, t Theme) error
}

// Marker is the document-level presentation marker.
type Marker struct {
	mu   sync.RWMutex
	dark bool
}

func (m *Marker) Dark() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dark
}

func (m *Marker) Set(dark bool) {
	m.mu.Lock()
	m.dark = dark
	m.mu.Unlock()
}

// Preference is one visitor's theme flag.
type Preference struct {
	mu        sync.Mutex
	store     Store
	marker    *Marker
	visitorID string
	current   Theme
}

// Load reads the persisted entry for visitorID, falling back to fallback when
// nothing was saved yet, and brings marker in line with the result.
func Load(ctx context.Context, store Store, marker *Marker, visitorID string, fallback Theme) (*Preference, error) {
	if store == nil {
		return nil, errors.New("theme store is required")
	}
	if marker == nil {
		return nil, errors.New("theme marker is required")
	}
	saved, ok, err := store.LoadTheme(ctx, visitorID)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	current := fallback
	if ok {
		current = saved
	}
	if current != Dark {
		current = Light
	}
	marker.Set(current.IsDark())
	return &Preference{
		store:     store,
		marker:    marker,
		visitorID: visitorID,
		current:   current,
	}, nil
}

func (p *Preference) Theme() Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Preference) Dark() bool { return p.Theme().IsDark() }

// Toggle flips the preference. The new value is persisted and mirrored to the
// marker before Toggle returns. If persisting fails nothing changes.
func (p *Preference) Toggle(ctx context.Context) (Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.current.Opposite()
	if err := p.store.SaveTheme(ctx, p.visitorID, next); err != nil {
		return p.current, fmt.Errorf("save theme: %w", err)
	}
	p.current = next
	p.marker.Set(next.IsDark())
	return next, nil
}

// MemoryStore keeps preferences in a map.
type MemoryStore struct {
	mu     sync.Mutex
	themes map[string]Theme
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{themes: map[string]Theme{}}
}

func (s *MemoryStore) LoadTheme(_ context.Context, visitorID string) (Theme, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.themes[visitorID]
	return t, ok, nil
}

func (s *MemoryStore) SaveTheme(_ context.Context, visitorID string, t Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.themes[visitorID] = t
	return nil
}
