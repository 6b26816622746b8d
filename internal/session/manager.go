package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/theme"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = errors.New("session not found")

// Options configures a Manager.
type Options struct {
	Projects     []content.Project
	Themes       theme.Store
	DefaultTheme theme.Theme
	// NewContact builds the contact form controller for a new session.
	NewContact func() (*contact.Controller, error)
	TTL        time.Duration
	Logger     *zap.Logger
	// Active, when set, tracks the number of live sessions.
	Active prometheus.Gauge
}

// Manager owns every live session.
type Manager struct {
	opts Options
	tags []string
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(opts Options) (*Manager, error) {
	if opts.Themes == nil {
		return nil, errors.New("theme store is required")
	}
	if opts.NewContact == nil {
		return nil, errors.New("contact factory is required")
	}
	if opts.TTL <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Manager{
		opts:     opts,
		tags:     catalog.Tags(opts.Projects),
		now:      time.Now,
		sessions: map[string]*Session{},
	}, nil
}

// Create starts a session for visitorID. The theme preference is read from
// the store before Create returns.
func (m *Manager) Create(ctx context.Context, visitorID string) (*Session, error) {
	if visitorID == "" {
		visitorID = uuid.NewString()
	}
	s := newSession(uuid.NewString(), visitorID, m.opts.Projects, m.tags, m.now())

	pref, err := theme.Load(ctx, m.opts.Themes, s.Marker, visitorID, m.opts.DefaultTheme)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	s.Theme = pref

	ctrl, err := m.opts.NewContact()
	if err != nil {
		return nil, fmt.Errorf("new contact form: %w", err)
	}
	s.Contact = ctrl

	m.mu.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()
	m.setActive(n)

	m.opts.Logger.Debug("session created", zap.String("session_id", s.ID))
	return s, nil
}

// Get returns the live session with id and marks it as used.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	s.touch(m.now())
	return s, nil
}

// Close tears down the session with id.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	s.close()
	m.setActive(n)
	m.opts.Logger.Debug("session closed", zap.String("session_id", id))
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep closes every session idle for longer than the TTL and reports how
// many it closed.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.idleSince(now) > m.opts.TTL {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	if len(expired) > 0 {
		m.setActive(n)
		m.opts.Logger.Info("expired idle sessions", zap.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(m.now())
		}
	}
}

// Shutdown closes every session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = map[string]*Session{}
	m.mu.Unlock()
	for _, s := range sessions {
		s.close()
	}
	m.setActive(0)
}

func (m *Manager) setActive(n int) {
	if m.opts.Active != nil {
		m.opts.Active.Set(float64(n))
	}
}
