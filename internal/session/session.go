// Package session holds each visitor's page state: the project filter and
// carousel, the theme preference and the contact form. A session lives until
// it is closed or sits idle past its TTL.
package session

import (
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/carousel"
	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/theme"
)

// View is the project section as the visitor currently sees it.
type View struct {
	Query     string          `json:"query"`
	ActiveTag string          `json:"activeTag"`
	Tags      []string        `json:"tags"`
	Total     int             `json:"total"`
	Position  int             `json:"position"`
	Cards     []carousel.Card `json:"cards"`
}

// Session is one visitor's page. Exported fields are set at creation and
// never reassigned.
type Session struct {
	ID        string
	VisitorID string

	Marker  *theme.Marker
	Theme   *theme.Preference
	Contact *contact.Controller

	mu       sync.Mutex
	projects []content.Project
	tags     []string
	query    catalog.Query
	filtered []content.Project
	carousel carousel.Carousel
	lastSeen time.Time
}

func newSession(id, visitorID string, projects []content.Project, tags []string, now time.Time) *Session {
	s := &Session{
		ID:        id,
		VisitorID: visitorID,
		Marker:    &theme.Marker{},
		projects:  projects,
		tags:      tags,
		query:     catalog.Query{Tag: catalog.AllTag},
		lastSeen:  now,
	}
	s.filtered = catalog.Filter(projects, s.query)
	return s
}

// Projects applies q and returns the resulting view. Changing the tag sends
// the carousel back to the start; shrinking the list below the current
// position does the same.
func (s *Session) Projects(q catalog.Query) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(q)
}

// Refine changes only the non-nil parts of the current query and returns the
// resulting view.
func (s *Session) Refine(text, tag *string) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.query
	if text != nil {
		q.Text = *text
	}
	if tag != nil {
		q.Tag = *tag
	}
	return s.applyLocked(q)
}

func (s *Session) applyLocked(q catalog.Query) View {
	q = q.Normalize()
	tagChanged := q.Tag != s.query.Tag
	s.query = q
	s.filtered = catalog.Filter(s.projects, q)
	if tagChanged {
		s.carousel.Reset()
	}
	s.carousel.Reconcile(len(s.filtered))
	return s.viewLocked()
}

// Next advances the carousel over the current filtered list.
func (s *Session) Next() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carousel.Next(len(s.filtered))
	return s.viewLocked()
}

// Prev moves the carousel back over the current filtered list.
func (s *Session) Prev() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carousel.Prev(len(s.filtered))
	return s.viewLocked()
}

// Query returns the filter currently applied.
func (s *Session) Query() catalog.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// View returns the current project view without changing anything.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	return View{
		Query:     s.query.Text,
		ActiveTag: s.query.Tag,
		Tags:      s.tags,
		Total:     len(s.filtered),
		Position:  s.carousel.Position(),
		Cards:     s.carousel.Cards(s.filtered),
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

func (s *Session) close() {
	if s.Contact != nil {
		s.Contact.Close()
	}
}
