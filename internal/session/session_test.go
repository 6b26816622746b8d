package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/theme"
)

func projects() []content.Project {
	return []content.Project{
		{Title: "p0", Tags: []string{"Go"}, Repo: "https://example.com/p0"},
		{Title: "p1", Tags: []string{"Go", "SQL"}},
		{Title: "p2", Tags: []string{"SQL"}, Repo: "#"},
		{Title: "p3", Tags: []string{"Web"}},
		{Title: "p4", Tags: []string{"Web", "Go"}},
	}
}

func newTestManager(t *testing.T, store theme.Store) *Manager {
	t.Helper()
	if store == nil {
		store = theme.NewMemoryStore()
	}
	m, err := NewManager(Options{
		Projects:     projects(),
		Themes:       store,
		DefaultTheme: theme.Light,
		NewContact: func() (*contact.Controller, error) {
			return contact.New(contact.SubmitterFunc(func(context.Context, contact.Form) error { return nil }),
				contact.WithResetDelay(time.Hour))
		},
		TTL: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(m.Shutdown)
	return m
}

func keys(v View) []string {
	out := make([]string, 0, len(v.Cards))
	for _, c := range v.Cards {
		out = append(out, c.Key)
	}
	return out
}

func TestNewSessionShowsEverything(t *testing.T) {
	m := newTestManager(t, nil)
	s, err := m.Create(context.Background(), "visitor")
	require.NoError(t, err)

	v := s.View()
	assert.Equal(t, catalog.AllTag, v.ActiveTag)
	assert.Equal(t, 5, v.Total)
	assert.Equal(t, []string{"p0", "p1"}, keys(v))
	assert.Equal(t, []string{catalog.AllTag, "Go", "SQL", "Web"}, v.Tags)
}

func TestNavigation(t *testing.T) {
	m := newTestManager(t, nil)
	s, err := m.Create(context.Background(), "visitor")
	require.NoError(t, err)

	assert.Equal(t, []string{"p2", "p3"}, keys(s.Next()))
	assert.Equal(t, []string{"p4", "p0"}, keys(s.Next()))
	assert.Equal(t, []string{"p2", "p3"}, keys(s.Prev()))

	s = mustNewSession(t, m)
	assert.Equal(t, []string{"p3", "p4"}, keys(s.Prev()), "(0-2+5) mod 5 = 3")
}

func mustNewSession(t *testing.T, m *Manager) *Session {
	t.Helper()
	s, err := m.Create(context.Background(), "")
	require.NoError(t, err)
	return s
}

func TestShrinkingFilterResetsPosition(t *testing.T) {
	m := newTestManager(t, nil)
	s := mustNewSession(t, m)
	s.Next()
	v := s.Next()
	require.Equal(t, 4, v.Position)

	// Same tag, narrower text: only p1 and p2 mention SQL.
	v = s.Projects(catalog.Query{Text: "sql"})
	assert.Equal(t, 2, v.Total)
	assert.Equal(t, 0, v.Position)
	assert.Equal(t, []string{"p1", "p2"}, keys(v))
}

func TestTagChangeResetsPosition(t *testing.T) {
	m := newTestManager(t, nil)
	s := mustNewSession(t, m)
	s.Next()

	v := s.Projects(catalog.Query{Tag: "Go"})
	assert.Equal(t, 0, v.Position)
	assert.Equal(t, []string{"p0", "p1"}, keys(v))

	s.Next()
	v = s.Projects(catalog.Query{Tag: "Go", Text: "p"})
	assert.Equal(t, 2, v.Position, "same tag and same length keeps position")
	assert.Equal(t, []string{"p4", "p0"}, keys(v))
}

func TestEmptyAndSingleResults(t *testing.T) {
	m := newTestManager(t, nil)
	s := mustNewSession(t, m)

	v := s.Projects(catalog.Query{Text: "nothing"})
	assert.Equal(t, 0, v.Total)
	assert.Empty(t, v.Cards)
	assert.Empty(t, s.Next().Cards)

	v = s.Projects(catalog.Query{Tag: "SQL", Text: "p2"})
	require.Len(t, v.Cards, 1)
	assert.Equal(t, "p2", v.Cards[0].Key)
	assert.False(t, v.Cards[0].Linkable)
	assert.Len(t, s.Prev().Cards, 1)
}

func TestEmptyFilterResetsPosition(t *testing.T) {
	m := newTestManager(t, nil)
	s := mustNewSession(t, m)
	s.Next()
	require.Equal(t, 4, s.Next().Position)

	v := s.Projects(catalog.Query{Text: "zzz"})
	assert.Equal(t, 0, v.Total)
	assert.Equal(t, 0, v.Position)

	v = s.Projects(catalog.Query{})
	assert.Equal(t, 5, v.Total)
	assert.Equal(t, 0, v.Position)
	assert.Equal(t, []string{"p0", "p1"}, keys(v))
}

func TestRefineKeepsUnsetParts(t *testing.T) {
	m := newTestManager(t, nil)
	s := mustNewSession(t, m)

	tag := "Go"
	v := s.Refine(nil, &tag)
	assert.Equal(t, "Go", v.ActiveTag)
	assert.Equal(t, 3, v.Total)

	text := "p4"
	v = s.Refine(&text, nil)
	assert.Equal(t, "Go", v.ActiveTag)
	assert.Equal(t, "p4", v.Query)
	assert.Equal(t, []string{"p4"}, keys(v))
}

func TestConcurrentRefinesDoNotLoseUpdates(t *testing.T) {
	m := newTestManager(t, nil)
	s := mustNewSession(t, m)

	text, tag := "p", "SQL"
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Refine(&text, nil)
		}()
		go func() {
			defer wg.Done()
			s.Refine(nil, &tag)
		}()
	}
	wg.Wait()

	assert.Equal(t, catalog.Query{Text: "p", Tag: "SQL"}, s.Query())
	v := s.View()
	assert.Equal(t, 2, v.Total)
	assert.Equal(t, []string{"p1", "p2"}, keys(v))
}

func TestThemeLoadedFromStore(t *testing.T) {
	store := theme.NewMemoryStore()
	require.NoError(t, store.SaveTheme(context.Background(), "returning", theme.Dark))
	m := newTestManager(t, store)

	s, err := m.Create(context.Background(), "returning")
	require.NoError(t, err)
	assert.True(t, s.Theme.Dark())
	assert.True(t, s.Marker.Dark())

	fresh := mustNewSession(t, m)
	assert.False(t, fresh.Theme.Dark())
}

func TestGetAndClose(t *testing.T) {
	m := newTestManager(t, nil)
	s := mustNewSession(t, m)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, m.Close(s.ID))
	_, err = m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Close(s.ID), ErrNotFound)

	s.Contact.SetFields(contact.Form{Name: "A", Email: "a@b.com", Message: "hi"})
	assert.ErrorIs(t, s.Contact.Submit(context.Background()), contact.ErrClosed)
}

func TestSweepClosesIdleSessions(t *testing.T) {
	m := newTestManager(t, nil)
	start := time.Now()
	m.now = func() time.Time { return start }

	idle := mustNewSession(t, m)
	active := mustNewSession(t, m)
	require.Equal(t, 2, m.Len())

	m.now = func() time.Time { return start.Add(50 * time.Second) }
	_, err := m.Get(active.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Sweep(start.Add(90*time.Second)))
	assert.Equal(t, 1, m.Len())
	_, err = m.Get(idle.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.Get(active.ID)
	assert.NoError(t, err)
}

func TestNewManagerValidation(t *testing.T) {
	_, err := NewManager(Options{TTL: time.Minute})
	assert.Error(t, err)
}
