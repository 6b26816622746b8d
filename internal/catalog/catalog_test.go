package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/content"
)

func fixture() []content.Project {
	return []content.Project{
		{Title: "Helping Hand", Summary: "Helpdesk ticketing", Tags: []string{"PHP", "MySQL", "Security"}},
		{Title: "Budget App", Summary: "Charts and insights", Tags: []string{"Node", "Angular"}},
		{Title: "Hospital DB", Summary: "Normalized schema", Tags: []string{"MySQL", "SQL"}},
		{Title: "Dashboard", Summary: "Student portal", Tags: []string{"React", "Node", "Auth"}},
	}
}

func titles(ps []content.Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	projects := fixture()
	assert.Equal(t, projects, Filter(projects, Query{Text: "", Tag: AllTag}))
	assert.Equal(t, projects, Filter(projects, Query{}), "empty tag means All")
	assert.Equal(t, projects, Filter(projects, Query{Text: "   "}), "whitespace query is empty")
}

func TestFilterByTag(t *testing.T) {
	projects := fixture()

	got := Filter(projects, Query{Tag: "MySQL"})
	assert.Equal(t, []string{"Helping Hand", "Hospital DB"}, titles(got))
	for _, p := range got {
		assert.Contains(t, p.Tags, "MySQL")
	}

	assert.Empty(t, Filter(projects, Query{Tag: "mysql"}), "tag match is case-sensitive")
	assert.Empty(t, Filter(projects, Query{Tag: "Rust"}))
}

func TestFilterByText(t *testing.T) {
	projects := fixture()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		assert.Equal(t, []string{"Budget App"}, titles(Filter(projects, Query{Text: "  BUDGET "})))
	})

	t.Run("matches summary", func(t *testing.T) {
		assert.Equal(t, []string{"Hospital DB"}, titles(Filter(projects, Query{Text: "schema"})))
	})

	t.Run("matches tags", func(t *testing.T) {
		assert.Equal(t, []string{"Budget App", "Dashboard"}, titles(Filter(projects, Query{Text: "node"})))
	})

	t.Run("matches across the joined fields", func(t *testing.T) {
		assert.Equal(t, []string{"Dashboard"}, titles(Filter(projects, Query{Text: "portal react"})))
	})
}

func TestFilterCombinesPredicates(t *testing.T) {
	got := Filter(fixture(), Query{Text: "help", Tag: "MySQL"})
	assert.Equal(t, []string{"Helping Hand"}, titles(got))

	assert.Empty(t, Filter(fixture(), Query{Text: "budget", Tag: "MySQL"}))
}

func TestFilterIsIdempotent(t *testing.T) {
	projects := fixture()
	for _, q := range []Query{
		{Text: "", Tag: AllTag},
		{Text: "node"},
		{Tag: "MySQL"},
		{Text: "s", Tag: "Node"},
		{Text: "nothing matches this"},
	} {
		once := Filter(projects, q)
		assert.Equal(t, once, Filter(once, q), "query %+v", q)
	}
}

func TestFilterNeverNil(t *testing.T) {
	got := Filter(nil, Query{Text: "x"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTags(t *testing.T) {
	got := Tags(fixture())
	assert.Equal(t, []string{AllTag, "PHP", "MySQL", "Security", "Node", "Angular", "SQL", "React", "Auth"}, got)

	assert.Equal(t, []string{AllTag}, Tags(nil))

	withSentinel := []content.Project{{Title: "x", Tags: []string{AllTag, "Go"}}}
	assert.Equal(t, []string{AllTag, "Go"}, Tags(withSentinel))
}
