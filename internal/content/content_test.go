package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	site := Default()
	require.NoError(t, site.Validate())
	assert.NotEmpty(t, site.Projects)
	assert.NotEmpty(t, site.Profile.Name)
}

func TestValidate(t *testing.T) {
	t.Run("rejects duplicate titles", func(t *testing.T) {
		site := Site{Projects: []Project{{Title: "a"}, {Title: "a"}}}
		err := site.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate title")
	})

	t.Run("rejects blank title", func(t *testing.T) {
		site := Site{Projects: []Project{{Title: "  "}}}
		assert.Error(t, site.Validate())
	})
}

func TestUniqueSkills(t *testing.T) {
	site := Site{Skills: []string{"Go", "SQL", "Go", "Docker", "SQL"}}
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, site.UniqueSkills())
}

func TestProjectLinkable(t *testing.T) {
	tests := []struct {
		repo string
		want bool
	}{
		{"", false},
		{"#", false},
		{"  #  ", false},
		{"   ", false},
		{"https://github.com/example/repo", true},
	}
	for _, tt := range tests {
		t.Run(tt.repo, func(t *testing.T) {
			assert.Equal(t, tt.want, Project{Repo: tt.repo}.Linkable())
		})
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Projects[0].Tags[0] = "changed"
	b := Default()
	assert.NotEqual(t, "changed", b.Projects[0].Tags[0])
}

func TestDefaultTextHasNoSourceIndentation(t *testing.T) {
	about := Default().About
	require.NotEmpty(t, about.Paragraphs)
	for _, p := range about.Paragraphs {
		assert.NotContains(t, p, "\n")
		assert.NotContains(t, p, "\t")
		assert.Equal(t, strings.TrimSpace(p), p)
	}
}
