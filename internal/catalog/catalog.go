// Package catalog derives the searchable, tag-filtered view of the project list.
package catalog

import (
	"slices"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
)

// AllTag selects every project.
const AllTag = "All"

// Query is the filter input: free text plus one selected tag.
type Query struct {
	Text string `json:"query" form:"q"`
	Tag  string `json:"activeTag" form:"tag"`
}

// Normalize maps an empty tag to AllTag.
func (q Query) Normalize() Query {
	if q.Tag == "" {
		q.Tag = AllTag
	}
	return q
}

// Filter returns the projects matching both the tag and the text of q,
// in their original order. It never returns nil.
func Filter(projects []content.Project, q Query) []content.Project {
	q = q.Normalize()
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]content.Project, 0, len(projects))
	for _, p := range projects {
		if matchesTag(p, q.Tag) && matchesText(p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func matchesTag(p content.Project, tag string) bool {
	return tag == AllTag || slices.Contains(p.Tags, tag)
}

func matchesText(p content.Project, needle string) bool {
	if needle == "" {
		return true
	}
	haystack := make([]string, 0, 2+len(p.Tags))
	haystack = append(haystack, p.Title, p.Summary)
	haystack = append(haystack, p.Tags...)
	return strings.Contains(strings.ToLower(strings.Join(haystack, " ")), needle)
}

// Tags lists AllTag followed by every distinct tag across projects,
// in first-seen order.
func Tags(projects []content.Project) []string {
	seen := map[string]struct{}{AllTag: {}}
	out := []string{AllTag}
	for _, p := range projects {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
