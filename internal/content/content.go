// Package content holds the portfolio's static dataset.
package content

import (
	"fmt"
	"strings"
)

// Link is a labelled outbound or in-page reference.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Profile is the hero section: who the owner is and where to reach them.
type Profile struct {
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	Tagline     string `json:"tagline"`
	ResumeURL   string `json:"resumeUrl"`
	Photo       string `json:"photo"`
	CTAs        []Link `json:"ctas"`
	Socials     []Link `json:"socials"`
	FooterLinks []Link `json:"footerLinks"`
}

// About is the free-text introduction.
type About struct {
	Paragraphs []string `json:"paragraphs"`
	Highlights []string `json:"highlights,omitempty"`
}

// Project is one entry of the gallery. Title is its identity.
type Project struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
	Link    string   `json:"link,omitempty"`
	Repo    string   `json:"repo,omitempty"`
	Image   string   `json:"image"`
}

// Linkable reports whether the project's repository link points somewhere real.
// An absent link and the "#" placeholder both mean "no link".
func (p Project) Linkable() bool {
	repo := strings.TrimSpace(p.Repo)
	return repo != "" && repo != "#"
}

// Experience is one role on the timeline.
type Experience struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Date    string   `json:"date"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Hobby is one card in the interests section.
type Hobby struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Site is the whole page's content.
type Site struct {
	Profile    Profile      `json:"profile"`
	About      About        `json:"about"`
	Skills     []string     `json:"skills"`
	Projects   []Project    `json:"projects"`
	Experience []Experience `json:"experience"`
	Hobbies    []Hobby      `json:"hobbies"`
}

// UniqueSkills returns the skills list without repeats, in first-seen order.
func (s Site) UniqueSkills() []string {
	seen := make(map[string]struct{}, len(s.Skills))
	out := make([]string, 0, len(s.Skills))
	for _, skill := range s.Skills {
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// Validate checks the dataset invariants: every project needs a title and
// titles must be unique.
func (s Site) Validate() error {
	seen := make(map[string]struct{}, len(s.Projects))
	for i, p := range s.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d: title is required", i)
		}
		if _, ok := seen[p.Title]; ok {
			return fmt.Errorf("project %q: duplicate title", p.Title)
		}
		seen[p.Title] = struct{}{}
	}
	return nil
}
