// Package carousel keeps a sliding one- or two-card window over the filtered
// project list.
package carousel

import "github.com/Zachkp/portfolio/internal/content"

// Step is how far Next and Prev move the window.
const Step = 2

// Carousel is the window position. The zero value starts at the first project.
type Carousel struct {
	position int
}

// Position returns the raw offset into the current list.
func (c *Carousel) Position() int { return c.position }

// Window returns the list indexes currently shown for a list of length n.
func (c *Carousel) Window(n int) []int {
	switch {
	case n <= 0:
		return []int{}
	case n == 1:
		return []int{0}
	default:
		first := mod(c.position, n)
		return []int{first, mod(first+1, n)}
	}
}

// Next advances the window by Step, wrapping around.
func (c *Carousel) Next(n int) {
	if n <= 0 {
		return
	}
	c.position = mod(c.position+Step, n)
}

// Prev moves the window back by Step, wrapping around.
func (c *Carousel) Prev(n int) {
	if n <= 0 {
		return
	}
	c.position = mod(c.position-Step+n, n)
}

// Reconcile pulls the position back to the start when the list shrank below
// it. An empty list always resets.
func (c *Carousel) Reconcile(n int) {
	if c.position >= n {
		c.position = 0
	}
}

// Reset moves back to the first project.
func (c *Carousel) Reset() { c.position = 0 }

// mod is a remainder that is never negative.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Card is the rendering decision for one project in the window.
type Card struct {
	Key      string   `json:"key"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
	Linkable bool     `json:"linkable"`
	Href     string   `json:"href,omitempty"`
	Target   string   `json:"target,omitempty"`
	Rel      string   `json:"rel,omitempty"`
}

// NewCard decides how p is shown. Linkable projects open their repository in
// a new browsing context; the rest render as static cards.
func NewCard(p content.Project) Card {
	card := Card{
		Key:      p.Title,
		Title:    p.Title,
		Summary:  p.Summary,
		Tags:     p.Tags,
		Image:    p.Image,
		Linkable: p.Linkable(),
	}
	if card.Linkable {
		card.Href = p.Repo
		card.Target = "_blank"
		card.Rel = "noopener noreferrer"
	}
	return card
}

// Cards returns the cards for the current window over projects.
func (c *Carousel) Cards(projects []content.Project) []Card {
	window := c.Window(len(projects))
	cards := make([]Card, 0, len(window))
	for _, i := range window {
		cards = append(cards, NewCard(projects[i]))
	}
	return cards
}
