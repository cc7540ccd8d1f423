// Package content holds the static records the page is composed from.
package content

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

type Image struct {
	Path   string `yaml:"path"`
	Alt    string `yaml:"alt"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Profile struct {
	Name        string   `yaml:"name"`
	Brand       string   `yaml:"brand"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Roles       []string `yaml:"roles"`
	Image       Image    `yaml:"image"`
	About       []string `yaml:"about"`
	Links       []Link   `yaml:"links"`
}

// Section is one block of the page. Reveal is the visible fraction that starts its
// entrance animation; zero means the section is shown immediately.
type Section struct {
	ID        string  `yaml:"id"`
	Title     string  `yaml:"title"`
	Reveal    float64 `yaml:"reveal"`
	Particles bool    `yaml:"particles"`
}

type Experience struct {
	Title      string    `yaml:"title"`
	Org        string    `yaml:"org"`
	Kind       string    `yaml:"kind"`
	Start      time.Time `yaml:"start"`
	End        time.Time `yaml:"end"`
	Highlights []string  `yaml:"highlights"`
}

// Period renders e.g. "Mar 2021 - Aug 2023", or "Apr 2024 - Present" when open-ended.
func (e Experience) Period() string {
	end := "Present"
	if !e.End.IsZero() {
		end = e.End.Format("Jan 2006")
	}
	return e.Start.Format("Jan 2006") + " - " + end
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	GitHub       string   `yaml:"github"`
	Demo         string   `yaml:"demo"`
}

// Site is everything rendered on the page.
type Site struct {
	Profile    Profile      `yaml:"profile"`
	Nav        []Link       `yaml:"nav"`
	Sections   []Section    `yaml:"sections"`
	Skills     []string     `yaml:"skills"`
	Experience []Experience `yaml:"experience"`
	Projects   []Project    `yaml:"projects"`
}

// Load parses the embedded content.
func Load() (*Site, error) {
	return Parse(defaultYAML)
}

// Parse decodes and validates a content document. Experience is ordered newest first.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(site.Experience, func(i, j int) bool {
		return site.Experience[i].Start.After(site.Experience[j].Start)
	})
	return &site, nil
}

// Validate checks section ids are unique, reveal thresholds lie in (0, 1), the profile
// has at least one role and every nav link points at a section.
func (s *Site) Validate() error {
	if len(s.Profile.Roles) == 0 {
		return fmt.Errorf("content: profile has no roles")
	}
	seen := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		if sec.ID == "" {
			return fmt.Errorf("content: section without id")
		}
		if seen[sec.ID] {
			return fmt.Errorf("content: duplicate section %q", sec.ID)
		}
		seen[sec.ID] = true
		if sec.Reveal != 0 && !(sec.Reveal > 0 && sec.Reveal < 1) {
			return fmt.Errorf("content: section %q reveal threshold %v outside (0, 1)", sec.ID, sec.Reveal)
		}
	}
	for _, l := range s.Nav {
		if !seen[strings.TrimPrefix(l.Href, "#")] {
			return fmt.Errorf("content: nav link %q points at no section", l.Href)
		}
	}
	return nil
}

// Section returns the section with the given id.
func (s *Site) Section(id string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}
