package content

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	site, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if site.Profile.Name == "" {
		t.Error("profile name is empty")
	}
	if len(site.Skills) == 0 || len(site.Projects) == 0 || len(site.Experience) == 0 {
		t.Error("content lists should not be empty")
	}

	want := map[string]float64{"about": 0.3, "skills": 0.3, "experience": 0.2, "projects": 0.3, "contact": 0.1}
	for id, th := range want {
		sec, ok := site.Section(id)
		if !ok {
			t.Errorf("section %q missing", id)
			continue
		}
		if sec.Reveal != th {
			t.Errorf("section %q reveal %v, want %v", id, sec.Reveal, th)
		}
	}
	if site.Profile.Brand != "SN" || len(site.Nav) != 5 {
		t.Errorf("brand %q nav %d links, want SN and 5", site.Profile.Brand, len(site.Nav))
	}
	if len(site.Profile.Roles) != 3 {
		t.Errorf("%d roles, want 3", len(site.Profile.Roles))
	}
	for _, id := range []string{"hero", "about", "skills", "contact"} {
		if sec, _ := site.Section(id); !sec.Particles {
			t.Errorf("section %q should carry a particle field", id)
		}
	}
}

func TestLoad_ExperienceNewestFirst(t *testing.T) {
	site, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(site.Experience); i++ {
		if site.Experience[i].Start.After(site.Experience[i-1].Start) {
			t.Errorf("experience %d starts after %d", i, i-1)
		}
	}
	first := site.Experience[0]
	if got := first.Period(); got != "Apr 2024 - Present" {
		t.Errorf("Period %q, want Apr 2024 - Present", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	const roles = "profile:\n  roles: [Engineer]\n"
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"duplicate", roles + "sections:\n  - id: a\n  - id: a\n", "duplicate"},
		{"threshold", roles + "sections:\n  - id: a\n    reveal: 1.5\n", "outside"},
		{"no id", roles + "sections:\n  - title: x\n", "without id"},
		{"no roles", "sections:\n  - id: a\n", "no roles"},
		{"empty roles", "profile:\n  roles: []\nsections:\n  - id: a\n", "no roles"},
		{"nav", roles + "nav:\n  - label: Blog\n    href: \"#blog\"\nsections:\n  - id: a\n", "points at no section"},
		{"yaml", "sections: [", "parse content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err %v, want containing %q", err, tt.want)
			}
		})
	}
}
