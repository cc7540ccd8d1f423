package reveal

import "time"

// Typing cadence for a Typer.
const (
	TypeInterval   = 60 * time.Millisecond
	DeleteInterval = 30 * time.Millisecond
	RoleHold       = 2 * time.Second
)

type typerPhase int

const (
	phaseTyping typerPhase = iota
	phaseHolding
	phaseDeleting
)

// Typer cycles through a list of roles the way a typewriter would: it types a role one
// rune at a time, holds it for RoleHold, then deletes back to the prefix it shares with
// the next role and types that one. The cycle repeats forever. A single role is typed
// once and then held.
type Typer struct {
	roles [][]rune
	i     int
	n     int
	keep  int
	phase typerPhase
	clock time.Duration
}

// NewTyper returns a typer over roles, skipping empty ones. It starts with nothing typed.
func NewTyper(roles []string) *Typer {
	t := &Typer{}
	for _, r := range roles {
		if r != "" {
			t.roles = append(t.roles, []rune(r))
		}
	}
	return t
}

// Text is what is currently typed.
func (t *Typer) Text() string {
	if len(t.roles) == 0 {
		return ""
	}
	return string(t.roles[t.i][:t.n])
}

// Role is the index of the role being typed, held or deleted.
func (t *Typer) Role() int {
	return t.i
}

// Update advances the typer by dt and returns the current text.
func (t *Typer) Update(dt time.Duration) string {
	if len(t.roles) == 0 {
		return ""
	}
	t.clock += dt
	for {
		var need time.Duration
		switch t.phase {
		case phaseTyping:
			need = TypeInterval
		case phaseHolding:
			if len(t.roles) == 1 {
				t.clock = 0
				return t.Text()
			}
			need = RoleHold
		case phaseDeleting:
			need = DeleteInterval
		}
		if t.clock < need {
			return t.Text()
		}
		t.clock -= need
		t.advance()
	}
}

func (t *Typer) advance() {
	switch t.phase {
	case phaseTyping:
		if t.n < len(t.roles[t.i]) {
			t.n++
		}
		if t.n >= len(t.roles[t.i]) {
			t.phase = phaseHolding
		}
	case phaseHolding:
		next := (t.i + 1) % len(t.roles)
		t.keep = sharedPrefix(t.roles[t.i], t.roles[next])
		if t.n <= t.keep {
			t.i = next
			t.phase = phaseTyping
			return
		}
		t.phase = phaseDeleting
	case phaseDeleting:
		t.n--
		if t.n <= t.keep {
			t.i = (t.i + 1) % len(t.roles)
			t.phase = phaseTyping
		}
	}
}

func sharedPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
