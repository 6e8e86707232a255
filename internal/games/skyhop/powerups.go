package skyhop

import (
	"fmt"

	"github.com/arcadehop/skyhop/internal/config"
)

// BuffType identifies a time-limited power-up buff.
type BuffType int

const (
	BuffPropellerHat BuffType = iota
	BuffJetpack
	BuffSpringShoes
	BuffCount // Sentinel for counting types
)

// String returns the short identifier of the buff.
func (b BuffType) String() string {
	switch b {
	case BuffPropellerHat:
		return "propeller_hat"
	case BuffJetpack:
		return "jetpack"
	case BuffSpringShoes:
		return "spring_shoes"
	default:
		return "?"
	}
}

// Label returns the human-readable HUD label of the buff.
func (b BuffType) Label() string {
	switch b {
	case BuffPropellerHat:
		return "Propeller Hat"
	case BuffJetpack:
		return "Jetpack"
	case BuffSpringShoes:
		return "Spring Shoes"
	default:
		return "?"
	}
}

// Glyph returns the display character of the buff pickup.
func (b BuffType) Glyph() rune {
	switch b {
	case BuffPropellerHat:
		return 'P'
	case BuffJetpack:
		return 'J'
	case BuffSpringShoes:
		return 'S'
	default:
		return '?'
	}
}

// MoveState is the single dominant power-up state that controls animation
// and the vertical-movement override. Exactly one is current at any tick.
type MoveState int

const (
	MoveNormal MoveState = iota
	MovePropeller
	MoveJetpack
	MoveSpring
)

// String returns the name of the movement state.
func (s MoveState) String() string {
	switch s {
	case MoveNormal:
		return "normal"
	case MovePropeller:
		return "propellerhat"
	case MoveJetpack:
		return "jetpack"
	case MoveSpring:
		return "springshoes"
	default:
		return "?"
	}
}

// Cue identifies a continuous audio/visual cue tied to a movement state.
type Cue int

const (
	CueNone Cue = iota
	CuePropeller
	CueJetpack
)

// CueListener receives cue start/stop notifications. The platform layer may
// map these to a terminal effect; game logic only guarantees each transition
// is delivered exactly once.
type CueListener interface {
	CueStarted(c Cue)
	CueStopped(c Cue)
}

// buff tracks a single timed power-up on the player.
type buff struct {
	Active  bool
	StartMs int64
}

// buffDef binds a buff to its dominant state and cue. The defs slice is
// ordered by priority; the first active-and-unexpired entry wins, which
// makes the priority an explicit, testable property of the data.
type buffDef struct {
	Type  BuffType
	State MoveState
	Cue   Cue
}

var buffPriority = []buffDef{
	{Type: BuffPropellerHat, State: MovePropeller, Cue: CuePropeller},
	{Type: BuffJetpack, State: MoveJetpack, Cue: CueJetpack},
	{Type: BuffSpringShoes, State: MoveSpring, Cue: CueNone},
}

// BuffSet is the per-player power-up state machine: up to three independent
// timed buffs with a fixed dominance order propellerHat > jetpack > springShoes.
type BuffSet struct {
	cfg      config.PowerupConfig
	buffs    [BuffCount]buff
	state    MoveState
	cue      Cue // Currently playing cue, CueNone if silent
	listener CueListener
}

// NewBuffSet creates a buff set with all buffs inactive.
func NewBuffSet(cfg config.PowerupConfig) *BuffSet {
	return &BuffSet{cfg: cfg}
}

// SetCueListener installs an optional listener for cue transitions.
func (s *BuffSet) SetCueListener(l CueListener) {
	s.listener = l
}

// Reset deactivates all buffs and stops any playing cue.
func (s *BuffSet) Reset() {
	for i := range s.buffs {
		s.buffs[i] = buff{}
	}
	s.setCue(CueNone)
	s.state = MoveNormal
}

// duration returns the configured duration of a buff in milliseconds.
func (s *BuffSet) duration(t BuffType) int64 {
	switch t {
	case BuffPropellerHat:
		return s.cfg.PropellerDurationMs
	case BuffJetpack:
		return s.cfg.JetpackDurationMs
	case BuffSpringShoes:
		return s.cfg.SpringDurationMs
	default:
		return 0
	}
}

// expired reports whether a buff has outlived its duration at nowMs.
// Expiry is strict: a buff is still live at exactly start+duration.
func (s *BuffSet) expired(t BuffType, nowMs int64) bool {
	return nowMs-s.buffs[t].StartMs > s.duration(t)
}

// Collect activates a buff and re-evaluates dominance immediately, so an
// observer reading State() right after Collect never sees a stale state.
func (s *BuffSet) Collect(t BuffType, nowMs int64) {
	if t < 0 || t >= BuffCount {
		return
	}
	s.buffs[t].Active = true
	s.buffs[t].StartMs = nowMs
	s.Advance(nowMs)
}

// Advance expires buffs and recomputes the dominant state for nowMs.
// Called once per tick and from Collect. Returns the dominant state.
func (s *BuffSet) Advance(nowMs int64) MoveState {
	dominant := MoveNormal
	cue := CueNone

	for _, def := range buffPriority {
		b := &s.buffs[def.Type]
		if !b.Active {
			continue
		}
		if s.expired(def.Type, nowMs) {
			b.Active = false
			continue
		}
		if dominant == MoveNormal {
			dominant = def.State
			cue = def.Cue
		}
	}

	s.state = dominant
	s.setCue(cue)
	return s.state
}

// setCue switches the playing cue. Idempotent: setting the already-playing
// cue does not restart it; each start/stop is delivered exactly once.
func (s *BuffSet) setCue(c Cue) {
	if c == s.cue {
		return
	}
	if s.cue != CueNone && s.listener != nil {
		s.listener.CueStopped(s.cue)
	}
	if c != CueNone && s.listener != nil {
		s.listener.CueStarted(c)
	}
	s.cue = c
}

// State returns the current dominant movement state.
func (s *BuffSet) State() MoveState {
	return s.state
}

// CuePlaying reports whether the given cue is currently playing.
func (s *BuffSet) CuePlaying(c Cue) bool {
	return c != CueNone && s.cue == c
}

// Active reports whether a buff is currently active (collected, not expired).
func (s *BuffSet) Active(t BuffType) bool {
	if t < 0 || t >= BuffCount {
		return false
	}
	return s.buffs[t].Active
}

// Remaining returns the milliseconds left on a buff, or 0 if inactive.
func (s *BuffSet) Remaining(t BuffType, nowMs int64) int64 {
	if !s.Active(t) {
		return 0
	}
	left := s.buffs[t].StartMs + s.duration(t) - nowMs
	if left < 0 {
		return 0
	}
	return left
}

// StatusLines builds the HUD lines for all currently active buffs,
// in priority order.
func (s *BuffSet) StatusLines(nowMs int64) []string {
	var lines []string
	for _, def := range buffPriority {
		if !s.Active(def.Type) {
			continue
		}
		secs := float64(s.Remaining(def.Type, nowMs)) / 1000.0
		lines = append(lines, fmt.Sprintf("%s %.1fs", def.Type.Label(), secs))
	}
	return lines
}

// SpringMultiplier returns the jump-impulse multiplier: the configured
// factor while spring shoes are the dominant state, 1.0 otherwise.
func (s *BuffSet) SpringMultiplier() float64 {
	if s.state == MoveSpring {
		return s.cfg.SpringMultiplier
	}
	return 1.0
}
