package game

import (
	"github.com/AhmetShbz/wordrush/internal/catalog"
	"github.com/AhmetShbz/wordrush/internal/effects"
)

// Read-only views for the presentation layer. The engine never calls into
// the renderer; it only exposes snapshots.

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Mode returns the mini-game being played.
func (s *Session) Mode() Mode { return s.mode }

// Tier returns the difficulty tier.
func (s *Session) Tier() catalog.Tier { return s.tier }

// Status returns the state machine's current state.
func (s *Session) Status() Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Combo returns the count of consecutive correct answers since the last miss.
func (s *Session) Combo() int { return s.combo }

// ComboPeak returns the best combo reached this session.
func (s *Session) ComboPeak() int { return s.comboPeak }

// Remaining returns the seconds left on the countdown.
func (s *Session) Remaining() int { return s.remaining }

// ItemsCompleted returns the number of correctly answered items.
func (s *Session) ItemsCompleted() int { return s.itemsCompleted }

// Current returns the active item, and false between items or before start.
func (s *Session) Current() (catalog.Item, bool) { return s.current, s.hasItem }

// Choices returns the options for choice-input modes, nil otherwise.
func (s *Session) Choices() []string { return s.choices }

// Scrambled returns the shuffled answer letters in unscramble mode.
func (s *Session) Scrambled() string { return s.scrambled }

// ActiveEffects returns the live power-up effects.
func (s *Session) ActiveEffects() []effects.Instance { return s.fx.Active() }

// Profile returns the difficulty profile loaded at session start.
func (s *Session) Profile() Profile { return s.profile }

// Result returns the terminal result, or nil while the session is running.
func (s *Session) Result() *Result { return s.result }
