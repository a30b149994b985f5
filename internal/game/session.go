// Package game holds the session state machine shared by the four timed
// mini-games. The machine owns score, lives, timer, and combo; it holds no
// rendering concerns, so it runs headless under test. All calls are expected
// on a single goroutine (the host event loop) — see the concurrency note on
// Session.
package game

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/AhmetShbz/wordrush/internal/achievements"
	"github.com/AhmetShbz/wordrush/internal/answer"
	"github.com/AhmetShbz/wordrush/internal/catalog"
	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/effects"
	"github.com/AhmetShbz/wordrush/internal/scoring"
	"github.com/AhmetShbz/wordrush/internal/wordpool"
)

// Status is the session state machine's state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusActive
	StatusPaused
	StatusWon
	StatusLost
	StatusTimedOut
)

// Terminal reports whether no further gameplay transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusTimedOut
}

// String returns the wire/display name of the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusActive:
		return "active"
	case StatusPaused:
		return "paused"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// Config wires a session's collaborators. Ledger and Evaluator may be nil;
// the session then plays without currency or achievement tracking. Rng may
// be nil for a time-seeded source; tests inject a fixed seed.
type Config struct {
	Mode      Mode
	Tier      catalog.Tier
	Catalog   *catalog.Catalog
	Profiles  map[catalog.Tier]Profile
	Ledger    *economy.Ledger
	Evaluator *achievements.Evaluator
	Rng       *rand.Rand
	SessionID string
}

// AnswerResult reports what one submission did.
type AnswerResult struct {
	Ignored      bool // blank input, no state change
	Correct      bool
	Points       int
	DroppedCoins int
	Completed    []*achievements.Achievement // achievements finished by this event
}

// Result is handed to the persistence layer once the session reaches a
// terminal state.
type Result struct {
	SessionID      string
	Mode           Mode
	Tier           catalog.Tier
	Outcome        Status
	FinalScore     int
	ItemsCompleted int
	ComboPeak      int
	DurationSecs   int
	Completed      []*achievements.Achievement // achievements finished at session end
}

// Session is the mutable aggregate root for one game. It is not safe for
// concurrent use: the fixed-interval clock and all inputs must be delivered
// from one goroutine, with Tick ordering effects before the timer.
type Session struct {
	id      string
	mode    Mode
	tier    catalog.Tier
	profile Profile

	pool      *wordpool.Pool
	fx        *effects.Registry
	ledger    *economy.Ledger
	evaluator *achievements.Evaluator
	rng       *rand.Rand

	status         Status
	score          int
	lives          int
	combo          int
	comboPeak      int
	remaining      int // seconds on the countdown
	elapsedTicks   int // active ticks since start, for the duration stat
	itemsCompleted int

	current   catalog.Item
	hasItem   bool
	choices   []string
	scrambled string

	result *Result
}

// NewSession validates configuration and builds a session in StatusNotStarted.
// An empty item pool or missing profile is a *ConfigError: the session must
// not start, and the caller surfaces a setup failure rather than a loss.
func NewSession(cfg Config) (*Session, error) {
	profiles := cfg.Profiles
	if profiles == nil {
		profiles = DefaultProfiles()
	}
	profile, ok := profiles[cfg.Tier]
	if !ok {
		return nil, &ConfigError{Tier: cfg.Tier, Reason: "no difficulty profile"}
	}
	if cfg.Catalog == nil || len(cfg.Catalog.ByTier(cfg.Tier)) == 0 {
		return nil, &ConfigError{Tier: cfg.Tier, Reason: "empty item pool"}
	}

	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Session{
		id:        cfg.SessionID,
		mode:      cfg.Mode,
		tier:      cfg.Tier,
		profile:   profile,
		pool:      wordpool.New(cfg.Catalog, rng),
		fx:        effects.NewRegistry(),
		ledger:    cfg.Ledger,
		evaluator: cfg.Evaluator,
		rng:       rng,
		status:    StatusNotStarted,
	}, nil
}

// Start resets score, combo, lives, and timer from the profile, draws the
// first item, and moves to StatusActive.
func (s *Session) Start() error {
	if s.status != StatusNotStarted {
		return nil
	}
	s.score = 0
	s.combo = 0
	s.comboPeak = 0
	s.itemsCompleted = 0
	s.elapsedTicks = 0
	s.lives = s.profile.StartingLives
	s.remaining = s.profile.TimeLimitSecs
	s.fx.Clear()

	if err := s.nextItem(); err != nil {
		return err
	}
	s.status = StatusActive
	return nil
}

// Tick advances the session by one clock interval. Effects are decremented
// before the freeze check is read, so an effect expiring now cannot freeze
// the timer it no longer covers. Ticks while paused or terminal are ignored;
// the host stops delivering them, but a straggler in flight is harmless.
func (s *Session) Tick(ctx context.Context) {
	if s.status != StatusActive {
		return
	}

	s.fx.DecrementAll()
	s.elapsedTicks++

	if s.fx.IsActive(effects.TimeFreeze) {
		return
	}

	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.finish(ctx, StatusTimedOut)
	}
}

// SubmitAnswer evaluates typed input against the current item. Blank or
// whitespace-only input is silently ignored — no lives or combo penalty.
func (s *Session) SubmitAnswer(ctx context.Context, text string) AnswerResult {
	if s.status != StatusActive || !s.hasItem {
		return AnswerResult{Ignored: true}
	}
	if strings.TrimSpace(text) == "" {
		return AnswerResult{Ignored: true}
	}

	if answer.Equivalent(text, s.current.Answer) {
		return s.answerCorrect(ctx)
	}
	return s.answerWrong(ctx)
}

// SelectOption evaluates a choice-mode pick by option index.
// Out-of-range indexes are ignored.
func (s *Session) SelectOption(ctx context.Context, idx int) AnswerResult {
	if s.status != StatusActive || !s.hasItem {
		return AnswerResult{Ignored: true}
	}
	if idx < 0 || idx >= len(s.choices) {
		return AnswerResult{Ignored: true}
	}

	if s.choices[idx] == s.current.Answer {
		return s.answerCorrect(ctx)
	}
	return s.answerWrong(ctx)
}

// Pause freezes tick processing without touching game state.
func (s *Session) Pause() {
	if s.status == StatusActive {
		s.status = StatusPaused
	}
}

// Resume unfreezes a paused session. Missed ticks are not replayed.
func (s *Session) Resume() {
	if s.status == StatusPaused {
		s.status = StatusActive
	}
}

// PurchasePowerUp debits the wallet and applies the power-up. On
// ErrInsufficientFunds nothing is applied. Timed power-ups go through the
// effect registry; a re-purchase refreshes the duration rather than
// stacking. Instant ones (extra life) apply immediately.
func (s *Session) PurchasePowerUp(ctx context.Context, p economy.PowerUp) error {
	if s.status != StatusActive && s.status != StatusPaused {
		return nil
	}
	if s.ledger == nil {
		return economy.ErrInsufficientFunds
	}
	if err := s.ledger.Debit(ctx, p.Cost, "power-up: "+p.Effect.DisplayName(), s.id); err != nil {
		return err
	}

	if p.DurationTicks > 0 {
		s.fx.Activate(p.Effect, p.DurationTicks, p.Magnitude)
	} else if p.Effect == effects.ExtraLife {
		s.lives += p.Magnitude
	}
	return nil
}

// answerCorrect scores the answer, advances the combo, tops up the clock,
// rolls the power-up drop, and draws the next item or wins the session.
func (s *Session) answerCorrect(ctx context.Context) AnswerResult {
	points := scoring.ComputePoints(
		s.profile.BasePoints,
		s.combo,
		s.profile.ComboMultiplier,
		s.fx.IsActive(effects.DoublePoints),
	)
	s.score += points
	s.combo++
	if s.combo > s.comboPeak {
		s.comboPeak = s.combo
	}
	s.itemsCompleted++

	s.remaining += s.profile.AnswerBonusSecs
	if s.remaining > s.profile.TimeLimitSecs {
		s.remaining = s.profile.TimeLimitSecs
	}

	res := AnswerResult{Correct: true, Points: points}

	if s.ledger != nil && s.rng.Float64() < s.profile.PowerUpDropRate {
		s.ledger.Credit(ctx, s.profile.DropReward, "power-up drop", s.id)
		res.DroppedCoins = s.profile.DropReward
	}

	if s.evaluator != nil {
		res.Completed = s.evaluator.Observe(ctx, achievements.Observation{
			Score:        s.score,
			ComboPeak:    s.comboPeak,
			WordsLearned: 1,
			SessionID:    s.id,
		})
	}

	if s.completionReached() {
		s.finish(ctx, StatusWon)
		return res
	}

	if err := s.nextItem(); err != nil {
		// Unreachable with a validated catalog (the pool resets per lap).
		// End the run cleanly rather than strand the player without an item.
		s.finish(ctx, StatusWon)
	}
	return res
}

// answerWrong resets the combo and takes a life; at zero lives the session
// is lost on the spot.
func (s *Session) answerWrong(ctx context.Context) AnswerResult {
	s.combo = 0
	if s.lives > 0 {
		s.lives--
	}
	if s.lives == 0 {
		s.finish(ctx, StatusLost)
	}
	return AnswerResult{Correct: false}
}

// completionReached checks the mode's win rule.
func (s *Session) completionReached() bool {
	spec := s.mode.spec()
	if spec.TargetItems > 0 && s.itemsCompleted >= spec.TargetItems {
		return true
	}
	if spec.TargetScore > 0 && s.score >= spec.TargetScore {
		return true
	}
	return false
}

// nextItem draws from the pool and prepares mode-specific presentation
// state (choices, scramble).
func (s *Session) nextItem() error {
	item, err := s.pool.SelectNext(s.tier)
	if err != nil {
		s.hasItem = false
		return err
	}
	s.current = item
	s.hasItem = true

	spec := s.mode.spec()
	if spec.Input == InputChoice {
		s.choices = s.buildChoices(spec.Choices)
	} else {
		s.choices = nil
	}
	if s.mode == ModeScramble {
		s.scrambled = scrambleWord(s.rng, item.Answer)
	} else {
		s.scrambled = ""
	}
	return nil
}

// buildChoices assembles the correct answer plus decoys, shuffled. Decoys
// that normalize equal to the answer are dropped so only one option can win.
func (s *Session) buildChoices(n int) []string {
	decoys := s.pool.Decoys(s.tier, s.current.ID, n*2)
	choices := []string{s.current.Answer}
	for _, d := range decoys {
		if len(choices) == n {
			break
		}
		if answer.Equivalent(d, s.current.Answer) {
			continue
		}
		choices = append(choices, d)
	}
	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

// finish performs the terminal transition exactly once and runs the final
// achievement observation (session played, possibly won, final peaks).
func (s *Session) finish(ctx context.Context, outcome Status) {
	if s.status.Terminal() {
		return
	}
	s.status = outcome

	var completed []*achievements.Achievement
	if s.evaluator != nil {
		wins := 0
		if outcome == StatusWon {
			wins = 1
		}
		completed = s.evaluator.Observe(ctx, achievements.Observation{
			Score:     s.score,
			ComboPeak: s.comboPeak,
			Sessions:  1,
			Wins:      wins,
			SessionID: s.id,
		})
	}

	s.result = &Result{
		SessionID:      s.id,
		Mode:           s.mode,
		Tier:           s.tier,
		Outcome:        outcome,
		FinalScore:     s.score,
		ItemsCompleted: s.itemsCompleted,
		ComboPeak:      s.comboPeak,
		DurationSecs:   s.elapsedTicks,
		Completed:      completed,
	}
}

// scrambleWord shuffles the letters of a word for the unscramble mode,
// retrying a few times so the scramble differs from the original when the
// word allows it. Spaces stay in place so multi-word answers keep their shape.
func scrambleWord(rng *rand.Rand, word string) string {
	runes := []rune(word)
	letterIdx := make([]int, 0, len(runes))
	for i, r := range runes {
		if r != ' ' {
			letterIdx = append(letterIdx, i)
		}
	}

	for attempt := 0; attempt < 5; attempt++ {
		shuffled := make([]rune, len(runes))
		copy(shuffled, runes)
		perm := rng.Perm(len(letterIdx))
		for i, p := range perm {
			shuffled[letterIdx[i]] = runes[letterIdx[p]]
		}
		if string(shuffled) != word {
			return string(shuffled)
		}
	}
	return string(runes)
}
