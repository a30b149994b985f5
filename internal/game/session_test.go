package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/AhmetShbz/wordrush/internal/catalog"
	"github.com/AhmetShbz/wordrush/internal/economy"
	"github.com/AhmetShbz/wordrush/internal/effects"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{Items: []catalog.Item{
		{ID: "e1", Prompt: "book", Answer: "kitap", Tier: catalog.TierEasy},
		{ID: "e2", Prompt: "pen", Answer: "kalem", Tier: catalog.TierEasy},
		{ID: "e3", Prompt: "water", Answer: "su", Tier: catalog.TierEasy},
		{ID: "e4", Prompt: "flower", Answer: "çiçek", Tier: catalog.TierEasy},
		{ID: "e5", Prompt: "bread", Answer: "ekmek", Tier: catalog.TierEasy},
	}}
}

// testProfiles keeps the numbers small and the drop roll off so outcomes
// are fully deterministic.
func testProfiles() map[catalog.Tier]Profile {
	return map[catalog.Tier]Profile{
		catalog.TierEasy: {
			TimeLimitSecs:   10,
			StartingLives:   2,
			BasePoints:      200,
			ComboMultiplier: 1.2,
			AnswerBonusSecs: 3,
			PowerUpDropRate: 0,
			DropReward:      50,
		},
	}
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Mode == "" {
		cfg.Mode = ModeScramble
	}
	if cfg.Tier == "" {
		cfg.Tier = catalog.TierEasy
	}
	if cfg.Catalog == nil {
		cfg.Catalog = testCatalog()
	}
	if cfg.Profiles == nil {
		cfg.Profiles = testProfiles()
	}
	if cfg.Rng == nil {
		cfg.Rng = rand.New(rand.NewPCG(7, 11))
	}
	if cfg.SessionID == "" {
		cfg.SessionID = "test-session"
	}
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func answerCurrent(t *testing.T, s *Session) AnswerResult {
	t.Helper()
	item, ok := s.Current()
	if !ok {
		t.Fatal("no current item")
	}
	return s.SubmitAnswer(context.Background(), item.Answer)
}

func TestNewSession_ConfigErrors(t *testing.T) {
	_, err := NewSession(Config{
		Mode:     ModeScramble,
		Tier:     catalog.TierHard, // no items, no profile
		Catalog:  testCatalog(),
		Profiles: testProfiles(),
	})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}

	_, err = NewSession(Config{
		Mode:     ModeScramble,
		Tier:     catalog.TierEasy,
		Catalog:  &catalog.Catalog{},
		Profiles: testProfiles(),
	})
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError for empty pool, got %v", err)
	}
}

func TestSession_StartInitializesState(t *testing.T) {
	s := newTestSession(t, Config{})
	if s.Status() != StatusNotStarted {
		t.Fatalf("status before start = %v", s.Status())
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if s.Status() != StatusActive {
		t.Errorf("status = %v, want active", s.Status())
	}
	if s.Lives() != 2 {
		t.Errorf("lives = %d, want 2", s.Lives())
	}
	if s.Remaining() != 10 {
		t.Errorf("remaining = %d, want 10", s.Remaining())
	}
	if _, ok := s.Current(); !ok {
		t.Error("expected a current item after start")
	}
}

func TestSession_ScoringAndCombo(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	// First correct: combo was 0, plain base points.
	res := answerCurrent(t, s)
	if !res.Correct || res.Points != 200 {
		t.Fatalf("first answer = %+v, want 200 points", res)
	}
	if s.Combo() != 1 {
		t.Errorf("combo = %d, want 1", s.Combo())
	}

	// Second correct: floor(200 * (1 + 1*1.2)) = 440.
	res = answerCurrent(t, s)
	if res.Points != 440 {
		t.Errorf("second answer points = %d, want 440", res.Points)
	}

	// Third correct: floor(200 * (1 + 2*1.2)) = 680.
	res = answerCurrent(t, s)
	if res.Points != 680 {
		t.Errorf("third answer points = %d, want 680", res.Points)
	}
	if s.Score() != 200+440+680 {
		t.Errorf("score = %d, want %d", s.Score(), 200+440+680)
	}
	if s.ComboPeak() != 3 {
		t.Errorf("combo peak = %d, want 3", s.ComboPeak())
	}
}

func TestSession_WrongAnswerResetsComboAndCostsLife(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	answerCurrent(t, s)
	answerCurrent(t, s)
	if s.Combo() != 2 {
		t.Fatalf("combo = %d, want 2", s.Combo())
	}

	res := s.SubmitAnswer(context.Background(), "tamamen yanlis")
	if res.Correct || res.Ignored {
		t.Fatalf("wrong answer result = %+v", res)
	}
	if s.Combo() != 0 {
		t.Errorf("combo = %d after miss, want 0", s.Combo())
	}
	if s.Lives() != 1 {
		t.Errorf("lives = %d, want 1", s.Lives())
	}
	if s.ComboPeak() != 2 {
		t.Errorf("combo peak = %d, want 2 (peak survives the miss)", s.ComboPeak())
	}

	// Next correct answer scores base points again.
	res = answerCurrent(t, s)
	if res.Points != 200 {
		t.Errorf("post-miss points = %d, want 200", res.Points)
	}
}

func TestSession_LostOnLastLife(t *testing.T) {
	profiles := testProfiles()
	p := profiles[catalog.TierEasy]
	p.StartingLives = 1
	profiles[catalog.TierEasy] = p

	s := newTestSession(t, Config{Profiles: profiles})
	s.Start()

	s.SubmitAnswer(context.Background(), "yanlis")
	if s.Status() != StatusLost {
		t.Fatalf("status = %v, want lost", s.Status())
	}

	// Terminal session ignores everything.
	res := answerCurrent(t, s)
	if !res.Ignored {
		t.Error("submission after loss should be ignored")
	}
	s.Tick(context.Background())
	if s.Status() != StatusLost {
		t.Errorf("status changed after terminal: %v", s.Status())
	}

	result := s.Result()
	if result == nil || result.Outcome != StatusLost {
		t.Fatalf("result = %+v, want lost outcome", result)
	}
}

func TestSession_Timeout(t *testing.T) {
	profiles := testProfiles()
	p := profiles[catalog.TierEasy]
	p.TimeLimitSecs = 3
	profiles[catalog.TierEasy] = p

	s := newTestSession(t, Config{Profiles: profiles})
	s.Start()

	ctx := context.Background()
	s.Tick(ctx)
	s.Tick(ctx)
	if s.Status() != StatusActive {
		t.Fatalf("status = %v before final tick", s.Status())
	}
	s.Tick(ctx)
	if s.Status() != StatusTimedOut {
		t.Fatalf("status = %v, want timed-out", s.Status())
	}
	if s.Result().DurationSecs != 3 {
		t.Errorf("duration = %d, want 3", s.Result().DurationSecs)
	}
}

func TestSession_PauseBlocksTicksAndAnswers(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	s.Pause()
	if s.Status() != StatusPaused {
		t.Fatalf("status = %v, want paused", s.Status())
	}

	before := s.Remaining()
	s.Tick(context.Background())
	if s.Remaining() != before {
		t.Error("tick must not advance a paused session")
	}

	res := answerCurrent(t, s)
	if !res.Ignored {
		t.Error("submission while paused should be ignored")
	}

	s.Resume()
	if s.Status() != StatusActive {
		t.Fatalf("status = %v after resume", s.Status())
	}
	s.Tick(context.Background())
	if s.Remaining() != before-1 {
		t.Error("tick should advance after resume")
	}
}

func TestSession_BlankInputIgnored(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	for _, input := range []string{"", "   ", "\t"} {
		res := s.SubmitAnswer(context.Background(), input)
		if !res.Ignored {
			t.Errorf("input %q should be ignored", input)
		}
	}
	if s.Lives() != 2 || s.Combo() != 0 || s.Score() != 0 {
		t.Error("blank input must not change state")
	}
}

func TestSession_TimeBonusCappedAtLimit(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	// Full clock: bonus must not push past the limit.
	answerCurrent(t, s)
	if s.Remaining() != 10 {
		t.Errorf("remaining = %d, want capped at 10", s.Remaining())
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		s.Tick(ctx)
	}
	if s.Remaining() != 5 {
		t.Fatalf("remaining = %d, want 5", s.Remaining())
	}
	answerCurrent(t, s)
	if s.Remaining() != 8 {
		t.Errorf("remaining = %d, want 5+3", s.Remaining())
	}
}

func TestSession_TimeFreezeStopsCountdown(t *testing.T) {
	ledger := economy.NewLedger(1000, nil)
	s := newTestSession(t, Config{Ledger: ledger})
	s.Start()

	freeze := economy.PowerUp{Effect: effects.TimeFreeze, Cost: 300, DurationTicks: 5, Magnitude: 1}
	if err := s.PurchasePowerUp(context.Background(), freeze); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if ledger.Balance() != 700 {
		t.Errorf("balance = %d, want 700", ledger.Balance())
	}

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		s.Tick(ctx)
	}
	if s.Remaining() != 10 {
		t.Errorf("remaining = %d during freeze, want 10", s.Remaining())
	}

	// Freeze expires; countdown resumes.
	s.Tick(ctx)
	if s.Remaining() != 9 {
		t.Errorf("remaining = %d after freeze, want 9", s.Remaining())
	}
}

func TestSession_DoublePointsDoublesScore(t *testing.T) {
	ledger := economy.NewLedger(1000, nil)
	s := newTestSession(t, Config{Ledger: ledger})
	s.Start()

	double := economy.PowerUp{Effect: effects.DoublePoints, Cost: 500, DurationTicks: 5, Magnitude: 2}
	if err := s.PurchasePowerUp(context.Background(), double); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	res := answerCurrent(t, s)
	if res.Points != 400 {
		t.Errorf("points = %d with double points, want 400", res.Points)
	}
}

func TestSession_ExtraLifeAppliesInstantly(t *testing.T) {
	ledger := economy.NewLedger(1000, nil)
	s := newTestSession(t, Config{Ledger: ledger})
	s.Start()

	life := economy.PowerUp{Effect: effects.ExtraLife, Cost: 750, Magnitude: 1}
	if err := s.PurchasePowerUp(context.Background(), life); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if s.Lives() != 3 {
		t.Errorf("lives = %d, want 3", s.Lives())
	}
	if len(s.ActiveEffects()) != 0 {
		t.Error("instant power-up must not register a timed effect")
	}
}

func TestSession_InsufficientFundsAppliesNothing(t *testing.T) {
	ledger := economy.NewLedger(1000, nil)
	s := newTestSession(t, Config{Ledger: ledger})
	s.Start()

	pricey := economy.PowerUp{Effect: effects.DoublePoints, Cost: 1500, DurationTicks: 5, Magnitude: 2}
	err := s.PurchasePowerUp(context.Background(), pricey)
	if !errors.Is(err, economy.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if ledger.Balance() != 1000 {
		t.Errorf("balance = %d, want untouched 1000", ledger.Balance())
	}
	if len(s.ActiveEffects()) != 0 {
		t.Error("failed purchase must not activate the effect")
	}

	res := answerCurrent(t, s)
	if res.Points != 200 {
		t.Errorf("points = %d, want undoubled 200", res.Points)
	}
}

func TestSession_RefreshNotStack(t *testing.T) {
	ledger := economy.NewLedger(1000, nil)
	s := newTestSession(t, Config{Ledger: ledger})
	s.Start()

	freeze := economy.PowerUp{Effect: effects.TimeFreeze, Cost: 100, DurationTicks: 4, Magnitude: 1}
	s.PurchasePowerUp(context.Background(), freeze)
	s.Tick(context.Background())
	s.PurchasePowerUp(context.Background(), freeze)

	active := s.ActiveEffects()
	if len(active) != 1 {
		t.Fatalf("expected one active effect, got %d", len(active))
	}
	if active[0].Remaining != 4 {
		t.Errorf("remaining = %d, want refreshed 4", active[0].Remaining)
	}
}

func TestSession_WinByTargetItems(t *testing.T) {
	s := newTestSession(t, Config{Mode: ModeScramble})
	s.Start()

	// Scramble wins after 10 correct answers; the 5-item pool laps.
	for i := 0; i < 10; i++ {
		if s.Status() != StatusActive {
			t.Fatalf("session ended early at item %d: %v", i, s.Status())
		}
		res := answerCurrent(t, s)
		if !res.Correct {
			t.Fatalf("answer %d not accepted", i)
		}
	}

	if s.Status() != StatusWon {
		t.Fatalf("status = %v, want won", s.Status())
	}
	result := s.Result()
	if result.ItemsCompleted != 10 {
		t.Errorf("items completed = %d, want 10", result.ItemsCompleted)
	}
	if result.ComboPeak != 10 {
		t.Errorf("combo peak = %d, want 10", result.ComboPeak)
	}
}

func TestSession_WinByTargetScore(t *testing.T) {
	profiles := testProfiles()
	p := profiles[catalog.TierEasy]
	p.BasePoints = 6000 // two answers cross duel's 10000 target
	profiles[catalog.TierEasy] = p

	s := newTestSession(t, Config{Mode: ModeDuel, Profiles: profiles})
	s.Start()

	answerCurrent(t, s)
	if s.Status() != StatusActive {
		t.Fatalf("won too early at score %d", s.Score())
	}
	answerCurrent(t, s)
	if s.Status() != StatusWon {
		t.Fatalf("status = %v at score %d, want won", s.Status(), s.Score())
	}
}

func TestSession_ChoiceMode(t *testing.T) {
	s := newTestSession(t, Config{Mode: ModeMatch})
	s.Start()

	item, _ := s.Current()
	choices := s.Choices()
	if len(choices) != 4 {
		t.Fatalf("choices = %d, want 4", len(choices))
	}

	correct := -1
	for i, c := range choices {
		if c == item.Answer {
			if correct != -1 {
				t.Fatal("answer appears twice in choices")
			}
			correct = i
		}
	}
	if correct == -1 {
		t.Fatal("correct answer missing from choices")
	}

	// Out-of-range picks are ignored.
	if res := s.SelectOption(context.Background(), 99); !res.Ignored {
		t.Error("out-of-range option should be ignored")
	}

	res := s.SelectOption(context.Background(), correct)
	if !res.Correct {
		t.Error("picking the answer should be correct")
	}
}

func TestSession_PowerUpDrop(t *testing.T) {
	profiles := testProfiles()
	p := profiles[catalog.TierEasy]
	p.PowerUpDropRate = 1.0 // always drops
	profiles[catalog.TierEasy] = p

	ledger := economy.NewLedger(0, nil)
	s := newTestSession(t, Config{Profiles: profiles, Ledger: ledger})
	s.Start()

	res := answerCurrent(t, s)
	if res.DroppedCoins != 50 {
		t.Errorf("dropped coins = %d, want 50", res.DroppedCoins)
	}
	if ledger.Balance() != 50 {
		t.Errorf("balance = %d, want 50", ledger.Balance())
	}
}

func TestScrambleWord(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	word := "merhaba dünya"
	got := scrambleWord(rng, word)

	wr, gr := []rune(word), []rune(got)
	if len(gr) != len(wr) {
		t.Fatalf("scramble changed length: %q", got)
	}
	for i := range wr {
		if (wr[i] == ' ') != (gr[i] == ' ') {
			t.Fatalf("space moved in %q", got)
		}
	}

	a := []rune(strings.ReplaceAll(word, " ", ""))
	b := []rune(strings.ReplaceAll(got, " ", ""))
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	if string(a) != string(b) {
		t.Errorf("scramble changed letters: %q vs %q", word, got)
	}
}
