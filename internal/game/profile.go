package game

import (
	"fmt"

	"github.com/AhmetShbz/wordrush/internal/catalog"
)

// Profile is the difficulty configuration for one tier. Loaded once at
// session start and read-only for the session's lifetime.
type Profile struct {
	TimeLimitSecs   int     // starting countdown
	StartingLives   int
	BasePoints      int
	ComboMultiplier float64
	AnswerBonusSecs int     // seconds returned to the clock per correct answer
	PowerUpDropRate float64 // chance a correct answer drops bonus coins
	DropReward      int     // coins credited on a drop
}

// DefaultProfiles returns the built-in difficulty profiles.
func DefaultProfiles() map[catalog.Tier]Profile {
	return map[catalog.Tier]Profile{
		catalog.TierEasy: {
			TimeLimitSecs:   90,
			StartingLives:   5,
			BasePoints:      100,
			ComboMultiplier: 1.0,
			AnswerBonusSecs: 3,
			PowerUpDropRate: 0.10,
			DropReward:      50,
		},
		catalog.TierMedium: {
			TimeLimitSecs:   75,
			StartingLives:   4,
			BasePoints:      200,
			ComboMultiplier: 1.2,
			AnswerBonusSecs: 2,
			PowerUpDropRate: 0.15,
			DropReward:      75,
		},
		catalog.TierHard: {
			TimeLimitSecs:   60,
			StartingLives:   3,
			BasePoints:      350,
			ComboMultiplier: 1.5,
			AnswerBonusSecs: 2,
			PowerUpDropRate: 0.20,
			DropReward:      100,
		},
	}
}

// ConfigError marks a setup failure: the session must not start, and the
// caller surfaces it as distinct from any in-game loss.
type ConfigError struct {
	Tier   catalog.Tier
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("game: bad configuration for tier %q: %s", e.Tier, e.Reason)
}
