package economy

import (
	"github.com/AhmetShbz/wordrush/internal/effects"
)

// PowerUp is a purchasable item in the shop. DurationTicks is 0 for instant
// power-ups (extra life), which apply once instead of running on the clock.
type PowerUp struct {
	Effect        effects.Type
	Cost          int
	DurationTicks int
	Magnitude     int
}

// DefaultShop returns the purchasable power-ups in display order.
func DefaultShop() []PowerUp {
	return []PowerUp{
		{Effect: effects.TimeFreeze, Cost: 300, DurationTicks: 10, Magnitude: 1},
		{Effect: effects.DoublePoints, Cost: 500, DurationTicks: 15, Magnitude: 2},
		{Effect: effects.ExtraLife, Cost: 750, DurationTicks: 0, Magnitude: 1},
	}
}

// FindPowerUp returns the shop entry for an effect type.
func FindPowerUp(t effects.Type) (PowerUp, bool) {
	for _, p := range DefaultShop() {
		if p.Effect == t {
			return p, true
		}
	}
	return PowerUp{}, false
}
