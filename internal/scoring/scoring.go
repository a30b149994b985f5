// Package scoring computes points for a correct answer.
package scoring

import "math"

// ComputePoints applies the combo multiplier to the base value, floors the
// result, and doubles it when a double-points effect is live:
//
//	points = floor(basePoints * (1 + comboCount*comboMultiplier)) * (2 if doubled)
//
// Combo scaling happens before doubling on purpose: double points doubles
// the combo-scaled reward, not just the base. Non-positive combo counts
// degrade to plain basePoints.
func ComputePoints(basePoints, comboCount int, comboMultiplier float64, doublePointsActive bool) int {
	if comboCount < 0 {
		comboCount = 0
	}
	points := int(math.Floor(float64(basePoints) * (1 + float64(comboCount)*comboMultiplier)))
	if doublePointsActive {
		points *= 2
	}
	return points
}
