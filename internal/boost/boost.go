package boost

// Boost bounds.
const (
	MinBoost = 1.0
	MaxBoost = 5.0
)

// curveFactor is the coefficient on the share ratio.
const curveFactor = 4.0

// ClampBoost constrains v to [MinBoost, MaxBoost].
// NaN clamps to MinBoost.
func ClampBoost(v float64) float64 {
	if !(v > MinBoost) {
		return MinBoost
	}
	if v > MaxBoost {
		return MaxBoost
	}
	return v
}

// ComputeBoost returns the boost for userA veBTC and userB veMEZO given the
// system totals. It returns MinBoost if any argument is not positive.
func ComputeBoost(userA, userB, totalA, totalB float64) float64 {
	if !positive(userA, userB, totalA, totalB) {
		return MinBoost
	}
	shareRatio := (totalA / userA) * (userB / totalB)
	return ClampBoost(1 + curveFactor*shareRatio)
}

// SolveA returns the veBTC amount that reaches target with userB veMEZO.
// It returns 0 when target <= 1 or any other argument is not positive.
func SolveA(target, userB, totalA, totalB float64) float64 {
	excess := target - 1
	if !positive(userB, totalA, totalB, excess) {
		return 0
	}
	return curveFactor * totalA * userB / (totalB * excess)
}

// SolveB returns the veMEZO amount that reaches target with userA veBTC.
// It returns 0 when target <= 1 or any other argument is not positive.
func SolveB(target, userA, totalA, totalB float64) float64 {
	excess := target - 1
	if !positive(userA, totalA, totalB, excess) {
		return 0
	}
	return excess * totalB * userA / (curveFactor * totalA)
}

// positive reports whether every value is > 0. NaN is not positive.
func positive(vals ...float64) bool {
	for _, v := range vals {
		if !(v > 0) {
			return false
		}
	}
	return true
}
