package boost

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTotalA = 2933.3
	testTotalB = 150000000.0
)

// relTol is the relative tolerance used for round-trip checks.
const relTol = 1e-9

func assertRelClose(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want, got, math.Abs(want)*relTol, msgAndArgs...)
}

func TestClampBoost(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below range", 0.5, MinBoost},
		{"negative", -3, MinBoost},
		{"lower bound", 1, 1},
		{"inside range", 2.75, 2.75},
		{"upper bound", 5, 5},
		{"above range", 12, MaxBoost},
		{"positive infinity", math.Inf(1), MaxBoost},
		{"NaN", math.NaN(), MinBoost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampBoost(tt.in))
		})
	}
}

func TestComputeBoost_Guards(t *testing.T) {
	tests := []struct {
		name string
		args [4]float64 // userA, userB, totalA, totalB
	}{
		{"zero userA", [4]float64{0, 100, testTotalA, testTotalB}},
		{"zero userB", [4]float64{2, 0, testTotalA, testTotalB}},
		{"zero totalA", [4]float64{2, 100, 0, testTotalB}},
		{"zero totalB", [4]float64{2, 100, testTotalA, 0}},
		{"negative userA", [4]float64{-2, 100, testTotalA, testTotalB}},
		{"negative totalB", [4]float64{2, 100, testTotalA, -1}},
		{"NaN userB", [4]float64{2, math.NaN(), testTotalA, testTotalB}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBoost(tt.args[0], tt.args[1], tt.args[2], tt.args[3])
			assert.Equal(t, 1.0, got)
		})
	}
}

func TestComputeBoost_Formula(t *testing.T) {
	// 1 + 4 * (2933.3/2) * (50000/150000000)
	want := 1 + 4*(testTotalA/2)*(50000/testTotalB)
	got := ComputeBoost(2, 50000, testTotalA, testTotalB)
	assertRelClose(t, want, got)
	assert.Greater(t, got, 1.0)
	assert.Less(t, got, 5.0)
}

func TestComputeBoost_ClampsAtMax(t *testing.T) {
	got := ComputeBoost(0.001, 1e9, testTotalA, testTotalB)
	assert.Equal(t, MaxBoost, got)
}

func TestSolve_Guards(t *testing.T) {
	tests := []struct {
		name string
		args [4]float64 // target, other side, totalA, totalB
	}{
		{"target at 1", [4]float64{1, 100, testTotalA, testTotalB}},
		{"target below 1", [4]float64{0.5, 100, testTotalA, testTotalB}},
		{"zero other side", [4]float64{3, 0, testTotalA, testTotalB}},
		{"negative other side", [4]float64{3, -5, testTotalA, testTotalB}},
		{"zero totalA", [4]float64{3, 100, 0, testTotalB}},
		{"zero totalB", [4]float64{3, 100, testTotalA, 0}},
		{"NaN target", [4]float64{math.NaN(), 100, testTotalA, testTotalB}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.args
			assert.Equal(t, 0.0, SolveA(a[0], a[1], a[2], a[3]), "SolveA")
			assert.Equal(t, 0.0, SolveB(a[0], a[1], a[2], a[3]), "SolveB")
		})
	}
}

func TestSolveB_Scenarios(t *testing.T) {
	t.Run("seed configuration", func(t *testing.T) {
		got := SolveB(5.0, 2.00, testTotalA, testTotalB)
		assertRelClose(t, (5-1)*testTotalB*2/(4*testTotalA), got)
		assert.InDelta(t, 102273.89, got, 0.005)
	})

	t.Run("21 veBTC", func(t *testing.T) {
		got := SolveB(5.0, 21, testTotalA, testTotalB)
		assertRelClose(t, (4*testTotalB*21)/(4*testTotalA), got)
	})
}

func TestSolveA_RoundTrip(t *testing.T) {
	targets := []float64{1.01, 1.5, 2, 3.3, 4.99, 5}
	userBs := []float64{0.5, 1000, 102273.89, 5e7}
	totals := [][2]float64{{testTotalA, testTotalB}, {1, 1}, {10000, 500000000}}

	for _, total := range totals {
		for _, target := range targets {
			for _, userB := range userBs {
				a := SolveA(target, userB, total[0], total[1])
				require.Greater(t, a, 0.0)
				got := ComputeBoost(a, userB, total[0], total[1])
				assertRelClose(t, target, got, "target=%v userB=%v totals=%v", target, userB, total)
			}
		}
	}
}

func TestSolveB_RoundTrip(t *testing.T) {
	targets := []float64{1.01, 1.5, 2, 3.3, 4.99, 5}
	userAs := []float64{0.01, 2, 21, 9999}
	totals := [][2]float64{{testTotalA, testTotalB}, {1, 1}, {10000, 500000000}}

	for _, total := range totals {
		for _, target := range targets {
			for _, userA := range userAs {
				b := SolveB(target, userA, total[0], total[1])
				require.Greater(t, b, 0.0)
				got := ComputeBoost(userA, b, total[0], total[1])
				assertRelClose(t, target, got, "target=%v userA=%v totals=%v", target, userA, total)
			}
		}
	}
}

func TestComputeBoost_Monotonic(t *testing.T) {
	t.Run("non-decreasing in userB", func(t *testing.T) {
		prev := ComputeBoost(2, 1, testTotalA, testTotalB)
		for b := 10.0; b < 1e9; b *= 1.7 {
			cur := ComputeBoost(2, b, testTotalA, testTotalB)
			assert.GreaterOrEqual(t, cur, prev, "userB=%v", b)
			prev = cur
		}
	})

	t.Run("non-increasing in userA", func(t *testing.T) {
		prev := ComputeBoost(0.001, 102273.89, testTotalA, testTotalB)
		for a := 0.01; a < 1e6; a *= 1.7 {
			cur := ComputeBoost(a, 102273.89, testTotalA, testTotalB)
			assert.LessOrEqual(t, cur, prev, "userA=%v", a)
			prev = cur
		}
	})
}

func TestComputeBoost_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		args := [4]float64{}
		for j := range args {
			// Span negative, zero-ish and very large magnitudes.
			args[j] = (rng.Float64()*2 - 0.5) * math.Pow(10, float64(rng.Intn(12)-3))
		}
		got := ComputeBoost(args[0], args[1], args[2], args[3])
		require.GreaterOrEqual(t, got, MinBoost, "args=%v", args)
		require.LessOrEqual(t, got, MaxBoost, "args=%v", args)
	}
}
