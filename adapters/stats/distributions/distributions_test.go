package distributions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentTQuantile_Symmetry(t *testing.T) {
	d := NewDistributions()

	for _, df := range []float64{1.0, 5.5, 16.78, 166.35, 1000} {
		upper := d.StudentTQuantile(0.975, df)
		lower := d.StudentTQuantile(0.025, df)
		assert.InDelta(t, -lower, upper, 1e-10, "quantiles must be symmetric at df=%v", df)
		assert.Greater(t, upper, 0.0)
	}
}

func TestStudentTQuantile_KnownValues(t *testing.T) {
	d := NewDistributions()

	// 97.5% quantile with df=1 is tan(0.475*pi) = 12.7062...
	assert.InDelta(t, 12.706204736, d.StudentTQuantile(0.975, 1.0), 1e-6)
	// Large df approaches the normal quantile 1.959964...
	assert.InDelta(t, 1.959964, d.StudentTQuantile(0.975, 1e6), 1e-4)
}

func TestStudentTQuantile_InvalidInputs(t *testing.T) {
	d := NewDistributions()

	assert.True(t, math.IsNaN(d.StudentTQuantile(0.5, 0)))
	assert.True(t, math.IsNaN(d.StudentTQuantile(0.5, -3)))
	assert.True(t, math.IsNaN(d.StudentTQuantile(-0.1, 10)))
	assert.True(t, math.IsNaN(d.StudentTQuantile(1.1, 10)))
}

func TestNoncentralTCDF_ZeroNCPMatchesCentral(t *testing.T) {
	d := NewDistributions()

	for _, df := range []float64{2, 10.5, 100} {
		for _, x := range []float64{-3, -0.5, 0, 0.5, 3} {
			assert.InDelta(t, d.StudentTCDF(x, df), d.NoncentralTCDF(x, df, 0), 1e-12,
				"ncp=0 must reduce to the central CDF at x=%v df=%v", x, df)
		}
	}
}

func TestNoncentralTCDF_ReferenceValues(t *testing.T) {
	d := NewDistributions()

	// Pinned against an independent AS 243 evaluation.
	tests := []struct {
		name         string
		x, df, ncp   float64
		want, within float64
	}{
		{"moderate upper", 2.1119147587622873, 16.781021897810216, 1.7320508075688772, 0.628093928941022, 1e-9},
		{"moderate lower", -2.1119147587622873, 16.781021897810216, 1.7320508075688772, 0.0001594724820277449, 1e-10},
		{"large ncp upper tail", 1.9743271172185541, 166.35166222471594, 7.715167498104595, 5.644153383273313e-09, 1e-10},
		{"fallback df one", 12.706204736174659, 1.0, 11.180339887498949, 0.380378365005424, 1e-9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.NoncentralTCDF(tc.x, tc.df, tc.ncp)
			assert.InDelta(t, tc.want, got, tc.within)
		})
	}
}

func TestNoncentralTCDF_Bounds(t *testing.T) {
	d := NewDistributions()

	for _, ncp := range []float64{-5, -1, 0.3, 4, 20} {
		for x := -30.0; x <= 30.0; x += 1.5 {
			v := d.NoncentralTCDF(x, 12.3, ncp)
			require.False(t, math.IsNaN(v), "NaN at x=%v ncp=%v", x, ncp)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNoncentralTCDF_MonotoneInX(t *testing.T) {
	d := NewDistributions()

	prev := -1.0
	for x := -10.0; x <= 10.0; x += 0.25 {
		v := d.NoncentralTCDF(x, 7.0, 2.5)
		assert.GreaterOrEqual(t, v+1e-12, prev, "CDF must be nondecreasing at x=%v", x)
		prev = v
	}
}

func TestNoncentralTCDF_Reflection(t *testing.T) {
	d := NewDistributions()

	// P(T <= -x | ncp) = 1 - P(T <= x | -ncp)
	for _, x := range []float64{0.5, 1.7, 4.2} {
		left := d.NoncentralTCDF(-x, 9.0, 1.3)
		right := 1.0 - d.NoncentralTCDF(x, 9.0, -1.3)
		assert.InDelta(t, right, left, 1e-10)
	}
}

func TestNoncentralTCDF_Extremes(t *testing.T) {
	d := NewDistributions()

	assert.True(t, math.IsNaN(d.NoncentralTCDF(1.0, 0, 1.0)))
	assert.True(t, math.IsNaN(d.NoncentralTCDF(1.0, -2, 1.0)))
	assert.Equal(t, 0.0, d.NoncentralTCDF(math.Inf(-1), 5, 1.0))
	assert.Equal(t, 1.0, d.NoncentralTCDF(math.Inf(1), 5, 1.0))

	// Huge df routes through the normal approximation.
	v := d.NoncentralTCDF(2.0, 5e5, 1.0)
	assert.False(t, math.IsNaN(v))
	assert.InDelta(t, distNormalCDF(1.0), v, 1e-3)
}

// distNormalCDF is a local helper for the approximation check.
func distNormalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}
