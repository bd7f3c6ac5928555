package ride_test

import (
	"math"
	"testing"

	"rides/internal/core/domain/model/ride"

	"github.com/stretchr/testify/assert"
)

func TestFare(t *testing.T) {
	t.Run("should match the linear tariff bit for bit", func(t *testing.T) {
		for _, d := range []float64{0, 0.1, 1, 2.5, 10, 13.37, 1e6, -3, -0.5, math.SmallestNonzeroFloat64} {
			want := 6.65 + 2*d
			assert.Equal(t, math.Float64bits(want), math.Float64bits(ride.Fare(d)), "distance %v", d)
		}
	})

	t.Run("should charge 26.65 for distance 10", func(t *testing.T) {
		assert.Equal(t, 26.65, ride.Fare(10)) //nolint:testifylint // exact comparison is the contract
	})

	t.Run("should charge only the boarding fee for distance 0", func(t *testing.T) {
		assert.Equal(t, ride.BoardingFee, ride.Fare(0)) //nolint:testifylint // exact comparison is the contract
	})

	t.Run("should accept negative distances", func(t *testing.T) {
		assert.Less(t, ride.Fare(-10), 0.0)
	})
}
