package ride

const (
	// BoardingFee is charged for every ride regardless of distance.
	BoardingFee = 6.65

	// RatePerDistanceUnit is charged per unit of distance.
	RatePerDistanceUnit = 2.0
)

// Fare returns BoardingFee + RatePerDistanceUnit*distance.
//
// Both terms are evaluated in float64 at run time so the result is
// bit-for-bit what any IEEE-754 client computes for the same formula.
// Negative and zero distances are not rejected.
func Fare(distance float64) float64 {
	return BoardingFee + RatePerDistanceUnit*distance
}
