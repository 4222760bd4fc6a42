// Package pricing derives the total charge for a hall reservation.
package pricing

import "math"

// GuestSurcharge is the flat per-head fee added on top of the hourly charge.
const GuestSurcharge = 1.50

// Total returns hours*pricePerHour plus the guest surcharge, rounded
// half-up to two decimal places.
func Total(hours, pricePerHour float64, guestCount int) float64 {
	total := hours*pricePerHour + float64(guestCount)*GuestSurcharge
	return math.Round(total*100) / 100
}
