package api

import "fmt"

// Amounts are stored in USD cents; the UI renders INR. The conversion lives
// only here, never in ledger arithmetic.
const displayRate = 83

func displayAmount(cents int64) string {
	inr := float64(cents) / 100 * displayRate
	return fmt.Sprintf("₹%.2f", inr)
}
