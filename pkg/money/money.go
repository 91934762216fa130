// Package money formats kuruş amounts for display. All arithmetic in the
// system is done on int64 kuruş; formatting happens only at the edge.
package money

import (
	"fmt"
	"strconv"
)

// Format renders kuruş as Turkish lira, e.g. 1234567 -> "₺12.345,67".
func Format(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	lira := amount / 100
	kurus := amount % 100

	s := strconv.FormatInt(lira, 10)
	var grouped []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s₺%s,%02d", sign, grouped, kurus)
}
