package services

import (
	"github.com/yunusinal/lezzetlimani-sub001/entity"
)

// DiscountAmount resolves the effective discount for a subtotal, in kuruş.
// Percentages round half up on integer arithmetic so every platform
// computes the same amount. The result never exceeds the subtotal.
func DiscountAmount(rule *entity.DiscountRule, subtotal int64) int64 {
	if rule == nil || subtotal <= 0 {
		return 0
	}
	if rule.MinOrderAmount != nil && subtotal < *rule.MinOrderAmount {
		return 0
	}

	switch rule.Kind {
	case entity.DiscountPercentage:
		amount := (subtotal*rule.Value + 50) / 100
		if amount > subtotal {
			amount = subtotal
		}
		return amount
	case entity.DiscountFixed:
		if rule.Value > subtotal {
			return subtotal
		}
		if rule.Value < 0 {
			return 0
		}
		return rule.Value
	}
	return 0
}
