package entity

import (
	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage" // Value is 0-100
	DiscountFixed      = "fixed"      // Value is kuruş
)

type DiscountRule struct {
	gorm.Model
	Kind  string `gorm:"size:20;not null" json:"kind"` // percentage | fixed
	Value int64  `json:"value"`

	// MinOrderAmount, when set, is the subtotal below which the rule does
	// not apply at all.
	MinOrderAmount *int64 `json:"minOrderAmount,omitempty"`

	Label string `gorm:"size:100" json:"label"`
}
