package entity

import (
	"time"

	"gorm.io/gorm"
)

type Campaign struct {
	gorm.Model
	Title   string     `gorm:"size:150;not null" json:"title"`
	Detail  string     `json:"detail"`
	Picture string     `json:"picture"`
	StartAt *time.Time `json:"startAt,omitempty"`
	EndAt   *time.Time `json:"endAt,omitempty"`

	DiscountRuleID *uint         `json:"discountRuleId,omitempty"`
	DiscountRule   *DiscountRule `json:"discountRule,omitempty"`
}

// ActiveAt reports whether the campaign window covers t. Open-ended
// campaigns have nil bounds.
func (c *Campaign) ActiveAt(t time.Time) bool {
	if c.StartAt != nil && t.Before(*c.StartAt) {
		return false
	}
	if c.EndAt != nil && t.After(*c.EndAt) {
		return false
	}
	return true
}
