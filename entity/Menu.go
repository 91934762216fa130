package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name   string `gorm:"size:150;not null" json:"name"`
	Detail string `json:"detail"`
	Price  int64  `json:"price"` // kuruş

	// DiscountedPrice, when set, must be below Price. Catalog data is trusted.
	DiscountedPrice *int64 `json:"discountedPrice,omitempty"`

	IsPopular bool   `json:"isPopular"`
	Picture   string `json:"picture"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}

// EffectivePrice is the price a cart line is created with: the discounted
// price when present, the base price otherwise.
func (m *Menu) EffectivePrice() int64 {
	if m.DiscountedPrice != nil {
		return *m.DiscountedPrice
	}
	return m.Price
}
