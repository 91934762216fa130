package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `json:"description"`
	Picture     string `json:"picture"`

	Rating          float64 `json:"rating"` // 0.0 - 5.0
	ReviewCount     int     `json:"reviewCount"`
	DeliveryTimeMin int     `json:"deliveryTimeMin"` // estimated, minutes
	MinOrderAmount  int64   `json:"minOrderAmount"`  // kuruş
	DeliveryFee     int64   `json:"deliveryFee"`     // kuruş
	PriceRange      int     `json:"priceRange"`      // 1..4, rendered as repeated ₺
	DistanceKM      float64 `json:"distanceKm"`
	IsPromoted      bool    `json:"isPromoted"`
	IsNew           bool    `json:"isNew"`

	Cuisines []Cuisine `gorm:"many2many:restaurant_cuisines;" json:"cuisines"`

	DiscountRuleID *uint         `json:"discountRuleId,omitempty"`
	DiscountRule   *DiscountRule `json:"discountRule,omitempty"`

	Menus []Menu `json:"-"`
}
