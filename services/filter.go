package services

import (
	"sort"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
)

type SortKey string

const (
	SortPopular  SortKey = "popular"   // keep the curated input order
	SortRating   SortKey = "rating"    // desc, tie: review count desc
	SortDelivery SortKey = "delivery"  // asc, tie: name asc
	SortMinPrice SortKey = "min_price" // asc by min order amount, tie: name asc
)

// FilterCriteria is rebuilt as a whole on every user adjustment; it is
// never persisted.
type FilterCriteria struct {
	PriceLo         int      `form:"priceLo" json:"priceLo"`
	PriceHi         int      `form:"priceHi" json:"priceHi"`
	MaxDeliveryTime int      `form:"maxDeliveryTime" json:"maxDeliveryTime"` // minutes
	MinRating       float64  `form:"minRating" json:"minRating"`
	Cuisines        []string `form:"cuisine" json:"cuisines"` // empty = no restriction
	SortKey         SortKey  `form:"sort" json:"sort"`
}

// DefaultCriteria matches everything and keeps the input order, so
// applying it reproduces the catalog list exactly.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		PriceLo:         0,
		PriceHi:         4,
		MaxDeliveryTime: 60,
		MinRating:       0,
		SortKey:         SortPopular,
	}
}

// ApplyFilter filters then orders the listing. Pure and deterministic:
// identical inputs give identically ordered output, and the input slice is
// never mutated.
func ApplyFilter(restaurants []entity.Restaurant, cr FilterCriteria) []entity.Restaurant {
	wanted := make(map[string]bool, len(cr.Cuisines))
	for _, c := range cr.Cuisines {
		wanted[c] = true
	}

	out := make([]entity.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r.PriceRange < cr.PriceLo || r.PriceRange > cr.PriceHi {
			continue
		}
		if r.DeliveryTimeMin > cr.MaxDeliveryTime {
			continue
		}
		if r.Rating < cr.MinRating {
			continue
		}
		if len(wanted) > 0 && !hasAnyCuisine(&r, wanted) {
			continue
		}
		out = append(out, r)
	}

	// Stable sorts so equal entries keep their relative input order.
	switch cr.SortKey {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return out[i].ReviewCount > out[j].ReviewCount
		})
	case SortDelivery:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].DeliveryTimeMin != out[j].DeliveryTimeMin {
				return out[i].DeliveryTimeMin < out[j].DeliveryTimeMin
			}
			return out[i].Name < out[j].Name
		})
	case SortMinPrice:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].MinOrderAmount != out[j].MinOrderAmount {
				return out[i].MinOrderAmount < out[j].MinOrderAmount
			}
			return out[i].Name < out[j].Name
		})
	}
	// SortPopular: the catalog order is the pre-ranked recommendation.
	return out
}

func hasAnyCuisine(r *entity.Restaurant, wanted map[string]bool) bool {
	for _, c := range r.Cuisines {
		if wanted[c.Name] {
			return true
		}
	}
	return false
}
