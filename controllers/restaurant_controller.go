package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
	"github.com/yunusinal/lezzetlimani-sub001/pkg/money"
	"github.com/yunusinal/lezzetlimani-sub001/pkg/resp"
	"github.com/yunusinal/lezzetlimani-sub001/services"
)

type RestaurantController struct {
	Catalog *services.CatalogService
}

func NewRestaurantController(catalog *services.CatalogService) *RestaurantController {
	return &RestaurantController{Catalog: catalog}
}

// ====== Response DTOs ======

type RestaurantResponse struct {
	ID                uint     `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Picture           string   `json:"picture"`
	Rating            float64  `json:"rating"`
	ReviewCount       int      `json:"reviewCount"`
	DeliveryTimeMin   int      `json:"deliveryTimeMin"`
	MinOrderAmount    int64    `json:"minOrderAmount"`
	MinOrderDisplay   string   `json:"minOrderDisplay"`
	DeliveryFee       int64    `json:"deliveryFee"`
	DeliveryDisplay   string   `json:"deliveryDisplay"`
	PriceRange        int      `json:"priceRange"`
	PriceRangeDisplay string   `json:"priceRangeDisplay"`
	DistanceKM        float64  `json:"distanceKm"`
	IsPromoted        bool     `json:"isPromoted"`
	IsNew             bool     `json:"isNew"`
	Cuisines          []string `json:"cuisines"`
	DiscountLabel     string   `json:"discountLabel,omitempty"`
}

type MenuResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Detail          string `json:"detail"`
	Price           int64  `json:"price"`
	DiscountedPrice *int64 `json:"discountedPrice,omitempty"`
	PriceDisplay    string `json:"priceDisplay"`
	IsPopular       bool   `json:"isPopular"`
	Picture         string `json:"picture"`
}

// GET /restaurants
// Query: priceLo, priceHi, maxDeliveryTime, minRating, cuisine (repeated), sort
func (ctl *RestaurantController) List(c *gin.Context) {
	criteria := parseCriteria(c)
	rests, err := ctl.Catalog.ListRestaurants(criteria)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]RestaurantResponse, 0, len(rests))
	for i := range rests {
		items = append(items, mapToRestaurantResponse(&rests[i]))
	}
	resp.OK(c, gin.H{"items": items, "criteria": criteria})
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := ctl.Catalog.Restaurant(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	menus, err := ctl.Catalog.MenusOf(rest.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	items := make([]MenuResponse, 0, len(menus))
	for i := range menus {
		items = append(items, mapToMenuResponse(&menus[i]))
	}
	out := mapToRestaurantResponse(rest)
	resp.OK(c, gin.H{"restaurant": out, "menu": items})
}

// parseCriteria starts from the defaults so an untouched listing keeps the
// curated order; only present query params override.
func parseCriteria(c *gin.Context) services.FilterCriteria {
	cr := services.DefaultCriteria()
	if v, err := strconv.Atoi(c.Query("priceLo")); err == nil {
		cr.PriceLo = v
	}
	if v, err := strconv.Atoi(c.Query("priceHi")); err == nil {
		cr.PriceHi = v
	}
	if v, err := strconv.Atoi(c.Query("maxDeliveryTime")); err == nil {
		cr.MaxDeliveryTime = v
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		cr.MinRating = v
	}
	if names := c.QueryArray("cuisine"); len(names) > 0 {
		cr.Cuisines = names
	}
	if s := c.Query("sort"); s != "" {
		cr.SortKey = services.SortKey(s)
	}
	return cr
}

func mapToRestaurantResponse(r *entity.Restaurant) RestaurantResponse {
	item := RestaurantResponse{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		Picture:           r.Picture,
		Rating:            r.Rating,
		ReviewCount:       r.ReviewCount,
		DeliveryTimeMin:   r.DeliveryTimeMin,
		MinOrderAmount:    r.MinOrderAmount,
		MinOrderDisplay:   money.Format(r.MinOrderAmount),
		DeliveryFee:       r.DeliveryFee,
		DeliveryDisplay:   money.Format(r.DeliveryFee),
		PriceRange:        r.PriceRange,
		PriceRangeDisplay: strings.Repeat("₺", r.PriceRange),
		DistanceKM:        r.DistanceKM,
		IsPromoted:        r.IsPromoted,
		IsNew:             r.IsNew,
	}
	item.Cuisines = make([]string, 0, len(r.Cuisines))
	for _, cu := range r.Cuisines {
		item.Cuisines = append(item.Cuisines, cu.Name)
	}
	if r.DiscountRule != nil {
		item.DiscountLabel = r.DiscountRule.Label
	}
	return item
}

func mapToMenuResponse(m *entity.Menu) MenuResponse {
	return MenuResponse{
		ID:              m.ID,
		Name:            m.Name,
		Detail:          m.Detail,
		Price:           m.Price,
		DiscountedPrice: m.DiscountedPrice,
		PriceDisplay:    money.Format(m.EffectivePrice()),
		IsPopular:       m.IsPopular,
		Picture:         m.Picture,
	}
}
