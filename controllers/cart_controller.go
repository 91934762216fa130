package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
	"github.com/yunusinal/lezzetlimani-sub001/pkg/money"
	"github.com/yunusinal/lezzetlimani-sub001/pkg/resp"
	"github.com/yunusinal/lezzetlimani-sub001/services"
	"github.com/yunusinal/lezzetlimani-sub001/utils"
)

// CartCatalog is the slice of the catalog the cart flow needs.
type CartCatalog interface {
	Restaurant(id uint) (*entity.Restaurant, error)
	Menu(id uint) (*entity.Menu, error)
}

type CartController struct {
	Carts   *services.CartService
	Catalog CartCatalog
}

func NewCartController(svc *services.CartService, catalog CartCatalog) *CartController {
	return &CartController{Carts: svc, Catalog: catalog}
}

type AddToCartIn struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
	MenuID       uint `json:"menuId" binding:"required"`
	Qty          int  `json:"qty"`
	// Replace confirms clearing a cart owned by another restaurant. Without
	// it a cross-restaurant add answers 409 and changes nothing.
	Replace bool `json:"replace"`
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, subtotal, err := h.Carts.Get(c.Request.Context(), utils.CurrentSession(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": subtotal})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Catalog.Restaurant(req.RestaurantID)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	m, err := h.Catalog.Menu(req.MenuID)
	if err != nil {
		resp.NotFound(c, "menu not found")
		return
	}

	session := utils.CurrentSession(c)
	cart, err := h.Carts.Add(c.Request.Context(), session, rest, m, req.Qty, req.Replace)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartConflict):
			current, _, _ := h.Carts.Get(c.Request.Context(), session)
			extra := gin.H{}
			if current != nil {
				extra["conflictRestaurantId"] = current.RestaurantID
			}
			resp.Conflict(c, err.Error(), extra)
		case errors.Is(err, services.ErrMenuNotInRestaurant):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

// PATCH /cart/items/:lineId
func (h *CartController) UpdateQty(c *gin.Context) {
	// Qty is a pointer so an explicit 0 (= remove) passes binding.
	var body struct {
		Qty *int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Carts.UpdateQty(c.Request.Context(), utils.CurrentSession(c), c.Param("lineId"), *body.Qty)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

// DELETE /cart/items/:lineId
func (h *CartController) RemoveItem(c *gin.Context) {
	cart, err := h.Carts.Remove(c.Request.Context(), utils.CurrentSession(c), c.Param("lineId"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "subtotal": cart.Subtotal()})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Carts.Clear(c.Request.Context(), utils.CurrentSession(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// GET /cart/summary
func (h *CartController) Summary(c *gin.Context) {
	session := utils.CurrentSession(c)
	cart, _, err := h.Carts.Get(c.Request.Context(), session)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if cart.Empty() {
		resp.OK(c, gin.H{"empty": true})
		return
	}

	rest, err := h.Catalog.Restaurant(cart.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	sum := h.Carts.Summarize(cart, rest)
	shortfall := h.Carts.Shortfall(cart, rest)
	resp.OK(c, summaryResponse(sum, shortfall))
}

// POST /checkout — requires login; hands the final tuple to the
// order-submission boundary, nothing is submitted here.
func (h *CartController) Checkout(c *gin.Context) {
	session := utils.CurrentSession(c)
	cart, _, err := h.Carts.Get(c.Request.Context(), session)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if cart.Empty() {
		resp.BadRequest(c, services.ErrCartEmpty.Error())
		return
	}

	rest, err := h.Catalog.Restaurant(cart.RestaurantID)
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}

	sum, err := h.Carts.Checkout(c.Request.Context(), session, rest)
	if err != nil {
		if errors.Is(err, services.ErrMinOrderNotMet) {
			shortfall := h.Carts.Shortfall(cart, rest)
			resp.Unprocessable(c, err.Error(), gin.H{
				"shortfall":        shortfall,
				"shortfallDisplay": money.Format(shortfall),
				"minOrderAmount":   rest.MinOrderAmount,
			})
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summaryResponse(sum, 0))
}

func summaryResponse(sum *entity.CheckoutSummary, shortfall int64) gin.H {
	return gin.H{
		"summary":           sum,
		"subtotalDisplay":   money.Format(sum.Subtotal),
		"deliveryDisplay":   money.Format(sum.DeliveryFee),
		"discountDisplay":   money.Format(sum.DiscountAmount),
		"totalDisplay":      money.Format(sum.Total),
		"meetsMinimumOrder": shortfall == 0,
		"shortfall":         shortfall,
	}
}
