package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
	"github.com/yunusinal/lezzetlimani-sub001/repository"
)

var (
	// ErrCartConflict means the add targets a restaurant other than the
	// cart's current owner. The caller must ask the user before replacing.
	ErrCartConflict = errors.New("cart has another restaurant")

	ErrMenuNotInRestaurant = errors.New("menu not in this restaurant")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrMinOrderNotMet      = errors.New("minimum order not met")
)

// Notifier is how stores tell other tabs of the same session to re-read
// their state wholesale. Advisory only.
type Notifier interface {
	Notify(session, kind string)
}

const (
	NotifyCart      = "cart"
	NotifyFavorites = "favorites"
)

// CartService is the authoritative cart store: every mutation loads the
// session blob, applies the change in memory and persists synchronously.
type CartService struct {
	Repo     *repository.CartRepository
	Notifier Notifier // optional
}

func NewCartService(repo *repository.CartRepository, n Notifier) *CartService {
	return &CartService{Repo: repo, Notifier: n}
}

func (s *CartService) Get(ctx context.Context, session string) (*entity.Cart, int64, error) {
	c, err := s.Repo.Load(ctx, session)
	if err != nil {
		return nil, 0, err
	}
	return c, c.Subtotal(), nil
}

// Add appends a line for the menu item, or bumps the quantity of an
// existing line with the same menu and the same effective unit price. An
// add against a foreign restaurant returns ErrCartConflict and leaves the
// cart untouched, unless replace is set, in which case the cart is cleared
// first (the user already confirmed).
func (s *CartService) Add(ctx context.Context, session string, rest *entity.Restaurant, m *entity.Menu, qty int, replace bool) (*entity.Cart, error) {
	if qty <= 0 {
		qty = 1
	}
	if m.RestaurantID != rest.ID {
		return nil, ErrMenuNotInRestaurant
	}

	c, err := s.Repo.Load(ctx, session)
	if err != nil {
		return nil, err
	}
	if !c.Empty() && c.RestaurantID != rest.ID {
		if !replace {
			return nil, ErrCartConflict
		}
		c = &entity.Cart{}
	}
	if c.Empty() {
		c.RestaurantID = rest.ID
	}

	unit := m.EffectivePrice()
	merged := false
	for i := range c.Lines {
		if c.Lines[i].MenuID == m.ID && c.Lines[i].UnitPrice == unit {
			c.Lines[i].Qty += qty
			c.Lines[i].Total = unit * int64(c.Lines[i].Qty)
			merged = true
			break
		}
	}
	if !merged {
		c.Lines = append(c.Lines, entity.CartLine{
			LineID:    uuid.NewString(),
			MenuID:    m.ID,
			Name:      m.Name,
			UnitPrice: unit,
			Qty:       qty,
			Total:     unit * int64(qty),
		})
	}

	if err := s.persist(ctx, session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQty sets a line's quantity; qty <= 0 removes the line. A missing
// line id is a no-op, not an error.
func (s *CartService) UpdateQty(ctx context.Context, session, lineID string, qty int) (*entity.Cart, error) {
	if qty <= 0 {
		return s.Remove(ctx, session, lineID)
	}
	c, err := s.Repo.Load(ctx, session)
	if err != nil {
		return nil, err
	}
	line := c.Line(lineID)
	if line == nil {
		return c, nil
	}
	line.Qty = qty
	line.Total = line.UnitPrice * int64(qty)

	if err := s.persist(ctx, session, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove drops a line. Emptying the cart clears the restaurant ownership
// so the next add succeeds for any restaurant.
func (s *CartService) Remove(ctx context.Context, session, lineID string) (*entity.Cart, error) {
	c, err := s.Repo.Load(ctx, session)
	if err != nil {
		return nil, err
	}
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.LineID != lineID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
	if c.Empty() {
		c.RestaurantID = 0
	}

	if err := s.persist(ctx, session, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) Clear(ctx context.Context, session string) error {
	return s.persist(ctx, session, &entity.Cart{})
}

// Summarize computes the checkout numbers for the cart against its owning
// restaurant. The total is clamped at zero.
func (s *CartService) Summarize(c *entity.Cart, rest *entity.Restaurant) *entity.CheckoutSummary {
	subtotal := c.Subtotal()
	discount := DiscountAmount(rest.DiscountRule, subtotal)
	total := subtotal + rest.DeliveryFee - discount
	if total < 0 {
		total = 0
	}
	return &entity.CheckoutSummary{
		RestaurantID:   rest.ID,
		Lines:          c.Lines,
		Subtotal:       subtotal,
		DeliveryFee:    rest.DeliveryFee,
		DiscountAmount: discount,
		Total:          total,
	}
}

// Shortfall is how much subtotal is still missing before the restaurant's
// minimum order is met; zero when checkout is allowed.
func (s *CartService) Shortfall(c *entity.Cart, rest *entity.Restaurant) int64 {
	if short := rest.MinOrderAmount - c.Subtotal(); short > 0 {
		return short
	}
	return 0
}

// Checkout gates the handoff: it returns the summary tuple only when the
// cart is non-empty, owned by rest and meets the minimum order. The cart
// itself is left as is; submission belongs to the boundary layer.
func (s *CartService) Checkout(ctx context.Context, session string, rest *entity.Restaurant) (*entity.CheckoutSummary, error) {
	c, err := s.Repo.Load(ctx, session)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, ErrCartEmpty
	}
	if c.RestaurantID != rest.ID {
		return nil, ErrCartConflict
	}
	if s.Shortfall(c, rest) > 0 {
		return nil, ErrMinOrderNotMet
	}
	return s.Summarize(c, rest), nil
}

func (s *CartService) persist(ctx context.Context, session string, c *entity.Cart) error {
	if err := s.Repo.Save(ctx, session, c); err != nil {
		return err
	}
	if s.Notifier != nil {
		s.Notifier.Notify(session, NotifyCart)
	}
	return nil
}
