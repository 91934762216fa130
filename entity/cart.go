package entity

// Cart is a per-session value persisted as a single JSON blob, not a
// relational row. All lines belong to the owning restaurant; an empty cart
// has RestaurantID 0 and accepts any restaurant on the next add.
type Cart struct {
	RestaurantID uint       `json:"restaurantId"`
	Lines        []CartLine `json:"lines"`
}

// CartLine snapshots the menu item at add time so later catalog price
// changes do not retroactively alter an open cart.
type CartLine struct {
	LineID    string `json:"lineId"` // stable across quantity edits
	MenuID    uint   `json:"menuId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"` // effective price at add time, kuruş
	Qty       int    `json:"qty"`       // >= 1
	Total     int64  `json:"total"`     // UnitPrice * Qty
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Subtotal is recomputed from the lines on every call.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.Total
	}
	return sum
}

// Line returns the line with the given id, or nil.
func (c *Cart) Line(lineID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].LineID == lineID {
			return &c.Lines[i]
		}
	}
	return nil
}

// CheckoutSummary is the tuple handed to the order-submission boundary once
// the minimum-order gate holds. The core does not submit it.
type CheckoutSummary struct {
	RestaurantID   uint       `json:"restaurantId"`
	Lines          []CartLine `json:"lines"`
	Subtotal       int64      `json:"subtotal"`
	DeliveryFee    int64      `json:"deliveryFee"`
	DiscountAmount int64      `json:"discountAmount"`
	Total          int64      `json:"total"`
}
