package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartID identifies a cart document. The deployment runs a single cart,
// but every operation takes the id explicitly.
type CartID string

const DefaultCartID CartID = "default"

type Cart struct {
	ID        CartID     `json:"_id" bson:"_id"`
	Items     []CartItem `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updated_at"`
}

// CartItem carries a name and price snapshot taken when the product was
// first added; later catalog changes do not affect it.
type CartItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"qty" bson:"qty"`
}

// AddItem merges qty into the line for p, appending a new line when the
// product is not in the cart yet.
func (c *Cart) AddItem(p Product, qty int) {
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += qty
			return
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  qty,
	})
}

// RemoveItem drops the line for productID and reports whether one existed.
// The cart is left untouched when nothing matches.
func (c *Cart) RemoveItem(productID string) bool {
	for i, item := range c.Items {
		if item.ProductID == productID {
			items := make([]CartItem, 0, len(c.Items)-1)
			items = append(items, c.Items[:i]...)
			c.Items = append(items, c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total sums price*qty over items and rounds only the final sum.
func Total(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.Round(2)
}

// FormatTotal renders a total the way every response carries it: "x.xx".
func FormatTotal(items []CartItem) string {
	return Total(items).StringFixed(2)
}
