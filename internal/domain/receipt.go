package domain

import "time"

const ReceiptMessage = "Your order has been placed successfully!"

// Receipt is returned once from checkout and never stored.
type Receipt struct {
	OrderID       string     `json:"orderId"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	Items         []CartItem `json:"items"`
	Total         string     `json:"total"`
	Timestamp     time.Time  `json:"timestamp"`
	Message       string     `json:"message"`
}

// CheckoutEvent is published after a successful checkout.
type CheckoutEvent struct {
	OrderID   string    `json:"order_id"`
	CartID    CartID    `json:"cart_id"`
	Total     string    `json:"total"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}
