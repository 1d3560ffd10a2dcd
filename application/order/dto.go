package order

import "time"

// PlaceOrderRequest is the placement input. ConstraintID selects the
// configuration record; nil means the default record, -1 skips the
// cutoff and availability checks.
type PlaceOrderRequest struct {
	UserID       int               `json:"user_id" binding:"required"`
	ConstraintID *int              `json:"constraint_id"`
	Items        []LineItemRequest `json:"items"`
}

// LineItemRequest carries one requested line. Exactly one of MealID and
// MenuID must be set; zero means absent.
type LineItemRequest struct {
	Quantity int `json:"quantity"`
	MealID   int `json:"meal_id"`
	MenuID   int `json:"menu_id"`
}

// UpdateOrderRequest replaces an order's line items, re-running the
// placement checks.
type UpdateOrderRequest struct {
	OrderID      string            `json:"order_id" binding:"required"`
	ConstraintID *int              `json:"constraint_id"`
	Items        []LineItemRequest `json:"items"`
}

// DeliverOrderRequest marks an order delivered and debits the wallet.
type DeliverOrderRequest struct {
	OrderID      string `json:"order_id" binding:"required"`
	ConstraintID *int   `json:"constraint_id"`
}

// SearchOrdersRequest filters the order list. Unset bounds default to
// the last twenty years up to now; an unset status defaults to CREATED.
type SearchOrdersRequest struct {
	UserID *int       `json:"user_id"`
	Status *string    `json:"status"`
	Begin  *time.Time `json:"begin"`
	End    *time.Time `json:"end"`
}

// OrderResponse is the serializable order snapshot.
type OrderResponse struct {
	ID        string             `json:"id"`
	UserID    int                `json:"user_id"`
	Status    string             `json:"status"`
	Items     []LineItemResponse `json:"items"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// LineItemResponse is one order line in a response.
type LineItemResponse struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
	MealID   int    `json:"meal_id,omitempty"`
	MenuID   int    `json:"menu_id,omitempty"`
}

// QuotationResponse carries the priced totals as fixed-point strings.
type QuotationResponse struct {
	DutyFree  string `json:"price_duty_free"`
	Inclusive string `json:"price_vat_inclusive"`
	RateVAT   string `json:"rate_vat"`
}
