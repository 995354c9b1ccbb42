package domain

// Coupon is a discount code applied at payment-intent creation time.
// Coupons are immutable after creation; there is no update endpoint.
type Coupon struct {
	ID          int32   `json:"id"`
	Code        string  `json:"code"`
	Discount    int32   `json:"discount"` // percent, 0-100
	Description string  `json:"description"`
	CreatedBy   string  `json:"createdBy"`
	ExpiresOn   *string `json:"expires_on,omitempty"`
	CreatedOn   string  `json:"created_on"`
}
