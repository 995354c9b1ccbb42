package domain

// Payment is an append-only history entry written alongside payment-intent
// creation, before the provider confirms capture. Name, email and rent are
// denormalized snapshots of the agreement at payment time.
type Payment struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AgreementID int32  `json:"agreement_id"`
	Amount      int32  `json:"amount"` // charged amount after discount, whole currency units
	Month       string `json:"month"`  // month name, e.g. "January"
	Year        int32  `json:"year"`
	Coupon      string `json:"coupon"`   // code applied, empty when none
	Discount    int32  `json:"discount"` // percent applied, 0 when none
	CreatedOn   string `json:"created_on"`
}
