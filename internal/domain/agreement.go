package domain

type AgreementStatus string

const (
	AgreementStatusPending AgreementStatus = "pending"
	AgreementStatusChecked AgreementStatus = "checked"
)

// Agreement links an applicant to an apartment. An email holds at most one
// live agreement at a time. Unit details and rent are snapshots captured at
// application time, not live apartment values.
type Agreement struct {
	ID          int32           `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	ApartmentID int32           `json:"apartment_id"`
	FloorNo     int32           `json:"floor_no"`
	BlockName   string          `json:"block_name"`
	ApartmentNo string          `json:"apartment_no"`
	Rent        int32           `json:"rent"`
	Status      AgreementStatus `json:"status"`
	CreatedOn   string          `json:"created_on"`
}
