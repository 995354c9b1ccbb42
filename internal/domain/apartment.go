package domain

// Apartment is a single rentable unit. Availability is flipped off when an
// agreement referencing the unit is created, and back on when that agreement
// is removed or its tenant is removed. An unavailable apartment has at most
// one live agreement referencing it.
type Apartment struct {
	ID          int32  `json:"id"`
	FloorNo     int32  `json:"floor_no"`
	BlockName   string `json:"block_name"`
	ApartmentNo string `json:"apartment_no"`
	Rent        int32  `json:"rent"`
	Available   bool   `json:"available"`
	CreatedOn   string `json:"created_on"`
}
