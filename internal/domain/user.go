package domain

type UserRole string

const (
	UserRoleUser   UserRole = "user"
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "ADMIN"
)

type User struct {
	ID          int32    `json:"id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	PhotoURL    string   `json:"photoURL"`
	PhotoID     string   `json:"-"` // opaque id assigned by the image store
	Role        UserRole `json:"role"`
	ApartmentID *int32   `json:"apartment_id,omitempty"` // set only while role is member
	CreatedOn   string   `json:"created_on"`
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
