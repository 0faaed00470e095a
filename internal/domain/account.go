package domain

type Role string

const (
	RoleGuest Role = "Guest"
	RoleStaff Role = "Staff"
)

// Account is the thin collaborator identity orders and reservations refer
// to. Credential handling lives in the account service, not here.
type Account struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Role         Role   `json:"role"`
	PasswordHash []byte `json:"-"`
}
