package constant

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleStaff  UserRole = "staff"
	UserRoleWriter UserRole = "writer"
)

func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleStaff
}
