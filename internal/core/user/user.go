package user

// Role values stored on the users table.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is the authenticated identity attached to request context by the
// auth middleware. It carries only what mutating operations need for
// attribution and role checks; the password hash never leaves the
// persistence layer.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Gender     string `json:"gender"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
