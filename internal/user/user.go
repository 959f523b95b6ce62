package user

import (
	"errors"

	userDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/user"
	coreuser "github.com/frahmantamala/idea-box/internal/core/user"
)

// User is the domain view of an employee account. The idea box never
// creates or mutates users; they are provisioned externally.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmployeeID   string `json:"employeeId"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	Gender       string `json:"gender"`
}

func (u *User) IsAdmin() bool {
	return u.Role == coreuser.RoleAdmin
}

// Public strips credentials for outward serialisation.
type Public struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Gender     string `json:"gender"`
}

func (u *User) Public() Public {
	return Public{
		ID:         u.ID,
		Name:       u.Name,
		EmployeeID: u.EmployeeID,
		Email:      u.Email,
		Role:       u.Role,
		Gender:     u.Gender,
	}
}

func (u *User) ToCore() *coreuser.User {
	return &coreuser.User{
		ID:         u.ID,
		Name:       u.Name,
		EmployeeID: u.EmployeeID,
		Email:      u.Email,
		Role:       u.Role,
		Gender:     u.Gender,
	}
}

var ErrNotFound = errors.New("user not found")

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		EmployeeID:   u.EmployeeID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Gender:       u.Gender,
	}
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Name:         u.Name,
		EmployeeID:   u.EmployeeID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		Gender:       u.Gender,
	}
}

func FromDataModelSlice(users []*userDatamodel.User) []*User {
	result := make([]*User, len(users))
	for i, u := range users {
		result[i] = FromDataModel(u)
	}
	return result
}
