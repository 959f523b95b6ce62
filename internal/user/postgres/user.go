package postgres

import (
	"github.com/frahmantamala/idea-box/internal/user"
	userDatamodel "github.com/frahmantamala/idea-box/internal/core/datamodel/user"
	"gorm.io/gorm"
)

// UserRepository implements the user.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id string) (*user.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&u), nil
}

func (r *UserRepository) GetByEmployeeID(employeeID string) (*user.User, error) {
	var u userDatamodel.User
	err := r.db.Where("employee_id = ?", employeeID).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return user.FromDataModel(&u), nil
}

func (r *UserRepository) List() ([]*user.User, error) {
	var users []*userDatamodel.User
	err := r.db.Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(users), nil
}

func (r *UserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
