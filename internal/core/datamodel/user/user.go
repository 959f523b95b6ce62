package user

// User is the persistence model for the users table. Users are owned by
// the identity system; the idea box only reads them.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Name         string `gorm:"column:name;not null"`
	EmployeeID   string `gorm:"column:employee_id;uniqueIndex;not null"`
	Email        string `gorm:"column:email;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	Role         string `gorm:"column:role;default:employee"`
	Gender       string `gorm:"column:gender"`
}

func (User) TableName() string {
	return "users"
}
