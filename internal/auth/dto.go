package auth

import "errors"

type LoginDTO struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

func (dto LoginDTO) Validate() error {
	if dto.EmployeeID == "" {
		return errors.New("employeeId is required")
	}
	if dto.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (dto RefreshTokenDTO) Validate() error {
	if dto.RefreshToken == "" {
		return errors.New("refresh_token is required")
	}
	return nil
}
