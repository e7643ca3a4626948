package dto

import (
	"github.com/google/uuid"

	"portal/infras/jwt"
	customerModel "portal/internal/domains/customer/model"
	customerDto "portal/internal/domains/customer/model/dto"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Phone    string `json:"phone"    validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,max=100"`
}

func (r *RegisterRequest) ToCustomerModel(hashedPassword string) customerModel.Customer {
	id := uuid.NewString()

	return customerModel.Customer{
		ID:       id,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: hashedPassword,
		Name:     r.Name,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string                       `json:"access_token"`
	RefreshToken string                       `json:"refresh_token"`
	ExpiresIn    int64                        `json:"expires_in"`
	Customer     customerDto.CustomerResponse `json:"customer"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
