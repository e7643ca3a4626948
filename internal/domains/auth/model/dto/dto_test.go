package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portal/infras/jwt"
	"portal/internal/domains/auth/model/dto"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRegisterRequest_ToCustomerModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "new@example.com",
		Phone:    "0411111111",
		Password: "plaintext",
		Name:     "New Customer",
	}

	customer := req.ToCustomerModel("hashed-password")

	assert.NotEmpty(t, customer.ID)
	assert.Equal(t, req.Email, customer.Email)
	assert.Equal(t, req.Phone, customer.Phone)
	assert.Equal(t, "hashed-password", customer.Password)
	assert.Equal(t, req.Name, customer.Name)
	assert.True(t, customer.Active)
	assert.Nil(t, customer.ExternalCompanyUUID)
	assert.Equal(t, customer.ID, customer.CreatedBy)
}
