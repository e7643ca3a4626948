package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"portal/config"
	"portal/infras/jwt"
	"portal/infras/otel"
	"portal/internal/domains/auth/model/dto"
	customerModel "portal/internal/domains/customer/model"
	customerDto "portal/internal/domains/customer/model/dto"
	customerRepo "portal/internal/domains/customer/repository"
	"portal/shared"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	"portal/shared/password"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, customerID string) error
	Me(ctx context.Context, customerID string) (customerDto.CustomerResponse, error)
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(customerRepo customerRepo.Customer, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		customerRepo: customerRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

func fieldFilter(field, value string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    customerModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.customerRepo.Exist(ctx, fieldFilter(customerModel.FieldEmail, req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered") // nolint:wrapcheck
	}

	exists, err = s.customerRepo.Exist(ctx, fieldFilter(customerModel.FieldPhone, req.Phone))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("phone already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.customerRepo.Insert(ctx, req.ToCustomerModel(hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, fieldFilter(customerModel.FieldEmail, req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, customer.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if !customer.Active {
		return res, failure.BadRequestFromString("account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(customer.ID, customer.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Customer.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, customerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName)

	customer, err := s.customerRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, customer.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, customerID)

	if err = s.customerRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) Me(ctx context.Context, customerID string) (res customerDto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	res.FromModel(customer)

	return res, nil
}
