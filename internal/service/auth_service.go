package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rescueos-be/internal/dto"
	"rescueos-be/internal/entity"
	"rescueos-be/internal/pkg/apperr"
	"rescueos-be/internal/pkg/logger"
	"rescueos-be/internal/repository/specification"
	"rescueos-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Session(ctx context.Context, userId uuid.UUID) (*dto.SessionResponse, error)
}

type authService struct {
	uowFactory  unitofwork.RepositoryFactory
	authContext IAuthContextService
	jwtSecret   string
	logger      logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	authContext IAuthContextService,
	jwtSecret string,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:  uowFactory,
		authContext: authContext,
		jwtSecret:   jwtSecret,
		logger:      log,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := uow.ProfileRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, apperr.Validation("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := entity.Profile{
		Id:           uuid.New(),
		Email:        email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uow.ProfileRepository().Create(ctx, &profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("auth", "profile created", map[string]interface{}{"user_id": profile.Id.String()})

	return s.issueToken(&profile)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.Validation("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Validation("invalid credentials")
	}

	return s.issueToken(profile)
}

func (s *authService) Session(ctx context.Context, userId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("profile not found")
	}

	res := dto.SessionResponse{
		Profile: &dto.ProfileResponse{
			Id:          profile.Id,
			Email:       profile.Email,
			DisplayName: profile.DisplayName,
			CreatedAt:   profile.CreatedAt,
		},
	}

	authCtx, err := s.authContext.Resolve(ctx, userId)
	if err != nil {
		return nil, err
	}
	if authCtx.HasRescue() {
		r := authCtx.Rescue
		res.Rescue = &dto.RescueResponse{
			Id:                 r.Id,
			Name:               r.Name,
			Slug:               r.Slug,
			ContactEmail:       r.ContactEmail,
			IsPublic:           r.IsPublic,
			Disabled:           r.Disabled,
			PlanTier:           string(r.PlanTier),
			SubscriptionStatus: r.SubscriptionStatus,
			CurrentPeriodEnd:   r.CurrentPeriodEnd,
			VerificationStatus: string(r.VerificationStatus),
			CreatedAt:          r.CreatedAt,
		}
		res.Role = string(authCtx.Role)
	}

	return &res, nil
}

func (s *authService) issueToken(profile *entity.Profile) (*dto.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id": profile.Id.String(),
		"email":   profile.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		Token:       signed,
		UserId:      profile.Id,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
	}, nil
}
