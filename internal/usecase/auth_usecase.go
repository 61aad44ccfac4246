package usecase

import (
	"context"
	"strings"

	"home-services-backend/internal/converter"
	"home-services-backend/internal/delivery/dto"
	"home-services-backend/internal/domain/entity"
	"home-services-backend/internal/domain/repository"
	"home-services-backend/internal/infrastructure/database"
	"home-services-backend/internal/service"
	"home-services-backend/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultActivityLimit = 20

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, who entity.Identity, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, who entity.Identity) (*dto.UserResponse, error)
	GetActivity(ctx context.Context, who entity.Identity) (*dto.AuditLogListResponse, error)
}

type authUsecase struct {
	tx           repository.Transactor
	log          *logrus.Logger
	userRepo     repository.UserRepository
	tokenStore   repository.TokenStore
	auditService service.AuditService
	jwtService   *jwt.JWTService
	hashCost     int
}

func NewAuthUsecase(
	tx repository.Transactor,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	tokenStore repository.TokenStore,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		tx:           tx,
		log:          log,
		userRepo:     userRepo,
		tokenStore:   tokenStore,
		auditService: auditService,
		jwtService:   jwtService,
		hashCost:     bcrypt.DefaultCost,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := entity.RoleCustomer
	if req.UserType != "" {
		role = entity.Role(req.UserType)
	}
	if !role.IsValid() {
		return nil, ErrInvalidUserType
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.hashCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username:    strings.TrimSpace(req.Username),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    string(hashedPassword),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        role,
		PhoneNumber: optionalString(req.PhoneNumber),
		Address:     optionalString(req.Address),
		IsActive:    true,
	}

	err = u.tx.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.userRepo.Create(tx, user); err != nil {
			if database.IsUniqueViolation(err, "username") {
				return ErrUsernameAlreadyExists
			}
			if database.IsUniqueViolation(err, "email") {
				return ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to create user: %+v", err)
			return err
		}

		return u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(),
			map[string]interface{}{"username": user.Username, "user_type": user.Role})
	})
	if err != nil {
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	u.log.Infof("User registered: id=%s, type=%s", user.ID, user.Role)
	return &dto.AuthResponse{User: *converter.UserToResponse(user), Tokens: *tokens}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByLogin(u.tx.DB(ctx), strings.TrimSpace(req.Username))
	if err != nil {
		u.log.Warnf("Failed to find user by login: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, u.tx.DB(ctx), &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to record login of user %s: %+v", user.ID, err)
	}

	return &dto.AuthResponse{User: *converter.UserToResponse(user), Tokens: *tokens}, nil
}

// Logout revokes the current access token and, when given and owned by the caller, the refresh token.
func (u *authUsecase) Logout(ctx context.Context, who entity.Identity, refreshToken string) error {
	if _, err := u.tokenStore.Revoke(ctx, repository.TokenKindAccess, who.UserID, who.TokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshToken != "" {
		claims, err := u.jwtService.ValidateToken(refreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.UserID == who.UserID {
			if _, err := u.tokenStore.Revoke(ctx, repository.TokenKindRefresh, who.UserID, claims.TokenID); err != nil {
				u.log.Warnf("Failed to revoke refresh token: %+v", err)
				return err
			}
		}
	}

	if err := u.auditService.LogCreate(ctx, u.tx.DB(ctx), &who.UserID, entity.AuditActionUserLogout, "user", who.UserID.String(), nil); err != nil {
		u.log.Warnf("Failed to record logout of user %s: %+v", who.UserID, err)
	}

	return nil
}

// RefreshToken rotates a refresh token. The old token id is consumed by a single
// delete, so concurrent refreshes with the same token yield one new pair.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(u.tx.DB(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidToken
	}

	revoked, err := u.tokenStore.Revoke(ctx, repository.TokenKindRefresh, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}
	if !revoked {
		return nil, ErrTokenRevoked
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, who entity.Identity) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.tx.DB(ctx), who.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) GetActivity(ctx context.Context, who entity.Identity) (*dto.AuditLogListResponse, error) {
	logs, err := u.auditService.RecentActivity(ctx, u.tx.DB(ctx), who.UserID, defaultActivityLimit)
	if err != nil {
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}, nil
}

// issueTokens signs a token pair for user and whitelists both token ids.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, repository.TokenKindAccess, user.ID, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.tokenStore.Store(ctx, repository.TokenKindRefresh, user.ID, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
