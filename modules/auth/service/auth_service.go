package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mentorhub/core/cache"
	"mentorhub/core/config"
	"mentorhub/core/constants"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/utils"
	"mentorhub/modules/auth/dto"
	"mentorhub/modules/auth/entity"
	"mentorhub/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	oauthStateKey     = "auth:oauth_state:"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, accessToken string) *errors.AppError
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, *errors.AppError)
	GoogleLoginURL(ctx context.Context) (*dto.GoogleLoginURLResponse, *errors.AppError)
	GoogleCallback(ctx context.Context, req *dto.GoogleCallbackRequest) (*dto.TokenResponse, *errors.AppError)
}

type AuthService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.UserRepositoryInterface, c cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, *errors.AppError) {
	logger.Info("AuthService:Register:Start", "email", req.Email)

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "A valid email address is required", nil)
	}
	if len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Password must be at least 8 characters", nil)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:Register:GetByEmail:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing account", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "An account with this email already exists", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create account", err)
	}

	var company *string
	if req.Company != "" {
		company = &req.Company
	}
	user := &entity.User{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         entity.RoleMentor,
		Company:      company,
		PasswordHash: &hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		logger.Error("AuthService:Register:Create:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create account", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	logger.Info("AuthService:Login:Start", "email", req.Email)

	blocked, err := s.cache.IsLoginBlocked(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify login attempts", err)
	}
	if blocked {
		return nil, errors.NewAppError(errors.ErrForbidden, "Too many failed attempts, try again later", nil)
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("AuthService:Login:GetByEmail:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", err)
	}
	if user == nil || user.PasswordHash == nil || !utils.ComparePassword(*user.PasswordHash, req.Password) {
		if _, err := s.cache.IncrementLoginAttempt(ctx, req.Email); err != nil {
			logger.Error("AuthService:Login:IncrementLoginAttempt:Error", "error", err)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	logger.Info("AuthService:Login:Success", "user_id", user.ID)
	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, *errors.AppError) {
	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		logger.Error("AuthService:Refresh:IsTokenBlacklisted:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify session", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Session has been signed out", nil)
	}

	claims, err := utils.ValidateAndParseToken(refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired refresh token", err)
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Token is not a refresh token", nil)
	}

	user, appErr := s.GetUserByID(ctx, claims.UserID)
	if appErr != nil {
		return nil, appErr
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Account no longer exists", nil)
	}

	// Rotate: the old refresh token dies with the new pair.
	if err := s.cache.AddToTokenBlacklist(ctx, refreshToken, time.Until(claims.ExpiresAt.Time)); err != nil {
		logger.Error("AuthService:Refresh:AddToTokenBlacklist:Error", "error", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Logout(ctx context.Context, accessToken string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(accessToken)
	if err != nil {
		// Token already invalid; nothing to revoke.
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.AddToTokenBlacklist(ctx, accessToken, ttl); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist:Error", "error", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to sign out", err)
	}
	logger.Info("AuthService:Logout:Success", "user_id", claims.UserID)
	return nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Error("AuthService:GetUserByID:Error", "error", err, "user_id", id)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to look up account", err)
	}
	return user, nil
}

func (s *AuthService) googleOAuthConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Server configuration error", nil)
	}
	if cfg.Auth.GoogleClientID == "" {
		return nil, errors.NewAppError(errors.ErrNotFound, "Google sign-in is not configured", nil)
	}
	return &oauth2.Config{
		ClientID:     cfg.Auth.GoogleClientID,
		ClientSecret: cfg.Auth.GoogleSecret,
		RedirectURL:  cfg.Auth.GoogleRedirect,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, nil
}

func (s *AuthService) GoogleLoginURL(ctx context.Context) (*dto.GoogleLoginURLResponse, *errors.AppError) {
	oauthCfg, appErr := s.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	state := utils.GenerateConfirmationToken()
	if err := s.cache.Set(ctx, oauthStateKey+state, "1", 10*time.Minute); err != nil {
		logger.Error("AuthService:GoogleLoginURL:SetState:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to start Google sign-in", err)
	}

	return &dto.GoogleLoginURLResponse{
		URL:   oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline),
		State: state,
	}, nil
}

type googleUserInfo struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

func (s *AuthService) GoogleCallback(ctx context.Context, req *dto.GoogleCallbackRequest) (*dto.TokenResponse, *errors.AppError) {
	logger.Info("AuthService:GoogleCallback:Start")

	stateVal, err := s.cache.Get(ctx, oauthStateKey+req.State)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:GetState:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify sign-in state", err)
	}
	if stateVal == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Sign-in state is invalid or expired", nil)
	}
	if err := s.cache.Del(ctx, oauthStateKey+req.State); err != nil {
		logger.Error("AuthService:GoogleCallback:DelState:Error", "error", err)
	}

	oauthCfg, appErr := s.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	token, err := oauthCfg.Exchange(ctx, req.Code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Google sign-in failed", err)
	}

	info, err := s.fetchGoogleUserInfo(ctx, oauthCfg, token)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:FetchUserInfo:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load Google profile", err)
	}

	user, lookupErr := s.repo.GetByGoogleID(ctx, info.ID)
	if lookupErr != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", lookupErr)
	}
	if user == nil {
		// Link by email when the account predates Google sign-in.
		user, lookupErr = s.repo.GetByEmail(ctx, info.Email)
		if lookupErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up account", lookupErr)
		}
	}
	if user == nil {
		user = &entity.User{
			Email:     strings.ToLower(info.Email),
			FirstName: info.GivenName,
			LastName:  info.FamilyName,
			Role:      entity.RoleMentor,
			GoogleID:  &info.ID,
		}
		if err := s.repo.Create(ctx, user); err != nil {
			logger.Error("AuthService:GoogleCallback:Create:Error", "error", err)
			return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create account", err)
		}
	}

	logger.Info("AuthService:GoogleCallback:Success", "user_id", user.ID)
	return s.issueTokens(user)
}

func (s *AuthService) fetchGoogleUserInfo(ctx context.Context, oauthCfg *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauthCfg.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, body)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*dto.TokenResponse, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Server configuration error", nil)
	}

	access, err := utils.GenerateToken(user.ID, string(user.Role), constants.ScopeTokenAccess,
		time.Duration(cfg.Auth.AccessTTLMin)*time.Minute)
	if err != nil {
		logger.Error("AuthService:issueTokens:Access:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue session token", err)
	}
	refresh, err := utils.GenerateToken(user.ID, string(user.Role), constants.ScopeTokenRefresh,
		time.Duration(cfg.Auth.RefreshTTLHours)*time.Hour)
	if err != nil {
		logger.Error("AuthService:issueTokens:Refresh:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue session token", err)
	}

	company := ""
	if user.Company != nil {
		company = *user.Company
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User: dto.UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			DisplayName: user.DisplayName(),
			Role:        string(user.Role),
			Company:     company,
		},
	}, nil
}
