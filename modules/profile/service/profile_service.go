package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/storage"
	"mentorhub/core/utils"
	authrepo "mentorhub/modules/auth/repository"
	"mentorhub/modules/profile/dto"

	"github.com/google/uuid"
)

const avatarUploadTTL = 15 * time.Minute

var allowedAvatarTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type ProfileServiceInterface interface {
	LookupNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
	Lookup(ctx context.Context, req *dto.LookupRequest) (*dto.LookupResponse, *errors.AppError)
	GetMe(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, *errors.AppError)
	AvatarUpload(ctx context.Context, userID uuid.UUID, req *dto.AvatarUploadRequest) (*dto.AvatarUploadResponse, *errors.AppError)
}

type ProfileService struct {
	users   authrepo.UserRepositoryInterface
	storage storage.Storage
}

func NewProfileService(users authrepo.UserRepositoryInterface, st storage.Storage) *ProfileService {
	return &ProfileService{users: users, storage: st}
}

// LookupNames resolves display names in one query. IDs without a profile
// are simply absent from the result.
func (s *ProfileService) LookupNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].DisplayName()
	}
	return names, nil
}

func (s *ProfileService) Lookup(ctx context.Context, req *dto.LookupRequest) (*dto.LookupResponse, *errors.AppError) {
	names, err := s.LookupNames(ctx, req.IDs)
	if err != nil {
		logger.Error("ProfileService:Lookup:Error", "error", err, "count", len(req.IDs))
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to look up profiles", err)
	}
	out := make(map[string]string, len(names))
	for id, name := range names {
		out[id.String()] = name
	}
	return &dto.LookupResponse{Names: out}, nil
}

func (s *ProfileService) GetMe(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, *errors.AppError) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load profile", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Profile not found", nil)
	}

	resp := &dto.MeResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DisplayName: user.DisplayName(),
		Role:        string(user.Role),
		Company:     user.Company,
	}
	if user.AvatarKey != nil && *user.AvatarKey != "" {
		resp.AvatarURL = s.storage.PublicURL(*user.AvatarKey)
	}
	return resp, nil
}

// AvatarUpload hands out a presigned PUT URL and records the new key. The
// old avatar object, if any, is simply superseded.
func (s *ProfileService) AvatarUpload(ctx context.Context, userID uuid.UUID, req *dto.AvatarUploadRequest) (*dto.AvatarUploadResponse, *errors.AppError) {
	logger.Info("ProfileService:AvatarUpload:Start", "user_id", userID, "content_type", req.ContentType)

	ext, ok := allowedAvatarTypes[strings.ToLower(req.ContentType)]
	if !ok {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Content type must be image/jpeg, image/png or image/webp", nil)
	}

	key := fmt.Sprintf("avatars/%s-%s.%s", userID, utils.GenerateID(), ext)
	uploadURL, err := s.storage.PresignUpload(ctx, key, req.ContentType, avatarUploadTTL)
	if err != nil {
		logger.Error("ProfileService:AvatarUpload:Presign:Error", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to prepare upload", err)
	}

	if err := s.users.UpdateAvatarKey(ctx, userID, key); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update profile", err)
	}

	return &dto.AvatarUploadResponse{
		UploadURL: uploadURL,
		PublicURL: s.storage.PublicURL(key),
		Key:       key,
	}, nil
}
