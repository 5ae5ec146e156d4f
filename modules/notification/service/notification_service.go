package service

import (
	"context"
	"time"

	coreentity "mentorhub/core/entity"
	"mentorhub/core/errors"
	"mentorhub/core/logger"
	"mentorhub/core/params"
	"mentorhub/modules/notification/dto"
	"mentorhub/modules/notification/entity"
	"mentorhub/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationServiceInterface interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetMyNotifications(ctx context.Context, userID uuid.UUID, qp params.QueryParams) (*coreentity.Pagination[dto.NotificationResponse], *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError)
}

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, notification *entity.Notification) error {
	now := time.Now()
	notification.CreatedAt = now
	notification.UpdatedAt = now
	return s.repo.Create(ctx, notification)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, qp params.QueryParams) (*coreentity.Pagination[dto.NotificationResponse], *errors.AppError) {
	page, err := s.repo.GetByUserID(ctx, userID, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load notifications", err)
	}

	items := make([]dto.NotificationResponse, 0, len(page.Items))
	for i := range page.Items {
		n := &page.Items[i]
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Data:      n.Data,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	return &coreentity.Pagination[dto.NotificationResponse]{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) *errors.AppError {
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		logger.Error("NotificationService:CountUnread:Error", "error", err, "user_id", userID)
		return 0, errors.NewAppError(errors.ErrGetFailed, "Failed to count notifications", err)
	}
	return count, nil
}
