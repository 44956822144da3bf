package usecases

import (
	"context"
	"fmt"

	"plume/internal/application/notification/dto"
	"plume/internal/domain/notification"
	vo "plume/internal/domain/notification/valueobjects"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
	"plume/internal/shared/utils"
)

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	pagination := utils.ValidatePagination(req.Page, req.Limit)

	filter := notification.ListFilter{UnreadOnly: req.UnreadOnly}
	if req.Type != "" {
		notifType, err := vo.NewNotificationType(req.Type)
		if err != nil {
			return nil, errors.NewValidationError("invalid notification type filter", err.Error())
		}
		filter.Type = &notifType
	}

	notifications, total, err := uc.repo.ListByUserID(ctx, req.UserID, filter, pagination.PageSize, pagination.Offset())
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "user_id", req.UserID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	unreadCount, err := uc.repo.CountUnreadByUserID(ctx, req.UserID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "user_id", req.UserID, "error", err)
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	totalPages := utils.TotalPages(total, pagination.PageSize)

	return &dto.ListResponse{
		Notifications: dto.ToNotificationResponseList(notifications),
		Pagination: dto.PaginationInfo{
			Total:      total,
			Page:       pagination.Page,
			Limit:      pagination.PageSize,
			TotalPages: totalPages,
			HasNext:    pagination.Page < totalPages,
			HasPrev:    pagination.Page > 1,
		},
		UnreadCount: unreadCount,
	}, nil
}
