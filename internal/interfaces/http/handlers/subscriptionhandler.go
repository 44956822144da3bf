package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plume/internal/application/subscription/dto"
	"plume/internal/shared/constants"
	"plume/internal/shared/errors"
	"plume/internal/shared/logger"
	"plume/internal/shared/utils"
)

type SubscriptionHandler struct {
	service subscriptionService
	logger  logger.Interface
}

func NewSubscriptionHandler(service subscriptionService, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		logger:  logger,
	}
}

type changePlanRequest struct {
	PlanType string `json:"plan_type" binding:"required"`
}

// CreateSubscription starts a trial subscription for the authenticated
// user. Fails with a conflict when the user already has one.
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	uid, ok := userID.(uint)
	if !ok {
		h.logger.Errorw("invalid user_id type", "user_id", userID)
		utils.ErrorResponseWithError(c, errors.NewInternalError("Internal error"))
		return
	}

	result, err := h.service.CreateSubscription(c.Request.Context(), uid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

// GetSubscription returns the authenticated user's subscription with
// its billing history.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	uid, ok := userID.(uint)
	if !ok {
		h.logger.Errorw("invalid user_id type", "user_id", userID)
		utils.ErrorResponseWithError(c, errors.NewInternalError("Internal error"))
		return
	}

	result, err := h.service.GetSubscription(c.Request.Context(), uid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetEntitlements returns the effective limits and usage snapshot for
// the authenticated user.
func (h *SubscriptionHandler) GetEntitlements(c *gin.Context) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	uid, ok := userID.(uint)
	if !ok {
		h.logger.Errorw("invalid user_id type", "user_id", userID)
		utils.ErrorResponseWithError(c, errors.NewInternalError("Internal error"))
		return
	}

	result, err := h.service.GetEntitlements(c.Request.Context(), uid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangePlan switches the authenticated user's subscription to the
// requested plan.
func (h *SubscriptionHandler) ChangePlan(c *gin.Context) {
	var req changePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change plan", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body"))
		return
	}

	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	uid, ok := userID.(uint)
	if !ok {
		h.logger.Errorw("invalid user_id type", "user_id", userID)
		utils.ErrorResponseWithError(c, errors.NewInternalError("Internal error"))
		return
	}

	result, err := h.service.ChangePlan(c.Request.Context(), dto.ChangePlanRequest{
		UserID:   uid,
		PlanType: req.PlanType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan changed successfully", result)
}

// ListPlans returns the public plan catalog. No authentication
// required.
func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", h.service.ListPlans())
}
