package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"

	"plume/internal/application/subscription/dto"
	"plume/internal/shared/constants"
	"plume/internal/shared/logger"
	"plume/internal/shared/utils"
)

const maxWebhookBodyBytes = int64(65536)

type billingService interface {
	ReconcileBillingEvent(ctx context.Context, cmd dto.BillingEventCommand) error
	HandleProviderCancellation(ctx context.Context, providerCustomerID string) error
}

// BillingWebhookHandler receives Stripe webhook events, verifies their
// signatures, and translates them into normalized billing commands.
type BillingWebhookHandler struct {
	service       billingService
	webhookSecret string
	logger        logger.Interface
}

func NewBillingWebhookHandler(service billingService, webhookSecret string, logger logger.Interface) *BillingWebhookHandler {
	return &BillingWebhookHandler{
		service:       service,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// HandleWebhook processes a single Stripe event. Unhandled event types
// are acknowledged without action so Stripe does not retry them.
func (h *BillingWebhookHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		h.logger.Warnw("failed to read webhook body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid payload")
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		body,
		c.GetHeader(constants.HeaderStripeSig),
		h.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		h.logger.Warnw("webhook signature verification failed", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "signature verification failed")
		return
	}

	switch event.Type {
	case "customer.subscription.created", "customer.subscription.updated":
		h.handleSubscriptionEvent(c, event)
	case "customer.subscription.deleted":
		h.handleSubscriptionDeleted(c, event)
	case "invoice.payment_succeeded", "invoice.payment_failed":
		h.handleInvoiceEvent(c, event)
	default:
		h.logger.Debugw("ignoring unhandled webhook event", "type", event.Type)
		utils.SuccessResponse(c, http.StatusOK, "", nil)
	}
}

func (h *BillingWebhookHandler) handleSubscriptionEvent(c *gin.Context, event stripe.Event) {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		h.logger.Warnw("failed to unmarshal subscription payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription payload")
		return
	}

	cmd := dto.BillingEventCommand{
		EventType:              string(event.Type),
		ProviderSubscriptionID: sub.ID,
		ProviderStatus:         string(sub.Status),
		PeriodStart:            time.Unix(sub.CurrentPeriodStart, 0).UTC(),
		PeriodEnd:              time.Unix(sub.CurrentPeriodEnd, 0).UTC(),
		UserID:                 parseUserIDMetadata(sub.Metadata),
	}
	if sub.Customer != nil {
		cmd.ProviderCustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		cmd.PriceID = sub.Items.Data[0].Price.ID
	}

	if err := h.service.ReconcileBillingEvent(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("failed to reconcile subscription event",
			"type", event.Type,
			"customer_id", cmd.ProviderCustomerID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

func (h *BillingWebhookHandler) handleSubscriptionDeleted(c *gin.Context, event stripe.Event) {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		h.logger.Warnw("failed to unmarshal subscription payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid subscription payload")
		return
	}

	if sub.Customer == nil || sub.Customer.ID == "" {
		h.logger.Warnw("subscription deletion event missing customer id")
		utils.ErrorResponse(c, http.StatusBadRequest, "missing customer id")
		return
	}

	if err := h.service.HandleProviderCancellation(c.Request.Context(), sub.Customer.ID); err != nil {
		h.logger.Errorw("failed to handle provider cancellation",
			"customer_id", sub.Customer.ID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

func (h *BillingWebhookHandler) handleInvoiceEvent(c *gin.Context, event stripe.Event) {
	var inv stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
		h.logger.Warnw("failed to unmarshal invoice payload", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid invoice payload")
		return
	}

	cmd := dto.BillingEventCommand{
		EventType:   string(event.Type),
		InvoiceID:   inv.ID,
		Description: inv.Description,
		PeriodStart: time.Unix(inv.PeriodStart, 0).UTC(),
		PeriodEnd:   time.Unix(inv.PeriodEnd, 0).UTC(),
	}
	if inv.Customer != nil {
		cmd.ProviderCustomerID = inv.Customer.ID
	}
	if event.Type == "invoice.payment_succeeded" {
		cmd.Amount = float64(inv.AmountPaid) / 100
	} else {
		cmd.Amount = float64(inv.AmountDue) / 100
	}

	if err := h.service.ReconcileBillingEvent(c.Request.Context(), cmd); err != nil {
		h.logger.Errorw("failed to reconcile invoice event",
			"type", event.Type,
			"invoice_id", inv.ID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", nil)
}

func parseUserIDMetadata(metadata map[string]string) uint {
	raw, ok := metadata["user_id"]
	if !ok {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
