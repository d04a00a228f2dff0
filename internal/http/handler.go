package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fulfillment-service/internal/client"
	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/metrics"
	"github.com/guttosm/fulfillment-service/internal/middleware"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// OrdersHandler provides HTTP handlers for the order fulfillment routes.
type OrdersHandler struct {
	plans        service.PlanProvider
	orchestrator *service.Orchestrator
	sessions     service.SessionStore
}

// NewOrdersHandler creates a new OrdersHandler instance.
func NewOrdersHandler(plans service.PlanProvider, orchestrator *service.Orchestrator, sessions service.SessionStore) *OrdersHandler {
	return &OrdersHandler{
		plans:        plans,
		orchestrator: orchestrator,
		sessions:     sessions,
	}
}

// GetParcels handles GET /api/orders/:order_id/parcels requests.
//
// @Summary      Get parcel breakdown for an order
// @Description  Returns the parcel breakdown for the order at the given stock location, along with the default parcel selection. Items are grouped by shipping profile and packed against the profile capacity. If the breakdown cannot be computed, an empty parcel list with a warning is returned and the caller should fall back to legacy single-parcel mode.
// @Tags         Orders
// @Produce      json
// @Param        order_id path string true "Order ID"
// @Param        location_id query string true "Stock location ID"
// @Success      200 {object} dto.SuccessResponse "Parcel breakdown"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing location"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown order"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - backend unavailable"
// @Security     BearerAuth
// @Router       /api/orders/{order_id}/parcels [get]
func (h *OrdersHandler) GetParcels(c *gin.Context) {
	builder := NewResponseBuilder(c)

	orderID := c.Param("order_id")
	locationID := c.Query("location_id")
	if locationID == "" {
		builder.ErrorWithDetail(http.StatusBadRequest, "Invalid request",
			"location_id", "a stock location is required", nil)
		return
	}

	start := time.Now()
	plan, order, err := h.plans.Plan(c.Request.Context(), orderID, locationID)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			builder.Error(http.StatusNotFound, "Order not found", err)
			return
		}
		// The panel degrades to legacy single-parcel mode when no
		// breakdown is available, so backend trouble is not fatal here.
		metrics.RecordParcelPlan(time.Since(start), "error")
		builder.SuccessOK(dto.ParcelPlanResponse{
			Parcels: nil,
			Warning: "Parcel breakdown unavailable, falling back to single-parcel fulfillment",
		})
		return
	}

	selection := service.DefaultSelection(plan, len(order.ShippingMethods))
	builder.SuccessOK(dto.ParcelPlanResponse{
		Parcels:         plan.Parcels,
		DefaultSelected: selection.Numbers(),
		UseParcels:      selection.UseParcels(),
	})
}

// CreateFulfillments handles POST /api/orders/:order_id/fulfillments requests.
//
// @Summary      Create fulfillments for an order
// @Description  Submits fulfillments for the order at a stock location. In multi-parcel mode (use_parcels=true with a non-empty breakdown) one fulfillment is created per selected parcel, sequentially; on failure the run stops and already committed parcels are skipped on retry. Otherwise the legacy single-parcel path creates one fulfillment from per-item quantities against the selected shipping option. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        order_id path string true "Order ID"
// @Param        request body dto.CreateFulfillmentsRequest true "Submission request"
// @Success      201 {object} dto.SuccessResponse "Fulfillments created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - backend rejected a fulfillment"
// @Security     BearerAuth
// @Router       /api/orders/{order_id}/fulfillments [post]
func (h *OrdersHandler) CreateFulfillments(c *gin.Context) {
	builder := NewResponseBuilder(c)

	orderID := c.Param("order_id")

	req, err := BuildRequest[dto.CreateFulfillmentsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.orchestrator.Submit(c.Request.Context(), orderID, req)
	if err != nil {
		h.submissionError(c, builder, result, err)
		return
	}

	builder.SuccessCreated(result)
}

// submissionError maps orchestrator errors onto HTTP responses. Partial
// multi-parcel results are surfaced in the error details so the panel can
// tell the vendor which parcels went through.
func (h *OrdersHandler) submissionError(c *gin.Context, builder *ResponseBuilder, result *dto.FulfillmentResult, err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		builder.ErrorWithDetail(http.StatusBadRequest, "Invalid request",
			validationErr.Field, validationErr.Message, err)
		return
	}

	var quantityErr *service.QuantityError
	if errors.As(err, &quantityErr) {
		builder.ErrorWithDetail(http.StatusBadRequest, "Invalid request",
			"quantities", quantityErr.Error(), err)
		return
	}

	switch {
	case errors.Is(err, service.ErrNoParcelsSelected):
		builder.ErrorWithDetail(http.StatusBadRequest, "Invalid request",
			"parcels", "select at least one parcel to fulfill", err)
		return
	case errors.Is(err, service.ErrShippingOptionRequired):
		builder.ErrorWithDetail(http.StatusBadRequest, "Invalid request",
			"shipping_option_id", "a shipping option is required", err)
		return
	case errors.Is(err, service.ErrUnknownShippingOption):
		builder.ErrorWithDetail(http.StatusBadRequest, "Invalid request",
			"shipping_option_id", "the selected shipping option does not exist", err)
		return
	case errors.Is(err, service.ErrNoItems):
		builder.ErrorWithDetail(http.StatusBadRequest, "Invalid request",
			"quantities", "no items to fulfill for the selected shipping option", err)
		return
	}

	status := http.StatusBadGateway
	message := "The marketplace backend rejected the fulfillment"

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		// Surface the backend's own message so the vendor sees the real
		// reason for the rejection.
		if apiErr.Message != "" {
			message = apiErr.Message
		}
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = http.StatusBadRequest
		}
	}

	requestID := middleware.GetRequestID(c)
	resp := dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID)

	var parcelErr *service.ParcelError
	if errors.As(err, &parcelErr) {
		resp = resp.WithDetail("failed_parcel", strconv.Itoa(parcelErr.ParcelNumber))
	}
	if result != nil {
		resp = resp.WithDetail("committed_parcels", strconv.Itoa(len(result.CommittedParcels)))
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}

// GetFulfillmentSession handles GET /api/orders/:order_id/fulfillment-session requests.
//
// @Summary      Inspect the active fulfillment session
// @Description  Returns the commit-tracking state of the active submission session for the order at a location, if any. Useful after a partial failure to see which parcels are already committed.
// @Tags         Orders
// @Produce      json
// @Param        order_id path string true "Order ID"
// @Param        location_id query string true "Stock location ID"
// @Success      200 {object} dto.SuccessResponse "Session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing location"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders/{order_id}/fulfillment-session [get]
func (h *OrdersHandler) GetFulfillmentSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	orderID := c.Param("order_id")
	locationID := c.Query("location_id")
	if locationID == "" {
		builder.ErrorWithDetail(http.StatusBadRequest, "Invalid request",
			"location_id", "a stock location is required", nil)
		return
	}

	session, err := h.sessions.Find(c.Request.Context(), orderID, locationID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to load fulfillment session", err)
		return
	}

	if session == nil {
		builder.SuccessOK(dto.FulfillmentSessionResponse{Active: false})
		return
	}

	builder.SuccessOK(dto.FulfillmentSessionResponse{
		SessionID: session.SessionID,
		Active:    true,
		Parcels:   session.Parcels,
		Attempts:  session.Attempts,
	})
}
