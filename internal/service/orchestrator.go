package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/fulfillment-service/internal/client"
	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/logger"
	"github.com/guttosm/fulfillment-service/internal/metrics"
)

var (
	// ErrNoParcelsSelected is returned when multi-parcel mode is engaged
	// but the selection matches no parcels.
	ErrNoParcelsSelected = errors.New("no parcels selected for fulfillment")
	// ErrShippingOptionRequired is returned when the legacy path is used
	// without a shipping option.
	ErrShippingOptionRequired = errors.New("a shipping option is required")
	// ErrUnknownShippingOption is returned when the selected shipping
	// option does not exist.
	ErrUnknownShippingOption = errors.New("unknown shipping option")
	// ErrNoItems is returned when the legacy item filter leaves nothing
	// to fulfill.
	ErrNoItems = errors.New("no items to fulfill")
)

// QuantityError reports a legacy quantity above the item's fulfillable or
// available limit.
type QuantityError struct {
	ItemID string
	Limit  int
}

// Error implements the error interface.
func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity for item %s exceeds the fulfillable limit of %d", e.ItemID, e.Limit)
}

// ParcelError wraps a backend failure for one parcel's fulfillment request.
type ParcelError struct {
	ParcelNumber int
	Err          error
}

// Error implements the error interface.
func (e *ParcelError) Error() string {
	return fmt.Sprintf("parcel %d: %s", e.ParcelNumber, e.Err.Error())
}

// Unwrap returns the underlying backend error.
func (e *ParcelError) Unwrap() error {
	return e.Err
}

// SubmissionMode is the resolved mode of one submission. It is chosen once
// from the request and the fetched plan, not re-derived downstream.
type SubmissionMode interface {
	mode() string
}

// MultiParcelMode submits one fulfillment per selected parcel.
type MultiParcelMode struct {
	Parcels   []model.Parcel
	Selection *ParcelSelection
}

func (MultiParcelMode) mode() string { return "multi_parcel" }

// LegacySingleMode submits one fulfillment from per-item quantities.
type LegacySingleMode struct {
	ShippingOptionID string
	Quantities       map[string]int
}

func (LegacySingleMode) mode() string { return "legacy_single" }

// Orchestrator runs fulfillment submissions against the backend.
//
// Multi-parcel submissions are strictly sequential and stop on the first
// error; parcels committed before the failure stay committed server-side
// and are recorded in the fulfillment session so a retry skips them.
type Orchestrator struct {
	api      client.VendorAPI
	plans    PlanProvider
	sessions SessionStore
	audit    LoggingService
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithSessionStore sets the commit-tracking store.
func WithSessionStore(store SessionStore) OrchestratorOption {
	return func(o *Orchestrator) {
		o.sessions = store
	}
}

// WithAuditLog enables audit logging of submissions.
func WithAuditLog(audit LoggingService) OrchestratorOption {
	return func(o *Orchestrator) {
		o.audit = audit
	}
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(api client.VendorAPI, plans PlanProvider, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		api:      api,
		plans:    plans,
		sessions: NewMemorySessionStore(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ResolveMode chooses the submission mode from the request and the plan.
func ResolveMode(req *dto.CreateFulfillmentsRequest, plan model.ParcelPlan) SubmissionMode {
	if req.UseParcels && !plan.Empty() {
		return MultiParcelMode{
			Parcels:   plan.Parcels,
			Selection: SelectionFromNumbers(req.Parcels, true),
		}
	}
	return LegacySingleMode{
		ShippingOptionID: req.ShippingOptionID,
		Quantities:       req.Quantities,
	}
}

// Submit validates the request, resolves the submission mode, and issues
// the fulfillment-creation requests.
func (o *Orchestrator) Submit(ctx context.Context, orderID string, req *dto.CreateFulfillmentsRequest) (*dto.FulfillmentResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bundle, err := o.plans.Bundle(ctx, orderID, req.LocationID)
	if err != nil {
		metrics.RecordSubmission("unresolved", "fetch_error")
		return nil, err
	}

	mode := ResolveMode(req, bundle.Plan)
	switch m := mode.(type) {
	case MultiParcelMode:
		result, err := o.submitParcels(ctx, orderID, req.LocationID, m, bundle)
		o.record(ctx, orderID, req.LocationID, m.mode(), result, err)
		return result, err
	case LegacySingleMode:
		result, err := o.submitLegacy(ctx, orderID, req.LocationID, m, bundle)
		o.record(ctx, orderID, req.LocationID, m.mode(), result, err)
		return result, err
	default:
		return nil, fmt.Errorf("unsupported submission mode %q", mode.mode())
	}
}

// submitParcels issues one fulfillment request per selected parcel,
// sequentially, stopping at the first failure.
func (o *Orchestrator) submitParcels(ctx context.Context, orderID, locationID string, m MultiParcelMode, bundle *PlanContext) (*dto.FulfillmentResult, error) {
	if m.Selection.Empty() {
		return nil, ErrNoParcelsSelected
	}

	selected := m.Selection.Filter(model.ParcelPlan{Parcels: m.Parcels})
	if len(selected) == 0 {
		// Every selected number was stale.
		return nil, ErrNoParcelsSelected
	}

	session := o.openSession(ctx, orderID, locationID, selected)

	result := &dto.FulfillmentResult{Created: []model.Fulfillment{}}
	for _, parcel := range selected {
		if session.IsCommitted(parcel.ParcelNumber) {
			result.SkippedParcels = append(result.SkippedParcels, parcel.ParcelNumber)
			result.CommittedParcels = append(result.CommittedParcels, parcel.ParcelNumber)
			continue
		}

		payload := parcelPayload(locationID, parcel)
		fulfillment, err := o.api.CreateFulfillment(ctx, orderID, payload)
		if err != nil {
			metrics.RecordFulfillmentRequest("error")
			o.markParcel(ctx, session, parcel.ParcelNumber, model.ParcelFailed)
			logger.Logger().Error().
				Err(err).
				Str("order_id", orderID).
				Int("parcel_number", parcel.ParcelNumber).
				Int("committed", len(result.CommittedParcels)).
				Msg("Fulfillment request failed, aborting remaining parcels")
			return result, &ParcelError{ParcelNumber: parcel.ParcelNumber, Err: err}
		}

		metrics.RecordFulfillmentRequest("success")
		o.markParcel(ctx, session, parcel.ParcelNumber, model.ParcelCommitted)
		result.Created = append(result.Created, *fulfillment)
		result.CommittedParcels = append(result.CommittedParcels, parcel.ParcelNumber)
	}

	o.closeSession(ctx, session)
	o.plans.InvalidatePlan(orderID, locationID)

	switch n := len(result.Created); {
	case n == 0 && len(result.SkippedParcels) > 0:
		result.Message = "All selected parcels were already fulfilled"
	case n == 1 && len(result.SkippedParcels) == 0:
		result.Message = "Fulfillment created"
	default:
		result.Message = fmt.Sprintf("Created %d fulfillments", n)
	}
	return result, nil
}

// submitLegacy issues a single fulfillment from per-item quantities,
// silently excluding items on a different shipping profile than the
// selected option's.
func (o *Orchestrator) submitLegacy(ctx context.Context, orderID, locationID string, m LegacySingleMode, bundle *PlanContext) (*dto.FulfillmentResult, error) {
	if m.ShippingOptionID == "" {
		return nil, ErrShippingOptionRequired
	}
	option, ok := bundle.Options[m.ShippingOptionID]
	if !ok {
		return nil, ErrUnknownShippingOption
	}

	items, err := o.legacyItems(m.Quantities, option, bundle)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	payload := model.FulfillmentPayload{
		LocationID:       locationID,
		RequiresShipping: true,
		Items:            items,
	}
	fulfillment, err := o.api.CreateFulfillment(ctx, orderID, payload)
	if err != nil {
		metrics.RecordFulfillmentRequest("error")
		return nil, err
	}
	metrics.RecordFulfillmentRequest("success")

	o.plans.InvalidatePlan(orderID, locationID)
	return &dto.FulfillmentResult{
		Created: []model.Fulfillment{*fulfillment},
		Message: "Fulfillment created",
	}, nil
}

// legacyItems filters and validates the legacy quantity map.
func (o *Orchestrator) legacyItems(quantities map[string]int, option model.ShippingOption, bundle *PlanContext) ([]model.FulfillmentItem, error) {
	items := make([]model.FulfillmentItem, 0, len(quantities))
	for _, item := range bundle.Order.Items {
		qty := quantities[item.ID]
		if qty <= 0 {
			continue
		}
		// Items on another profile are excluded, not erred; they belong
		// to a separate submission against their own option.
		if item.ShippingProfileID != option.ShippingProfile.ID {
			continue
		}

		limit := item.FulfillableQuantity()
		if level, ok := bundle.Levels[item.ID]; ok && level.Available < limit {
			limit = level.Available
		}
		if qty > limit {
			return nil, &QuantityError{ItemID: item.ID, Limit: limit}
		}

		items = append(items, model.FulfillmentItem{ID: item.ID, Quantity: qty})
	}
	return items, nil
}

// parcelPayload maps a parcel to its fulfillment-creation payload.
// No shipping option is sent; the backend infers shipping details from
// the parcel's pre-established shipping method.
func parcelPayload(locationID string, parcel model.Parcel) model.FulfillmentPayload {
	items := make([]model.FulfillmentItem, 0, len(parcel.Items))
	for _, item := range parcel.Items {
		items = append(items, model.FulfillmentItem{ID: item.ItemID, Quantity: item.Quantity})
	}
	return model.FulfillmentPayload{
		LocationID:       locationID,
		RequiresShipping: true,
		Items:            items,
	}
}

// openSession loads or creates the commit-tracking session. Session store
// failures degrade to a transient in-memory session so a backend-healthy
// submission is not blocked by the tracking store.
func (o *Orchestrator) openSession(ctx context.Context, orderID, locationID string, selected []model.Parcel) *model.FulfillmentSession {
	numbers := make([]int, 0, len(selected))
	for _, p := range selected {
		numbers = append(numbers, p.ParcelNumber)
	}

	session, err := o.sessions.GetOrCreate(ctx, orderID, locationID, numbers)
	if err != nil || session == nil {
		if err != nil {
			logger.Logger().Warn().
				Err(err).
				Str("order_id", orderID).
				Msg("Session store unavailable, commit tracking disabled for this attempt")
		}
		parcels := make(map[string]model.ParcelStatus, len(numbers))
		for _, n := range numbers {
			parcels[model.ParcelKey(n)] = model.ParcelPending
		}
		return &model.FulfillmentSession{
			OrderID:    orderID,
			LocationID: locationID,
			Parcels:    parcels,
			Attempts:   1,
		}
	}
	return session
}

// markParcel persists a parcel status, logging instead of failing the
// submission when the store is unavailable.
func (o *Orchestrator) markParcel(ctx context.Context, session *model.FulfillmentSession, parcelNumber int, status model.ParcelStatus) {
	if err := o.sessions.MarkParcel(ctx, session, parcelNumber, status); err != nil {
		logger.Logger().Warn().
			Err(err).
			Int("parcel_number", parcelNumber).
			Str("status", string(status)).
			Msg("Failed to persist parcel status")
	}
}

// closeSession completes the session after a fully committed run.
func (o *Orchestrator) closeSession(ctx context.Context, session *model.FulfillmentSession) {
	if session.SessionID == "" {
		return
	}
	if err := o.sessions.Complete(ctx, session); err != nil {
		logger.Logger().Warn().
			Err(err).
			Str("session_id", session.SessionID).
			Msg("Failed to complete fulfillment session")
	}
}

// record emits metrics and an audit entry for a submission run.
func (o *Orchestrator) record(ctx context.Context, orderID, locationID, mode string, result *dto.FulfillmentResult, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.RecordSubmission(mode, status)

	if o.audit == nil {
		return
	}
	entry := &model.LogEntry{
		Level:      "info",
		Message:    "Fulfillment submission",
		OrderID:    orderID,
		LocationID: locationID,
		ActionType: "create_fulfillments",
	}
	entry.WithField("mode", mode)
	entry.WithField("status", status)
	if result != nil {
		entry.WithField("created", len(result.Created))
		entry.WithField("skipped_parcels", result.SkippedParcels)
	}
	if err != nil {
		entry.Level = "error"
		entry.Error = err.Error()
	}
	if logErr := o.audit.CreateLog(ctx, entry); logErr != nil {
		logger.Logger().Debug().Err(logErr).Msg("Audit log write failed")
	}
}
