package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"opsdeck/catalog"
	"opsdeck/database/repository"
	"opsdeck/models"
	"opsdeck/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceReconciler is the piece of the invoice service the booking flow
// needs: it folds a confirmed booking into the tenant's active invoice.
type InvoiceReconciler interface {
	ApplyBooking(ctx context.Context, booking models.Booking) (*models.Invoice, error)
}

// SessionService drives the slot-selection state machine for one resource
// view: open a session, lock a slot, confirm it into a booking.
type SessionService interface {
	InitiateSession(ctx context.Context, resourceID, tenantID string) (*models.BookingSessionView, error)
	SelectSlot(ctx context.Context, sessionID string, hour int) (*models.BookingSessionView, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingConfirmation, error)
	CancelSession(ctx context.Context, sessionID string) error
	ResourceSlots(ctx context.Context, resourceID string) ([]models.Slot, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

type DefaultSessionService struct {
	Catalog      *catalog.Catalog
	Sessions     SessionStore
	Bookings     repository.BookingRepository
	Reconciler   InvoiceReconciler
	DemoTenantID string
	Logger       *zap.Logger
}

// InitiateSession opens a fresh session for a resource view. Any previous
// session for another resource is simply abandoned; its lock dies with it.
func (s *DefaultSessionService) InitiateSession(ctx context.Context, resourceID, tenantID string) (*models.BookingSessionView, error) {
	resource := s.Catalog.ResourceByID(resourceID)
	if resource == nil {
		return nil, ErrUnknownResource
	}
	if tenantID == "" {
		tenantID = s.DemoTenantID
	}

	session := &models.BookingSession{
		SessionID:  uuid.New().String(),
		ResourceID: resourceID,
		TenantID:   tenantID,
		CreatedAt:  time.Now(),
	}
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// SelectSlot locks an available hour. Locking a second hour releases the
// first; clicking a booked hour is rejected.
func (s *DefaultSessionService) SelectSlot(ctx context.Context, sessionID string, hour int) (*models.BookingSessionView, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resource := s.Catalog.ResourceByID(session.ResourceID)
	if resource == nil {
		return nil, ErrUnknownResource
	}
	bookings, err := s.Bookings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	slots := BuildSlots(*resource, bookings)
	var target *models.Slot
	for i := range slots {
		if slots[i].Hour == hour {
			target = &slots[i]
			break
		}
	}
	if target == nil || target.Status == models.SlotBooked {
		return nil, ErrSlotUnavailable
	}

	h := hour
	session.LockedHour = &h
	if err := s.Sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

// ConfirmBooking turns the locked slot into a booking record, appends it to
// the booking store and hands it to the reconciliation engine. A missing
// active invoice downgrades to a warning: the booking stands either way.
func (s *DefaultSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingConfirmation, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.LockedHour == nil {
		return nil, ErrNoSlotLocked
	}
	resource := s.Catalog.ResourceByID(session.ResourceID)
	if resource == nil {
		return nil, ErrUnknownResource
	}

	// Re-derive the grid under the current booking set: another session may
	// have booked this hour since it was locked. A stale lock is cleared,
	// not confirmed.
	bookings, err := s.Bookings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	if !hourAvailable(BuildSlots(*resource, bookings), *session.LockedHour) {
		session.LockedHour = nil
		if err := s.Sessions.Set(ctx, session); err != nil {
			s.Logger.Warn("failed to clear stale slot lock", zap.String("sessionID", sessionID), zap.Error(err))
		}
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), *session.LockedHour, 0, 0, 0, now.Location())
	booking := models.Booking{
		ID:         utils.NewID("bk"),
		ResourceID: resource.ID,
		TenantID:   session.TenantID,
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Cost:       resource.HourlyRate,
	}

	if err := s.Bookings.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("record booking: %w", err)
	}

	confirmation := &models.BookingConfirmation{Booking: booking}
	invoice, err := s.Reconciler.ApplyBooking(ctx, booking)
	switch {
	case errors.Is(err, repository.ErrNoActiveInvoice):
		s.Logger.Warn("no active invoice found for tenant",
			zap.String("tenantID", booking.TenantID),
			zap.String("bookingID", booking.ID))
		confirmation.Warning = fmt.Sprintf("booking recorded, but tenant %s has no active invoice", booking.TenantID)
	case err != nil:
		return nil, fmt.Errorf("reconcile booking: %w", err)
	default:
		confirmation.Invoice = invoice
	}

	// Selection state never survives a confirmation.
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to drop booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return confirmation, nil
}

// CancelSession drops the session and any lock it held.
func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// ResourceSlots builds the plain grid for a resource, no lock overlay.
func (s *DefaultSessionService) ResourceSlots(ctx context.Context, resourceID string) ([]models.Slot, error) {
	resource := s.Catalog.ResourceByID(resourceID)
	if resource == nil {
		return nil, ErrUnknownResource
	}
	bookings, err := s.Bookings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return BuildSlots(*resource, bookings), nil
}

func (s *DefaultSessionService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.All(ctx)
}

func (s *DefaultSessionService) view(ctx context.Context, session *models.BookingSession) (*models.BookingSessionView, error) {
	resource := s.Catalog.ResourceByID(session.ResourceID)
	if resource == nil {
		return nil, ErrUnknownResource
	}
	bookings, err := s.Bookings.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	slots := overlayLock(BuildSlots(*resource, bookings), session.LockedHour)
	return &models.BookingSessionView{
		SessionID:  session.SessionID,
		ResourceID: session.ResourceID,
		TenantID:   session.TenantID,
		Slots:      slots,
	}, nil
}
