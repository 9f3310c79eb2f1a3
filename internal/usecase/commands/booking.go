package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReserveRequest struct {
	RoomID   uuid.UUID
	DateFrom time.Time
	DateTo   time.Time
}

type ReserveResult struct {
	Booking *booking.Booking
}

type BookingCommands interface {
	Reserve(ctx context.Context, userID uuid.UUID, req ReserveRequest) (*ReserveResult, error)
	Delete(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	notifier BookingNotifier
	recorder OutcomeRecorder
	policy   ReservationPolicy
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	services *booking.Services,
	notifier BookingNotifier,
	recorder OutcomeRecorder,
	policy ReservationPolicy,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		services: services,
		notifier: notifier,
		recorder: recorder,
		policy:   policy,
	}
}

func (uc *bookingCommandsImpl) Reserve(ctx context.Context, userID uuid.UUID, req ReserveRequest) (*ReserveResult, error) {
	start := time.Now()
	result, err := uc.reserve(ctx, userID, req)
	outcome := Classify(err)
	uc.recorder.ObserveReservation(outcome, time.Since(start))

	if outcome.IsFailure() {
		slog.Error("reservation failed",
			"room_id", req.RoomID.String(),
			"outcome", outcome.String(),
			"error", err.Error())
	}
	return result, err
}

func (uc *bookingCommandsImpl) reserve(ctx context.Context, userID uuid.UUID, req ReserveRequest) (*ReserveResult, error) {
	period, err := booking.NewDateRange(req.DateFrom, req.DateTo)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	if err = period.ValidateMaxStay(uc.policy.MaxStayDays); err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}

	if uc.policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.policy.Timeout)
		defer cancel()
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// every attempt re-reads under the lock; nothing from a failed attempt survives
		created = nil

		room, derr := tx.Rooms().LockForUpdate(ctx, tx.DB(), req.RoomID)
		if derr != nil {
			return derr
		}

		booked, derr := tx.Bookings().WindowsInRange(ctx, tx.DB(), room.ID, period)
		if derr != nil {
			return derr
		}

		spec := booking.RoomSpec{ID: room.ID, Price: room.Price, Quantity: room.Quantity}
		b, derr := booking.NewBooking(uc.services, spec, userID, period, booked)
		if derr != nil {
			return derr
		}

		created, derr = tx.Bookings().Create(ctx, tx.DB(), b)
		return derr
	})
	if err != nil {
		return nil, translateTxError(err, ErrRoomNotFound)
	}

	uc.notifier.BookingConfirmed(created)
	return &ReserveResult{Booking: created}, nil
}

func (uc *bookingCommandsImpl) Delete(ctx context.Context, userID, bookingID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deleted, derr := tx.Bookings().DeleteByOwner(ctx, tx.DB(), bookingID, userID)
		if derr != nil {
			return derr
		}
		if !deleted {
			return ErrBookingNotFound
		}
		return nil
	})
	if err != nil {
		return translateTxError(err, ErrBookingNotFound)
	}
	return nil
}

// translateTxError maps what can escape a unit of work onto the command
// sentinels, keeping business rejections apart from infrastructure failures.
func translateTxError(err error, notFound error) error {
	switch {
	case errs.Is(err, ErrBookingNotFound):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case errs.Is(err, booking.ErrRoomUnavailable):
		return errs.Mark(err, ErrRoomUnavailable)
	case errs.Is(err, booking.ErrCostOverflow):
		return errs.Mark(err, ErrInvalidRange)
	case errs.Is(err, shared.ErrRetriesExhausted):
		return errs.Mark(err, ErrTransientConflict)
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errs.Is(err, shared.ErrTransactionBegin),
		errs.Is(err, shared.ErrTransactionCommit),
		infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, ErrStoreUnavailable)
	default:
		return err
	}
}
