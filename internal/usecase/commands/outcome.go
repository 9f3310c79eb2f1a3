package commands

import (
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrInvalidRange      = errs.New("invalid date range")
	ErrRoomUnavailable   = errs.New("room unavailable")
	ErrRoomNotFound      = errs.New("room not found")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrTransientConflict = errs.New("transient conflict, retry later")
	ErrStoreUnavailable  = errs.New("store unavailable")
)

// Outcome tags how a reservation attempt ended. Rejections are business
// answers; failures say nothing about availability and may be retried.
type Outcome string

const (
	OutcomeCommitted               Outcome = "committed"
	OutcomeRejectedInvalidRange    Outcome = "rejected_invalid_range"
	OutcomeRejectedUnavailable     Outcome = "rejected_unavailable"
	OutcomeRejectedNotFound        Outcome = "rejected_not_found"
	OutcomeFailedTransientConflict Outcome = "failed_transient_conflict"
	OutcomeFailedStoreUnavailable  Outcome = "failed_store_unavailable"
	OutcomeFailedInternal          Outcome = "failed_internal"
)

func (o Outcome) String() string {
	return string(o)
}

func (o Outcome) IsRejection() bool {
	switch o {
	case OutcomeRejectedInvalidRange, OutcomeRejectedUnavailable, OutcomeRejectedNotFound:
		return true
	default:
		return false
	}
}

func (o Outcome) IsFailure() bool {
	return o != OutcomeCommitted && !o.IsRejection()
}

func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeCommitted
	case errs.Is(err, ErrInvalidRange):
		return OutcomeRejectedInvalidRange
	case errs.Is(err, ErrRoomUnavailable):
		return OutcomeRejectedUnavailable
	case errs.Is(err, ErrRoomNotFound), errs.Is(err, ErrBookingNotFound):
		return OutcomeRejectedNotFound
	case errs.Is(err, ErrTransientConflict):
		return OutcomeFailedTransientConflict
	case errs.Is(err, ErrStoreUnavailable):
		return OutcomeFailedStoreUnavailable
	default:
		return OutcomeFailedInternal
	}
}
