//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	commandsmock "hotel-booking/tests/mock/commands"
	sharedmock "hotel-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	rooms    *sharedmock.MockRoomRepository
	bookings *sharedmock.MockBookingRepository
	notifier *commandsmock.MockBookingNotifier
	recorder *commandsmock.MockOutcomeRecorder
	cmds     commands.BookingCommands

	roomID uuid.UUID
	userID uuid.UUID
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.rooms = sharedmock.NewMockRoomRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.notifier = commandsmock.NewMockBookingNotifier(s.ctrl)
	s.recorder = commandsmock.NewMockOutcomeRecorder(s.ctrl)

	s.tx.EXPECT().Rooms().Return(s.rooms).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()

	s.roomID = uuid.New()
	s.userID = uuid.New()

	s.cmds = commands.NewBookingCommands(
		s.uow,
		builder.NewBookingBuilder().Services(),
		s.notifier,
		s.recorder,
		commands.ReservationPolicy{MaxStayDays: 30, Timeout: time.Second},
	)
}

func (s *BookingCommandsTestSuite) runInTx() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		})
}

func (s *BookingCommandsTestSuite) expectOutcome(o commands.Outcome) {
	s.recorder.EXPECT().ObserveReservation(o, gomock.Any())
}

func (s *BookingCommandsTestSuite) request(from, to string) commands.ReserveRequest {
	f, err := time.Parse(booking.DateLayout, from)
	s.Require().NoError(err)
	t, err := time.Parse(booking.DateLayout, to)
	s.Require().NoError(err)
	return commands.ReserveRequest{RoomID: s.roomID, DateFrom: f, DateTo: t}
}

func (s *BookingCommandsTestSuite) TestReserve_Committed() {
	s.runInTx()
	s.rooms.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), s.roomID).
		Return(&shared.RoomSnapshot{ID: s.roomID, HotelID: uuid.New(), Price: 100, Quantity: 2}, nil)
	s.bookings.EXPECT().WindowsInRange(gomock.Any(), gomock.Any(), s.roomID, booking.MustDateRange("2024-01-02", "2024-01-07")).
		Return([]booking.DateRange{booking.MustDateRange("2024-01-01", "2024-01-02")}, nil)
	s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (*booking.Booking, error) {
			return b, nil
		})
	s.notifier.EXPECT().BookingConfirmed(gomock.Any())
	s.expectOutcome(commands.OutcomeCommitted)

	result, err := s.cmds.Reserve(context.Background(), s.userID, s.request("2024-01-02", "2024-01-07"))

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal(s.roomID, result.Booking.RoomID())
	s.Equal(s.userID, result.Booking.UserID())
	s.Equal(5, result.Booking.TotalDays())
	s.Equal(int64(500), result.Booking.TotalCost().Amount())
}

func (s *BookingCommandsTestSuite) TestReserve_RejectedBeforeStoreAccess() {
	cases := []struct {
		name     string
		from, to string
	}{
		{"date_to before date_from", "2024-01-07", "2024-01-06"},
		{"longer than max stay", "2024-01-01", "2024-02-01"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.expectOutcome(commands.OutcomeRejectedInvalidRange)

			result, err := s.cmds.Reserve(context.Background(), s.userID, s.request(tc.from, tc.to))

			s.Nil(result)
			s.True(errs.Is(err, commands.ErrInvalidRange))
			s.Equal(commands.OutcomeRejectedInvalidRange, commands.Classify(err))
		})
	}
}

func (s *BookingCommandsTestSuite) TestReserve_RoomNotFound() {
	s.runInTx()
	s.rooms.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), s.roomID).
		Return(nil, infra.WrapRepoErr("room not found", pgx.ErrNoRows, infra.KindNotFound))
	s.expectOutcome(commands.OutcomeRejectedNotFound)

	_, err := s.cmds.Reserve(context.Background(), s.userID, s.request("2024-01-02", "2024-01-07"))

	s.True(errs.Is(err, commands.ErrRoomNotFound))
}

func (s *BookingCommandsTestSuite) TestReserve_Unavailable() {
	s.runInTx()
	s.rooms.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), s.roomID).
		Return(&shared.RoomSnapshot{ID: s.roomID, Price: 100, Quantity: 1}, nil)
	// stored stay ends on the requested first day
	s.bookings.EXPECT().WindowsInRange(gomock.Any(), gomock.Any(), s.roomID, gomock.Any()).
		Return([]booking.DateRange{booking.MustDateRange("2024-01-02", "2024-01-07")}, nil)
	s.expectOutcome(commands.OutcomeRejectedUnavailable)

	_, err := s.cmds.Reserve(context.Background(), s.userID, s.request("2024-01-07", "2024-01-10"))

	s.True(errs.Is(err, commands.ErrRoomUnavailable))
	s.Equal(commands.OutcomeRejectedUnavailable, commands.Classify(err))
}

func (s *BookingCommandsTestSuite) TestReserve_CostOverflow() {
	s.runInTx()
	s.rooms.EXPECT().LockForUpdate(gomock.Any(), gomock.Any(), s.roomID).
		Return(&shared.RoomSnapshot{ID: s.roomID, Price: math.MaxInt64 / 2, Quantity: 1}, nil)
	s.bookings.EXPECT().WindowsInRange(gomock.Any(), gomock.Any(), s.roomID, gomock.Any()).Return(nil, nil)
	s.expectOutcome(commands.OutcomeRejectedInvalidRange)

	result, err := s.cmds.Reserve(context.Background(), s.userID, s.request("2024-01-02", "2024-01-07"))

	s.Nil(result)
	s.True(errs.Is(err, booking.ErrCostOverflow))
	s.True(errs.Is(err, commands.ErrInvalidRange))
}

func (s *BookingCommandsTestSuite) TestReserve_InfrastructureFailures() {
	cases := []struct {
		name    string
		txErr   error
		outcome commands.Outcome
		is      error
	}{
		{
			name:    "retries exhausted",
			txErr:   errs.Mark(errs.New("lock not available"), shared.ErrRetriesExhausted),
			outcome: commands.OutcomeFailedTransientConflict,
			is:      commands.ErrTransientConflict,
		},
		{
			name: "deadline after lock retries",
			txErr: errs.Mark(errs.Wrap(context.DeadlineExceeded, "lock room"),
				shared.ErrRetriesExhausted),
			outcome: commands.OutcomeFailedTransientConflict,
			is:      commands.ErrTransientConflict,
		},
		{
			name:    "begin failed",
			txErr:   errs.Mark(errs.New("dial tcp: refused"), shared.ErrTransactionBegin),
			outcome: commands.OutcomeFailedStoreUnavailable,
			is:      commands.ErrStoreUnavailable,
		},
		{
			name:    "commit failed",
			txErr:   errs.Mark(errs.New("conn closed"), shared.ErrTransactionCommit),
			outcome: commands.OutcomeFailedStoreUnavailable,
			is:      commands.ErrStoreUnavailable,
		},
		{
			name:    "deadline exceeded",
			txErr:   errs.Wrap(context.DeadlineExceeded, "lock room"),
			outcome: commands.OutcomeFailedStoreUnavailable,
			is:      commands.ErrStoreUnavailable,
		},
		{
			name:    "unclassified",
			txErr:   errors.New("boom"),
			outcome: commands.OutcomeFailedInternal,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).Return(tc.txErr)
			s.expectOutcome(tc.outcome)

			result, err := s.cmds.Reserve(context.Background(), s.userID, s.request("2024-01-02", "2024-01-07"))

			s.Nil(result)
			s.Require().Error(err)
			if tc.is != nil {
				s.True(errs.Is(err, tc.is))
			}
			s.Equal(tc.outcome, commands.Classify(err))
		})
	}
}

func (s *BookingCommandsTestSuite) TestDelete() {
	bookingID := uuid.New()

	s.Run("own booking", func() {
		s.runInTx()
		s.bookings.EXPECT().DeleteByOwner(gomock.Any(), gomock.Any(), bookingID, s.userID).Return(true, nil)

		s.NoError(s.cmds.Delete(context.Background(), s.userID, bookingID))
	})

	s.Run("missing or foreign booking", func() {
		s.runInTx()
		s.bookings.EXPECT().DeleteByOwner(gomock.Any(), gomock.Any(), bookingID, s.userID).Return(false, nil)

		err := s.cmds.Delete(context.Background(), s.userID, bookingID)
		s.True(errs.Is(err, commands.ErrBookingNotFound))
	})

	s.Run("store unavailable", func() {
		s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			Return(errs.Mark(errs.New("refused"), shared.ErrTransactionBegin))

		err := s.cmds.Delete(context.Background(), s.userID, bookingID)
		s.True(errs.Is(err, commands.ErrStoreUnavailable))
	})
}

func TestReserve_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	notifier := commandsmock.NewMockBookingNotifier(ctrl)
	recorder := commandsmock.NewMockOutcomeRecorder(ctrl)

	cmds := commands.NewBookingCommands(uow, builder.NewBookingBuilder().Services(), notifier, recorder,
		commands.ReservationPolicy{MaxStayDays: 30, Timeout: 50 * time.Millisecond})

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ func(context.Context, shared.Tx) error) error {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
			<-ctx.Done()
			return ctx.Err()
		})
	recorder.EXPECT().ObserveReservation(commands.OutcomeFailedStoreUnavailable, gomock.Any())

	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	_, err := cmds.Reserve(context.Background(), uuid.New(), commands.ReserveRequest{
		RoomID: uuid.New(), DateFrom: from, DateTo: from.AddDate(0, 0, 3),
	})
	assert.True(t, errs.Is(err, commands.ErrStoreUnavailable))
}
