//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/slot"
	"bay-booking/internal/infra"
	"bay-booking/internal/infra/repository"
	sqlc "bay-booking/internal/infra/sqlc/generated"
	"bay-booking/tests/common/builder"
	repositorymock "bay-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Slot Repository Tests
// =============================================================================

func TestSlotRepository_ClaimAvailable(t *testing.T) {
	ctx := context.Background()
	ids := []int64{10, 11, 12}

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockSlotWriteQueries, sqlc.DBTX)
		wantRows   int64
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: every slot claimed",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().ClaimAvailableSlots(ctx, db, ids).Return(int64(3), nil)
			},
			wantRows: 3,
		},
		{
			name: "success: partial claim is reported, not failed",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().ClaimAvailableSlots(ctx, db, ids).Return(int64(2), nil)
			},
			wantRows: 2,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockSlotWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().ClaimAvailableSlots(ctx, db, ids).Return(int64(0), errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			n, err := repo.ClaimAvailable(ctx, ids)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRows, n)
		})
	}
}

func TestSlotRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSlotRepository(mockQueries, mockDB)

	mockQueries.EXPECT().UpdateSlotStatus(ctx, mockDB, sqlc.UpdateSlotStatusParams{
		ToStatus:   "unavailable",
		ID:         7,
		FromStatus: "available",
	}).Return(int64(1), nil)

	n, err := repo.SetStatus(ctx, 7, slot.StatusAvailable, slot.StatusUnavailable)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSlotRepository_Release(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSlotRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ReleaseBookedSlots(ctx, mockDB, []int64{4, 5}).Return(int64(2), nil)

	n, err := repo.Release(ctx, []int64{4, 5})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

// =============================================================================
// Booking Repository Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		booking    *booking.Booking
		setupMock  func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:    "success: member booking with ordered slots",
			booking: builder.NewBookingBuilder().AsPending().WithSlots(builder.NewSlotBuilder().WithID(20).AsBooked().BuildRun(3)...).BuildDomain(),
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).DoAndReturn(
						func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
							assert.Equal(t, b.ID(), arg.ID)
							assert.True(t, arg.UserID.Valid)
							assert.False(t, arg.GuestEmail.Valid)
							assert.Equal(t, "pending", arg.Status)
							assert.False(t, arg.PaymentID.Valid)
							return nil
						}),
					mock.EXPECT().CreateBookingSlots(ctx, db, sqlc.CreateBookingSlotsParams{
						BookingID: b.ID(),
						SlotIds:   []int64{20, 21, 22},
						Positions: []int32{0, 1, 2},
					}).Return(nil),
				)
			},
		},
		{
			name:    "success: guest contact is stored",
			booking: builder.NewBookingBuilder().AsPending().AsGuest().BuildDomain(),
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) error {
						assert.False(t, arg.UserID.Valid)
						assert.Equal(t, "guest@example.com", arg.GuestEmail.String)
						assert.Equal(t, "Sam Guest", arg.GuestName.String)
						return nil
					})
				mock.EXPECT().CreateBookingSlots(ctx, db, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "error: slot link violates a foreign key",
			booking: builder.NewBookingBuilder().AsPending().BuildDomain(),
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).Return(nil)
				mock.EXPECT().CreateBookingSlots(ctx, db, gomock.Any()).Return(&pgconn.PgError{Code: "23503"})
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:    "error: insert fails, slots never linked",
			booking: builder.NewBookingBuilder().AsPending().BuildDomain(),
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, db sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, db, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, tc.booking, mockDB)

			err := repo.Create(ctx, tc.booking)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingRepository_AttachSlots(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC)
	bookingID := uuid.New()
	refs := []booking.SlotRef{{SlotID: 31, BayID: 1}, {SlotID: 32, BayID: 1}}

	t.Run("success: amount bumped then slots linked after existing ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		gomock.InOrder(
			mockQueries.EXPECT().AddConfirmedBookingAmount(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.AddConfirmedBookingAmountParams) (int64, error) {
					assert.Equal(t, int64(9000), arg.ExtraCents)
					assert.True(t, arg.ChangedAt.Time.Equal(at))
					return 1, nil
				}),
			mockQueries.EXPECT().CreateBookingSlots(ctx, mockDB, sqlc.CreateBookingSlotsParams{
				BookingID: bookingID,
				SlotIds:   []int64{31, 32},
				Positions: []int32{2, 3},
			}).Return(nil),
		)

		n, err := repo.AttachSlots(ctx, bookingID, refs, 2, 9000, at)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("booking no longer confirmed: nothing linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().AddConfirmedBookingAmount(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		n, err := repo.AttachSlots(ctx, bookingID, refs, 2, 9000, at)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("error: slot already linked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().AddConfirmedBookingAmount(ctx, mockDB, gomock.Any()).Return(int64(1), nil)
		mockQueries.EXPECT().CreateBookingSlots(ctx, mockDB, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := repo.AttachSlots(ctx, bookingID, refs, 2, 9000, at)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)
	})
}

func TestBookingRepository_TransitionStatus(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	id := uuid.New()
	paymentID := "pi_abc"

	testCases := []struct {
		name        string
		paymentID   *string
		from, to    booking.Status
		mockRows    int64
		mockErr     error
		wantPayment bool
		expectKind  infra.RepositoryErrorKind
	}{
		{name: "confirm with payment", paymentID: &paymentID, from: booking.StatusPending, to: booking.StatusConfirmed, mockRows: 1, wantPayment: true},
		{name: "cancel keeps stored payment", from: booking.StatusConfirmed, to: booking.StatusCancelled, mockRows: 1},
		{name: "lost race matches nothing", from: booking.StatusPending, to: booking.StatusCancelled, mockRows: 0},
		{
			name:       "payment already used by another booking",
			paymentID:  &paymentID,
			from:       booking.StatusPending,
			to:         booking.StatusConfirmed,
			mockErr:    &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"bookings_payment_id_key\""},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			mockQueries.EXPECT().TransitionBookingStatus(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.TransitionBookingStatusParams) (int64, error) {
					assert.Equal(t, id, arg.ID)
					assert.Equal(t, tc.from.String(), arg.FromStatus)
					assert.Equal(t, tc.to.String(), arg.ToStatus)
					assert.Equal(t, tc.wantPayment, arg.PaymentID.Valid)
					return tc.mockRows, tc.mockErr
				})

			n, err := repo.TransitionStatus(ctx, id, tc.from, tc.to, tc.paymentID, at)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mockRows, n)
		})
	}
}

// =============================================================================
// Membership Repository Tests
// =============================================================================

func TestMembershipRepository(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("consume passes hours and period guard time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMembershipWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMembershipRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ConsumeMembershipHours(ctx, mockDB, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ sqlc.DBTX, arg sqlc.ConsumeMembershipHoursParams) (int64, error) {
				assert.Equal(t, int32(2), arg.Hours)
				assert.Equal(t, userID, arg.UserID)
				assert.True(t, arg.ChangedAt.Time.Equal(at))
				return 0, nil
			})

		n, err := repo.ConsumeHours(ctx, userID, 2, at)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("restore failure is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockMembershipWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewMembershipRepository(mockQueries, mockDB)

		mockQueries.EXPECT().RestoreMembershipHours(ctx, mockDB, gomock.Any()).Return(errors.New("timeout"))

		err := repo.RestoreHours(ctx, userID, 1, at)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Notification Repository Tests
// =============================================================================

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)
	runAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error {
			assert.Equal(t, "email", arg.Kind)
			assert.Equal(t, "booking_confirmed", arg.Topic)
			assert.Equal(t, "queued", arg.Status)
			assert.JSONEq(t, `{"booking_id":"x"}`, string(arg.Payload))
			return nil
		})

	require.NoError(t, repo.CreateJob(ctx, "email", "booking_confirmed", []byte(`{"booking_id":"x"}`), runAt))
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
