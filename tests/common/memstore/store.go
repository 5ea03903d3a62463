//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork. Transactions are serialized
// and rolled back on error, which is enough to exercise the conditional-update rules.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"bay-booking/internal/domain/booking"
	"bay-booking/internal/domain/membership"
	"bay-booking/internal/domain/slot"
	"bay-booking/internal/infra"
	"bay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type slotRow struct {
	id     int64
	bayID  int64
	start  time.Time
	end    time.Time
	status slot.Status
}

type bookingRow struct {
	id             uuid.UUID
	customer       booking.Customer
	status         booking.Status
	bookingTime    time.Time
	paymentID      *string
	amountCents    int64
	allowanceHours int
	slots          []booking.SlotRef
	cancelledAt    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

type membershipRow struct {
	userID    uuid.UUID
	plan      string
	included  int
	remaining int
	periodEnd time.Time
	status    membership.Status
}

type state struct {
	slots       map[int64]slotRow
	bookings    map[uuid.UUID]bookingRow
	memberships map[uuid.UUID]membershipRow
	jobs        []Job
	nextSlotID  int64
}

func (s state) clone() state {
	c := state{
		slots:       make(map[int64]slotRow, len(s.slots)),
		bookings:    make(map[uuid.UUID]bookingRow, len(s.bookings)),
		memberships: make(map[uuid.UUID]membershipRow, len(s.memberships)),
		jobs:        append([]Job(nil), s.jobs...),
		nextSlotID:  s.nextSlotID,
	}
	for k, v := range s.slots {
		c.slots[k] = v
	}
	for k, v := range s.bookings {
		v.slots = append([]booking.SlotRef(nil), v.slots...)
		c.bookings[k] = v
	}
	for k, v := range s.memberships {
		c.memberships[k] = v
	}
	return c
}

type Store struct {
	mu sync.Mutex
	st state

	// Commits counts successful Within calls.
	Commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{st: state{
		slots:       map[int64]slotRow{},
		bookings:    map[uuid.UUID]bookingRow{},
		memberships: map[uuid.UUID]membershipRow{},
		nextSlotID:  1,
	}}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s, lock: true}
}

// Fixture helpers

// AddSlot inserts a slot and returns its id. Ids grow in insertion order.
func (s *Store) AddSlot(bayID int64, start, end time.Time, status slot.Status) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.nextSlotID
	s.st.nextSlotID++
	s.st.slots[id] = slotRow{id: id, bayID: bayID, start: start, end: end, status: status}
	return id
}

// AddHourlySlots inserts n back-to-back one-hour slots from start.
func (s *Store) AddHourlySlots(bayID int64, start time.Time, n int) []int64 {
	ids := make([]int64, n)
	for i := range n {
		from := start.Add(time.Duration(i) * time.Hour)
		ids[i] = s.AddSlot(bayID, from, from.Add(time.Hour), slot.StatusAvailable)
	}
	return ids
}

func (s *Store) PutMembership(userID uuid.UUID, included, remaining int, periodEnd time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.memberships[userID] = membershipRow{
		userID:    userID,
		plan:      "monthly",
		included:  included,
		remaining: remaining,
		periodEnd: periodEnd,
		status:    membership.StatusActive,
	}
}

func (s *Store) SlotStatus(id int64) slot.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.slots[id].status
}

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.st.bookings[id]
	if !ok {
		return nil
	}
	return row.toDomain()
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.bookings)
}

// AgeBooking moves a booking's creation time back, as if it was placed d ago.
func (s *Store) AgeBooking(id uuid.UUID, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.st.bookings[id]
	row.bookingTime = row.bookingTime.Add(-d)
	s.st.bookings[id] = row
}

// ForceBookingStatus bypasses the workflow to set up races.
func (s *Store) ForceBookingStatus(id uuid.UUID, status booking.Status, paymentID *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.st.bookings[id]
	row.status = status
	if paymentID != nil {
		row.paymentID = paymentID
	}
	s.st.bookings[id] = row
}

func (s *Store) HoursRemaining(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.memberships[userID].remaining
}

func (s *Store) Jobs(topic string) []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Job
	for _, j := range s.st.jobs {
		if topic == "" || j.Topic == topic {
			out = append(out, j)
		}
	}
	return out
}

func (r bookingRow) toDomain() *booking.Booking {
	return booking.ReconstructBooking(
		r.id,
		r.customer,
		r.status,
		r.bookingTime,
		r.paymentID,
		booking.NewMoney(r.amountCents),
		r.allowanceHours,
		append([]booking.SlotRef(nil), r.slots...),
		r.cancelledAt,
		r.createdAt,
		r.updatedAt,
	)
}

func (r slotRow) toDomain() *slot.Slot {
	return slot.ReconstructSlot(r.id, r.bayID, r.start, r.end, r.status, r.start, r.start)
}

// Tx

type memTx struct {
	s *Store
}

func (t *memTx) Slots() shared.SlotRepository                 { return &slotRepo{s: t.s} }
func (t *memTx) Bookings() shared.BookingRepository           { return &bookingRepo{s: t.s} }
func (t *memTx) Memberships() shared.MembershipRepository     { return &membershipRepo{s: t.s} }
func (t *memTx) Notifications() shared.NotificationRepository { return &notificationRepo{s: t.s} }
func (t *memTx) Reads() shared.CommandReads                   { return &reads{s: t.s} }

// Reads

type reads struct {
	s    *Store
	lock bool
}

func (r *reads) guard() func() {
	if !r.lock {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *reads) SlotsByIDs(_ context.Context, ids []int64) ([]*slot.Slot, error) {
	defer r.guard()()
	var rows []slotRow
	for _, id := range ids {
		if row, ok := r.s.st.slots[id]; ok {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].start.Before(rows[j].start) })
	out := make([]*slot.Slot, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *reads) SlotByID(_ context.Context, id int64) (*slot.Slot, error) {
	defer r.guard()()
	row, ok := r.s.st.slots[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "slot not found")
	}
	return row.toDomain(), nil
}

func (r *reads) SlotsFrom(_ context.Context, bayID int64, from time.Time, limit int) ([]*slot.Slot, error) {
	defer r.guard()()
	var rows []slotRow
	for _, row := range r.s.st.slots {
		if row.bayID == bayID && !row.start.Before(from) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].start.Before(rows[j].start) })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]*slot.Slot, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	defer r.guard()()
	row, ok := r.s.st.bookings[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return row.toDomain(), nil
}

func (r *reads) StalePendingBookingIDs(_ context.Context, cutoff time.Time, limit int) ([]uuid.UUID, error) {
	defer r.guard()()
	var rows []bookingRow
	for _, row := range r.s.st.bookings {
		if row.status == booking.StatusPending && row.bookingTime.Before(cutoff) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].bookingTime.Before(rows[j].bookingTime) })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.id
	}
	return ids, nil
}

func (r *reads) MembershipByUserID(_ context.Context, userID uuid.UUID) (*membership.Membership, error) {
	defer r.guard()()
	row, ok := r.s.st.memberships[userID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "membership not found")
	}
	return membership.ReconstructMembership(row.userID, row.plan, row.included, row.remaining, row.periodEnd, row.status, row.periodEnd, row.periodEnd), nil
}

// Repositories. Callers already hold the store lock through Within.

type slotRepo struct{ s *Store }

func (r *slotRepo) ClaimAvailable(_ context.Context, ids []int64) (int64, error) {
	return r.s.move(ids, slot.StatusAvailable, slot.StatusBooked), nil
}

func (r *slotRepo) Release(_ context.Context, ids []int64) (int64, error) {
	return r.s.move(ids, slot.StatusBooked, slot.StatusAvailable), nil
}

func (r *slotRepo) SetStatus(_ context.Context, id int64, from, to slot.Status) (int64, error) {
	return r.s.move([]int64{id}, from, to), nil
}

func (s *Store) move(ids []int64, from, to slot.Status) int64 {
	var n int64
	for _, id := range ids {
		row, ok := s.st.slots[id]
		if !ok || row.status != from {
			continue
		}
		row.status = to
		s.st.slots[id] = row
		n++
	}
	return n
}

type bookingRepo struct{ s *Store }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if _, exists := r.s.st.bookings[b.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "booking already exists")
	}
	for _, ref := range b.Slots() {
		if _, ok := r.s.st.slots[ref.SlotID]; !ok {
			return infra.NewRepoErr(infra.KindForeignKeyViolated, "slot does not exist")
		}
	}
	r.s.st.bookings[b.ID()] = bookingRow{
		id:             b.ID(),
		customer:       b.Customer(),
		status:         b.Status(),
		bookingTime:    b.BookingTime(),
		paymentID:      b.PaymentID(),
		amountCents:    b.Amount().Cents(),
		allowanceHours: b.AllowanceHours(),
		slots:          append([]booking.SlotRef(nil), b.Slots()...),
		createdAt:      b.CreatedAt(),
		updatedAt:      b.UpdatedAt(),
	}
	return nil
}

func (r *bookingRepo) AttachSlots(_ context.Context, bookingID uuid.UUID, refs []booking.SlotRef, _ int, extraCents int64, at time.Time) (int64, error) {
	row, ok := r.s.st.bookings[bookingID]
	if !ok || row.status != booking.StatusConfirmed {
		return 0, nil
	}
	row.slots = append(row.slots, refs...)
	row.amountCents += extraCents
	row.updatedAt = at
	r.s.st.bookings[bookingID] = row
	return 1, nil
}

func (r *bookingRepo) TransitionStatus(_ context.Context, id uuid.UUID, from, to booking.Status, paymentID *string, at time.Time) (int64, error) {
	row, ok := r.s.st.bookings[id]
	if !ok || row.status != from {
		return 0, nil
	}
	if paymentID != nil {
		for otherID, other := range r.s.st.bookings {
			if otherID != id && other.paymentID != nil && *other.paymentID == *paymentID {
				return 0, infra.NewRepoErr(infra.KindDuplicateKey, "payment id already used")
			}
		}
		pid := *paymentID
		row.paymentID = &pid
	}
	row.status = to
	row.updatedAt = at
	if to == booking.StatusCancelled {
		t := at
		row.cancelledAt = &t
	}
	r.s.st.bookings[id] = row
	return 1, nil
}

type membershipRepo struct{ s *Store }

func (r *membershipRepo) ConsumeHours(_ context.Context, userID uuid.UUID, hours int, at time.Time) (int64, error) {
	row, ok := r.s.st.memberships[userID]
	if !ok || row.status != membership.StatusActive || !at.Before(row.periodEnd) || row.remaining < hours {
		return 0, nil
	}
	row.remaining -= hours
	r.s.st.memberships[userID] = row
	return 1, nil
}

func (r *membershipRepo) RestoreHours(_ context.Context, userID uuid.UUID, hours int, _ time.Time) error {
	row, ok := r.s.st.memberships[userID]
	if !ok {
		return nil
	}
	row.remaining = min(row.remaining+hours, row.included)
	r.s.st.memberships[userID] = row
	return nil
}

type notificationRepo struct{ s *Store }

func (r *notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.st.jobs = append(r.s.st.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}
