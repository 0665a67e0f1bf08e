//go:build unit

package commands_test

import (
	"context"

	"bookify/internal/usecase/shared"
	sharedmock "bookify/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// uowMocks wires a mock unit of work whose Within runs the callback against a mock Tx.
type uowMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	bookings     *sharedmock.MockBookingRepository
	transactions *sharedmock.MockTransactionRepository
	idempotency  *sharedmock.MockIdempotencyRepository
	outbox       *sharedmock.MockOutboxRepository
	users        *sharedmock.MockUserRepository
}

func newUoWMocks(ctrl *gomock.Controller) *uowMocks {
	m := &uowMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		bookings:     sharedmock.NewMockBookingRepository(ctrl),
		transactions: sharedmock.NewMockTransactionRepository(ctrl),
		idempotency:  sharedmock.NewMockIdempotencyRepository(ctrl),
		outbox:       sharedmock.NewMockOutboxRepository(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
	}

	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()

	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Transactions().Return(m.transactions).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()

	return m
}

func (m *uowMocks) expectEnqueue(kind string) *gomock.Call {
	return m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), kind, kind, gomock.Any(), gomock.Any())
}
