package commands_test

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderGateway struct{ mock.Mock }

func (m *MockOrderGateway) GetDetail(ctx context.Context, token string, id kernel.ID) (order.Detail, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).(order.Detail), args.Error(1)
}

func (m *MockOrderGateway) List(ctx context.Context, token string, all bool) ([]*order.Order, error) {
	args := m.Called(ctx, token, all)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderGateway) Create(ctx context.Context, token string, draft *order.Order) (*order.Order, error) {
	args := m.Called(ctx, token, draft)
	created, _ := args.Get(0).(*order.Order)
	return created, args.Error(1)
}

func (m *MockOrderGateway) PatchStatus(
	ctx context.Context,
	token string,
	id kernel.ID,
	status order.Status,
	internalNotes string,
) error {
	args := m.Called(ctx, token, id, status, internalNotes)
	return args.Error(0)
}
