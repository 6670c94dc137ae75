package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderDetailQueryHandler_Handle(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx := t.Context()
		detail := order.Detail{ID: 5, OwnerID: 42, Status: order.InRoute}

		gateway := new(MockOrderGateway)
		gateway.On("GetDetail", ctx, "tok", kernel.ID(5)).Return(detail, nil).Once()

		q, err := queries.NewGetOrderDetailQuery("tok", 5)
		require.NoError(t, err)

		got, err := queries.NewGetOrderDetailQueryHandler(gateway).Handle(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, detail, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctx := t.Context()
		gateway := new(MockOrderGateway)
		gateway.On("GetDetail", ctx, "tok", kernel.ID(5)).
			Return(order.Detail{}, errs.NewBackendError(404, "order not found")).Once()

		q, err := queries.NewGetOrderDetailQuery("tok", 5)
		require.NoError(t, err)

		_, err = queries.NewGetOrderDetailQueryHandler(gateway).Handle(ctx, q)
		require.ErrorIs(t, err, errs.ErrReferenceLoad)
		assert.EqualError(t, err, "order not found")
	})

	t.Run("invalid query", func(t *testing.T) {
		_, err := queries.NewGetOrderDetailQuery("", 0)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestListOrdersQuery(t *testing.T) {
	q, err := queries.NewListOrdersQuery("tok", session.RoleClient, true)
	require.NoError(t, err)
	assert.False(t, q.All())

	q, err = queries.NewListOrdersQuery("tok", session.RoleAdmin, true)
	require.NoError(t, err)
	assert.True(t, q.All())

	_, err = queries.NewListOrdersQuery("", session.RoleAdmin, false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	o, err := order.RestoreOrder(order.Record{ID: 1, Status: order.Created})
	require.NoError(t, err)

	gateway := new(MockOrderGateway)
	gateway.On("List", ctx, "tok", true).Return([]*order.Order{o}, nil).Once()
	gateway.On("List", ctx, "bad", false).Return(nil, errs.NewBackendError(401, "unauthorized")).Once()

	h := queries.NewListOrdersQueryHandler(gateway)

	q, err := queries.NewListOrdersQuery("tok", session.RoleAdmin, true)
	require.NoError(t, err)
	got, err := h.Handle(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, []*order.Order{o}, got)

	q, err = queries.NewListOrdersQuery("bad", session.RoleClient, false)
	require.NoError(t, err)
	_, err = h.Handle(ctx, q)
	require.ErrorIs(t, err, errs.ErrReferenceLoad)
	gateway.AssertExpectations(t)
}
