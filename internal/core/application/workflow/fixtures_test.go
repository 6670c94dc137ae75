package workflow_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"logistics/internal/core/application/notification"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/application/workflow"
	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/toast"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogGateway struct{ mock.Mock }

func (m *MockCatalogGateway) ListAddresses(ctx context.Context, token string, customerID *kernel.ID) ([]catalog.Address, error) {
	args := m.Called(ctx, token, customerID)
	addresses, _ := args.Get(0).([]catalog.Address)
	return addresses, args.Error(1)
}

func (m *MockCatalogGateway) ListPackageTypes(ctx context.Context, token string) ([]catalog.PackageType, error) {
	args := m.Called(ctx, token)
	types, _ := args.Get(0).([]catalog.PackageType)
	return types, args.Error(1)
}

func (m *MockCatalogGateway) ListStatusOptions(ctx context.Context, token string) ([]catalog.StatusOption, error) {
	args := m.Called(ctx, token)
	options, _ := args.Get(0).([]catalog.StatusOption)
	return options, args.Error(1)
}

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

type fakeSessions struct {
	current session.Session
}

func (f *fakeSessions) Current() session.Session {
	return f.current
}

const token = "tok"

var clock = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func brackets() []catalog.PackageType {
	return []catalog.PackageType{
		{ID: 2, SizeCode: "M", MaxWeightKg: 25, Description: "Mediano", IsActive: true},
		{ID: 1, SizeCode: "S", MaxWeightKg: 5, Description: "Chico", IsActive: true},
	}
}

func addresses() []catalog.Address {
	return []catalog.Address{{ID: 10, Street: "Reforma"}, {ID: 20, Street: "Insurgentes"}}
}

func statusOptions() []catalog.StatusOption {
	return []catalog.StatusOption{
		{Label: "Creada", Value: "created"},
		{Label: "Entregado", Value: "entregado"},
	}
}

type fixture struct {
	catalogs *MockCatalogGateway
	orders   *MockOrderGateway
	sessions *fakeSessions
	queue    *notification.Queue
	deps     workflow.Dependencies
	saved    atomic.Int32
	closed   atomic.Int32
}

func newFixture(t *testing.T, role session.Role, userID kernel.ID) *fixture {
	t.Helper()

	sess, err := session.New(session.Identity{Token: token, UserID: userID, Role: role})
	require.NoError(t, err)

	f := &fixture{
		catalogs: new(MockCatalogGateway),
		orders:   new(MockOrderGateway),
		sessions: &fakeSessions{current: sess},
		queue:    notification.NewQueue(time.Hour, notification.WithClock(func() time.Time { return clock })),
	}
	f.deps = workflow.Dependencies{
		Sessions:      f.sessions,
		Notifier:      f.queue,
		Catalogs:      queries.NewLoadCatalogsQueryHandler(f.catalogs),
		Details:       queries.NewGetOrderDetailQueryHandler(f.orders),
		Creator:       commands.NewCreateOrderCommandHandler(f.orders),
		StatusUpdater: commands.NewUpdateOrderStatusCommandHandler(f.orders),
		Clock:         func() time.Time { return clock },
	}
	return f
}

func (f *fixture) hooks() workflow.Hooks {
	return workflow.Hooks{
		OnSaved: func() { f.saved.Add(1) },
		OnClose: func() { f.closed.Add(1) },
	}
}

func (f *fixture) controller(t *testing.T) *workflow.Controller {
	t.Helper()
	c, err := workflow.NewController(f.deps, f.hooks())
	require.NoError(t, err)
	return c
}

func (f *fixture) expectCatalogs(scope *kernel.ID) {
	f.catalogs.On("ListAddresses", mock.Anything, token, scope).Return(addresses(), nil).Once()
	f.catalogs.On("ListPackageTypes", mock.Anything, token).Return(brackets(), nil).Once()
	f.catalogs.On("ListStatusOptions", mock.Anything, token).Return(statusOptions(), nil).Once()
}

func (f *fixture) toasts() []toast.Toast {
	return f.queue.List()
}

func (f *fixture) lastToast(t *testing.T) toast.Toast {
	t.Helper()
	list := f.queue.List()
	require.NotEmpty(t, list)
	return list[len(list)-1]
}

func validForm() workflow.Form {
	return workflow.Form{
		OriginAddressID:      10,
		DestinationAddressID: 20,
		WeightKg:             3,
		Quantity:             1,
		Observations:         "frágil",
		InternalNotes:        "no debería enviarse",
	}
}
