package workflow_test

import (
	"testing"

	"logistics/internal/core/application/workflow"
	"logistics/internal/core/domain/model/catalog"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OpenGetClose(t *testing.T) {
	f := newFixture(t, session.RoleClient, 1)
	r, err := workflow.NewRegistry(f.deps)
	require.NoError(t, err)

	closed := 0
	c, err := r.Open(workflow.Hooks{OnClose: func() { closed++ }})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(c.ID())
	require.NoError(t, err)
	assert.Same(t, c, got)

	require.NoError(t, r.Close(c.ID()))
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, closed)

	_, err = r.Get(c.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, r.Close(uuid.New()), errs.ErrObjectNotFound)
}

func TestRegistry_InstancesOwnTheirCatalogs(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t, session.RoleClient, 1)

	first := []catalog.PackageType{{ID: 1, MaxWeightKg: 5, IsActive: true}}
	second := []catalog.PackageType{{ID: 1, MaxWeightKg: 5, IsActive: true}, {ID: 2, MaxWeightKg: 25, IsActive: true}}

	f.catalogs.On("ListAddresses", mock.Anything, token, (*kernel.ID)(nil)).Return(addresses(), nil).Twice()
	f.catalogs.On("ListStatusOptions", mock.Anything, token).Return(statusOptions(), nil).Twice()
	mock.InOrder(
		f.catalogs.On("ListPackageTypes", mock.Anything, token).Return(first, nil).Once(),
		f.catalogs.On("ListPackageTypes", mock.Anything, token).Return(second, nil).Once(),
	)

	r, err := workflow.NewRegistry(f.deps)
	require.NoError(t, err)

	a, err := r.Open(workflow.Hooks{})
	require.NoError(t, err)
	require.NoError(t, a.OpenForCreate(ctx))

	b, err := r.Open(workflow.Hooks{})
	require.NoError(t, err)
	require.NoError(t, b.OpenForCreate(ctx))

	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, catalog.NoStandardBracket, a.Classify(10).PackageTypeID)
	assert.Equal(t, int64(2), b.Classify(10).PackageTypeID)

	r.CloseAll()
	assert.Equal(t, 0, r.Len())
	assert.True(t, a.Snapshot().Closed)
	assert.True(t, b.Snapshot().Closed)
}

func TestNewRegistry_RequiresDependencies(t *testing.T) {
	_, err := workflow.NewRegistry(workflow.Dependencies{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
