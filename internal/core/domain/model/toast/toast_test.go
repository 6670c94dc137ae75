package toast_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/toast"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Validate(t *testing.T) {
	for _, k := range []toast.Kind{toast.Success, toast.Error, toast.Info, toast.Warning} {
		require.NoError(t, k.Validate())
	}
	require.ErrorIs(t, toast.Kind("danger").Validate(), errs.ErrValueIsInvalid)
}

func TestToast_Expiry(t *testing.T) {
	created := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	t.Run("timed toast expires at created plus ttl", func(t *testing.T) {
		tt := toast.Toast{ID: 1, Kind: toast.Info, TTL: 4 * time.Second, CreatedAt: created}

		assert.False(t, tt.IsSticky())
		assert.False(t, tt.IsExpired(created.Add(3999*time.Millisecond)))
		assert.True(t, tt.IsExpired(created.Add(4*time.Second)))
	})

	t.Run("sticky toast never expires", func(t *testing.T) {
		tt := toast.Toast{ID: 2, Kind: toast.Error, CreatedAt: created}

		assert.True(t, tt.IsSticky())
		assert.False(t, tt.IsExpired(created.Add(24*time.Hour)))
	})
}
