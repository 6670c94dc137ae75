package postgres_test

import (
	"testing"

	"logistics/internal/adapters/out/postgres"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionConfig_Validate(t *testing.T) {
	err := postgres.ConnectionConfig{}.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_NAME")

	require.NoError(t, postgres.ConnectionConfig{Host: "db", User: "u", Name: "portal"}.Validate())
}

func TestConnectionConfig_DSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  postgres.ConnectionConfig
		want string
	}{
		{
			name: "defaults",
			cfg:  postgres.ConnectionConfig{Host: "db", User: "u", Password: "p", Name: "portal"},
			want: "host=db port=5432 user=u password=p dbname=portal sslmode=disable",
		},
		{
			name: "explicit",
			cfg: postgres.ConnectionConfig{
				Host: "db", Port: "6543", User: "u", Password: "p", Name: "portal", SSLMode: "require",
			},
			want: "host=db port=6543 user=u password=p dbname=portal sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestOpen_RejectsIncompleteConfig(t *testing.T) {
	_, err := postgres.Open(postgres.ConnectionConfig{Host: "db"})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
