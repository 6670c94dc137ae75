package redis_test

import (
	"testing"
	"time"

	"logistics/internal/adapters/out/redis"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T, agentID string) (*redis.SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo, err := redis.NewFromClient(client, agentID, redis.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	return repo, mr
}

func newSession(t *testing.T, expiresAt time.Time) session.Session {
	t.Helper()
	s, err := session.New(session.Identity{
		Token:     "tok-1",
		UserID:    kernel.ID(1),
		Role:      session.RoleClient,
		Email:     "client@example.com",
		ExpiresAt: expiresAt,
	})
	require.NoError(t, err)
	return s
}

func TestNewFromClient_Validation(t *testing.T) {
	_, err := redis.NewFromClient(nil, "agent")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	mr := miniredis.RunT(t)
	_, err = redis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	ctx := t.Context()
	repo, mr := setup(t, "agent-a")

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.IsAuthenticated())

	want := newSession(t, now.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, want))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Identity(), loaded.Identity())

	assert.True(t, mr.Exists("portal:session:agent-a"))
	assert.Equal(t, time.Hour, mr.TTL("portal:session:agent-a"))
}

func TestSessionRepository_KeyExpiresWithToken(t *testing.T) {
	ctx := t.Context()
	repo, mr := setup(t, "agent")

	require.NoError(t, repo.Save(ctx, newSession(t, now.Add(time.Minute))))
	mr.FastForward(2 * time.Minute)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, loaded.IsAuthenticated())
}

func TestSessionRepository_NoExpiryMeansNoTTL(t *testing.T) {
	ctx := t.Context()
	repo, mr := setup(t, "agent")

	require.NoError(t, repo.Save(ctx, newSession(t, time.Time{})))
	assert.Zero(t, mr.TTL("portal:session:agent"))
}

func TestSessionRepository_SaveExpiredClears(t *testing.T) {
	ctx := t.Context()
	repo, mr := setup(t, "agent")

	require.NoError(t, repo.Save(ctx, newSession(t, now.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, newSession(t, now.Add(-time.Second))))

	assert.False(t, mr.Exists("portal:session:agent"))
}

func TestSessionRepository_Clear(t *testing.T) {
	ctx := t.Context()
	repo, mr := setup(t, "agent")

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Save(ctx, newSession(t, now.Add(time.Hour))))
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))
	assert.False(t, mr.Exists("portal:session:agent"))
}

func TestSessionRepository_ServerDown(t *testing.T) {
	repo, mr := setup(t, "agent")
	mr.Close()

	_, err := repo.Load(t.Context())
	require.Error(t, err)
}
