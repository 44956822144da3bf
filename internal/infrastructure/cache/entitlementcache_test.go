package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plume/internal/application/subscription/usecases"
	"plume/internal/shared/logger"
)

type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func sampleEntitlements() *usecases.CachedEntitlements {
	return &usecases.CachedEntitlements{
		PlanType:               "standard",
		Status:                 "active",
		Active:                 true,
		SocialAccounts:         4,
		ScheduledPostsPerWeek:  8,
		TeamMembers:            1,
		Analytics:              "advanced",
		Support:                "priority",
		ConnectedAccounts:      2,
		ScheduledPostsThisWeek: 3,
		CanConnectMoreAccounts: true,
		CanSchedulePosts:       true,
		TrialDaysRemaining:     0,
	}
}

func TestRedisEntitlementCache_SetGet(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisEntitlementCache(client, newNopLogger())
	ctx := context.Background()

	require.NoError(t, c.SetEntitlements(ctx, 10, sampleEntitlements()))

	got, err := c.GetEntitlements(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleEntitlements(), got)
}

func TestRedisEntitlementCache_Miss(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisEntitlementCache(client, newNopLogger())

	got, err := c.GetEntitlements(context.Background(), 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisEntitlementCache_Invalidate(t *testing.T) {
	_, client := setupTestRedis(t)
	c := NewRedisEntitlementCache(client, newNopLogger())
	ctx := context.Background()

	require.NoError(t, c.SetEntitlements(ctx, 10, sampleEntitlements()))
	require.NoError(t, c.InvalidateEntitlements(ctx, 10))

	got, err := c.GetEntitlements(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisEntitlementCache_NullMarker(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisEntitlementCache(client, newNopLogger())
	ctx := context.Background()

	require.NoError(t, c.SetNullMarker(ctx, 10))

	got, err := c.GetEntitlements(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.NotFound)

	// The marker is short lived; a fill after expiry reads normally.
	mr.FastForward(3 * time.Minute)

	got, err = c.GetEntitlements(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisEntitlementCache_TTL(t *testing.T) {
	mr, client := setupTestRedis(t)
	c := NewRedisEntitlementCache(client, newNopLogger())
	ctx := context.Background()

	require.NoError(t, c.SetEntitlements(ctx, 10, sampleEntitlements()))

	ttl := mr.TTL("subscription:entitlements:10")
	assert.GreaterOrEqual(t, ttl, 30*time.Minute)
	assert.Less(t, ttl, 40*time.Minute)

	mr.FastForward(41 * time.Minute)

	got, err := c.GetEntitlements(ctx, 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}
