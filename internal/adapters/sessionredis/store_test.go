package sessionredis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
	"github.com/filmoteca/filmoteca-cli/internal/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	client := testutil.SetupTestRedis(t)
	store := NewStoreWithKey(client, testutil.UniqueKey("filmoteca:test:session"))
	t.Cleanup(func() {
		_ = store.Delete(context.Background())
	})
	return store
}

func TestStore_SaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sess := auth.Session{Token: "tok-redis", Role: auth.RoleUser}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestStore_GetNonExistent(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoSession)
}

func TestStore_DeleteThenGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, auth.Session{Token: "tok", Role: auth.RoleAdmin}))
	require.NoError(t, store.Delete(ctx))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ports.ErrNoSession)
}

func TestStore_SaveRejectsEmptyToken(t *testing.T) {
	store := newTestStore(t)
	assert.Error(t, store.Save(context.Background(), auth.Session{Role: auth.RoleUser}))
}

func TestStore_OverwriteReplacesWholePair(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, auth.Session{Token: "first", Role: auth.RoleUser}))
	require.NoError(t, store.Save(ctx, auth.Session{Token: "second", Role: auth.RoleAdmin}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, auth.Session{Token: "second", Role: auth.RoleAdmin}, got)
}
