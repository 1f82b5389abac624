package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStore_EmptyLoad(t *testing.T) {
	s, _ := openStore(t)

	sess, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)

	require.NoError(t, s.Save(ctx, Session{AccessToken: "t1", Email: "kim@gmail.com"}))
	require.NoError(t, s.Save(ctx, Session{AccessToken: "t2", Email: "kim@gmail.com"}))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Session{AccessToken: "t2", Email: "kim@gmail.com"}, sess)

	require.NoError(t, s.Clear(ctx))
	sess, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	s, path := openStore(t)
	require.NoError(t, s.Save(ctx, Session{AccessToken: "t", Email: "e"}))
	require.NoError(t, s.Close())

	again, err := Open(ctx, path)
	require.NoError(t, err)
	defer again.Close()

	sess, err := again.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "t", sess.AccessToken)
}

func TestStore_ClosedErrors(t *testing.T) {
	ctx := context.Background()
	s, _ := openStore(t)
	require.NoError(t, s.Close())

	assert.Error(t, s.Save(ctx, Session{AccessToken: "t"}))
	_, err := s.Load(ctx)
	assert.Error(t, err)
	assert.Error(t, s.Clear(ctx))
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "s.db"))
	assert.Error(t, err)
}
