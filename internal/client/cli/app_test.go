package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, &fakeStore{}, false)
	assert.Equal(t, "", a.getStatus())

	a.setMode(ModeOnline)
	assert.Equal(t, "(online)", a.getStatus())

	a.setSession("kim@gmail.com", "tok")
	assert.Equal(t, "(kim@gmail.com online)", a.getStatus())
}

func TestCheckOnline(t *testing.T) {
	api := &fakeClient{}
	a, _ := newTestApp(t, api, &fakeStore{}, false)

	a.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, a.getMode())

	api.pingErr = errBoom
	a.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, a.getMode())
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, &fakeStore{}, false)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return a.getMode() == ModeOnline }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRestoreSession(t *testing.T) {
	api := &fakeClient{}
	store := &fakeStore{saved: &session.Session{AccessToken: "saved", Email: "kim@gmail.com"}}
	a, _ := newTestApp(t, api, store, false)

	require.NoError(t, a.restoreSession(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "saved", api.token)

	store = &fakeStore{loadErr: errBoom}
	a, _ = newTestApp(t, &fakeClient{}, store, false)
	assert.ErrorIs(t, a.restoreSession(context.Background()), errBoom)
}

func TestRun_ClosesStore(t *testing.T) {
	store := &fakeStore{}
	a, out := newTestApp(t, &fakeClient{}, store, false, "exit")

	a.Run(context.Background())

	assert.True(t, store.closed)
	assert.Contains(t, out.String(), "Welcome")
	assert.Contains(t, out.String(), "Switched to online mode\n")
	assert.Contains(t, out.String(), "bm (online)> Bye!\n")
}

func TestSetMode_ReportsChangesOnce(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, &fakeStore{}, false)

	a.setMode(ModeOffline)
	a.setMode(ModeOffline)
	a.setMode(ModeOnline)

	assert.Equal(t, "Switched to offline mode\nSwitched to online mode\n", out.String())
}

func TestNewApp_RealSessionStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.ServerURL = srv.URL
	cfg.SessionDBPath = filepath.Join(t.TempDir(), "session.db")

	store, err := session.Open(context.Background(), cfg.SessionDBPath)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), session.Session{AccessToken: "t", Email: "kim@gmail.com"}))
	require.NoError(t, store.Close())

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.store.Close() })

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "kim@gmail.com", a.email)
}

func TestNewApp_BadServerURL(t *testing.T) {
	cfg := testConfig()
	cfg.ServerURL = "ftp://nope"
	cfg.SessionDBPath = filepath.Join(t.TempDir(), "session.db")

	_, err := NewApp(context.Background(), cfg)

	assert.Error(t, err)
}
