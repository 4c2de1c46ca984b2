package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mobile-next/touchdrag/commands"
	"github.com/mobile-next/touchdrag/server"
	"github.com/mobile-next/touchdrag/sessions"
	"github.com/mobile-next/touchdrag/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	registry, err := sessions.NewRegistry(4, sessions.Options{})
	require.NoError(t, err)

	original := commands.GetRegistry()
	commands.SetRegistry(registry)
	t.Cleanup(func() { commands.SetRegistry(original) })

	ts := httptest.NewServer(server.NewHandler(server.Options{AuthToken: token}))
	t.Cleanup(ts.Close)
	return ts
}

func TestNew_Addresses(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"12000", "http://localhost:12000"},
		{"localhost:13000", "http://localhost:13000"},
		{"http://10.0.0.2:12000/", "http://10.0.0.2:12000"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			c, err := New(tt.addr, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.BaseURL())
		})
	}

	_, err := New("nonsense", "")
	assert.Error(t, err)
}

func TestClient_SessionRoundTrip(t *testing.T) {
	ts := newTestServer(t, "")
	c, err := New(ts.URL, "")
	require.NoError(t, err)

	var info sessions.Info
	require.NoError(t, c.Call("session.create", map[string]interface{}{"name": "remote"}, &info))
	assert.Equal(t, "remote", info.Name)

	err = c.Call("touch.ingest", map[string]interface{}{
		"sessionId": info.ID,
		"events": []types.TouchPoint{
			{ID: 1, Phase: "started"},
			{ID: 2, Phase: "started"},
			{ID: 1, Phase: "moved", X: 10},
			{ID: 2, Phase: "moved", Y: 10},
		},
	}, nil)
	require.NoError(t, err)

	var drag types.DragResult
	require.NoError(t, c.Call("touch.drag", map[string]interface{}{"sessionId": info.ID}, &drag))
	assert.InDelta(t, 5.0, drag.DX, 1e-5)
	assert.InDelta(t, 5.0, drag.DY, 1e-5)
	assert.Equal(t, 2, drag.Fingers)
}

func TestClient_RPCError(t *testing.T) {
	ts := newTestServer(t, "")
	c, err := New(ts.URL, "")
	require.NoError(t, err)

	err = c.Call("touch.drag", map[string]interface{}{"sessionId": "missing"}, nil)
	var rpcErr *RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, server.ErrCodeServerError, rpcErr.Code)
}

func TestClient_AuthToken(t *testing.T) {
	ts := newTestServer(t, "secret")

	anonymous, err := New(ts.URL, "")
	require.NoError(t, err)
	err = anonymous.Call("session.list", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	authed, err := New(ts.URL, "secret")
	require.NoError(t, err)
	assert.NoError(t, authed.Call("session.list", nil, nil))
}

func TestClient_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, err := New(ts.URL, "")
	require.NoError(t, err)
	assert.Error(t, c.Call("server.info", nil, nil))
}
