package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return New(url,
		WithMaxAttempts(3),
		WithBackoffBase(time.Millisecond),
		WithProbeTimeouts(time.Second, 2*time.Second),
	)
}

func TestClient_Login_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)
		w.Write([]byte(`{"message":"Login successful","token":"token123","user":{"id":1,"username":"alice"}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	user, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "token123", c.Token())
}

func TestClient_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.SetToken("token123")

	spot, err := c.GetSpot(context.Background())
	require.NoError(t, err)
	assert.Nil(t, spot)
}

func TestClient_RetriesTransientFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"id":1,"user_id":1,"latitude":40.7,"longitude":-74.0,"timestamp":"2026-01-02T15:04:05Z"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	spot, err := c.GetSpot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, spot)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_RetriesCapped(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.GetSpot(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_SkipRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	lat, lon := 40.7, -74.0
	_, err := c.SaveSpot(context.Background(), SpotPayload{Latitude: &lat, Longitude: &lon}, SkipRetry())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_UnauthorizedIsFinal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.GetSpot(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_RejectionIsFinal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Latitude and longitude are required"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.SaveSpot(context.Background(), SpotPayload{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "Latitude and longitude are required")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_NetworkErrorRetried(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := newTestClient(srv.URL)

	_, err := c.GetSpot(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ConcurrentTokenAccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"Timer data cleared successfully!"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	c.SetToken("token123")

	// The timer goroutine issues requests while the REPL logs out; run under
	// the race detector.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.DeleteTimer(context.Background())
		}()
		go func() {
			defer wg.Done()
			c.ClearToken()
			c.SetToken("token123")
		}()
	}
	wg.Wait()
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/health", r.URL.Path)
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL)
		assert.NoError(t, c.Health(context.Background()))
	})

	t.Run("waking up", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"status":"ok"}`))
		}))
		defer srv.Close()

		c := newTestClient(srv.URL)
		assert.NoError(t, c.Health(context.Background()))
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("down", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := newTestClient(srv.URL)
		assert.ErrorIs(t, c.Health(context.Background()), ErrUnavailable)
	})
}
