package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"procurement/internal/middleware"
	"procurement/internal/model"
	"procurement/internal/repository"
	"procurement/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startServer(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	auth := middleware.NewAuth(testutil.Secret, repository.NewUserRepository(db), time.Minute, zap.NewNop())
	hub := NewHub(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { ServeWs(hub, auth, c) })
	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestServeWs_RejectsMissingOrBadToken(t *testing.T) {
	_, url := startServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(url+"?token=garbage", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// listen dials the hub as clerkID and forwards every received event
func listen(t *testing.T, url, clerkID string) <-chan Event {
	t.Helper()
	token := testutil.SignToken(t, clerkID, clerkID, clerkID+"@example.gov")
	conn, _, err := websocket.DefaultDialer.Dial(url+"?token="+token, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	events := make(chan Event, 64)
	go func() {
		defer close(events)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var ev Event
			if json.Unmarshal(data, &ev) == nil {
				events <- ev
			}
		}
	}()
	return events
}

// awaitEvent publishes a profile update for clerkID until events yields one;
// registration races with the handshake.
func awaitEvent(t *testing.T, hub *Hub, clerkID string, events <-chan Event) Event {
	t.Helper()
	var got Event
	require.Eventually(t, func() bool {
		hub.ProfileUpdated(&model.User{ClerkID: clerkID})
		select {
		case got = <-events:
			return true
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	return got
}

func TestHub_DeliversProfileUpdatesToOwner(t *testing.T) {
	hub, url := startServer(t)
	ana := listen(t, url, "user_1")
	ben := listen(t, url, "user_2")

	got := awaitEvent(t, hub, "user_1", ana)
	assert.Equal(t, EventProfileUpdated, got.Type)
	assert.Equal(t, "user_1", got.ClerkID)
	assert.False(t, got.Timestamp.IsZero())

	got = awaitEvent(t, hub, "user_2", ben)
	assert.Equal(t, "user_2", got.ClerkID)

	// both clients were registered before user_2's event was routed
	timeout := time.After(200 * time.Millisecond)
	for {
		select {
		case ev := <-ana:
			assert.Equal(t, "user_1", ev.ClerkID, "event of another user leaked")
		case <-timeout:
			return
		}
	}
}

func TestHub_PublishWithoutClerkIDReachesEveryone(t *testing.T) {
	hub, url := startServer(t)
	ana := listen(t, url, "user_1")
	ben := listen(t, url, "user_2")
	awaitEvent(t, hub, "user_1", ana)
	awaitEvent(t, hub, "user_2", ben)

	hub.Publish(Event{Type: "maintenance"})

	for _, events := range []<-chan Event{ana, ben} {
		require.Eventually(t, func() bool {
			select {
			case ev := <-events:
				return ev.Type == "maintenance"
			default:
				return false
			}
		}, 2*time.Second, 10*time.Millisecond)
	}
}
