package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/churchpool/churchpool/internal/pkg/constants"
	"github.com/churchpool/churchpool/internal/pkg/models"
)

// dialTestClient upgrades a loopback connection and returns the client
// side plus a channel of frames read on the server side.
func dialTestClient(t *testing.T) (*websocket.Conn, <-chan models.WSMessage, func()) {
	received := make(chan models.WSMessage, 64)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var msg models.WSMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			received <- msg
		}
	}))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}

	return conn, received, func() {
		conn.Close()
		srv.Close()
	}
}

func TestNotifyClient_ConcurrentPushes(t *testing.T) {
	manager := NewManager(models.JWTConfig{Secret: "test-secret"})

	conn, received, cleanup := dialTestClient(t)
	defer cleanup()

	manager.AddClient(&models.WebSocketClient{UserID: "user-1", Conn: conn})

	// A booking acceptance pushes the status event and the system chat
	// message at nearly the same moment from separate consumers.
	const pushers = 32
	var wg sync.WaitGroup
	for i := 0; i < pushers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			manager.NotifyClient("user-1", constants.EventChatMessage, map[string]string{
				"content": "see you at the north lot",
			})
		}()
	}
	wg.Wait()

	for i := 0; i < pushers; i++ {
		select {
		case msg := <-received:
			assert.Equal(t, constants.EventChatMessage, msg.Event)
		case <-time.After(2 * time.Second):
			t.Fatalf("received only %d of %d frames", i, pushers)
		}
	}
}

func TestNotifyClient_OfflineUserDropped(t *testing.T) {
	manager := NewManager(models.JWTConfig{Secret: "test-secret"})

	assert.NotPanics(t, func() {
		manager.NotifyClient("nobody-here", constants.EventChatMessage, nil)
	})
}
