package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wasender-gateway/pkg/wasender"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub, srv := startHub(t)
	first := dial(t, srv)
	second := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	ev, err := wasender.ParseString(`{"event":"qrcode.updated","sessionId":"s1","data":{"qr":"abc123"}}`)
	require.NoError(t, err)
	hub.NotifyEvent(ev)

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)

		var got struct {
			Type      string `json:"type"`
			SessionID string `json:"sessionId"`
			Data      struct {
				Event string `json:"event"`
				Data  struct {
					QR string `json:"qr"`
				} `json:"data"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, "qrcode.updated", got.Type)
		assert.Equal(t, "s1", got.SessionID)
		assert.Equal(t, "qrcode.updated", got.Data.Event)
		assert.Equal(t, "abc123", got.Data.Data.QR)
	}
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestNotifyEventWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ev, err := wasender.ParseString(`{"event":"chats.delete","data":["1@s.whatsapp.net"]}`)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.NotifyEvent(ev)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("NotifyEvent blocked with no running hub")
	}
}
