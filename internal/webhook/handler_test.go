package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wasender-gateway/internal/config"
	"wasender-gateway/pkg/wasender"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "whsec_test"

type recordingNotifier struct {
	events []wasender.Event
}

func (n *recordingNotifier) NotifyEvent(ev wasender.Event) {
	n.events = append(n.events, ev)
}

type sessionHandler struct {
	wasender.NopHandler
	statuses []wasender.SessionStatus
	err      error
}

func (h *sessionHandler) SessionStatus(_ context.Context, ev *wasender.SessionStatusEvent) error {
	h.statuses = append(h.statuses, ev.Data.Status)
	return h.err
}

func newTestRouter(events wasender.Handler, notifier Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&config.Config{WebhookSecret: secret}, events, notifier)
	r := gin.New()
	r.POST("/webhook", h.HandleEvent)
	return r
}

func post(r http.Handler, signature, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(wasender.SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

const sessionBody = `{"event":"session.status","sessionId":"s1","data":{"status":"CONNECTED"}}`

func TestHandleEventAccepted(t *testing.T) {
	events := &sessionHandler{}
	notifier := &recordingNotifier{}
	r := newTestRouter(events, notifier)

	w := post(r, secret, sessionBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
	assert.Equal(t, []wasender.SessionStatus{wasender.SessionConnected}, events.statuses)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, wasender.EventSessionStatus, notifier.events[0].EventType())
}

func TestHandleEventRejectsBadSignature(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{name: "missing", signature: ""},
		{name: "wrong", signature: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &sessionHandler{}
			notifier := &recordingNotifier{}
			r := newTestRouter(events, notifier)

			w := post(r, tt.signature, sessionBody)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Empty(t, events.statuses)
			assert.Empty(t, notifier.events)
		})
	}
}

func TestHandleEventRejectsAllWhenSecretUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(&config.Config{}, wasender.NopHandler{}, nil)
	r := gin.New()
	r.POST("/webhook", h.HandleEvent)

	w := post(r, "", sessionBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleEventIgnoresUnknownEventType(t *testing.T) {
	notifier := &recordingNotifier{}
	r := newTestRouter(wasender.NopHandler{}, notifier)

	w := post(r, secret, `{"event":"calls.incoming","data":{}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ignored", decodeBody(t, w)["status"])
	assert.Empty(t, notifier.events)
}

func TestHandleEventRejectsMalformedPayload(t *testing.T) {
	notifier := &recordingNotifier{}
	r := newTestRouter(wasender.NopHandler{}, notifier)

	w := post(r, secret, `{"event":"messages.upsert","data":{"key":{"fromMe":false,"remoteJid":"1@s.whatsapp.net"}}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "data.key.id", decodeBody(t, w)["field"])
	assert.Empty(t, notifier.events)
}

func TestHandleEventHandlerFailure(t *testing.T) {
	events := &sessionHandler{err: errors.New("downstream unavailable")}
	notifier := &recordingNotifier{}
	r := newTestRouter(events, notifier)

	w := post(r, secret, sessionBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, notifier.events)

	// A failed delivery does not affect the next one.
	events.err = nil
	w = post(r, secret, sessionBody)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, notifier.events, 1)
}
