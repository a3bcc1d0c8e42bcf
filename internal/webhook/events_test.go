package webhook

import (
	"context"
	"testing"

	"wasender-gateway/pkg/wasender"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchBody(t *testing.T, h wasender.Handler, body string) {
	ev, err := wasender.ParseString(body)
	require.NoError(t, err)
	require.NoError(t, wasender.Dispatch(context.Background(), ev, h))
}

func TestLogHandlerMessagesUpsert(t *testing.T) {
	logger, hook := test.NewNullLogger()
	h := NewLogHandler(logger)

	dispatchBody(t, h, `{"event":"messages.upsert","sessionId":"s1","data":{
		"key":{"id":"A1","fromMe":true,"remoteJid":"1@s.whatsapp.net"},
		"message":{"imageMessage":{"caption":"look"}},"pushName":"Ann"}}`)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Sent message", entry.Message)
	assert.Equal(t, log.InfoLevel, entry.Level)
	assert.Equal(t, wasender.EventMessagesUpsert, entry.Data["event"])
	assert.Equal(t, "s1", entry.Data["session_id"])
	assert.Equal(t, "A1", entry.Data["message_id"])
	assert.Equal(t, "imageMessage", entry.Data["kind"])
}

func TestLogHandlerOneLinePerEntry(t *testing.T) {
	logger, hook := test.NewNullLogger()
	h := NewLogHandler(logger)

	dispatchBody(t, h, `{"event":"messages.update","data":[
		{"key":{"id":"A1","fromMe":false,"remoteJid":"1@s.whatsapp.net"},"update":{"status":"DELIVERED"}},
		{"key":{"id":"A2","fromMe":false,"remoteJid":"1@s.whatsapp.net"},"update":{"status":"READ"}}]}`)

	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, "DELIVERED", hook.AllEntries()[0].Data["status"])
	assert.Equal(t, "READ", hook.AllEntries()[1].Data["status"])
	_, hasSession := hook.AllEntries()[0].Data["session_id"]
	assert.False(t, hasSession)
}

func TestLogHandlerSessionStatusLevels(t *testing.T) {
	tests := []struct {
		status string
		level  log.Level
	}{
		{status: "CONNECTED", level: log.InfoLevel},
		{status: "NEED_SCAN", level: log.InfoLevel},
		{status: "LOGGED_OUT", level: log.WarnLevel},
		{status: "EXPIRED", level: log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			dispatchBody(t, NewLogHandler(logger), `{"event":"session.status","data":{"status":"`+tt.status+`","reason":"r"}}`)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, "r", entry.Data["reason"])
		})
	}
}

func TestLogHandlerDoesNotLogQrPayload(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dispatchBody(t, NewLogHandler(logger), `{"event":"qrcode.updated","data":{"qr":"secret-qr"}}`)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	for _, v := range entry.Data {
		assert.NotEqual(t, "secret-qr", v)
	}
	assert.NotContains(t, entry.Message, "secret-qr")
}

func TestLogHandlerGroupParticipants(t *testing.T) {
	logger, hook := test.NewNullLogger()
	dispatchBody(t, NewLogHandler(logger), `{"event":"group-participants.update","data":{"jid":"g@g.us",
		"participants":["1@s.whatsapp.net",{"id":"2@s.whatsapp.net"}],"action":"remove"}}`)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, wasender.ParticipantRemove, entry.Data["action"])
	assert.Equal(t, []string{"1@s.whatsapp.net", "2@s.whatsapp.net"}, entry.Data["participants"])
}
