package webhook

import (
	"errors"
	"net/http"

	"wasender-gateway/internal/config"
	"wasender-gateway/pkg/wasender"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Notifier receives every event that was accepted and handled.
type Notifier interface {
	NotifyEvent(ev wasender.Event)
}

type Handler struct {
	Config   *config.Config
	Events   wasender.Handler
	Notifier Notifier
}

func NewHandler(cfg *config.Config, events wasender.Handler, notifier Notifier) *Handler {
	return &Handler{
		Config:   cfg,
		Events:   events,
		Notifier: notifier,
	}
}

// HandleEvent serves POST /webhook. Unknown event types are acknowledged so
// the provider does not redeliver them; malformed payloads get a 400.
func (h *Handler) HandleEvent(c *gin.Context) {
	if !wasender.VerifyRequest(c.Request, h.Config.WebhookSecret) {
		log.WithField("client_ip", c.ClientIP()).Warn("Rejected webhook with invalid signature")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		log.WithError(err).Warn("Error reading webhook body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	ev, err := wasender.Parse(body)
	if err != nil {
		var schemaErr *wasender.SchemaValidationError
		switch {
		case wasender.IsUnknownEventType(err):
			log.WithError(err).Warn("Ignoring webhook with unknown event type")
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		case errors.As(err, &schemaErr):
			log.WithFields(log.Fields{
				"event": schemaErr.Event,
				"field": schemaErr.Field,
			}).WithError(err).Warn("Rejected malformed webhook")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": schemaErr.Field})
		default:
			log.WithError(err).Error("Unexpected webhook parse error")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	if err := wasender.Dispatch(c.Request.Context(), ev, h.Events); err != nil {
		log.WithFields(log.Fields{
			"event":      ev.EventType(),
			"session_id": ev.Header().SessionID,
		}).WithError(err).Error("Error handling webhook event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to handle event"})
		return
	}

	if h.Notifier != nil {
		h.Notifier.NotifyEvent(ev)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
