package webhook

import (
	"context"

	"wasender-gateway/pkg/wasender"

	log "github.com/sirupsen/logrus"
)

// LogHandler writes one structured log line per event. It is the default
// consumer when nothing else is wired in.
type LogHandler struct {
	logger *log.Logger
}

func NewLogHandler(logger *log.Logger) *LogHandler {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogHandler{logger: logger}
}

var _ wasender.Handler = (*LogHandler)(nil)

func (h *LogHandler) entry(ev wasender.Event) *log.Entry {
	fields := log.Fields{"event": ev.EventType()}
	if header := ev.Header(); header.SessionID != "" {
		fields["session_id"] = header.SessionID
	}
	return h.logger.WithFields(fields)
}

func chatIDs(chats []wasender.ChatEntry) []string {
	ids := make([]string, 0, len(chats))
	for _, chat := range chats {
		ids = append(ids, chat.ID)
	}
	return ids
}

func groupIDs(groups []wasender.GroupMetadata) []string {
	ids := make([]string, 0, len(groups))
	for _, group := range groups {
		ids = append(ids, group.JID)
	}
	return ids
}

func contactIDs(contacts []wasender.ContactEntry) []string {
	ids := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		ids = append(ids, contact.JID)
	}
	return ids
}

func (h *LogHandler) ChatsUpsert(_ context.Context, ev *wasender.ChatsUpsertEvent) error {
	h.entry(ev).WithField("chats", chatIDs(ev.Data)).Info("Chats upserted")
	return nil
}

func (h *LogHandler) ChatsUpdate(_ context.Context, ev *wasender.ChatsUpdateEvent) error {
	h.entry(ev).WithField("chats", chatIDs(ev.Data)).Info("Chats updated")
	return nil
}

func (h *LogHandler) ChatsDelete(_ context.Context, ev *wasender.ChatsDeleteEvent) error {
	h.entry(ev).WithField("chats", ev.Data).Info("Chats deleted")
	return nil
}

func (h *LogHandler) GroupsUpsert(_ context.Context, ev *wasender.GroupsUpsertEvent) error {
	h.entry(ev).WithField("groups", groupIDs(ev.Data)).Info("Groups upserted")
	return nil
}

func (h *LogHandler) GroupsUpdate(_ context.Context, ev *wasender.GroupsUpdateEvent) error {
	h.entry(ev).WithField("groups", groupIDs(ev.Data)).Info("Groups updated")
	return nil
}

func (h *LogHandler) GroupParticipantsUpdate(_ context.Context, ev *wasender.GroupParticipantsUpdateEvent) error {
	participants := make([]string, 0, len(ev.Data.Participants))
	for _, p := range ev.Data.Participants {
		participants = append(participants, p.ID())
	}
	h.entry(ev).WithFields(log.Fields{
		"group":        ev.Data.JID,
		"action":       ev.Data.Action,
		"participants": participants,
	}).Info("Group participants updated")
	return nil
}

func (h *LogHandler) ContactsUpsert(_ context.Context, ev *wasender.ContactsUpsertEvent) error {
	h.entry(ev).WithField("contacts", contactIDs(ev.Data)).Info("Contacts upserted")
	return nil
}

func (h *LogHandler) ContactsUpdate(_ context.Context, ev *wasender.ContactsUpdateEvent) error {
	h.entry(ev).WithField("contacts", contactIDs(ev.Data)).Info("Contacts updated")
	return nil
}

func (h *LogHandler) MessagesUpsert(_ context.Context, ev *wasender.MessagesUpsertEvent) error {
	msg := "Received message"
	if ev.Data.Key.Outgoing() {
		msg = "Sent message"
	}
	h.entry(ev).WithFields(log.Fields{
		"message_id": ev.Data.Key.ID,
		"remote_jid": ev.Data.Key.RemoteJID,
		"push_name":  ev.Data.PushName,
		"kind":       ev.Data.Message.Kind(),
	}).Info(msg)
	return nil
}

func (h *LogHandler) MessagesUpdate(_ context.Context, ev *wasender.MessagesUpdateEvent) error {
	for _, entry := range ev.Data {
		h.entry(ev).WithFields(log.Fields{
			"message_id": entry.Key.ID,
			"remote_jid": entry.Key.RemoteJID,
			"status":     entry.Update.Status,
		}).Info("Message status updated")
	}
	return nil
}

func (h *LogHandler) MessagesDelete(_ context.Context, ev *wasender.MessagesDeleteEvent) error {
	ids := make([]string, 0, len(ev.Data.Keys))
	for _, key := range ev.Data.Keys {
		ids = append(ids, key.ID)
	}
	h.entry(ev).WithField("message_ids", ids).Info("Messages deleted")
	return nil
}

func (h *LogHandler) MessagesReaction(_ context.Context, ev *wasender.MessagesReactionEvent) error {
	for _, entry := range ev.Data {
		h.entry(ev).WithFields(log.Fields{
			"message_id": entry.Reaction.Key.ID,
			"remote_jid": entry.Key.RemoteJID,
			"reaction":   entry.Reaction.Text,
		}).Info("Message reaction")
	}
	return nil
}

func (h *LogHandler) MessageReceiptUpdate(_ context.Context, ev *wasender.MessageReceiptUpdateEvent) error {
	for _, entry := range ev.Data {
		h.entry(ev).WithFields(log.Fields{
			"message_id": entry.Key.ID,
			"user_jid":   entry.Receipt.UserJID,
			"status":     entry.Receipt.Status,
		}).Info("Message receipt updated")
	}
	return nil
}

func (h *LogHandler) MessageSent(_ context.Context, ev *wasender.MessageSentEvent) error {
	h.entry(ev).WithFields(log.Fields{
		"message_id": ev.Data.Key.ID,
		"remote_jid": ev.Data.Key.RemoteJID,
		"status":     ev.Data.Status,
	}).Info("Message sent")
	return nil
}

func (h *LogHandler) SessionStatus(_ context.Context, ev *wasender.SessionStatusEvent) error {
	entry := h.entry(ev).WithField("status", ev.Data.Status)
	if ev.Data.Reason != "" {
		entry = entry.WithField("reason", ev.Data.Reason)
	}
	switch ev.Data.Status {
	case wasender.SessionLoggedOut, wasender.SessionExpired, wasender.SessionDisconnected:
		entry.Warn("Session status changed")
	default:
		entry.Info("Session status changed")
	}
	return nil
}

// QrCodeUpdated never logs the QR payload itself.
func (h *LogHandler) QrCodeUpdated(_ context.Context, ev *wasender.QrCodeUpdatedEvent) error {
	h.entry(ev).Info("QR code updated, waiting for scan")
	return nil
}
