package wasender

// EventType is the value of the top-level "event" field of a webhook delivery.
type EventType string

const (
	// Chat events
	EventChatsUpsert EventType = "chats.upsert"
	EventChatsUpdate EventType = "chats.update"
	EventChatsDelete EventType = "chats.delete"

	// Group events
	EventGroupsUpsert            EventType = "groups.upsert"
	EventGroupsUpdate            EventType = "groups.update"
	EventGroupParticipantsUpdate EventType = "group-participants.update"

	// Contact events
	EventContactsUpsert EventType = "contacts.upsert"
	EventContactsUpdate EventType = "contacts.update"

	// Message events. messages.upsert carries fromMe to tell sent and received apart.
	EventMessagesUpsert   EventType = "messages.upsert"
	EventMessagesUpdate   EventType = "messages.update"
	EventMessagesDelete   EventType = "messages.delete"
	EventMessagesReaction EventType = "messages.reaction"

	EventMessageReceiptUpdate EventType = "message-receipt.update"

	// Session events
	EventMessageSent   EventType = "message.sent"
	EventSessionStatus EventType = "session.status"
	EventQrCodeUpdated EventType = "qrcode.updated"
)

var eventTypes = []EventType{
	EventChatsUpsert,
	EventChatsUpdate,
	EventChatsDelete,
	EventGroupsUpsert,
	EventGroupsUpdate,
	EventGroupParticipantsUpdate,
	EventContactsUpsert,
	EventContactsUpdate,
	EventMessagesUpsert,
	EventMessagesUpdate,
	EventMessagesDelete,
	EventMessagesReaction,
	EventMessageReceiptUpdate,
	EventMessageSent,
	EventSessionStatus,
	EventQrCodeUpdated,
}

// EventTypes returns every event type a delivery may carry.
func EventTypes() []EventType {
	out := make([]EventType, len(eventTypes))
	copy(out, eventTypes)
	return out
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	_, ok := variants[t]
	return ok
}

func (t EventType) String() string {
	return string(t)
}

// Envelope holds the fields shared by every delivery.
type Envelope struct {
	Event     EventType `json:"event"`
	Timestamp *int64    `json:"timestamp,omitempty"` // epoch seconds
	SessionID string    `json:"sessionId,omitempty"`
}

// Header returns the envelope itself so that any Event exposes it.
func (e *Envelope) Header() *Envelope {
	return e
}

// Event is one parsed webhook delivery. The concrete type is always one of
// the *...Event structs declared in this file.
type Event interface {
	EventType() EventType
	Header() *Envelope
	isEvent()
}

type ChatsUpsertEvent struct {
	Envelope
	Data []ChatEntry `json:"data"`
}

type ChatsUpdateEvent struct {
	Envelope
	Data []ChatEntry `json:"data"`
}

type ChatsDeleteEvent struct {
	Envelope
	Data []string `json:"data"` // chat JIDs
}

type GroupsUpsertEvent struct {
	Envelope
	Data []GroupMetadata `json:"data"`
}

type GroupsUpdateEvent struct {
	Envelope
	Data []GroupMetadata `json:"data"`
}

type GroupParticipantsUpdateEvent struct {
	Envelope
	Data GroupParticipantsUpdateData `json:"data"`
}

type ContactsUpsertEvent struct {
	Envelope
	Data []ContactEntry `json:"data"`
}

type ContactsUpdateEvent struct {
	Envelope
	Data []ContactEntry `json:"data"`
}

type MessagesUpsertEvent struct {
	Envelope
	Data MessagesUpsertData `json:"data"`
}

type MessagesUpdateEvent struct {
	Envelope
	Data []MessagesUpdateDataEntry `json:"data"`
}

type MessagesDeleteEvent struct {
	Envelope
	Data MessagesDeleteData `json:"data"`
}

type MessagesReactionEvent struct {
	Envelope
	Data []MessagesReactionDataEntry `json:"data"`
}

type MessageReceiptUpdateEvent struct {
	Envelope
	Data []MessageReceiptUpdateDataEntry `json:"data"`
}

type MessageSentEvent struct {
	Envelope
	Data MessageSentData `json:"data"`
}

type SessionStatusEvent struct {
	Envelope
	Data SessionStatusData `json:"data"`
}

type QrCodeUpdatedEvent struct {
	Envelope
	Data QrCodeUpdatedData `json:"data"`
}

func (*ChatsUpsertEvent) EventType() EventType             { return EventChatsUpsert }
func (*ChatsUpdateEvent) EventType() EventType             { return EventChatsUpdate }
func (*ChatsDeleteEvent) EventType() EventType             { return EventChatsDelete }
func (*GroupsUpsertEvent) EventType() EventType            { return EventGroupsUpsert }
func (*GroupsUpdateEvent) EventType() EventType            { return EventGroupsUpdate }
func (*GroupParticipantsUpdateEvent) EventType() EventType { return EventGroupParticipantsUpdate }
func (*ContactsUpsertEvent) EventType() EventType          { return EventContactsUpsert }
func (*ContactsUpdateEvent) EventType() EventType          { return EventContactsUpdate }
func (*MessagesUpsertEvent) EventType() EventType          { return EventMessagesUpsert }
func (*MessagesUpdateEvent) EventType() EventType          { return EventMessagesUpdate }
func (*MessagesDeleteEvent) EventType() EventType          { return EventMessagesDelete }
func (*MessagesReactionEvent) EventType() EventType        { return EventMessagesReaction }
func (*MessageReceiptUpdateEvent) EventType() EventType    { return EventMessageReceiptUpdate }
func (*MessageSentEvent) EventType() EventType             { return EventMessageSent }
func (*SessionStatusEvent) EventType() EventType           { return EventSessionStatus }
func (*QrCodeUpdatedEvent) EventType() EventType           { return EventQrCodeUpdated }

func (*ChatsUpsertEvent) isEvent()             {}
func (*ChatsUpdateEvent) isEvent()             {}
func (*ChatsDeleteEvent) isEvent()             {}
func (*GroupsUpsertEvent) isEvent()            {}
func (*GroupsUpdateEvent) isEvent()            {}
func (*GroupParticipantsUpdateEvent) isEvent() {}
func (*ContactsUpsertEvent) isEvent()          {}
func (*ContactsUpdateEvent) isEvent()          {}
func (*MessagesUpsertEvent) isEvent()          {}
func (*MessagesUpdateEvent) isEvent()          {}
func (*MessagesDeleteEvent) isEvent()          {}
func (*MessagesReactionEvent) isEvent()        {}
func (*MessageReceiptUpdateEvent) isEvent()    {}
func (*MessageSentEvent) isEvent()             {}
func (*SessionStatusEvent) isEvent()           {}
func (*QrCodeUpdatedEvent) isEvent()           {}
