package wasender

import (
	"context"
	"fmt"
)

// Handler receives parsed events, one method per event type. Adding an event
// type to this package breaks every implementation until it is handled.
type Handler interface {
	ChatsUpsert(ctx context.Context, ev *ChatsUpsertEvent) error
	ChatsUpdate(ctx context.Context, ev *ChatsUpdateEvent) error
	ChatsDelete(ctx context.Context, ev *ChatsDeleteEvent) error
	GroupsUpsert(ctx context.Context, ev *GroupsUpsertEvent) error
	GroupsUpdate(ctx context.Context, ev *GroupsUpdateEvent) error
	GroupParticipantsUpdate(ctx context.Context, ev *GroupParticipantsUpdateEvent) error
	ContactsUpsert(ctx context.Context, ev *ContactsUpsertEvent) error
	ContactsUpdate(ctx context.Context, ev *ContactsUpdateEvent) error
	MessagesUpsert(ctx context.Context, ev *MessagesUpsertEvent) error
	MessagesUpdate(ctx context.Context, ev *MessagesUpdateEvent) error
	MessagesDelete(ctx context.Context, ev *MessagesDeleteEvent) error
	MessagesReaction(ctx context.Context, ev *MessagesReactionEvent) error
	MessageReceiptUpdate(ctx context.Context, ev *MessageReceiptUpdateEvent) error
	MessageSent(ctx context.Context, ev *MessageSentEvent) error
	SessionStatus(ctx context.Context, ev *SessionStatusEvent) error
	QrCodeUpdated(ctx context.Context, ev *QrCodeUpdatedEvent) error
}

// Dispatch calls the Handler method matching the concrete type of ev.
func Dispatch(ctx context.Context, ev Event, h Handler) error {
	switch ev := ev.(type) {
	case *ChatsUpsertEvent:
		return h.ChatsUpsert(ctx, ev)
	case *ChatsUpdateEvent:
		return h.ChatsUpdate(ctx, ev)
	case *ChatsDeleteEvent:
		return h.ChatsDelete(ctx, ev)
	case *GroupsUpsertEvent:
		return h.GroupsUpsert(ctx, ev)
	case *GroupsUpdateEvent:
		return h.GroupsUpdate(ctx, ev)
	case *GroupParticipantsUpdateEvent:
		return h.GroupParticipantsUpdate(ctx, ev)
	case *ContactsUpsertEvent:
		return h.ContactsUpsert(ctx, ev)
	case *ContactsUpdateEvent:
		return h.ContactsUpdate(ctx, ev)
	case *MessagesUpsertEvent:
		return h.MessagesUpsert(ctx, ev)
	case *MessagesUpdateEvent:
		return h.MessagesUpdate(ctx, ev)
	case *MessagesDeleteEvent:
		return h.MessagesDelete(ctx, ev)
	case *MessagesReactionEvent:
		return h.MessagesReaction(ctx, ev)
	case *MessageReceiptUpdateEvent:
		return h.MessageReceiptUpdate(ctx, ev)
	case *MessageSentEvent:
		return h.MessageSent(ctx, ev)
	case *SessionStatusEvent:
		return h.SessionStatus(ctx, ev)
	case *QrCodeUpdatedEvent:
		return h.QrCodeUpdated(ctx, ev)
	default:
		return fmt.Errorf("%w: %T", ErrUnhandledEvent, ev)
	}
}

// NopHandler ignores every event. Embed it to implement only some methods.
type NopHandler struct{}

func (NopHandler) ChatsUpsert(context.Context, *ChatsUpsertEvent) error   { return nil }
func (NopHandler) ChatsUpdate(context.Context, *ChatsUpdateEvent) error   { return nil }
func (NopHandler) ChatsDelete(context.Context, *ChatsDeleteEvent) error   { return nil }
func (NopHandler) GroupsUpsert(context.Context, *GroupsUpsertEvent) error { return nil }
func (NopHandler) GroupsUpdate(context.Context, *GroupsUpdateEvent) error { return nil }
func (NopHandler) GroupParticipantsUpdate(context.Context, *GroupParticipantsUpdateEvent) error {
	return nil
}
func (NopHandler) ContactsUpsert(context.Context, *ContactsUpsertEvent) error     { return nil }
func (NopHandler) ContactsUpdate(context.Context, *ContactsUpdateEvent) error     { return nil }
func (NopHandler) MessagesUpsert(context.Context, *MessagesUpsertEvent) error     { return nil }
func (NopHandler) MessagesUpdate(context.Context, *MessagesUpdateEvent) error     { return nil }
func (NopHandler) MessagesDelete(context.Context, *MessagesDeleteEvent) error     { return nil }
func (NopHandler) MessagesReaction(context.Context, *MessagesReactionEvent) error { return nil }
func (NopHandler) MessageReceiptUpdate(context.Context, *MessageReceiptUpdateEvent) error {
	return nil
}
func (NopHandler) MessageSent(context.Context, *MessageSentEvent) error     { return nil }
func (NopHandler) SessionStatus(context.Context, *SessionStatusEvent) error { return nil }
func (NopHandler) QrCodeUpdated(context.Context, *QrCodeUpdatedEvent) error { return nil }

var _ Handler = NopHandler{}
