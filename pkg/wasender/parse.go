package wasender

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

// wire matches object keys exactly as they are spelled on the wire, so
// "QR" never fills the qr field.
var wire = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
	CaseSensitive:          true,
}.Froze()

var validate = newValidator()

// newValidator reports field paths using json wire names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type variant struct {
	new   func() Event
	shape *shape
}

var variants = map[EventType]variant{
	EventChatsUpsert:             variantOf[ChatsUpsertEvent](),
	EventChatsUpdate:             variantOf[ChatsUpdateEvent](),
	EventChatsDelete:             variantOf[ChatsDeleteEvent](),
	EventGroupsUpsert:            variantOf[GroupsUpsertEvent](),
	EventGroupsUpdate:            variantOf[GroupsUpdateEvent](),
	EventGroupParticipantsUpdate: variantOf[GroupParticipantsUpdateEvent](),
	EventContactsUpsert:          variantOf[ContactsUpsertEvent](),
	EventContactsUpdate:          variantOf[ContactsUpdateEvent](),
	EventMessagesUpsert:          variantOf[MessagesUpsertEvent](),
	EventMessagesUpdate:          variantOf[MessagesUpdateEvent](),
	EventMessagesDelete:          variantOf[MessagesDeleteEvent](),
	EventMessagesReaction:        variantOf[MessagesReactionEvent](),
	EventMessageReceiptUpdate:    variantOf[MessageReceiptUpdateEvent](),
	EventMessageSent:             variantOf[MessageSentEvent](),
	EventSessionStatus:           variantOf[SessionStatusEvent](),
	EventQrCodeUpdated:           variantOf[QrCodeUpdatedEvent](),
}

func variantOf[T any, PT interface {
	*T
	Event
}]() variant {
	return variant{
		new:   func() Event { return PT(new(T)) },
		shape: shapeOf(reflect.TypeOf((*T)(nil)).Elem()),
	}
}

// Parse decodes a single webhook delivery body into its typed event.
//
// The returned error is either an *UnknownEventTypeError or a
// *SchemaValidationError. Fields not part of the schema are ignored; keys
// are matched case-sensitively.
func Parse(raw []byte) (Event, error) {
	var body map[string]any
	if err := wire.Unmarshal(raw, &body); err != nil || body == nil {
		return nil, &SchemaValidationError{Reason: "body is not a JSON object", Err: err}
	}

	tag, present := body["event"]
	name, isString := tag.(string)
	if !isString {
		if !present {
			return nil, &UnknownEventTypeError{}
		}
		out, _ := wire.MarshalToString(tag)
		return nil, &UnknownEventTypeError{Event: out}
	}
	eventType := EventType(name)
	v, ok := variants[eventType]
	if !ok {
		return nil, &UnknownEventTypeError{Event: name}
	}

	normalized, schemaErr := v.shape.check(body, "")
	if schemaErr != nil {
		schemaErr.Event = eventType
		return nil, schemaErr
	}
	canonical, err := wire.Marshal(normalized)
	if err != nil {
		return nil, &SchemaValidationError{Event: eventType, Reason: err.Error(), Err: err}
	}

	ev := v.new()
	if err := wire.Unmarshal(canonical, ev); err != nil {
		return nil, &SchemaValidationError{Event: eventType, Reason: err.Error(), Err: err}
	}
	if err := validate.Struct(ev); err != nil {
		return nil, validationError(eventType, err)
	}
	return ev, nil
}

// ParseString is Parse for callers holding the body as a string.
func ParseString(raw string) (Event, error) {
	return Parse([]byte(raw))
}

func validationError(eventType EventType, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &SchemaValidationError{Event: eventType, Reason: err.Error(), Err: err}
	}

	fe := fieldErrs[0]
	// Namespace starts with the Go type name of the event, e.g.
	// "SessionStatusEvent.data.status".
	_, field, _ := strings.Cut(fe.Namespace(), ".")

	var reason string
	switch fe.Tag() {
	case "oneof":
		reason = fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	default:
		reason = fmt.Sprintf("failed %q validation", fe.Tag())
	}
	return &SchemaValidationError{Event: eventType, Field: field, Reason: reason, Err: err}
}
