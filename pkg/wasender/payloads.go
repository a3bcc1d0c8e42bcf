package wasender

import "errors"

// MessageKey identifies a single message within a chat.
type MessageKey struct {
	ID          string `json:"id"`
	FromMe      bool   `json:"fromMe"`
	RemoteJID   string `json:"remoteJid"`
	Participant string `json:"participant,omitempty"`
}

// Outgoing reports whether the message was sent by the session's own account.
func (k MessageKey) Outgoing() bool {
	return k.FromMe
}

type ChatEntry struct {
	ID                    string `json:"id"`
	Name                  string `json:"name,omitempty"`
	ConversationTimestamp *int64 `json:"conversationTimestamp,omitempty"`
	UnreadCount           *int64 `json:"unreadCount,omitempty"`
	MuteEndTime           *int64 `json:"muteEndTime,omitempty"`
	IsSpam                *bool  `json:"isSpam,omitempty"`
}

// GroupParticipant is a member of a group as reported by the groups API.
type GroupParticipant struct {
	ID    string `json:"id"`
	Admin string `json:"admin,omitempty"` // "admin", "superadmin" or empty
}

type GroupMetadata struct {
	JID          string             `json:"jid"`
	Subject      string             `json:"subject"`
	Creation     *int64             `json:"creation,omitempty"`
	Owner        string             `json:"owner,omitempty"`
	Desc         string             `json:"desc,omitempty"`
	Participants []GroupParticipant `json:"participants,omitempty"`
	Announce     *bool              `json:"announce,omitempty"`
	Restrict     *bool              `json:"restrict,omitempty"`
}

// ParticipantRef is an element of a participants update. The provider sends
// either a bare JID string or a full participant record.
type ParticipantRef struct {
	JID         string
	Participant *GroupParticipant
}

// ID returns the participant JID regardless of the wire form.
func (p ParticipantRef) ID() string {
	if p.Participant != nil {
		return p.Participant.ID
	}
	return p.JID
}

var errParticipantRef = errors.New("participant must be a JID string or an object")

func (p *ParticipantRef) UnmarshalJSON(b []byte) error {
	var jid string
	if err := wire.Unmarshal(b, &jid); err == nil {
		*p = ParticipantRef{JID: jid}
		return nil
	}

	if len(b) == 0 || b[0] != '{' {
		return errParticipantRef
	}
	var gp GroupParticipant
	if err := wire.Unmarshal(b, &gp); err != nil {
		return err
	}
	*p = ParticipantRef{JID: gp.ID, Participant: &gp}
	return nil
}

func (p ParticipantRef) MarshalJSON() ([]byte, error) {
	if p.Participant != nil {
		return wire.Marshal(p.Participant)
	}
	return wire.Marshal(p.JID)
}

type ParticipantAction string

const (
	ParticipantAdd     ParticipantAction = "add"
	ParticipantRemove  ParticipantAction = "remove"
	ParticipantPromote ParticipantAction = "promote"
	ParticipantDemote  ParticipantAction = "demote"
)

type GroupParticipantsUpdateData struct {
	JID          string            `json:"jid"`
	Participants []ParticipantRef  `json:"participants"`
	Action       ParticipantAction `json:"action" validate:"oneof=add remove promote demote"`
}

type ContactEntry struct {
	JID          string `json:"jid"`
	Name         string `json:"name,omitempty"`
	Notify       string `json:"notify,omitempty"`
	VerifiedName string `json:"verifiedName,omitempty"`
	Status       string `json:"status,omitempty"`
	ImgURL       string `json:"imgUrl,omitempty"`
}

// MessageContent holds at most one populated slot. Media slots are kept as
// raw maps; their layout is platform specific.
type MessageContent struct {
	Conversation    string         `json:"conversation,omitempty"`
	ImageMessage    map[string]any `json:"imageMessage,omitempty"`
	VideoMessage    map[string]any `json:"videoMessage,omitempty"`
	DocumentMessage map[string]any `json:"documentMessage,omitempty"`
	AudioMessage    map[string]any `json:"audioMessage,omitempty"`
	StickerMessage  map[string]any `json:"stickerMessage,omitempty"`
	ContactMessage  map[string]any `json:"contactMessage,omitempty"`
	LocationMessage map[string]any `json:"locationMessage,omitempty"`
}

// Kind names the populated slot using its wire name, or "" when empty.
func (m *MessageContent) Kind() string {
	if m == nil {
		return ""
	}
	switch {
	case m.Conversation != "":
		return "conversation"
	case m.ImageMessage != nil:
		return "imageMessage"
	case m.VideoMessage != nil:
		return "videoMessage"
	case m.DocumentMessage != nil:
		return "documentMessage"
	case m.AudioMessage != nil:
		return "audioMessage"
	case m.StickerMessage != nil:
		return "stickerMessage"
	case m.ContactMessage != nil:
		return "contactMessage"
	case m.LocationMessage != nil:
		return "locationMessage"
	}
	return ""
}

// Text returns the plain text of the message, falling back to a media caption.
func (m *MessageContent) Text() string {
	if m == nil {
		return ""
	}
	if m.Conversation != "" {
		return m.Conversation
	}
	for _, media := range []map[string]any{m.ImageMessage, m.VideoMessage, m.DocumentMessage} {
		if caption, ok := media["caption"].(string); ok {
			return caption
		}
	}
	return ""
}

type MessagesUpsertData struct {
	Key              MessageKey      `json:"key"`
	Message          *MessageContent `json:"message,omitempty"`
	PushName         string          `json:"pushName,omitempty"`
	MessageTimestamp *int64          `json:"messageTimestamp,omitempty"`
}

type MessageUpdate struct {
	Status string `json:"status"`
}

type MessagesUpdateDataEntry struct {
	Key    MessageKey    `json:"key"`
	Update MessageUpdate `json:"update"`
}

type MessagesDeleteData struct {
	Keys []MessageKey `json:"keys"`
}

type Reaction struct {
	Text              string     `json:"text"`
	Key               MessageKey `json:"key"`
	SenderTimestampMs string     `json:"senderTimestampMs,omitempty"`
	Read              *bool      `json:"read,omitempty"`
}

type MessagesReactionDataEntry struct {
	Key      MessageKey `json:"key"`
	Reaction Reaction   `json:"reaction"`
}

type Receipt struct {
	UserJID string `json:"userJid"`
	Status  string `json:"status"`
	T       *int64 `json:"t,omitempty"`
}

type MessageReceiptUpdateDataEntry struct {
	Key     MessageKey `json:"key"`
	Receipt Receipt    `json:"receipt"`
}

type MessageSentData struct {
	Key     MessageKey      `json:"key"`
	Message *MessageContent `json:"message,omitempty"`
	Status  string          `json:"status,omitempty"`
}

type SessionStatus string

const (
	SessionConnected    SessionStatus = "CONNECTED"
	SessionDisconnected SessionStatus = "DISCONNECTED"
	SessionNeedScan     SessionStatus = "NEED_SCAN"
	SessionConnecting   SessionStatus = "CONNECTING"
	SessionLoggedOut    SessionStatus = "LOGGED_OUT"
	SessionExpired      SessionStatus = "EXPIRED"
)

type SessionStatusData struct {
	Status    SessionStatus `json:"status" validate:"oneof=CONNECTED DISCONNECTED NEED_SCAN CONNECTING LOGGED_OUT EXPIRED"`
	SessionID string        `json:"sessionId,omitempty"`
	Reason    string        `json:"reason,omitempty"`
}

type QrCodeUpdatedData struct {
	QR        string `json:"qr"`
	SessionID string `json:"sessionId,omitempty"`
}

// Partial records carry *.update deltas where any field may be missing.
// Parse never produces them: the chats.update, groups.update and
// contacts.update payloads are decoded as full records. Consumers that keep
// chat, group or contact state decode a delta into a Partial record and merge
// it onto what they hold with Apply.

type PartialChatEntry struct {
	ID                    string `json:"id,omitempty"`
	Name                  string `json:"name,omitempty"`
	ConversationTimestamp *int64 `json:"conversationTimestamp,omitempty"`
	UnreadCount           *int64 `json:"unreadCount,omitempty"`
	MuteEndTime           *int64 `json:"muteEndTime,omitempty"`
	IsSpam                *bool  `json:"isSpam,omitempty"`
}

type PartialGroupMetadata struct {
	JID          string             `json:"jid,omitempty"`
	Subject      string             `json:"subject,omitempty"`
	Creation     *int64             `json:"creation,omitempty"`
	Owner        string             `json:"owner,omitempty"`
	Desc         string             `json:"desc,omitempty"`
	Participants []GroupParticipant `json:"participants,omitempty"`
	Announce     *bool              `json:"announce,omitempty"`
	Restrict     *bool              `json:"restrict,omitempty"`
}

type PartialContactEntry struct {
	JID          string `json:"jid,omitempty"`
	Name         string `json:"name,omitempty"`
	Notify       string `json:"notify,omitempty"`
	VerifiedName string `json:"verifiedName,omitempty"`
	Status       string `json:"status,omitempty"`
	ImgURL       string `json:"imgUrl,omitempty"`
}

// Apply copies every populated field of p onto c.
func (p PartialChatEntry) Apply(c *ChatEntry) {
	if p.ID != "" {
		c.ID = p.ID
	}
	if p.Name != "" {
		c.Name = p.Name
	}
	if p.ConversationTimestamp != nil {
		c.ConversationTimestamp = p.ConversationTimestamp
	}
	if p.UnreadCount != nil {
		c.UnreadCount = p.UnreadCount
	}
	if p.MuteEndTime != nil {
		c.MuteEndTime = p.MuteEndTime
	}
	if p.IsSpam != nil {
		c.IsSpam = p.IsSpam
	}
}

func (p PartialGroupMetadata) Apply(g *GroupMetadata) {
	if p.JID != "" {
		g.JID = p.JID
	}
	if p.Subject != "" {
		g.Subject = p.Subject
	}
	if p.Creation != nil {
		g.Creation = p.Creation
	}
	if p.Owner != "" {
		g.Owner = p.Owner
	}
	if p.Desc != "" {
		g.Desc = p.Desc
	}
	if p.Participants != nil {
		g.Participants = p.Participants
	}
	if p.Announce != nil {
		g.Announce = p.Announce
	}
	if p.Restrict != nil {
		g.Restrict = p.Restrict
	}
}

func (p PartialContactEntry) Apply(c *ContactEntry) {
	if p.JID != "" {
		c.JID = p.JID
	}
	if p.Name != "" {
		c.Name = p.Name
	}
	if p.Notify != "" {
		c.Notify = p.Notify
	}
	if p.VerifiedName != "" {
		c.VerifiedName = p.VerifiedName
	}
	if p.Status != "" {
		c.Status = p.Status
	}
	if p.ImgURL != "" {
		c.ImgURL = p.ImgURL
	}
}
