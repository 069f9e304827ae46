package models

import (
	"time"

	"github.com/google/uuid"
)

// SystemSenderID is the sender id used for non-human messages
const SystemSenderID = "system"

// MessageType distinguishes human messages from system notifications
type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeSystem MessageType = "system"
)

// Conversation is a persistent messaging thread between the two
// participants of a ride. Exactly one exists per unordered
// (participant, participant, ride) triple; the repository normalizes
// the pair so ParticipantA sorts before ParticipantB.
type Conversation struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	RideID          uuid.UUID  `json:"ride_id" db:"ride_id"`
	ParticipantA    uuid.UUID  `json:"-" db:"participant_a"`
	ParticipantB    uuid.UUID  `json:"-" db:"participant_b"`
	LastMessage     string     `json:"last_message" db:"last_message"`
	LastMessageTime *time.Time `json:"last_message_time,omitempty" db:"last_message_time"`
	UnreadA         int        `json:"-" db:"unread_a"`
	UnreadB         int        `json:"-" db:"unread_b"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`

	// Derived fields for API responses
	Participants []string       `json:"participants" db:"-"`
	UnreadCount  map[string]int `json:"unread_count" db:"-"`
}

// Hydrate populates the derived participant slice and unread map from
// the normalized columns.
func (c *Conversation) Hydrate() {
	c.Participants = []string{c.ParticipantA.String(), c.ParticipantB.String()}
	c.UnreadCount = map[string]int{
		c.ParticipantA.String(): c.UnreadA,
		c.ParticipantB.String(): c.UnreadB,
	}
}

// OtherParticipant returns the participant that is not the given user
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.ParticipantA == userID {
		return c.ParticipantB
	}
	return c.ParticipantA
}

// HasParticipant reports whether the user belongs to the conversation
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.ParticipantA == userID || c.ParticipantB == userID
}

// Message is an append-only chat entry. ReadBy always contains the
// sender immediately after send.
type Message struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	ConversationID uuid.UUID   `json:"conversation_id" db:"conversation_id"`
	SenderID       string      `json:"sender_id" db:"sender_id"`
	SenderName     string      `json:"sender_name" db:"sender_name"`
	Content        string      `json:"content" db:"content"`
	Type           MessageType `json:"type" db:"type"`
	SentAt         time.Time   `json:"sent_at" db:"sent_at"`
	ReadBy         []string    `json:"read_by" db:"-"`
}

// SendMessageRequest is the payload for posting a chat message
type SendMessageRequest struct {
	Content string `json:"content"`
}

// OpenConversationRequest identifies the peer and ride for a chat
type OpenConversationRequest struct {
	PeerID string `json:"peer_id"`
	RideID string `json:"ride_id"`
}

// ChatMessageEvent is published when a message is appended so the
// websocket hub can push it to connected participants.
type ChatMessageEvent struct {
	ConversationID string      `json:"conversation_id"`
	MessageID      string      `json:"message_id"`
	SenderID       string      `json:"sender_id"`
	SenderName     string      `json:"sender_name"`
	Content        string      `json:"content"`
	Type           MessageType `json:"type"`
	Recipients     []string    `json:"recipients"`
	SentAt         time.Time   `json:"sent_at"`
}
