package entity

import "time"

const (
	MessageTypeText         = "text"
	MessageTypeContactShare = "contact_share"
	MessageTypeOffer        = "offer"
)

// Message is immutable once created. The auto-incrementing primary key
// gives a stable total order within a conversation; created_at alone is
// not monotonic under concurrent inserts.
//
// IsRead is the read-state of the counterpart: the sender's own copy is
// read by definition the moment it is written.
type Message struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ConversationID string `gorm:"type:varchar(36);index;not null" json:"conversation_id"`
	SenderID       string `gorm:"type:varchar(36);index;not null" json:"sender_id"`

	Type    string `gorm:"size:20;not null;default:text" json:"type"` // "text", "contact_share", "offer"
	Content string `gorm:"size:5000" json:"content,omitempty"`
	// Metadata carries the structured payload of contact_share and offer
	// messages. The engine stores and returns it opaquely.
	Metadata map[string]interface{} `gorm:"serializer:json" json:"metadata,omitempty"`

	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
