package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is a single negotiation thread between one buyer and one
// seller about one product. The composite unique index keeps at most one
// row per (product, buyer) pair; concurrent creates surface as a
// duplicate-key error that the repository resolves to the existing row.
type Conversation struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProductID string `gorm:"type:varchar(36);index:idx_product_buyer,unique;not null" json:"product_id"`
	BuyerID   string `gorm:"type:varchar(36);index:idx_product_buyer,unique;index;not null" json:"buyer_id"`
	SellerID  string `gorm:"type:varchar(36);index;not null" json:"seller_id"`

	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`

	LastMessageAt time.Time `gorm:"index" json:"last_message_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Conversation) TableName() string {
	return "conversations"
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// IsParticipant reports whether userID is the buyer or seller of the thread.
func (c *Conversation) IsParticipant(userID string) bool {
	return userID == c.BuyerID || userID == c.SellerID
}
