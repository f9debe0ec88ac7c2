package repository

import (
	"context"

	"mfgmarket/internal/domain/entity"
)

type ConversationRepository interface {
	// Create inserts a new conversation. When a concurrent request already
	// created the same (product, buyer) thread, the existing row is
	// returned instead of a duplicate-key error.
	Create(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error)
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	GetByProductAndBuyer(ctx context.Context, productID, buyerID string) (*entity.Conversation, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error)
	TouchLastMessageAt(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error)
	MarkMessagesRead(ctx context.Context, conversationID, readerID string) error
	CountUnread(ctx context.Context, conversationID, userID string) (int64, error)
}
