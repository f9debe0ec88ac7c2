package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/domain/repository"
)

type gormConversationRepository struct {
	db *gorm.DB
}

func NewGormConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &gormConversationRepository{db: db}
}

// Create relies on the (product_id, buyer_id) unique index to dedupe
// concurrent creations: a duplicate-key conflict means another request won
// the race, so the existing row is fetched and returned.
func (r *gormConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
	if conversation.LastMessageAt.IsZero() {
		conversation.LastMessageAt = time.Now()
	}

	err := r.db.WithContext(ctx).Create(conversation).Error
	if err == nil {
		return conversation, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.GetByProductAndBuyer(ctx, conversation.ProductID, conversation.BuyerID)
	}

	return nil, err
}

func (r *gormConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	var conversation entity.Conversation
	if err := r.db.WithContext(ctx).First(&conversation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *gormConversationRepository) GetByProductAndBuyer(ctx context.Context, productID, buyerID string) (*entity.Conversation, error) {
	var conversation entity.Conversation
	err := r.db.WithContext(ctx).
		First(&conversation, "product_id = ? AND buyer_id = ?", productID, buyerID).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *gormConversationRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	var conversations []*entity.Conversation
	err := r.db.WithContext(ctx).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *gormConversationRepository) TouchLastMessageAt(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Conversation{}).
		Where("id = ?", id).
		UpdateColumn("last_message_at", time.Now()).Error
}

func (r *gormConversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListMessages returns the thread in creation order, primary key breaking
// timestamp ties.
func (r *gormConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkMessagesRead flips every unread message addressed to readerID.
// Messages the reader authored are untouched.
func (r *gormConversationRepository) MarkMessagesRead(ctx context.Context, conversationID, readerID string) error {
	return r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, readerID, false).
		UpdateColumn("is_read", true).Error
}

func (r *gormConversationRepository) CountUnread(ctx context.Context, conversationID, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("conversation_id = ? AND sender_id <> ? AND is_read = ?", conversationID, userID, false).
		Count(&count).Error
	return count, err
}
