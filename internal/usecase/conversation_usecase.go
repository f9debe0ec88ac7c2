package usecase

import (
	"context"

	"mfgmarket/internal/domain/entity"
	"mfgmarket/internal/domain/repository"
	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/logger"
)

type ConversationUseCase struct {
	conversationRepo repository.ConversationRepository
	productRepo      repository.ProductRepository
}

func NewConversationUseCase(conversationRepo repository.ConversationRepository, productRepo repository.ProductRepository) *ConversationUseCase {
	return &ConversationUseCase{
		conversationRepo: conversationRepo,
		productRepo:      productRepo,
	}
}

type SendMessageInput struct {
	Content  string
	Type     string                 // "text", "contact_share", "offer"
	Metadata map[string]interface{} // structured payload for contact_share and offer
}

// ConversationDetail is a thread with its messages and the viewer's unread
// count at read time.
type ConversationDetail struct {
	*entity.Conversation
	Messages []*entity.Message `json:"messages"`
}

type ConversationSummary struct {
	*entity.Conversation
	UnreadCount int64 `json:"unread_count"`
}

// CreateOrGet returns the single conversation for (product, buyer),
// creating it on first contact. Calling it again with the same arguments
// returns the existing thread unchanged.
func (uc *ConversationUseCase) CreateOrGet(ctx context.Context, productID, buyerID string) (*entity.Conversation, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product == nil {
		return nil, errors.NotFound("Product", err)
	}

	if existing, err := uc.conversationRepo.GetByProductAndBuyer(ctx, productID, buyerID); err == nil && existing != nil {
		return existing, nil
	}

	conversation := &entity.Conversation{
		ProductID: productID,
		BuyerID:   buyerID,
		SellerID:  product.SellerID,
	}

	created, err := uc.conversationRepo.Create(ctx, conversation)
	if err != nil {
		logger.Error("Conversation creation error: %v", err)
		return nil, errors.Internal("Failed to create conversation", err)
	}

	logger.Info("Conversation created/retrieved: %s", created.ID)
	return created, nil
}

// ListForUser returns every conversation where the user is buyer or
// seller, most recently active first, with per-thread unread counts.
func (uc *ConversationUseCase) ListForUser(ctx context.Context, userID string) ([]*ConversationSummary, error) {
	conversations, err := uc.conversationRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Error("Conversations retrieval error: %v", err)
		return nil, errors.Internal("Failed to retrieve conversations", err)
	}

	summaries := make([]*ConversationSummary, 0, len(conversations))
	for _, conversation := range conversations {
		unread, err := uc.conversationRepo.CountUnread(ctx, conversation.ID, userID)
		if err != nil {
			logger.Error("Unread count error for conversation %s: %v", conversation.ID, err)
			unread = 0
		}
		summaries = append(summaries, &ConversationSummary{
			Conversation: conversation,
			UnreadCount:  unread,
		})
	}

	return summaries, nil
}

// GetDetail returns the conversation with its messages. A requester who is
// not a participant gets NotFound, not Forbidden: existence is not
// disclosed to outsiders. Fetching marks every message addressed to the
// requester as read.
func (uc *ConversationUseCase) GetDetail(ctx context.Context, conversationID, requesterID string) (*ConversationDetail, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil || conversation == nil {
		return nil, errors.NotFound("Conversation", err)
	}

	if !conversation.IsParticipant(requesterID) {
		return nil, errors.NotFound("Conversation", nil)
	}

	if err := uc.conversationRepo.MarkMessagesRead(ctx, conversationID, requesterID); err != nil {
		logger.Error("Failed to mark messages read in conversation %s: %v", conversationID, err)
	}

	messages, err := uc.conversationRepo.ListMessages(ctx, conversationID)
	if err != nil {
		logger.Error("Messages retrieval error: %v", err)
		return nil, errors.Internal("Failed to retrieve conversation", err)
	}

	return &ConversationDetail{
		Conversation: conversation,
		Messages:     messages,
	}, nil
}

// SendMessage appends a message to the thread. Only the buyer or seller of
// the conversation may send; the new message starts unread for the
// counterpart.
func (uc *ConversationUseCase) SendMessage(ctx context.Context, conversationID, senderID string, input SendMessageInput) (*entity.Message, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil || conversation == nil {
		return nil, errors.NotFound("Conversation", err)
	}

	if !conversation.IsParticipant(senderID) {
		return nil, errors.Forbidden("Not authorized to send message in this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Type:           input.Type,
		Content:        input.Content,
		Metadata:       input.Metadata,
		IsRead:         false,
	}

	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		logger.Error("Message sending error: %v", err)
		return nil, errors.Internal("Failed to send message", err)
	}

	if err := uc.conversationRepo.TouchLastMessageAt(ctx, conversationID); err != nil {
		logger.Error("Failed to update conversation %s activity: %v", conversationID, err)
	}

	logger.Info("Message sent in conversation %s", conversationID)
	return message, nil
}
