package handler

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/usecase"
	"mfgmarket/pkg/response"
)

type ConversationHandler struct {
	conversationUseCase *usecase.ConversationUseCase
}

func NewConversationHandler(conversationUseCase *usecase.ConversationUseCase) *ConversationHandler {
	return &ConversationHandler{
		conversationUseCase: conversationUseCase,
	}
}

type createConversationRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type sendMessageRequest struct {
	Content  string                 `json:"content" validate:"required_without=Metadata"`
	Type     string                 `json:"type" validate:"required,oneof=text contact_share offer"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// CreateConversation starts (or returns) the thread between the caller and
// the product's seller.
func (h *ConversationHandler) CreateConversation(c echo.Context) error {
	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	conversation, err := h.conversationUseCase.CreateOrGet(c.Request().Context(), req.ProductID, buyerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, conversation)
}

func (h *ConversationHandler) ListConversations(c echo.Context) error {
	userID := c.Get("uid").(string)

	conversations, err := h.conversationUseCase.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

// GetConversation returns the thread with messages; fetching marks the
// caller's incoming messages as read.
func (h *ConversationHandler) GetConversation(c echo.Context) error {
	conversationID := c.Param("id")
	userID := c.Get("uid").(string)

	detail, err := h.conversationUseCase.GetDetail(c.Request().Context(), conversationID, userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}

func (h *ConversationHandler) SendMessage(c echo.Context) error {
	conversationID := c.Param("id")
	userID := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.conversationUseCase.SendMessage(c.Request().Context(), conversationID, userID, usecase.SendMessageInput{
		Content:  req.Content,
		Type:     req.Type,
		Metadata: req.Metadata,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}
