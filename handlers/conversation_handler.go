package handlers

import (
	"net/http"
	"strconv"

	"clearpolicy-backend/models"
	"clearpolicy-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConversationHandler handles HTTP requests for conversations
type ConversationHandler struct {
	conversationRepo *repository.ConversationRepository
	messageRepo      *repository.MessageRepository
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(
	conversationRepo *repository.ConversationRepository,
	messageRepo *repository.MessageRepository,
) *ConversationHandler {
	return &ConversationHandler{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

// CreateConversationRequest represents the request body for creating a conversation
type CreateConversationRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Title   string `json:"title"`
	ZipCode string `json:"zip_code"`
}

// CreateConversation handles POST /api/conversations
func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	var req CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_USER_ID",
				"message": "Invalid user_id format",
			},
		})
		return
	}

	title := req.Title
	if title == "" {
		title = "New conversation"
	}

	conversation := &models.Conversation{
		UserID: userID,
		Title:  title,
	}
	if req.ZipCode != "" {
		conversation.ZipCode = &req.ZipCode
	}

	if err := h.conversationRepo.Create(c.Request.Context(), conversation); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    conversation,
	})
}

// GetConversation handles GET /api/conversations/:id
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid conversation ID format",
			},
		})
		return
	}

	conversation, err := h.conversationRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Conversation not found",
			},
		})
		return
	}

	messages, err := h.messageRepo.ListByConversationID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"conversation": conversation,
			"messages":     messages,
		},
	})
}

// ListConversations handles GET /api/conversations?user_id=...
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	userIDStr := c.Query("user_id")
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_USER_ID",
				"message": "user_id query parameter is required",
			},
		})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}

	conversations, err := h.conversationRepo.ListByUserID(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    conversations,
	})
}

// ArchiveConversation handles DELETE /api/conversations/:id
func (h *ConversationHandler) ArchiveConversation(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid conversation ID format",
			},
		})
		return
	}

	if err := h.conversationRepo.Archive(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ARCHIVE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":       id,
			"archived": true,
		},
	})
}
