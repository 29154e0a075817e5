package handlers

import (
	"context"
	"log"
	"net/http"

	"clearpolicy-backend/models"
	"clearpolicy-backend/reading"
	"clearpolicy-backend/repository"
	"clearpolicy-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnswerHandler handles HTTP requests for policy queries
type AnswerHandler struct {
	answerService         *service.AnswerService
	disambiguationService *service.DisambiguationService
	conversationRepo      *repository.ConversationRepository
	messageRepo           *repository.MessageRepository
}

// NewAnswerHandler creates a new answer handler. Repositories may be nil
// when the server runs without a database; persistence is then skipped.
func NewAnswerHandler(
	answerService *service.AnswerService,
	disambiguationService *service.DisambiguationService,
	conversationRepo *repository.ConversationRepository,
	messageRepo *repository.MessageRepository,
) *AnswerHandler {
	return &AnswerHandler{
		answerService:         answerService,
		disambiguationService: disambiguationService,
		conversationRepo:      conversationRepo,
		messageRepo:           messageRepo,
	}
}

// QueryRequest represents the request body for a policy query
type QueryRequest struct {
	Query          string `json:"query" binding:"required"`
	ZipCode        string `json:"zip_code"`
	ReadingLevel   string `json:"reading_level"`
	ConversationID string `json:"conversation_id"`
}

// Query handles POST /api/query
func (h *AnswerHandler) Query(c *gin.Context) {
	var req QueryRequest
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

	level, ok := models.ParseReadingLevel(req.ReadingLevel)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_READING_LEVEL",
				"message": "reading_level must be 5, 8, or 12",
			},
		})
		return
	}

	// Clarify before synthesizing: a vague query costs one round trip,
	// not a wrong answer.
	disambiguation := h.disambiguationService.Disambiguate(c.Request.Context(), req.Query)
	if disambiguation.NeedsClarification {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"needs_clarification": true,
				"questions":           disambiguation.Questions,
			},
		})
		return
	}

	query := req.Query
	if disambiguation.RefinedQuery != "" {
		query = disambiguation.RefinedQuery
	}

	serviceReq := service.GeneratePolicyAnswerRequest{
		Query:   query,
		ZipCode: req.ZipCode,
	}

	result, err := h.answerService.GeneratePolicyAnswer(c.Request.Context(), serviceReq)
	if err != nil {
		code := "GENERATION_FAILED"
		status := http.StatusInternalServerError
		switch err {
		case service.ErrEmptyQuery:
			code = "EMPTY_QUERY"
			status = http.StatusBadRequest
		case service.ErrInvalidZipCode:
			code = "INVALID_ZIP_CODE"
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	summary := result.SummaryAt(level)
	sections, sources := service.MapAnswer(result.Answer)

	h.persistExchange(req.ConversationID, req.Query, result.Answer, summary)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"needs_clarification": false,
			"answer":              result.Answer,
			"summary":             summary,
			"sections":            sections,
			"sources":             sources,
			"resolver":            result.Resolver,
		},
	})
}

// FollowUpRequest represents the request body for a follow-up query
type FollowUpRequest struct {
	Query          string `json:"query" binding:"required"`
	ZipCode        string `json:"zip_code"`
	ReadingLevel   string `json:"reading_level"`
	ConversationID string `json:"conversation_id" binding:"required"`
}

// FollowUp handles POST /api/query/followup
func (h *AnswerHandler) FollowUp(c *gin.Context) {
	var req FollowUpRequest
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

	conversationID, err := uuid.Parse(req.ConversationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CONVERSATION_ID",
				"message": "Invalid conversation_id format",
			},
		})
		return
	}

	level, ok := models.ParseReadingLevel(req.ReadingLevel)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_READING_LEVEL",
				"message": "reading_level must be 5, 8, or 12",
			},
		})
		return
	}

	var history []models.Message
	if h.messageRepo != nil {
		recent, err := h.messageRepo.ListRecent(c.Request.Context(), conversationID, 6)
		if err != nil {
			log.Printf("Warning: failed to load history for %s: %v", conversationID, err)
		} else {
			for _, m := range recent {
				history = append(history, *m)
			}
		}
	}

	serviceReq := service.GenerateFollowUpRequest{
		Query:   req.Query,
		ZipCode: req.ZipCode,
		History: history,
	}

	result, err := h.answerService.GenerateFollowUpAnswer(c.Request.Context(), serviceReq)
	if err != nil {
		code := "GENERATION_FAILED"
		status := http.StatusInternalServerError
		switch err {
		case service.ErrEmptyQuery:
			code = "EMPTY_QUERY"
			status = http.StatusBadRequest
		case service.ErrInvalidZipCode:
			code = "INVALID_ZIP_CODE"
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	summary := service.SummaryAtLevel(result.Summary, level)
	sections, sources := service.MapAnswer(result.Answer)

	h.persistExchange(req.ConversationID, req.Query, result.Answer, summary)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"answer":              result.Answer,
			"summary":             summary,
			"sections":            sections,
			"sources":             sources,
			"suggested_questions": result.SuggestedQuestions,
		},
	})
}

// SimplifyRequest represents the request body for a standalone simplification
type SimplifyRequest struct {
	Text  string `json:"text" binding:"required"`
	Level string `json:"level"`
}

// Simplify handles POST /api/simplify
func (h *AnswerHandler) Simplify(c *gin.Context) {
	var req SimplifyRequest
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

	level, ok := models.ParseReadingLevel(req.Level)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_READING_LEVEL",
				"message": "level must be 5, 8, or 12",
			},
		})
		return
	}

	simplified := reading.Simplify(req.Text, level)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"text":  simplified,
			"level": level,
		},
	})
}

// persistExchange records a query/answer pair without blocking the response.
// Persistence failures are logged, never surfaced to the client.
func (h *AnswerHandler) persistExchange(conversationIDStr, query string, answer *models.Answer, summary models.SummaryLike) {
	if h.messageRepo == nil || conversationIDStr == "" {
		return
	}
	conversationID, err := uuid.Parse(conversationIDStr)
	if err != nil {
		log.Printf("Warning: skipping persistence, bad conversation id %q: %v", conversationIDStr, err)
		return
	}

	go func() {
		bgCtx := context.Background()

		userMsg := &models.Message{
			ConversationID: conversationID,
			Role:           models.RoleUser,
			Content:        query,
		}
		if err := h.messageRepo.Create(bgCtx, userMsg); err != nil {
			log.Printf("Warning: failed to persist user message: %v", err)
		}

		ratio := summary.SourceRatio
		assistantMsg := &models.Message{
			ConversationID: conversationID,
			Role:           models.RoleAssistant,
			Content:        answer.FullTextSummary,
			PolicyName:     &answer.PolicyName,
			SourceRatio:    &ratio,
			Sources:        answer.Sources,
		}
		if err := h.messageRepo.Create(bgCtx, assistantMsg); err != nil {
			log.Printf("Warning: failed to persist assistant message: %v", err)
		}

		if h.conversationRepo != nil {
			if err := h.conversationRepo.Touch(bgCtx, conversationID); err != nil {
				log.Printf("Warning: failed to touch conversation %s: %v", conversationID, err)
			}
		}
	}()
}
