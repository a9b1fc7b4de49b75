package handlers

import (
	"time"

	"github.com/SahniNitish/HCI-Project/internal/dto"
	"github.com/SahniNitish/HCI-Project/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdvisorHandler struct {
	advisorService *service.AdvisorService
	logger         *zap.Logger
}

func NewAdvisorHandler(advisorService *service.AdvisorService, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService: advisorService,
		logger:         logger,
	}
}

// FinancialAdvice godoc
// @Summary Generate financial advice
// @Description Summarize recent spending into tips; persists an insight
// @Tags ai
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AdviceResponse
// @Router /api/ai/financial-advice [get]
func (h *AdvisorHandler) FinancialAdvice(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	advice := h.advisorService.Advise(c.Context(), userID)

	return c.JSON(dto.AdviceResponse{Advice: advice})
}

// Insights godoc
// @Summary List AI insights
// @Description Last 10 insights, newest first
// @Tags ai
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.InsightResponse
// @Router /api/ai/insights [get]
func (h *AdvisorHandler) Insights(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	insights, err := h.advisorService.History(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list insights", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list insights",
		})
	}

	resp := make([]dto.InsightResponse, 0, len(insights))
	for _, insight := range insights {
		resp = append(resp, dto.InsightResponse{
			ID:          insight.ID.String(),
			UserID:      insight.UserID.String(),
			InsightType: insight.InsightType,
			Content:     insight.Content,
			GeneratedAt: insight.GeneratedAt.Format(time.RFC3339),
			Month:       insight.Month,
			Year:        insight.Year,
		})
	}

	return c.JSON(resp)
}
