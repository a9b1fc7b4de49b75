package handlers

import (
	"errors"
	"time"

	"github.com/SahniNitish/HCI-Project/internal/dto"
	"github.com/SahniNitish/HCI-Project/internal/models"
	"github.com/SahniNitish/HCI-Project/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
	logger         *zap.Logger
}

func NewExpenseHandler(expenseService *service.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		logger:         logger,
	}
}

func toExpenseResponse(exp *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:            exp.ID.String(),
		UserID:        exp.UserID.String(),
		Amount:        exp.Amount,
		Category:      exp.Category,
		Description:   exp.Description,
		Date:          exp.Date,
		AICategorized: exp.AICategorized,
		CreatedAt:     exp.CreatedAt.Format(time.RFC3339),
	}
}

// Create godoc
// @Summary Create an expense
// @Description Create an expense; an omitted category is AI-categorized
// @Tags expenses
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Success 200 {object} dto.ExpenseResponse
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	expense, err := h.expenseService.Create(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create expense",
		})
	}

	return c.JSON(toExpenseResponse(expense))
}

// List godoc
// @Summary List expenses
// @Description List the user's expenses, newest date first
// @Tags expenses
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	expenses, err := h.expenseService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list expenses",
		})
	}

	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		resp = append(resp, toExpenseResponse(exp))
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Security Bearer
// @Param id path string true "Expense ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Expense not found",
		})
	}

	if err := h.expenseService.Delete(c.Context(), expenseID, userID); err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Expense not found",
			})
		}
		h.logger.Error("Failed to delete expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete expense",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Expense deleted successfully",
	})
}
