package handler

import (
	"errors"
	"net/http"
	"time"

	"tripplanner/internal/service"

	"github.com/gin-gonic/gin"
)

// StartSession обработчик для POST /api/sessions - открывает сессию планирования.
func (h *Handler) StartSession(c *gin.Context) {
	token := h.SessionService.StartSession()
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// SelectDestination обработчик для PUT /api/sessions/:token/destination.
func (h *Handler) SelectDestination(c *gin.Context) {
	var req struct {
		DestinationID string `json:"destination_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указано направление"})
		return
	}
	if ok := h.SessionService.SetDestination(c.Param("token"), req.DestinationID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сессия не найдена"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectAttractions обработчик для PUT /api/sessions/:token/attractions.
func (h *Handler) SelectAttractions(c *gin.Context) {
	var req struct {
		AttractionIDs []string `json:"attraction_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный список достопримечательностей"})
		return
	}
	if ok := h.SessionService.SetAttractions(c.Param("token"), req.AttractionIDs); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Сессия не найдена"})
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateTrip обработчик для POST /api/trips - создает поездку из брифа.
// Выбор направления берется из сессии планирования по токену.
func (h *Handler) CreateTrip(c *gin.Context) {
	var req struct {
		SessionToken string        `json:"session_token"`
		Brief        service.Brief `json:"brief" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный бриф"})
		return
	}

	var selection service.Selection
	if req.SessionToken != "" {
		if sel, ok := h.SessionService.Selection(req.SessionToken); ok {
			selection = sel
		}
	}

	trip, err := h.TripService.CreateTrip(&req.Brief, selection)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать поездку"})
		return
	}
	if req.SessionToken != "" {
		h.SessionService.EndSession(req.SessionToken)
	}
	c.JSON(http.StatusCreated, gin.H{"trip": trip, "share_token": trip.ShareToken})
}

// GetTrip обработчик для GET /api/trips/:id.
func (h *Handler) GetTrip(c *gin.Context) {
	trip, err := h.TripService.GetTrip(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Поездка не найдена"})
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GetSharedTrip обработчик для GET /api/share/:token - поездка и маршрут
// по публичной ссылке (только чтение).
func (h *Handler) GetSharedTrip(c *gin.Context) {
	trip, err := h.TripService.GetByShareToken(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Поездка не найдена"})
		return
	}
	blocks, err := h.ItineraryService.GetOrGenerate(trip.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить маршрут"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip, "blocks": blocks})
}

// ListExpenses обработчик для GET /api/trips/:id/expenses.
func (h *Handler) ListExpenses(c *gin.Context) {
	expenses, total, err := h.ExpenseService.ListWithTotal(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить расходы"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses, "total": total})
}

// AddExpense обработчик для POST /api/trips/:id/expenses.
func (h *Handler) AddExpense(c *gin.Context) {
	var req struct {
		Description string    `json:"description" binding:"required"`
		Amount      float64   `json:"amount" binding:"required"`
		Category    string    `json:"category"`
		ExpenseDate time.Time `json:"expense_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный расход"})
		return
	}
	expense, err := h.ExpenseService.AddExpense(c.Param("id"), req.Description, req.Category, req.Amount, req.ExpenseDate)
	if err != nil {
		if errors.Is(err, service.ErrBadAmount) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить расход"})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

// isValidationError сообщает, относится ли ошибка к валидации брифа.
func isValidationError(err error) bool {
	for _, verr := range []error{
		service.ErrTitleRequired, service.ErrTitleTooLong, service.ErrDescTooLong,
		service.ErrBadParticipants, service.ErrBadBudgetLevel, service.ErrTooManyGoals,
		service.ErrEndBeforeStart,
	} {
		if errors.Is(err, verr) {
			return true
		}
	}
	return false
}
