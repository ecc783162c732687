package handler

import (
	"errors"
	"net/http"

	"tripplanner/internal/planner"

	"github.com/gin-gonic/gin"
)

// GetItinerary обработчик для GET /api/trips/:id/itinerary.
// При первом обращении генерирует маршрут и чек-лист.
func (h *Handler) GetItinerary(c *gin.Context) {
	blocks, err := h.ItineraryService.GetOrGenerate(c.Param("id"))
	if err != nil {
		if errors.Is(err, planner.ErrInvalidDateRange) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить маршрут"})
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// ReorderItinerary обработчик для POST /api/trips/:id/itinerary/reorder.
// Перемещает блок и пересчитывает время всей цепочки.
func (h *Handler) ReorderItinerary(c *gin.Context) {
	var req struct {
		MovedID  string `json:"moved_id" binding:"required"`
		TargetID string `json:"target_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указаны идентификаторы блоков"})
		return
	}
	blocks, err := h.ItineraryService.Reorder(c.Param("id"), req.MovedID, req.TargetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось переставить блоки"})
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// AddActivityToItinerary обработчик для POST /api/trips/:id/itinerary/activities.
func (h *Handler) AddActivityToItinerary(c *gin.Context) {
	var req struct {
		ActivityID string `json:"activity_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указана активность"})
		return
	}
	block, items, err := h.ItineraryService.AddActivity(c.Param("id"), req.ActivityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось добавить активность"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"block": block, "checklist_items": items})
}

// GetRunsheet обработчик для GET /api/trips/:id/runsheet - живой вид маршрута.
func (h *Handler) GetRunsheet(c *gin.Context) {
	sheet, err := h.RunsheetService.Snapshot(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить ран-лист"})
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// UpdateBlock обработчик для PATCH /api/blocks/:id.
func (h *Handler) UpdateBlock(c *gin.Context) {
	var req struct {
		Title    string `json:"title" binding:"required"`
		Notes    string `json:"notes"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные поля блока"})
		return
	}
	if err := h.ItineraryService.UpdateBlock(c.Param("id"), req.Title, req.Notes, req.Location); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить блок"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ShiftBlock обработчик для POST /api/blocks/:id/shift - сдвиг блока в ран-листе.
func (h *Handler) ShiftBlock(c *gin.Context) {
	var req struct {
		Minutes int `json:"minutes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указан сдвиг в минутах"})
		return
	}
	block, err := h.ItineraryService.ShiftBlock(c.Param("id"), req.Minutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сдвинуть блок"})
		return
	}
	c.JSON(http.StatusOK, block)
}

// DeleteBlock обработчик для DELETE /api/blocks/:id.
func (h *Handler) DeleteBlock(c *gin.Context) {
	if err := h.ItineraryService.DeleteBlock(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить блок"})
		return
	}
	c.Status(http.StatusNoContent)
}
