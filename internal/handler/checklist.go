package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetChecklist обработчик для GET /api/trips/:id/checklist.
func (h *Handler) GetChecklist(c *gin.Context) {
	items, err := h.ChecklistService.List(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить чек-лист"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ReorderChecklist обработчик для POST /api/trips/:id/checklist/reorder.
func (h *Handler) ReorderChecklist(c *gin.Context) {
	var req struct {
		MovedID  string `json:"moved_id" binding:"required"`
		TargetID string `json:"target_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указаны идентификаторы пунктов"})
		return
	}
	items, err := h.ChecklistService.Reorder(c.Param("id"), req.MovedID, req.TargetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось переставить пункты"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// SetChecklistItemDone обработчик для PUT /api/checklist-items/:id/done.
func (h *Handler) SetChecklistItemDone(c *gin.Context) {
	var req struct {
		Done *bool `json:"done" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не указан флаг выполнения"})
		return
	}
	if err := h.ChecklistService.SetDone(c.Param("id"), *req.Done); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить пункт"})
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateChecklistItem обработчик для PATCH /api/checklist-items/:id.
func (h *Handler) UpdateChecklistItem(c *gin.Context) {
	var req struct {
		Title        string `json:"title" binding:"required"`
		AssigneeRole string `json:"assignee_role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные поля пункта"})
		return
	}
	if err := h.ChecklistService.UpdateItem(c.Param("id"), req.Title, req.AssigneeRole); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить пункт"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteChecklistItem обработчик для DELETE /api/checklist-items/:id.
func (h *Handler) DeleteChecklistItem(c *gin.Context) {
	if err := h.ChecklistService.DeleteItem(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить пункт"})
		return
	}
	c.Status(http.StatusNoContent)
}
