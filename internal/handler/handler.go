package handler

import (
	"net/http"

	"tripplanner/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler структурирует зависимости сервисов для обработки HTTP-запросов.
type Handler struct {
	TripService      *service.TripService
	ItineraryService *service.ItineraryService
	ChecklistService *service.ChecklistService
	RunsheetService  *service.RunsheetService
	CatalogService   *service.CatalogService
	SessionService   *service.SessionService
	ExpenseService   *service.ExpenseService
}

// NewHandler создает новый Handler с внедрением зависимостей (сервисов).
func NewHandler(ts *service.TripService, is *service.ItineraryService, cs *service.ChecklistService,
	rs *service.RunsheetService, cat *service.CatalogService, ss *service.SessionService,
	es *service.ExpenseService) *Handler {
	return &Handler{
		TripService:      ts,
		ItineraryService: is,
		ChecklistService: cs,
		RunsheetService:  rs,
		CatalogService:   cat,
		SessionService:   ss,
		ExpenseService:   es,
	}
}

// RegisterRoutes регистрирует все маршруты API.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/destinations", h.ListDestinations)
		api.GET("/destinations/:id", h.GetDestination)
		api.GET("/activities", h.ListActivities)

		api.POST("/sessions", h.StartSession)
		api.PUT("/sessions/:token/destination", h.SelectDestination)
		api.PUT("/sessions/:token/attractions", h.SelectAttractions)

		api.POST("/trips", h.CreateTrip)
		api.GET("/trips/:id", h.GetTrip)
		api.GET("/trips/:id/itinerary", h.GetItinerary)
		api.POST("/trips/:id/itinerary/reorder", h.ReorderItinerary)
		api.POST("/trips/:id/itinerary/activities", h.AddActivityToItinerary)
		api.GET("/trips/:id/runsheet", h.GetRunsheet)
		api.GET("/trips/:id/checklist", h.GetChecklist)
		api.POST("/trips/:id/checklist/reorder", h.ReorderChecklist)
		api.GET("/trips/:id/expenses", h.ListExpenses)
		api.POST("/trips/:id/expenses", h.AddExpense)

		api.PATCH("/blocks/:id", h.UpdateBlock)
		api.POST("/blocks/:id/shift", h.ShiftBlock)
		api.DELETE("/blocks/:id", h.DeleteBlock)

		api.PATCH("/checklist-items/:id", h.UpdateChecklistItem)
		api.PUT("/checklist-items/:id/done", h.SetChecklistItemDone)
		api.DELETE("/checklist-items/:id", h.DeleteChecklistItem)

		api.GET("/share/:token", h.GetSharedTrip)
	}
}

// ListDestinations обработчик для GET /api/destinations - каталог направлений.
func (h *Handler) ListDestinations(c *gin.Context) {
	destinations, err := h.CatalogService.ListDestinations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить направления"})
		return
	}
	c.JSON(http.StatusOK, destinations)
}

// GetDestination обработчик для GET /api/destinations/:id - направление с достопримечательностями.
func (h *Handler) GetDestination(c *gin.Context) {
	destination, attractions, err := h.CatalogService.GetDestination(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Направление не найдено"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": destination, "attractions": attractions})
}

// ListActivities обработчик для GET /api/activities - библиотека активностей.
func (h *Handler) ListActivities(c *gin.Context) {
	activities, err := h.CatalogService.SearchActivities(c.Query("category"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить активности"})
		return
	}
	c.JSON(http.StatusOK, activities)
}
