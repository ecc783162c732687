package main

import (
	"log"
	"os"
	"path/filepath"

	"tripplanner/internal/handler"
	"tripplanner/internal/repository"
	"tripplanner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
)

func main() {
	db, err := sqlx.Connect("postgres", dsnFromEnv())
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	applyMigrations(db)

	// Инициализируем репозитории
	tripRepo := repository.NewTripRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Инициализируем сервисы
	tripService := service.NewTripService(tripRepo)
	itineraryService := service.NewItineraryService(tripRepo, activityRepo, blockRepo, checklistRepo, analyticsRepo)
	checklistService := service.NewChecklistService(checklistRepo)
	runsheetService := service.NewRunsheetService(blockRepo)
	catalogService := service.NewCatalogService(destinationRepo, activityRepo)
	sessionService := service.NewSessionService()
	expenseService := service.NewExpenseService(expenseRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(tripService, itineraryService, checklistService,
		runsheetService, catalogService, sessionService, expenseService)
	router := gin.Default()
	h.RegisterRoutes(router)

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Запускаем HTTP-сервер
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

// dsnFromEnv собирает строку подключения к Postgres из переменных окружения.
func dsnFromEnv() string {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	return "host=" + dbHost + " port=" + dbPort +
		" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASS") +
		" dbname=" + os.Getenv("DB_NAME") + " sslmode=disable"
}

// applyMigrations выполняет SQL-миграции из каталога migrations (если есть).
// Каждый файл выполняется в своей транзакции; ошибка логируется и не
// останавливает запуск.
func applyMigrations(db *sqlx.DB) {
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		return
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Printf("Миграция %s не прочитана: %v", file, err)
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			log.Printf("Ошибка при инициации транзакции миграции: %v", err)
			continue
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Printf("Миграция %s завершилась ошибкой: %v", file, err)
			continue
		}
		if err := tx.Commit(); err != nil {
			log.Printf("Миграция %s не зафиксирована: %v", file, err)
			continue
		}
		log.Printf("Миграция %s применена.", file)
	}
}
