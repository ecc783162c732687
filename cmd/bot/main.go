package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"tripplanner/internal/repository"
	"tripplanner/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Telegram-бот ран-листа: показывает живой вид маршрута (сейчас/далее)
// и позволяет сдвигать блоки на +-15 минут прямо во время поездки.
func main() {
	// Подключение к базе данных
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "db"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort,
		os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_NAME"),
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}

	// Инициализация репозиториев и сервисов
	tripRepo := repository.NewTripRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	tripService := service.NewTripService(tripRepo)
	itineraryService := service.NewItineraryService(tripRepo, activityRepo, blockRepo, checklistRepo, analyticsRepo)
	runsheetService := service.NewRunsheetService(blockRepo)

	// Инициализация Telegram Bot API
	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal("Не указан токен бота (BOT_TOKEN)")
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Fatal("Ошибка инициализации бота:", err)
	}
	log.Printf("Запущен бот %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		// --- CallbackQuery (inline buttons) ---
		if cq := update.CallbackQuery; cq != nil {
			bot.Request(tgbotapi.NewCallback(cq.ID, ""))

			fromID := cq.From.ID
			data := cq.Data

			switch {
			// Показ ран-листа поездки
			case strings.HasPrefix(data, "TRIP_"):
				tripID := strings.TrimPrefix(data, "TRIP_")
				sendRunsheet(bot, fromID, tripID, tripService, runsheetService)

			// Сдвиг блока
			case strings.HasPrefix(data, "SHIFT_"):
				parts := strings.Split(strings.TrimPrefix(data, "SHIFT_"), "_")
				if len(parts) != 2 {
					continue
				}
				blockID := parts[0]
				minutes, _ := strconv.Atoi(parts[1])
				block, err := itineraryService.ShiftBlock(blockID, minutes)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(fromID, "Не удалось сдвинуть блок."))
					continue
				}
				bot.Send(tgbotapi.NewMessage(fromID, fmt.Sprintf(
					"Блок %q сдвинут на %+d мин.", block.Title, minutes)))
				sendRunsheet(bot, fromID, block.TripID, tripService, runsheetService)
			}

			continue
		}

		// --- Обычные сообщения ---
		if update.Message == nil {
			continue
		}
		msg := update.Message
		chatID := msg.Chat.ID

		if msg.IsCommand() {
			switch msg.Command() {
			case "start":
				bot.Send(tgbotapi.NewMessage(chatID,
					"Бот ран-листа поездок. /trips - список поездок, /runsheet <id> - живой вид маршрута."))

			case "trips":
				trips, err := tripService.ListTrips(10)
				if err != nil || len(trips) == 0 {
					bot.Send(tgbotapi.NewMessage(chatID, "Поездки не найдены."))
					continue
				}
				reply := tgbotapi.NewMessage(chatID, "Выберите поездку:")
				rows := [][]tgbotapi.InlineKeyboardButton{}
				for _, trip := range trips {
					rows = append(rows, tgbotapi.NewInlineKeyboardRow(
						tgbotapi.NewInlineKeyboardButtonData(trip.Title, "TRIP_"+trip.ID)))
				}
				reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
				bot.Send(reply)

			case "runsheet":
				tripID := strings.TrimSpace(msg.CommandArguments())
				if tripID == "" {
					bot.Send(tgbotapi.NewMessage(chatID, "Укажите ID поездки: /runsheet <id>."))
					continue
				}
				sendRunsheet(bot, chatID, tripID, tripService, runsheetService)

			default:
				bot.Send(tgbotapi.NewMessage(chatID, "Неизвестная команда. /trips или /runsheet <id>."))
			}
		}
	}
}

// sendRunsheet отправляет живой вид маршрута: сейчас/далее и все блоки
// со статусами, с кнопками сдвига для незавершенных блоков.
func sendRunsheet(bot *tgbotapi.BotAPI, chatID int64, tripID string,
	tripService *service.TripService, runsheetService *service.RunsheetService) {
	trip, err := tripService.GetTrip(tripID)
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "Поездка не найдена."))
		return
	}
	sheet, err := runsheetService.Snapshot(tripID)
	if err != nil {
		bot.Send(tgbotapi.NewMessage(chatID, "Не удалось получить ран-лист."))
		return
	}
	if len(sheet.Blocks) == 0 {
		bot.Send(tgbotapi.NewMessage(chatID, "Маршрут еще не сгенерирован."))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s*\n", trip.Title)
	if sheet.Current != nil {
		fmt.Fprintf(&sb, "Сейчас: %s (до %s)\n", sheet.Current.Title, sheet.Current.EndTime.Format("15:04"))
	} else {
		sb.WriteString("Сейчас: нет активного блока\n")
	}
	if sheet.Next != nil {
		fmt.Fprintf(&sb, "Далее: %s (в %s)\n", sheet.Next.Title, sheet.Next.StartTime.Format("15:04"))
	}
	sb.WriteString("\n")
	for _, block := range sheet.Blocks {
		fmt.Fprintf(&sb, "%s %s-%s %s\n",
			statusMark(block.Status),
			block.StartTime.Format("15:04"), block.EndTime.Format("15:04"), block.Title)
	}

	reply := tgbotapi.NewMessage(chatID, sb.String())
	reply.ParseMode = "Markdown"
	if sheet.Current != nil {
		btnPlus := tgbotapi.NewInlineKeyboardButtonData("+15 мин", fmt.Sprintf("SHIFT_%s_15", sheet.Current.ID))
		btnMinus := tgbotapi.NewInlineKeyboardButtonData("-15 мин", fmt.Sprintf("SHIFT_%s_-15", sheet.Current.ID))
		reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(btnPlus, btnMinus))
	}
	bot.Send(reply)
}

func statusMark(status string) string {
	switch status {
	case service.BlockCompleted:
		return "[x]"
	case service.BlockCurrent:
		return "[>]"
	default:
		return "[ ]"
	}
}
