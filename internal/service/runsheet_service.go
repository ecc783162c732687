package service

import (
	"time"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// Статусы блока в ран-листе относительно текущего момента.
const (
	BlockCompleted = "completed"
	BlockCurrent   = "current"
	BlockUpcoming  = "upcoming"
)

// Runsheet представляет живой вид маршрута: все блоки со статусами
// и указатели на текущий и следующий блоки.
type Runsheet struct {
	Blocks   []RunsheetBlock       `json:"blocks"`
	Current  *model.ItineraryBlock `json:"current,omitempty"`
	Next     *model.ItineraryBlock `json:"next,omitempty"`
	Observed time.Time             `json:"observed"`
}

// RunsheetBlock представляет блок маршрута вместе с его статусом.
type RunsheetBlock struct {
	model.ItineraryBlock
	Status string `json:"status"`
}

// BlockStatus возвращает статус блока относительно момента now.
func BlockStatus(block *model.ItineraryBlock, now time.Time) string {
	if block.EndTime.Before(now) {
		return BlockCompleted
	}
	if !block.StartTime.After(now) {
		return BlockCurrent
	}
	return BlockUpcoming
}

// BuildRunsheet собирает ран-лист из блоков на момент now: текущий блок -
// первый со статусом current, следующий - первый upcoming.
func BuildRunsheet(blocks []model.ItineraryBlock, now time.Time) *Runsheet {
	sheet := &Runsheet{Observed: now}
	for i := range blocks {
		status := BlockStatus(&blocks[i], now)
		sheet.Blocks = append(sheet.Blocks, RunsheetBlock{ItineraryBlock: blocks[i], Status: status})
		if status == BlockCurrent && sheet.Current == nil {
			sheet.Current = &blocks[i]
		}
		if status == BlockUpcoming && sheet.Next == nil {
			sheet.Next = &blocks[i]
		}
	}
	return sheet
}

// RunsheetService строит живой вид маршрута поездки.
type RunsheetService struct {
	blockRepo *repository.BlockRepository
}

// NewRunsheetService создает новый сервис ран-листа.
func NewRunsheetService(blockRepo *repository.BlockRepository) *RunsheetService {
	return &RunsheetService{blockRepo: blockRepo}
}

// Snapshot возвращает ран-лист поездки на текущий момент.
func (s *RunsheetService) Snapshot(tripID string) (*Runsheet, error) {
	blocks, err := s.blockRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	return BuildRunsheet(blocks, time.Now()), nil
}
