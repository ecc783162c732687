package service

import (
	"fmt"
	"log"
	"time"

	"tripplanner/internal/model"
	"tripplanner/internal/planner"
	"tripplanner/internal/repository"
)

// ItineraryService содержит бизнес-логику работы с маршрутом поездки:
// ленивую генерацию, перестановку блоков, добавление активностей и правки.
type ItineraryService struct {
	tripRepo      *repository.TripRepository
	activityRepo  *repository.ActivityRepository
	blockRepo     *repository.BlockRepository
	checklistRepo *repository.ChecklistRepository
	analyticsRepo *repository.AnalyticsRepository
}

// NewItineraryService создает новый сервис маршрутов.
func NewItineraryService(tripRepo *repository.TripRepository, activityRepo *repository.ActivityRepository,
	blockRepo *repository.BlockRepository, checklistRepo *repository.ChecklistRepository,
	analyticsRepo *repository.AnalyticsRepository) *ItineraryService {
	return &ItineraryService{
		tripRepo:      tripRepo,
		activityRepo:  activityRepo,
		blockRepo:     blockRepo,
		checklistRepo: checklistRepo,
		analyticsRepo: analyticsRepo,
	}
}

// GetOrGenerate возвращает блоки маршрута поездки. Если маршрут еще не
// строился, генерирует его из каталога активностей и сохраняет вместе
// с чек-листом. Ошибка записи не откатывает уже вставленные строки.
func (s *ItineraryService) GetOrGenerate(tripID string) ([]model.ItineraryBlock, error) {
	blocks, err := s.blockRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	if len(blocks) > 0 {
		return blocks, nil
	}

	trip, err := s.tripRepo.GetByID(tripID)
	if err != nil {
		return nil, fmt.Errorf("поездка не найдена: %w", err)
	}
	limit, err := planner.PoolLimit(trip)
	if err != nil {
		return nil, err
	}
	pool, err := s.activityRepo.FindByTagOverlap(trip.GoalTags, limit)
	if err != nil {
		return nil, err
	}

	generated, err := planner.GenerateItinerary(trip, pool)
	if err != nil {
		return nil, err
	}
	inserted, err := s.blockRepo.InsertBatch(generated)
	if err != nil {
		return nil, err
	}
	checklist := planner.SeedChecklist(tripID, inserted)
	if _, err := s.checklistRepo.InsertBatch(checklist); err != nil {
		return nil, err
	}

	s.trackEvent("itinerary_generated", tripID, model.Props{"blocks": len(inserted)})
	return inserted, nil
}

// Reorder переставляет блок movedID на позицию блока targetID и сохраняет
// новые порядок и время каждого блока по одной записи. Несуществующие или
// совпадающие идентификаторы - тихий no-op.
func (s *ItineraryService) Reorder(tripID, movedID, targetID string) ([]model.ItineraryBlock, error) {
	blocks, err := s.blockRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	reordered, changed := planner.ReorderBlocks(blocks, movedID, targetID)
	if !changed {
		return blocks, nil
	}
	for i := range reordered {
		if err := s.blockRepo.UpdateOrderAndTimes(&reordered[i]); err != nil {
			return nil, err
		}
	}
	return reordered, nil
}

// AddActivity добавляет активность в конец маршрута и создает пункты
// чек-листа подготовки к ней.
func (s *ItineraryService) AddActivity(tripID, activityID string) (*model.ItineraryBlock, []model.ChecklistItem, error) {
	activity, err := s.activityRepo.GetByID(activityID)
	if err != nil {
		return nil, nil, fmt.Errorf("активность не найдена: %w", err)
	}
	blocks, err := s.blockRepo.ListByTrip(tripID)
	if err != nil {
		return nil, nil, err
	}
	var lastBlock *model.ItineraryBlock
	if len(blocks) > 0 {
		lastBlock = &blocks[len(blocks)-1]
	}

	block, items := planner.AppendActivity(activity, tripID, lastBlock, time.Now())
	inserted, err := s.blockRepo.InsertBatch([]model.ItineraryBlock{block})
	if err != nil {
		return nil, nil, err
	}
	savedItems, err := s.checklistRepo.InsertBatch(items)
	if err != nil {
		return nil, nil, err
	}
	return &inserted[0], savedItems, nil
}

// ShiftBlock сдвигает блок на указанное число минут (вперед или назад).
func (s *ItineraryService) ShiftBlock(blockID string, minutes int) (*model.ItineraryBlock, error) {
	block, err := s.blockRepo.GetByID(blockID)
	if err != nil {
		return nil, fmt.Errorf("блок не найден: %w", err)
	}
	block.StartTime = block.StartTime.Add(time.Duration(minutes) * time.Minute)
	block.EndTime = block.EndTime.Add(time.Duration(minutes) * time.Minute)
	if err := s.blockRepo.UpdateTimes(block.ID, block.StartTime, block.EndTime); err != nil {
		return nil, err
	}
	s.trackEvent("block_shifted", block.TripID, model.Props{"block_id": blockID, "minutes": minutes})
	return block, nil
}

// UpdateBlock обновляет редактируемые поля блока.
func (s *ItineraryService) UpdateBlock(blockID, title, notes, location string) error {
	return s.blockRepo.UpdateFields(blockID, title, notes, location)
}

// DeleteBlock удаляет блок маршрута.
func (s *ItineraryService) DeleteBlock(blockID string) error {
	return s.blockRepo.Delete(blockID)
}

// trackEvent записывает событие аналитики. Ошибка записи не мешает
// основной операции, только логируется.
func (s *ItineraryService) trackEvent(name, tripID string, props model.Props) {
	if err := s.analyticsRepo.Insert(name, &tripID, props); err != nil {
		log.Printf("Событие аналитики %s не записано: %v", name, err)
	}
}
