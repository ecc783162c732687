package service

import (
	"tripplanner/internal/model"
	"tripplanner/internal/planner"
	"tripplanner/internal/repository"
)

// ChecklistService содержит бизнес-логику работы с чек-листом поездки.
type ChecklistService struct {
	checklistRepo *repository.ChecklistRepository
}

// NewChecklistService создает новый сервис чек-листа.
func NewChecklistService(checklistRepo *repository.ChecklistRepository) *ChecklistService {
	return &ChecklistService{checklistRepo: checklistRepo}
}

// List возвращает пункты чек-листа поездки в текущем порядке.
func (s *ChecklistService) List(tripID string) ([]model.ChecklistItem, error) {
	return s.checklistRepo.ListByTrip(tripID)
}

// SetDone выставляет флаг выполнения пункта.
func (s *ChecklistService) SetDone(itemID string, done bool) error {
	return s.checklistRepo.UpdateDone(itemID, done)
}

// Reorder переставляет пункт movedID на позицию пункта targetID и сохраняет
// новые порядковые номера по одной записи. Несуществующие или совпадающие
// идентификаторы - тихий no-op.
func (s *ChecklistService) Reorder(tripID, movedID, targetID string) ([]model.ChecklistItem, error) {
	items, err := s.checklistRepo.ListByTrip(tripID)
	if err != nil {
		return nil, err
	}
	reordered, changed := planner.ReorderChecklist(items, movedID, targetID)
	if !changed {
		return items, nil
	}
	for _, item := range reordered {
		if err := s.checklistRepo.UpdateOrder(item.ID, item.ItemOrder); err != nil {
			return nil, err
		}
	}
	return reordered, nil
}

// UpdateItem обновляет название и роль ответственного пункта.
func (s *ChecklistService) UpdateItem(itemID, title, assigneeRole string) error {
	return s.checklistRepo.UpdateFields(itemID, title, assigneeRole)
}

// DeleteItem удаляет пункт чек-листа.
func (s *ChecklistService) DeleteItem(itemID string) error {
	return s.checklistRepo.Delete(itemID)
}
