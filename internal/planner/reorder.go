package planner

import (
	"time"

	"tripplanner/internal/model"
)

// ReorderChecklist перемещает пункт movedID на позицию пункта targetID
// и заново нумерует ItemOrder по новым позициям (0, 1, 2, ...).
// Если какой-то из идентификаторов не найден или они совпадают,
// операция считается no-op: возвращается исходный список и changed=false.
func ReorderChecklist(items []model.ChecklistItem, movedID, targetID string) ([]model.ChecklistItem, bool) {
	from, to := checklistIndex(items, movedID), checklistIndex(items, targetID)
	if from < 0 || to < 0 || from == to {
		return items, false
	}

	reordered := make([]model.ChecklistItem, 0, len(items))
	reordered = append(reordered, items[:from]...)
	reordered = append(reordered, items[from+1:]...)
	reordered = append(reordered[:to], append([]model.ChecklistItem{items[from]}, reordered[to:]...)...)

	for i := range reordered {
		reordered[i].ItemOrder = i
	}
	return reordered, true
}

// ReorderBlocks перемещает блок movedID на позицию блока targetID, нумерует
// BlockOrder заново и пересчитывает время так, чтобы цепочка блоков осталась
// хронологически непрерывной: первый блок сохраняет свое время (якорь),
// каждый следующий начинается через BufferMinutes после конца предыдущего,
// длительность каждого блока сохраняется. Привязка ко времени суток при этом
// не сохраняется: "утренний" блок после перестановки может оказаться вечером.
func ReorderBlocks(blocks []model.ItineraryBlock, movedID, targetID string) ([]model.ItineraryBlock, bool) {
	from, to := blockIndex(blocks, movedID), blockIndex(blocks, targetID)
	if from < 0 || to < 0 || from == to {
		return blocks, false
	}

	reordered := make([]model.ItineraryBlock, 0, len(blocks))
	reordered = append(reordered, blocks[:from]...)
	reordered = append(reordered, blocks[from+1:]...)
	reordered = append(reordered[:to], append([]model.ItineraryBlock{blocks[from]}, reordered[to:]...)...)

	for i := range reordered {
		reordered[i].BlockOrder = i
	}
	retime(reordered)
	return reordered, true
}

// retime выстраивает непрерывную цепочку времени, начиная от первого блока.
func retime(blocks []model.ItineraryBlock) {
	for i := 1; i < len(blocks); i++ {
		duration := blocks[i].Duration()
		blocks[i].StartTime = blocks[i-1].EndTime.Add(BufferMinutes * time.Minute)
		blocks[i].EndTime = blocks[i].StartTime.Add(duration)
	}
}

func checklistIndex(items []model.ChecklistItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func blockIndex(blocks []model.ItineraryBlock, id string) int {
	for i, block := range blocks {
		if block.ID == id {
			return i
		}
	}
	return -1
}
