package service

import (
	"sync"

	"github.com/google/uuid"
)

// Selection представляет выбор пользователя до подачи брифа:
// направление и отмеченные достопримечательности.
type Selection struct {
	DestinationID string   `json:"destination_id"`
	AttractionIDs []string `json:"attraction_ids"`
}

// SessionService хранит состояние сессий планирования в памяти.
// Выбор направления передается между шагами явным токеном сессии,
// а не глобальным состоянием.
type SessionService struct {
	mu         sync.Mutex
	selections map[string]Selection // токен сессии -> текущий выбор
}

// NewSessionService создает новый сервис сессий планирования.
func NewSessionService() *SessionService {
	return &SessionService{selections: make(map[string]Selection)}
}

// StartSession открывает новую сессию планирования и возвращает ее токен.
func (s *SessionService) StartSession() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.selections[token] = Selection{}
	s.mu.Unlock()
	return token
}

// SetDestination записывает выбранное направление и сбрасывает
// достопримечательности, выбранные для прежнего направления.
func (s *SessionService) SetDestination(token, destinationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selections[token]; !ok {
		return false
	}
	s.selections[token] = Selection{DestinationID: destinationID}
	return true
}

// SetAttractions записывает выбранные достопримечательности.
func (s *SessionService) SetAttractions(token string, attractionIDs []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	selection, ok := s.selections[token]
	if !ok {
		return false
	}
	selection.AttractionIDs = attractionIDs
	s.selections[token] = selection
	return true
}

// Selection возвращает текущий выбор сессии.
func (s *SessionService) Selection(token string) (Selection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	selection, ok := s.selections[token]
	return selection, ok
}

// EndSession закрывает сессию планирования (после создания поездки).
func (s *SessionService) EndSession(token string) {
	s.mu.Lock()
	delete(s.selections, token)
	s.mu.Unlock()
}
