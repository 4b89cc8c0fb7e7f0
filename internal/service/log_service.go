package service

import (
	"github.com/herbarium/herbarium-backend/internal/models"
)

type LogService struct {
	logs LogEventStore
}

func NewLogService(logs LogEventStore) *LogService {
	return &LogService{
		logs: logs,
	}
}

func (s *LogService) GetAll() ([]models.LogEvent, error) {
	return s.logs.GetAll()
}
