package database

import "database/sql"

// memoryService backs the offline development mode. There is no
// connection to manage, so health is always up.
type memoryService struct{}

func NewMemory() Service {
	return memoryService{}
}

func (memoryService) Health() map[string]string {
	return map[string]string{
		"status": "up",
		"mode":   "memory",
	}
}

func (memoryService) DB() *sql.DB {
	return nil
}

func (memoryService) Close() error {
	return nil
}
