package db

import "gorm.io/gorm"

type Repositories struct {
	Store     *KVRepository
	Reminders *ReminderRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Store:     NewKVRepository(database),
		Reminders: NewReminderRepository(database),
	}
}
