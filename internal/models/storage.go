package models

import "time"

const (
	ReminderStatusPending   = "pending"
	ReminderStatusCancelled = "cancelled"
	ReminderStatusDelivered = "delivered"
	ReminderStatusFailed    = "failed"
)

// KVEntry backs the durable string-keyed store.
type KVEntry struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// Reminder is a one-shot local notification owned by the local platform.
type Reminder struct {
	ID          uint      `gorm:"primaryKey"`
	Handle      string    `gorm:"uniqueIndex;not null"`
	Title       string    `gorm:"not null"`
	Body        string    `gorm:"not null"`
	FireAt      time.Time `gorm:"not null;index"`
	Status      string    `gorm:"not null;default:pending;index"`
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
