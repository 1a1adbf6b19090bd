package models

import "time"

// ContactMessage is a visitor submission. The log is append-only: rows are
// never updated or deleted, and CreatedAt is stamped server-side in UTC.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:120;not null" json:"email"`
	Subject   string    `gorm:"size:140;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (ContactMessage) TableName() string {
	return "contact_messages"
}
