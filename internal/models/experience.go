package models

import (
	"time"

	"gorm.io/gorm"

	"portfolio/internal/validation"
)

// Experience is a work-history entry. Highlights are stored as a single
// delimiter-joined column and served as an ordered list; the AfterFind hook
// keeps the two in sync on every read.
type Experience struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Company   string `gorm:"size:140;not null" json:"company"`
	Role      string `gorm:"size:140;not null" json:"role"`
	StartDate string `gorm:"size:40;not null" json:"start_date"`
	EndDate   string `gorm:"size:40;not null" json:"end_date"`
	Location  string `gorm:"size:120;not null" json:"location"`
	// Highlights holds the "||"-joined storage encoding.
	Highlights string `gorm:"type:text;not null" json:"-"`
	// HighlightList is the decoded, ordered form served to clients.
	HighlightList []string  `gorm:"-" json:"highlights"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Experience) TableName() string {
	return "experiences"
}

// AfterFind decodes the stored highlights column into the list form.
func (e *Experience) AfterFind(*gorm.DB) error {
	e.HighlightList = validation.SplitHighlights(e.Highlights)
	return nil
}

// SetHighlights stores the ordered list and its storage encoding together.
func (e *Experience) SetHighlights(highlights []string) {
	e.HighlightList = highlights
	e.Highlights = validation.JoinHighlights(highlights)
}
