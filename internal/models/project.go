package models

import "time"

// Project is a portfolio project entry, listed in creation order.
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:140;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	TechStack   string    `gorm:"size:255;not null" json:"tech_stack"`
	RepoURL     string    `gorm:"size:255" json:"repo_url,omitempty"`
	LiveURL     string    `gorm:"size:255" json:"live_url,omitempty"`
	ImageURL    string    `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "projects"
}
