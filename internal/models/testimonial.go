package models

import "time"

// DefaultTestimonialRating is applied when a testimonial is created without
// an explicit rating.
const DefaultTestimonialRating = 5

// Testimonial is a client or colleague quote, listed newest first.
type Testimonial struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AuthorName    string    `gorm:"size:120;not null" json:"author_name"`
	AuthorTitle   string    `gorm:"size:160;not null" json:"author_title"`
	AuthorCompany string    `gorm:"size:140;not null" json:"author_company"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Rating        int       `gorm:"not null;default:5" json:"rating"`
	AuthorImage   string    `gorm:"size:255" json:"author_image,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Testimonial) TableName() string {
	return "testimonials"
}
