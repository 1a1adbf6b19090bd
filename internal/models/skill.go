package models

import "time"

// SkillProficiency defines the self-assessed level for a skill.
type SkillProficiency string

const (
	// ProficiencyBeginner indicates working familiarity.
	ProficiencyBeginner SkillProficiency = "Beginner"
	// ProficiencyIntermediate indicates day-to-day production use.
	ProficiencyIntermediate SkillProficiency = "Intermediate"
	// ProficiencyExpert indicates deep, teach-others experience.
	ProficiencyExpert SkillProficiency = "Expert"
)

// ValidProficiency reports whether p is one of the recognized levels.
func ValidProficiency(p SkillProficiency) bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyExpert:
		return true
	}
	return false
}

// Skill is a named skill grouped by category. Names are unique site-wide.
type Skill struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Category    string           `gorm:"size:120;not null" json:"category"`
	Proficiency SkillProficiency `gorm:"type:varchar(20);not null" json:"proficiency"`
	IconURL     string           `gorm:"size:255" json:"icon_url,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Skill) TableName() string {
	return "skills"
}
