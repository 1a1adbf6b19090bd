package models

// ProfileRowID is the fixed primary key of the profile singleton. Keying the
// row on a constant means concurrent first writes resolve at the unique
// primary key instead of inserting a second profile.
const ProfileRowID uint = 1

// Profile is the site owner's singleton profile. At most one row exists.
type Profile struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	Name     string `gorm:"size:120;not null" json:"name"`
	Title    string `gorm:"size:160;not null" json:"title"`
	Summary  string `gorm:"type:text;not null" json:"summary"`
	Location string `gorm:"size:120;not null" json:"location"`
	Email    string `gorm:"size:120;not null" json:"email"`
	Phone    string `gorm:"size:50" json:"phone,omitempty"`
	Linkedin string `gorm:"size:255" json:"linkedin,omitempty"`
	Github   string `gorm:"size:255" json:"github,omitempty"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}
