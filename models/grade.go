package models

import "time"

type Grade struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"` // nhãn hiển thị, ví dụ "Grade 1"
	Slug      string    `gorm:"size:100;index" json:"slug"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	Subjects  []Subject `gorm:"foreignKey:GradeID" json:"subjects,omitempty"`
}
