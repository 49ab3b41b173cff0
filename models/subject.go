package models

import "time"

type Subject struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	GradeID   uint      `gorm:"not null;index" json:"grade_id"` // mỗi môn học thuộc đúng một khối lớp
	Grade     Grade     `gorm:"constraint:OnDelete:RESTRICT;" json:"-"`
	Slug      string    `gorm:"size:255;index" json:"slug"` // slug cho URL thân thiện
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
