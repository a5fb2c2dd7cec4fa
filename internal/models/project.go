package models

import "time"

type ProjectStatus string

const (
	ProjectStatusNew ProjectStatus = "new"
)

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(50);not null;default:'new'" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
}
