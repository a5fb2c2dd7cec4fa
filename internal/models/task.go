package models

type Task struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Done      bool   `gorm:"not null;default:false" json:"done"`
	ProjectID uint64 `gorm:"not null" json:"project_id"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}
