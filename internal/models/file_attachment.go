package models

// FileAttachment is the metadata row for an uploaded file. Filepath points
// at the bytes written by the storage layer.
type FileAttachment struct {
	ID        uint64 `gorm:"primarykey" json:"id"`
	Filename  string `gorm:"type:varchar(255);not null" json:"filename"`
	Filepath  string `gorm:"type:text;not null" json:"filepath"`
	ProjectID uint64 `gorm:"not null" json:"project_id"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (FileAttachment) TableName() string {
	return "files"
}
