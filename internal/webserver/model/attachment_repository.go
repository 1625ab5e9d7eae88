package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type AttachmentRepository struct {
	DB *gorm.DB
}

func (a *AttachmentRepository) Create(attachment *Attachment) error {
	if result := a.DB.Create(attachment); result.Error != nil {
		log.Printf("error creating attachment: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (a *AttachmentRepository) FindByUuid(uuid string) (*Attachment, error) {
	var attachment Attachment

	result := a.DB.Where("uuid = ?", uuid).First(&attachment)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &attachment, result.Error
}

func (a *AttachmentRepository) Delete(uuid string) error {
	var attachment Attachment

	result := a.DB.Where("uuid = ?", uuid).Delete(&attachment)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting attachment: %s\n", result.Error)
	}
	return nil
}
