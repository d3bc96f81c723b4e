package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const RoleContributor = "contributor"

type Role struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primarykey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
