package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents one node of the storefront taxonomy.
// Parent references form a forest; the engine walks them on demand.
type Category struct {
	ID           uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey" db:"id"`
	Name         string       `json:"name" gorm:"not null" db:"name"`
	Slug         string       `json:"slug" gorm:"not null;uniqueIndex" db:"slug"`
	Status       string       `json:"status" gorm:"type:varchar(20);default:'Inactive';check:status IN ('Active', 'Inactive')" db:"status"`
	ParentID     *uuid.UUID   `json:"parent_id" gorm:"type:uuid;index" db:"parent_id"`
	DisplayOrder int          `json:"display_order" gorm:"default:0" db:"display_order"`
	Ancestors    AncestorList `json:"ancestors,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
	Level        *int         `json:"level,omitempty" gorm:"-"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime" db:"updated_at"`

	// Relationships (GORM will handle these automatically)
	Parent   *Category   `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Children []*Category `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

// AncestorRef is one precomputed ancestor entry (closest parent first).
type AncestorRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type AncestorList []AncestorRef

// BeforeCreate hook - auto-generate UUID v7 if not set
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name (optional, GORM auto-pluralizes)
func (Category) TableName() string {
	return "categories"
}

func (a *AncestorList) Scan(value interface{}) error {
	if value == nil {
		*a = make(AncestorList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan AncestorList")
	}
	return json.Unmarshal(bytes, a)
}

func (a AncestorList) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]AncestorRef{})
	}
	return json.Marshal(a)
}

// StorefrontCategory represents a category in the storefront tree response
type StorefrontCategory struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Slug          string               `json:"slug"`
	ParentID      *string              `json:"parent_id"`
	ProductCount  int                  `json:"product_count"`
	Subcategories []StorefrontCategory `json:"subcategories,omitempty"`
}
