package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// UUIDList is a jsonb-backed list of category identifiers. A product can
// belong to any number of categories, not necessarily a single leaf.
type UUIDList []uuid.UUID

func (u *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*u = make(UUIDList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan UUIDList")
	}
	return json.Unmarshal(bytes, u)
}

func (u UUIDList) Value() (driver.Value, error) {
	if u == nil {
		return json.Marshal([]uuid.UUID{})
	}
	return json.Marshal(u)
}

// Contains reports whether id is present in the list.
func (u UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range u {
		if v == id {
			return true
		}
	}
	return false
}

type TagsList []string

func (t *TagsList) Scan(value interface{}) error {
	if value == nil {
		*t = make(TagsList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan TagsList")
	}
	return json.Unmarshal(bytes, t)
}

func (t TagsList) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string         `json:"name" gorm:"not null;index"`
	Description string         `json:"description" gorm:"not null"`
	Price       float64        `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	CategoryIDs UUIDList       `json:"category_ids" gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Discount    *float64       `json:"discount,omitempty" gorm:"type:numeric(5,2)"`
	Tags        TagsList       `json:"tags" gorm:"type:jsonb;not null;default:'[]'"`
	Media       datatypes.JSON `json:"media" gorm:"type:jsonb;not null;default:'{}'"`
	Status      string         `json:"status" gorm:"not null;check:status IN ('Active', 'Draft');index"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// FinalPrice applies the optional discount percentage to the list price.
func (p Product) FinalPrice() float64 {
	if p.Discount == nil || *p.Discount <= 0 {
		return p.Price
	}
	return p.Price * (1 - *p.Discount/100)
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontProductResponse is the thin listing shape returned by /store/products.
type StorefrontProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	FinalPrice  float64  `json:"final_price"`
	Discount    *float64 `json:"discount,omitempty"`
	Image       string   `json:"image,omitempty"`
}
