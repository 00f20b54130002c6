package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategoryType = errors.New("invalid category type")
	ErrCategoryNameEmpty   = errors.New("category name is required")
)

// CategoryDefinition describes one grouping of the grid: a named category of
// a given transaction type with an ordered list of subcategories. Definitions
// are supplied by the category collaborator and are read-only to the engine.
type CategoryDefinition struct {
	ID            uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID               `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string                  `gorm:"type:varchar(100);not null" json:"name"`
	Type          string                  `gorm:"type:varchar(20);not null" json:"type"`
	Position      int                     `gorm:"not null;default:0" json:"position"`
	Subcategories []SubcategoryDefinition `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories"`
	CreatedAt     time.Time               `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time               `gorm:"not null" json:"updated_at"`
}

// SubcategoryDefinition is one leaf grouping under a category. IsCustom marks
// user-created subcategories as opposed to predefined ones; custom entries
// sort after predefined ones within their category.
type SubcategoryDefinition struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	IsCustom   bool      `gorm:"not null;default:false" json:"is_custom"`
	Position   int       `gorm:"not null;default:0" json:"position"`
}

// BeforeCreate hook for CategoryDefinition
func (c *CategoryDefinition) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeCreate hook for SubcategoryDefinition
func (s *SubcategoryDefinition) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Validate validates the category definition fields
func (c *CategoryDefinition) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if !IsValidTransactionType(c.Type) {
		return ErrInvalidCategoryType
	}

	return nil
}

// HasSubcategory reports whether the definition lists the named subcategory.
func (c *CategoryDefinition) HasSubcategory(name string) bool {
	for _, sub := range c.Subcategories {
		if sub.Name == name {
			return true
		}
	}
	return false
}

// SubcategoryNames returns the subcategory names in canonical order:
// predefined entries first, custom entries after, each group by position.
func (c *CategoryDefinition) SubcategoryNames() []string {
	names := make([]string, 0, len(c.Subcategories))
	for _, sub := range c.Subcategories {
		if !sub.IsCustom {
			names = append(names, sub.Name)
		}
	}
	for _, sub := range c.Subcategories {
		if sub.IsCustom {
			names = append(names, sub.Name)
		}
	}
	return names
}

// TableName returns the table name for CategoryDefinition
func (c *CategoryDefinition) TableName() string {
	return "category_definitions"
}

// TableName returns the table name for SubcategoryDefinition
func (s *SubcategoryDefinition) TableName() string {
	return "subcategory_definitions"
}
