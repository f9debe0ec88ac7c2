package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProductStatusActive   = "active"
	ProductStatusSold     = "sold"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	SellerID   string `gorm:"type:varchar(36);index;not null" json:"seller_id"`
	CategoryID string `gorm:"type:varchar(36);index" json:"category_id,omitempty"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"size:5000" json:"description,omitempty"`
	Material    string  `gorm:"size:100" json:"material,omitempty"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	Unit        string  `gorm:"size:20" json:"unit,omitempty"` // "kg", "tonne", "pcs", ...

	Price           float64 `gorm:"not null" json:"price"`
	PriceNegotiable bool    `gorm:"not null;default:false" json:"price_negotiable"`
	Condition       string  `gorm:"size:50" json:"condition,omitempty"` // "new", "like_new", "used", "scrap"

	LocationCity  string `gorm:"size:100" json:"location_city,omitempty"`
	LocationState string `gorm:"size:100" json:"location_state,omitempty"`

	ViewsCount int    `gorm:"not null;default:0" json:"views_count"`
	Status     string `gorm:"size:20;not null;default:active;index" json:"status"`
	IsActive   bool   `gorm:"not null;default:true" json:"is_active"`

	Images []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type ProductImage struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ProductID string    `gorm:"type:varchar(36);index;not null" json:"product_id"`
	ImageName string    `gorm:"size:255;not null" json:"image_name"`
	IsPrimary bool      `gorm:"not null;default:false" json:"is_primary"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
