package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
	UserTypeBoth   = "both"
)

type User struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone        string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	GSTNumber    string `gorm:"column:gst_number;size:15;uniqueIndex;not null" json:"gst_number"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CompanyName     string `gorm:"size:255;not null" json:"company_name"`
	ContactPerson   string `gorm:"size:255" json:"contact_person,omitempty"`
	BusinessLicense string `gorm:"size:255" json:"business_license,omitempty"`
	Address         string `gorm:"size:500" json:"address,omitempty"`
	City            string `gorm:"size:100" json:"city,omitempty"`
	State           string `gorm:"size:100" json:"state,omitempty"`
	Pincode         string `gorm:"size:6" json:"pincode,omitempty"`

	UserType   string `gorm:"size:10;not null;default:both" json:"user_type"` // "buyer", "seller", "both"
	IsActive   bool   `gorm:"not null;default:true" json:"is_active"`
	IsVerified bool   `gorm:"not null;default:false" json:"is_verified"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// CanSell reports whether the user may list products.
func (u *User) CanSell() bool {
	return u.UserType == UserTypeSeller || u.UserType == UserTypeBoth
}
