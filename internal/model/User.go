package model

import "github.com/scribearc/scribearc/internal/constant"

// User is a staff or writer account. Clients do not get accounts; they reach
// their project through the tracking secret and PIN instead.
type User struct {
	BaseModel
	Email        string `gorm:"type:citext;uniqueIndex;not null" json:"email" form:"email" binding:"required,email"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`

	FirstName string `gorm:"type:varchar(50);not null" json:"firstName" form:"firstName" binding:"required,strNotEmpty,max=50"`
	LastName  string `gorm:"type:varchar(50);not null" json:"lastName" form:"lastName" binding:"required,strNotEmpty,max=50"`

	Role constant.UserRole `gorm:"type:varchar(10);not null;index" json:"role"`

	// writer capacity cap; ignored for staff and admin accounts
	MaxActiveProjects int `gorm:"not null;default:5" json:"maxActiveProjects"`

	IsActive bool `gorm:"not null;default:true" json:"isActive"`
}

func (u User) TableName() string {
	return "users"
}
