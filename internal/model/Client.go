package model

type Client struct {
	BaseModel
	Name  string `gorm:"type:varchar(100);not null" json:"name" form:"name" binding:"required,strNotEmpty,max=100"`
	Email string `gorm:"type:varchar(150);not null" json:"email" form:"email" binding:"required,email"`
	// the last 4 digits double as the tracking-view PIN
	Phone string `gorm:"type:varchar(30);not null" json:"-" form:"phone" binding:"required,min=4,max=30"`

	// 4 letters + 4 digits, or the 2-letter + 6-digit fallback shape
	ReferralCode string `gorm:"type:varchar(8);uniqueIndex;not null" json:"referralCode"`

	// referral code of the client who referred this one, if any
	ReferredBy *string `gorm:"type:varchar(8)" json:"referredBy"`
}

func (c Client) TableName() string {
	return "clients"
}
