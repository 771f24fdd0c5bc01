package model

// ServicePackage is an offered writing service (essay, thesis chapter, ...).
// RequirementSchema lists the custom requirement fields the package expects;
// intake payloads are validated against it before acceptance.
type ServicePackage struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" form:"name" binding:"required,strNotEmpty,max=100"`
	Description string `gorm:"type:text;not null;default:''" json:"description" form:"description"`

	// base price in cents, a starting point for the agreed price
	BasePrice int64 `gorm:"not null" json:"basePrice" form:"basePrice" binding:"gte=0"`

	// field name -> expected scalar type ("string", "number", "bool")
	RequirementSchema JSONMap `gorm:"type:jsonb" json:"requirementSchema" form:"requirementSchema"`

	IsActive bool `gorm:"not null;default:true" json:"isActive"`
}

func (sp ServicePackage) TableName() string {
	return "service_packages"
}
