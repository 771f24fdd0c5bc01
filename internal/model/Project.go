package model

import (
	"time"

	"github.com/scribearc/scribearc/pkg/scribearc"
)

type Project struct {
	BaseModel
	// public, human-shareable order identifier, SA-YYYY-NNNNN
	ReferenceCode string `gorm:"type:varchar(13);uniqueIndex;not null" json:"referenceCode"`
	// capability token for the anonymous tracking view, set once at creation
	TrackingSecret string `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`

	Title        string  `gorm:"type:varchar(150);not null" json:"title" form:"title" binding:"required,strNotEmpty,max=150"`
	Requirements JSONMap `gorm:"type:jsonb" json:"requirements" form:"requirements"`

	Status string `gorm:"type:varchar(20);not null;index" json:"status"`

	// amounts in cents; writer/admin share are denormalized so historical
	// payouts stay stable if the split percentage ever changes
	AgreedPrice       int64 `gorm:"not null" json:"agreedPrice"`
	DiscountAmount    int64 `gorm:"not null;default:0" json:"discountAmount"`
	AdditionalCharges int64 `gorm:"not null;default:0" json:"additionalCharges"`
	WriterShare       int64 `gorm:"not null" json:"writerShare"`
	AdminShare        int64 `gorm:"not null" json:"adminShare"`

	Deadline              time.Time  `gorm:"type:timestamptz;not null;index" json:"deadline"`
	EstimatedCompletionAt *time.Time `gorm:"type:timestamptz" json:"estimatedCompletionAt"`
	CompletedAt           *time.Time `gorm:"type:timestamptz" json:"completedAt"`

	ClientID string `gorm:"type:text;not null;index" json:"clientId"`
	Client   Client `json:"client"`

	WriterID *string `gorm:"type:text;index" json:"writerId"`
	Writer   *User   `gorm:"foreignKey:WriterID" json:"writer,omitempty"`

	PackageID string         `gorm:"type:text;not null" json:"packageId"`
	Package   ServicePackage `gorm:"foreignKey:PackageID" json:"package"`
}

func (p Project) TableName() string {
	return "projects"
}

// ToEngine copies the workflow-relevant fields into the engine's project view.
// The engine mutates that copy; ApplyEngine folds the result back.
func (p *Project) ToEngine() *scribearc.Project {
	return &scribearc.Project{
		ID:                    p.ID,
		ReferenceCode:         p.ReferenceCode,
		Status:                scribearc.Status(p.Status),
		WriterID:              p.WriterID,
		AgreedPrice:           p.AgreedPrice,
		DiscountAmount:        p.DiscountAmount,
		AdditionalCharges:     p.AdditionalCharges,
		WriterShare:           p.WriterShare,
		AdminShare:            p.AdminShare,
		Deadline:              p.Deadline,
		EstimatedCompletionAt: p.EstimatedCompletionAt,
		CompletedAt:           p.CompletedAt,
	}
}

func (p *Project) ApplyEngine(ep *scribearc.Project) {
	p.Status = string(ep.Status)
	p.WriterID = ep.WriterID
	p.DiscountAmount = ep.DiscountAmount
	p.AdditionalCharges = ep.AdditionalCharges
	p.WriterShare = ep.WriterShare
	p.AdminShare = ep.AdminShare
	p.EstimatedCompletionAt = ep.EstimatedCompletionAt
	p.CompletedAt = ep.CompletedAt
}
