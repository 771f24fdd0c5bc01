package model

// ReferenceSequence backs the per-year reference code counter. The row is
// bumped with an atomic upsert-increment so concurrent instances never hand
// out the same sequence number.
type ReferenceSequence struct {
	Year      int `gorm:"primaryKey;autoIncrement:false" json:"year"`
	LastValue int `gorm:"not null;default:0" json:"lastValue"`
}

func (rs ReferenceSequence) TableName() string {
	return "reference_sequences"
}
