package models

// HomeAddress is the single home-address row per person. When the
// same-as-home-address flag is set on the Person, AddressLine carries the
// place of birth instead of an independently entered value.
type HomeAddress struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	PersonID    uint64  `gorm:"index:uniq_person_home,unique" json:"person_id"`
	Person      Person  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AddressLine string  `gorm:"type:varchar(255)" json:"address_line"`
	ZipCode     *string `gorm:"type:varchar(10)" json:"zip_code"`
}
