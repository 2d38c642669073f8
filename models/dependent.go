package models

// Dependent kinds. Spouse is conceptually a singleton but this is not
// enforced; children and other beneficiaries repeat.
const (
	DependentSpouse = "spouse"
	DependentChild  = "child"
	DependentOther  = "other"
)

// PlaceholderName is stored in place of a blank last/first name on an
// otherwise non-empty dependent row, keeping the NOT NULL columns satisfied
// without raising a validation error.
const PlaceholderName = "-"

// Dependent is one Part 2 beneficiary row.
type Dependent struct {
	ID           uint64  `gorm:"primaryKey" json:"id"`
	PersonID     uint64  `gorm:"index" json:"person_id"`
	Person       Person  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Kind         string  `gorm:"type:varchar(10)" json:"kind"`
	LastName     string  `gorm:"type:varchar(100);not null" json:"last_name"`
	FirstName    string  `gorm:"type:varchar(100);not null" json:"first_name"`
	MiddleName   *string `gorm:"type:varchar(100)" json:"middle_name"`
	Suffix       *string `gorm:"type:varchar(20)" json:"suffix"`
	DateOfBirth  *string `gorm:"type:varchar(10)" json:"date_of_birth"`
	Relationship *string `gorm:"type:varchar(100)" json:"relationship"`
}
