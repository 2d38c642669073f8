package models

import (
	"gorm.io/gorm"
)

// Init migrates the schema and seeds the civil-status reference table.
func Init(db *gorm.DB) error {
	for _, model := range []any{
		&CivilStatus{},
		&Person{},
		&HomeAddress{},
		&Dependent{},
		&SelfEmployment{},
		&OverseasWork{},
		&NonWorkingSpouse{},
		&Certification{},
		&OfficeProcessing{},
	} {
		if err := db.AutoMigrate(model); err != nil {
			return err
		}
	}
	return seedCivilStatuses(db)
}
