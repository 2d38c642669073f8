package models

import (
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"
	"gorm.io/gorm"
)

// CivilStatusOthers is the code whose free-text qualifier is stored on the
// person row.
const CivilStatusOthers = "others"

// CivilStatus is a seeded reference row for the form's civil-status select.
type CivilStatus struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(30);uniqueIndex" json:"code"`
	Name string `gorm:"type:varchar(50)" json:"name"`
}

var civilStatusSeed = []CivilStatus{
	{Code: "single", Name: "Single"},
	{Code: "married", Name: "Married"},
	{Code: "widowed", Name: "Widowed"},
	{Code: "legally_separated", Name: "Legally Separated"},
	{Code: CivilStatusOthers, Name: "Others"},
}

// Reference rows never change after seeding, so lookups are cached for the
// process lifetime.
var civilStatusCache = cmap.New[CivilStatus]()

// CivilStatusByCode resolves a submitted select value to its reference row.
func CivilStatusByCode(db *gorm.DB, code string) (CivilStatus, error) {
	if cs, ok := civilStatusCache.Get(code); ok {
		return cs, nil
	}
	var cs CivilStatus
	if err := db.Where("code = ?", code).First(&cs).Error; err != nil {
		return CivilStatus{}, fmt.Errorf("unknown civil status %q: %w", code, err)
	}
	civilStatusCache.Set(code, cs)
	return cs, nil
}

func seedCivilStatuses(db *gorm.DB) error {
	for _, cs := range civilStatusSeed {
		row := cs
		if err := db.Where("code = ?", cs.Code).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
