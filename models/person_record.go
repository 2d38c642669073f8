package models

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PersonRecord is the full E-1 aggregate: the person row, its home address
// and every Part 2-5 child row. Optional sections are nil when the form
// carried no values for them.
type PersonRecord struct {
	CivilStatusCode  string            `json:"-"` // resolved to Person.CivilStatusID inside the write transaction
	Person           Person            `json:"person"`
	HomeAddress      *HomeAddress      `json:"home_address"`
	Dependents       []Dependent       `json:"dependents"`
	SelfEmployment   *SelfEmployment   `json:"self_employment"`
	OverseasWork     *OverseasWork     `json:"overseas_work"`
	NonWorkingSpouse *NonWorkingSpouse `json:"non_working_spouse"`
	Certification    *Certification    `json:"certification"`
	OfficeProcessing *OfficeProcessing `json:"office_processing"`
}

// childTables lists every per-person child model, used by the wholesale
// delete on update and delete.
var childTables = []any{
	&Dependent{},
	&SelfEmployment{},
	&OverseasWork{},
	&NonWorkingSpouse{},
	&Certification{},
	&OfficeProcessing{},
}

// CreatePersonRecord inserts the person and every non-empty child row in one
// transaction. An unresolvable civil-status code fails the whole operation.
func CreatePersonRecord(db *gorm.DB, rec *PersonRecord) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := resolveCivilStatus(tx, rec); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&rec.Person).Error; err != nil {
			return err
		}
		return insertChildRows(tx, rec)
	})
}

// UpdatePersonRecord rewrites the person in place and replaces all child
// rows (delete + reinsert, no diffing). File paths not replaced by the
// current submission are carried forward from the stored rows.
func UpdatePersonRecord(db *gorm.DB, id uint64, rec *PersonRecord) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing Person
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}
		if err := resolveCivilStatus(tx, rec); err != nil {
			return err
		}
		if err := carryForwardFilePaths(tx, id, rec); err != nil {
			return err
		}
		rec.Person.ID = id
		rec.Person.CreatedAt = existing.CreatedAt
		if err := tx.Omit(clause.Associations).Save(&rec.Person).Error; err != nil {
			return err
		}
		for _, model := range childTables {
			if err := tx.Where("person_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return insertChildRows(tx, rec)
	})
}

// DeletePersonRecord removes the person and all related rows. Returns
// gorm.ErrRecordNotFound when no such person exists.
func DeletePersonRecord(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range childTables {
			if err := tx.Where("person_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("person_id = ?", id).Delete(&HomeAddress{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Person{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ReadPersonRecord loads the full aggregate. A missing person yields
// (nil, nil); absent child rows stay nil / empty.
func ReadPersonRecord(db *gorm.DB, id uint64) (*PersonRecord, error) {
	var p Person
	err := db.Preload("CivilStatus").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec := &PersonRecord{Person: p, CivilStatusCode: p.CivilStatus.Code, Dependents: []Dependent{}}

	var home HomeAddress
	if err := firstForPerson(db, id, &home); err != nil {
		return nil, err
	} else if home.ID != 0 {
		rec.HomeAddress = &home
	}
	if err := db.Where("person_id = ?", id).Order("kind, id").Find(&rec.Dependents).Error; err != nil {
		return nil, err
	}

	var se SelfEmployment
	if err := firstForPerson(db, id, &se); err != nil {
		return nil, err
	} else if se.ID != 0 {
		rec.SelfEmployment = &se
	}
	var ofw OverseasWork
	if err := firstForPerson(db, id, &ofw); err != nil {
		return nil, err
	} else if ofw.ID != 0 {
		rec.OverseasWork = &ofw
	}
	var nws NonWorkingSpouse
	if err := firstForPerson(db, id, &nws); err != nil {
		return nil, err
	} else if nws.ID != 0 {
		rec.NonWorkingSpouse = &nws
	}
	var cert Certification
	if err := firstForPerson(db, id, &cert); err != nil {
		return nil, err
	} else if cert.ID != 0 {
		rec.Certification = &cert
	}
	var office OfficeProcessing
	if err := firstForPerson(db, id, &office); err != nil {
		return nil, err
	} else if office.ID != 0 {
		rec.OfficeProcessing = &office
	}
	return rec, nil
}

// firstForPerson loads the single child row for a person into dest, leaving
// dest zero-valued when no row exists.
func firstForPerson(db *gorm.DB, id uint64, dest any) error {
	err := db.Where("person_id = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func resolveCivilStatus(tx *gorm.DB, rec *PersonRecord) error {
	cs, err := CivilStatusByCode(tx, rec.CivilStatusCode)
	if err != nil {
		return err
	}
	rec.Person.CivilStatusID = cs.ID
	rec.Person.CivilStatus = cs
	// The free-text qualifier exists iff the code is the "others" variant.
	if cs.Code != CivilStatusOthers {
		rec.Person.CivilStatusOther = nil
	}
	return nil
}

func insertChildRows(tx *gorm.DB, rec *PersonRecord) error {
	id := rec.Person.ID
	if rec.HomeAddress != nil {
		rec.HomeAddress.PersonID = id
		err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "person_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"address_line", "zip_code"}),
		}).Create(rec.HomeAddress).Error
		if err != nil {
			return err
		}
	}
	for i := range rec.Dependents {
		rec.Dependents[i].PersonID = id
		if err := tx.Omit(clause.Associations).Create(&rec.Dependents[i]).Error; err != nil {
			return err
		}
	}
	if rec.SelfEmployment != nil {
		rec.SelfEmployment.PersonID = id
		if err := tx.Omit(clause.Associations).Create(rec.SelfEmployment).Error; err != nil {
			return err
		}
	}
	if rec.OverseasWork != nil {
		rec.OverseasWork.PersonID = id
		if err := tx.Omit(clause.Associations).Create(rec.OverseasWork).Error; err != nil {
			return err
		}
	}
	if rec.NonWorkingSpouse != nil {
		rec.NonWorkingSpouse.PersonID = id
		if err := tx.Omit(clause.Associations).Create(rec.NonWorkingSpouse).Error; err != nil {
			return err
		}
	}
	if rec.Certification != nil {
		rec.Certification.PersonID = id
		if err := tx.Omit(clause.Associations).Create(rec.Certification).Error; err != nil {
			return err
		}
	}
	if rec.OfficeProcessing != nil {
		rec.OfficeProcessing.PersonID = id
		if err := tx.Omit(clause.Associations).Create(rec.OfficeProcessing).Error; err != nil {
			return err
		}
	}
	return nil
}

// carryForwardFilePaths keeps previously stored upload references when the
// current submission carries no replacement for a slot ("sticky" file
// paths). A section that would otherwise be dropped is resurrected when a
// stored path is its only surviving content.
func carryForwardFilePaths(tx *gorm.DB, id uint64, rec *PersonRecord) error {
	if rec.NonWorkingSpouse == nil || rec.NonWorkingSpouse.SignatureFilePath == nil {
		var prev NonWorkingSpouse
		if err := firstForPerson(tx, id, &prev); err != nil {
			return err
		}
		if prev.SignatureFilePath != nil {
			if rec.NonWorkingSpouse == nil {
				rec.NonWorkingSpouse = &NonWorkingSpouse{}
			}
			rec.NonWorkingSpouse.SignatureFilePath = prev.SignatureFilePath
		}
	}
	if rec.Certification == nil || rec.Certification.SignatureFilePath == nil {
		var prev Certification
		if err := firstForPerson(tx, id, &prev); err != nil {
			return err
		}
		if prev.SignatureFilePath != nil {
			if rec.Certification == nil {
				rec.Certification = &Certification{}
			}
			rec.Certification.SignatureFilePath = prev.SignatureFilePath
		}
	}

	var prev OfficeProcessing
	if err := firstForPerson(tx, id, &prev); err != nil {
		return err
	}
	if prev.ID == 0 {
		return nil
	}
	office := rec.OfficeProcessing
	ensure := func() *OfficeProcessing {
		if office == nil {
			office = &OfficeProcessing{}
		}
		return office
	}
	if (office == nil || office.ReceivedBySignaturePath == nil) && prev.ReceivedBySignaturePath != nil {
		ensure().ReceivedBySignaturePath = prev.ReceivedBySignaturePath
	}
	if (office == nil || office.ProcessedBySignaturePath == nil) && prev.ProcessedBySignaturePath != nil {
		ensure().ProcessedBySignaturePath = prev.ProcessedBySignaturePath
	}
	if (office == nil || office.ReviewedBySignaturePath == nil) && prev.ReviewedBySignaturePath != nil {
		ensure().ReviewedBySignaturePath = prev.ReviewedBySignaturePath
	}
	rec.OfficeProcessing = office
	return nil
}
