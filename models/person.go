package models

import (
	"gorm.io/gorm"
)

// Person is one E-1 registrant (form Part 1). Optional columns are pointers
// so blank submissions are stored as NULL, matching the form contract.
type Person struct {
	ID                uint64      `gorm:"primaryKey" json:"id"`
	CreatedAt         int64       `json:"created_at"`
	UpdatedAt         int64       `json:"updated_at"`
	LastName          string      `gorm:"type:varchar(100)" json:"last_name"`
	FirstName         string      `gorm:"type:varchar(100)" json:"first_name"`
	MiddleName        string      `gorm:"type:varchar(100)" json:"middle_name"`
	DateOfBirth       string      `gorm:"type:varchar(10)" json:"date_of_birth"`
	Sex               string      `gorm:"type:varchar(10)" json:"sex"`
	CivilStatusID     uint64      `json:"civil_status_id"`
	CivilStatus       CivilStatus `gorm:"constraint:OnUpdate:CASCADE;" json:"civil_status"`
	CivilStatusOther  *string     `gorm:"type:varchar(100)" json:"civil_status_other"`
	Nationality       string      `gorm:"type:varchar(100)" json:"nationality"`
	PlaceOfBirth      string      `gorm:"type:varchar(255)" json:"place_of_birth"`
	MobileNumber      string      `gorm:"type:varchar(30)" json:"mobile_number"`
	Email             string      `gorm:"type:varchar(150)" json:"email"`
	Religion          *string     `gorm:"type:varchar(100)" json:"religion"`
	TelephoneNumber   *string     `gorm:"type:varchar(30)" json:"telephone_number"`
	FatherLastName    *string     `gorm:"type:varchar(100)" json:"father_last_name"`
	FatherFirstName   *string     `gorm:"type:varchar(100)" json:"father_first_name"`
	FatherMiddleName  *string     `gorm:"type:varchar(100)" json:"father_middle_name"`
	MotherLastName    *string     `gorm:"type:varchar(100)" json:"mother_last_name"`
	MotherFirstName   *string     `gorm:"type:varchar(100)" json:"mother_first_name"`
	MotherMiddleName  *string     `gorm:"type:varchar(100)" json:"mother_middle_name"`
	SameAsHomeAddress bool        `json:"same_as_home_address"`
}

// TableName overrides the table name
func (Person) TableName() string {
	return "persons"
}

// PersonSummary is the list-view projection.
type PersonSummary struct {
	ID           uint64 `json:"id"`
	LastName     string `json:"last_name"`
	FirstName    string `json:"first_name"`
	MiddleName   string `json:"middle_name"`
	DateOfBirth  string `json:"date_of_birth"`
	Sex          string `json:"sex"`
	CivilStatus  string `json:"civil_status"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	CreatedAt    int64  `json:"created_at"`
}

// ListPersons returns every registrant with the civil-status name resolved,
// newest first. No related rows are loaded.
func ListPersons(db *gorm.DB) ([]PersonSummary, error) {
	rows, err := db.Table("persons").
		Select("persons.id, persons.last_name, persons.first_name, persons.middle_name, persons.date_of_birth, persons.sex, civil_statuses.name, persons.email, persons.mobile_number, persons.created_at").
		Joins("join civil_statuses on persons.civil_status_id = civil_statuses.id").
		Order("persons.created_at DESC, persons.id DESC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := []PersonSummary{}
	for rows.Next() {
		s := PersonSummary{}
		if err = rows.Scan(&s.ID, &s.LastName, &s.FirstName, &s.MiddleName, &s.DateOfBirth, &s.Sex, &s.CivilStatus, &s.Email, &s.MobileNumber, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
