package forms

import "strings"

// civilStatusOthers is the select option that makes the free-text qualifier
// required.
const civilStatusOthers = "others"

// PersonData is the cleaned Part 1 field set produced by Validate.
type PersonData struct {
	LastName          string
	FirstName         string
	MiddleName        string
	DateOfBirth       string
	Sex               string
	CivilStatus       string
	CivilStatusOther  string
	Nationality       string
	PlaceOfBirth      string
	SameAsHomeAddress bool
	HomeAddress       string
	ZipCode           string
	MobileNumber      string
	Email             string
	Religion          string
	TelephoneNumber   string
	FatherLastName    string
	FatherFirstName   string
	FatherMiddleName  string
	MotherLastName    string
	MotherFirstName   string
	MotherMiddleName  string
}

// Result carries the validation verdict. Errors keeps the fixed check
// order so messages render in a stable sequence; InvalidFields names the
// inputs to highlight and mirrors Errors one-to-one.
type Result struct {
	OK            bool
	Errors        []string
	InvalidFields []string
	Data          PersonData
}

// Validate applies the required-field and conditional rules over the
// normalized Part 1 fields. All violations are collected; it never stops at
// the first failure.
func Validate(f Fields) Result {
	d := PersonData{
		LastName:          f.Get("last_name"),
		FirstName:         f.Get("first_name"),
		MiddleName:        f.Get("middle_name"),
		DateOfBirth:       f.Get("date_of_birth"),
		Sex:               f.Get("gender"),
		CivilStatus:       f.Get("civil_status"),
		CivilStatusOther:  f.Get("civil_status_other"),
		Nationality:       f.Get("nationality"),
		PlaceOfBirth:      f.Get("place_of_birth"),
		SameAsHomeAddress: f.Bool("same_as_home_address"),
		HomeAddress:       f.Get("home_address"),
		ZipCode:           f.Get("zip_code"),
		MobileNumber:      f.Get("mobile_number"),
		Email:             f.Get("email"),
		Religion:          f.Get("religion"),
		TelephoneNumber:   f.Get("telephone_number"),
		FatherLastName:    f.Get("father_last_name"),
		FatherFirstName:   f.Get("father_first_name"),
		FatherMiddleName:  f.Get("father_middle_name"),
		MotherLastName:    f.Get("mother_last_name"),
		MotherFirstName:   f.Get("mother_first_name"),
		MotherMiddleName:  f.Get("mother_middle_name"),
	}

	r := Result{}
	fail := func(field, message string) {
		r.Errors = append(r.Errors, message)
		r.InvalidFields = append(r.InvalidFields, field)
	}

	if d.LastName == "" {
		fail("last_name", "Last Name is required.")
	}
	if d.FirstName == "" {
		fail("first_name", "First Name is required.")
	}
	if d.DateOfBirth == "" {
		fail("date_of_birth", "Date of Birth is required.")
	}
	if d.Sex == "" {
		fail("gender", "Sex is required.")
	}
	if d.CivilStatus == "" {
		fail("civil_status", "Civil Status is required.")
	} else if d.CivilStatus == civilStatusOthers && d.CivilStatusOther == "" {
		fail("civil_status_other", "Civil Status (Others) is required.")
	}
	if d.Nationality == "" {
		fail("nationality", "Nationality is required.")
	}
	if d.PlaceOfBirth == "" {
		fail("place_of_birth", "Place of Birth is required.")
	}
	if d.SameAsHomeAddress {
		// Checked box means the home address is the place of birth,
		// whatever was typed into the field.
		d.HomeAddress = d.PlaceOfBirth
	} else if d.HomeAddress == "" {
		fail("home_address", "Home Address is required.")
	}
	if d.MobileNumber == "" {
		fail("mobile_number", "Mobile/Cellphone Number is required.")
	}
	if d.Email == "" {
		fail("email", "E-mail Address is required.")
	} else if !EmailValid(d.Email) {
		fail("email", "E-mail Address must be a valid email (example: name@gmail.com).")
	}

	r.OK = len(r.Errors) == 0
	r.Data = d
	return r
}

// EmailValid implements the form's address check: at least one character
// before the "@", and a "." after the "@" with at least one character
// following it.
func EmailValid(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot >= 0 && dot < len(domain)-1
}
