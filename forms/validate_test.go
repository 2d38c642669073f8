package forms

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeForm() Fields {
	return Fields{
		"last_name":      "Dela Cruz",
		"first_name":     "Juan",
		"middle_name":    "Santos",
		"date_of_birth":  "1990-05-14",
		"gender":         "male",
		"civil_status":   "single",
		"nationality":    "Filipino",
		"place_of_birth": "Quezon City",
		"home_address":   "123 Main St, Quezon City",
		"zip_code":       "1100",
		"mobile_number":  "09171234567",
		"email":          "juan@example.com",
	}
}

func TestValidateComplete(t *testing.T) {
	r := Validate(completeForm())
	require.True(t, r.OK)
	assert.Empty(t, r.Errors)
	assert.Equal(t, "Juan", r.Data.FirstName)
	assert.Equal(t, "male", r.Data.Sex)
}

func TestValidateEmptyForm(t *testing.T) {
	r := Validate(Fields{})
	require.False(t, r.OK)
	assert.Equal(t, []string{
		"Last Name is required.",
		"First Name is required.",
		"Date of Birth is required.",
		"Sex is required.",
		"Civil Status is required.",
		"Nationality is required.",
		"Place of Birth is required.",
		"Home Address is required.",
		"Mobile/Cellphone Number is required.",
		"E-mail Address is required.",
	}, r.Errors)
	assert.Len(t, r.InvalidFields, len(r.Errors))
}

func TestValidateMiddleNameOptional(t *testing.T) {
	f := completeForm()
	delete(f, "middle_name")
	r := Validate(f)
	assert.True(t, r.OK)
}

func TestValidateCivilStatusOthers(t *testing.T) {
	f := completeForm()
	f["civil_status"] = "others"
	r := Validate(f)
	require.False(t, r.OK)
	assert.Equal(t, []string{"Civil Status (Others) is required."}, r.Errors)
	assert.Equal(t, []string{"civil_status_other"}, r.InvalidFields)

	f["civil_status_other"] = "annulled"
	r = Validate(f)
	assert.True(t, r.OK)
}

func TestValidateOthersQualifierIgnoredForKnownStatus(t *testing.T) {
	f := completeForm()
	f["civil_status"] = "married"
	f["civil_status_other"] = "" // blank qualifier must not matter here
	r := Validate(f)
	assert.True(t, r.OK)
}

func TestValidateSameAsHomeAddress(t *testing.T) {
	f := completeForm()
	f["same_as_home_address"] = "1"
	f["home_address"] = "something typed anyway"
	r := Validate(f)
	require.True(t, r.OK)
	assert.Equal(t, "Quezon City", r.Data.HomeAddress)

	delete(f, "home_address")
	r = Validate(f)
	require.True(t, r.OK)
	assert.Equal(t, "Quezon City", r.Data.HomeAddress)
}

func TestValidateBadEmail(t *testing.T) {
	f := completeForm()
	f["email"] = "juan.example.com"
	r := Validate(f)
	require.False(t, r.OK)
	assert.Equal(t, []string{"E-mail Address must be a valid email (example: name@gmail.com)."}, r.Errors)
}

func TestEmailValid(t *testing.T) {
	valid := []string{"name@gmail.com", "a@b.co", "first.last@mail.example.org"}
	for _, email := range valid {
		assert.True(t, EmailValid(email), email)
	}
	invalid := []string{"", "name@", "@example.com", "name.example.com", "name@example", "name@example."}
	for _, email := range invalid {
		assert.False(t, EmailValid(email), email)
	}
}

func TestNormalizeTrimsValues(t *testing.T) {
	f := Normalize(url.Values{
		"last_name": {"  Dela Cruz  "},
		"email":     {"\tjuan@example.com\n"},
	})
	assert.Equal(t, "Dela Cruz", f.Get("last_name"))
	assert.Equal(t, "juan@example.com", f.Get("email"))
}

func TestFieldsBool(t *testing.T) {
	f := Fields{"same_as_home_address": "1", "other": "on"}
	assert.True(t, f.Bool("same_as_home_address"))
	assert.False(t, f.Bool("other"))
	assert.False(t, f.Bool("missing"))
}
