package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionsEmpty(t *testing.T) {
	f := Fields{}
	assert.True(t, SelfEmploymentFrom(f).Empty())
	assert.True(t, OverseasWorkFrom(f).Empty())
	assert.True(t, NonWorkingSpouseFrom(f).Empty())
	assert.True(t, CertificationFrom(f).Empty())
	assert.True(t, OfficeProcessingFrom(f).Empty())
}

func TestSelfEmploymentAnyFieldCounts(t *testing.T) {
	f := Fields{"se_year_started": "2019"}
	s := SelfEmploymentFrom(f)
	assert.False(t, s.Empty())
	assert.Equal(t, "2019", s.YearStarted)
}

func TestOverseasWorkFlexiFundValue(t *testing.T) {
	s := OverseasWorkFrom(Fields{"flexi_fund": "yes"})
	assert.False(t, s.Empty())
	assert.Equal(t, "yes", s.FlexiFundValue())

	s = OverseasWorkFrom(Fields{"flexi_fund": "maybe"})
	assert.False(t, s.Empty()) // present, just not storable
	assert.Empty(t, s.FlexiFundValue())
}

func TestOfficeProcessingFlexiStatusValue(t *testing.T) {
	s := OfficeProcessingFrom(Fields{"sss_flexi_status": "approved"})
	assert.Equal(t, "approved", s.FlexiStatusValue())

	s = OfficeProcessingFrom(Fields{"sss_flexi_status": "pending"})
	assert.False(t, s.Empty())
	assert.Empty(t, s.FlexiStatusValue())
}

func TestOfficeProcessingDatetimePresence(t *testing.T) {
	s := OfficeProcessingFrom(Fields{"sss_received_by_datetime": "2024-06-01T09:30"})
	assert.False(t, s.Empty())
}

func TestNormalizeLocalDateTime(t *testing.T) {
	assert.Equal(t, "2024-06-01 09:30:00", NormalizeLocalDateTime("2024-06-01T09:30"))
	assert.Empty(t, NormalizeLocalDateTime(""))
}
