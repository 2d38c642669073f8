package forms

import "strings"

// Part 3-5 optional sections. Each extractor returns the raw trimmed
// values; a section row is persisted only when Empty() is false or a
// signature upload landed in one of its file slots.

type SelfEmploymentSection struct {
	ProfessionBusiness string
	YearStarted        string
	MonthlyEarnings    string
}

func (s SelfEmploymentSection) Empty() bool {
	return s.ProfessionBusiness == "" && s.YearStarted == "" && s.MonthlyEarnings == ""
}

func SelfEmploymentFrom(f Fields) SelfEmploymentSection {
	return SelfEmploymentSection{
		ProfessionBusiness: f.Get("se_profession_business"),
		YearStarted:        f.Get("se_year_started"),
		MonthlyEarnings:    f.Get("se_monthly_earnings"),
	}
}

type OverseasWorkSection struct {
	ForeignAddress  string
	MonthlyEarnings string
	// FlexiFund keeps the raw submitted value: any value counts toward the
	// section being present, but only "yes"/"no" is ever stored.
	FlexiFund string
}

func (s OverseasWorkSection) Empty() bool {
	return s.ForeignAddress == "" && s.MonthlyEarnings == "" && s.FlexiFund == ""
}

// FlexiFundValue returns the storable flexi-fund answer, or "" when the raw
// value is not one of the accepted answers.
func (s OverseasWorkSection) FlexiFundValue() string {
	if s.FlexiFund == "yes" || s.FlexiFund == "no" {
		return s.FlexiFund
	}
	return ""
}

func OverseasWorkFrom(f Fields) OverseasWorkSection {
	return OverseasWorkSection{
		ForeignAddress:  f.Get("ofw_foreign_address"),
		MonthlyEarnings: f.Get("ofw_monthly_earnings"),
		FlexiFund:       f.Get("flexi_fund"),
	}
}

type NonWorkingSpouseSection struct {
	WorkingSpouseSSNo string
	MonthlyIncome     string
}

func (s NonWorkingSpouseSection) Empty() bool {
	return s.WorkingSpouseSSNo == "" && s.MonthlyIncome == ""
}

func NonWorkingSpouseFrom(f Fields) NonWorkingSpouseSection {
	return NonWorkingSpouseSection{
		WorkingSpouseSSNo: f.Get("nws_working_spouse_ss"),
		MonthlyIncome:     f.Get("nws_monthly_income"),
	}
}

type CertificationSection struct {
	PrintedName   string
	SignatureText string
	CertDate      string
}

func (s CertificationSection) Empty() bool {
	return s.PrintedName == "" && s.SignatureText == "" && s.CertDate == ""
}

func CertificationFrom(f Fields) CertificationSection {
	return CertificationSection{
		PrintedName:   f.Get("cert_printed_name"),
		SignatureText: f.Get("cert_signature"),
		CertDate:      f.Get("cert_date"),
	}
}

type OfficeProcessingSection struct {
	BusinessCode        string
	WorkingSpouseMSC    string
	MonthlyContribution string
	ApprovedMSC         string
	StartOfPayment      string
	// FlexiStatus keeps the raw value; only "approved"/"disapproved" is stored.
	FlexiStatus         string
	ReceivedByDatetime  string
	ProcessedByDatetime string
	ReviewedByDatetime  string
}

func (s OfficeProcessingSection) Empty() bool {
	return s.BusinessCode == "" && s.WorkingSpouseMSC == "" && s.MonthlyContribution == "" &&
		s.ApprovedMSC == "" && s.StartOfPayment == "" && s.FlexiStatus == "" &&
		s.ReceivedByDatetime == "" && s.ProcessedByDatetime == "" && s.ReviewedByDatetime == ""
}

// FlexiStatusValue returns the storable review status, or "" for anything
// outside the accepted values.
func (s OfficeProcessingSection) FlexiStatusValue() string {
	if s.FlexiStatus == "approved" || s.FlexiStatus == "disapproved" {
		return s.FlexiStatus
	}
	return ""
}

func OfficeProcessingFrom(f Fields) OfficeProcessingSection {
	return OfficeProcessingSection{
		BusinessCode:        f.Get("sss_business_code"),
		WorkingSpouseMSC:    f.Get("sss_working_spouse_msc"),
		MonthlyContribution: f.Get("sss_monthly_contribution"),
		ApprovedMSC:         f.Get("sss_approved_msc"),
		StartOfPayment:      f.Get("sss_start_of_payment"),
		FlexiStatus:         f.Get("sss_flexi_status"),
		ReceivedByDatetime:  f.Get("sss_received_by_datetime"),
		ProcessedByDatetime: f.Get("sss_processed_by_datetime"),
		ReviewedByDatetime:  f.Get("sss_reviewed_by_datetime"),
	}
}

// NormalizeLocalDateTime converts the browser's datetime-local format
// (YYYY-MM-DDTHH:MM) to the stored YYYY-MM-DD HH:MM:SS form. Empty input
// stays empty.
func NormalizeLocalDateTime(v string) string {
	if v == "" {
		return ""
	}
	return strings.Replace(v, "T", " ", 1) + ":00"
}
