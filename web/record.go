package web

import (
	"github.com/sumkai16/E1PersonalRecord/forms"
	"github.com/sumkai16/E1PersonalRecord/models"
	"github.com/sumkai16/E1PersonalRecord/storage"

	"github.com/gin-gonic/gin"
)

// buildRecord maps a validated submission (cleaned Part 1 data plus the raw
// field set for Parts 2-5) into the persistence aggregate, running file
// intake for every signature slot. Sections with no content stay nil.
func (h *Handler) buildRecord(c *gin.Context, fields forms.Fields, data forms.PersonData) *models.PersonRecord {
	rec := &models.PersonRecord{
		CivilStatusCode: data.CivilStatus,
		Person: models.Person{
			LastName:          data.LastName,
			FirstName:         data.FirstName,
			MiddleName:        data.MiddleName,
			DateOfBirth:       data.DateOfBirth,
			Sex:               data.Sex,
			CivilStatusOther:  optStr(data.CivilStatusOther),
			Nationality:       data.Nationality,
			PlaceOfBirth:      data.PlaceOfBirth,
			MobileNumber:      data.MobileNumber,
			Email:             data.Email,
			Religion:          optStr(data.Religion),
			TelephoneNumber:   optStr(data.TelephoneNumber),
			FatherLastName:    optStr(data.FatherLastName),
			FatherFirstName:   optStr(data.FatherFirstName),
			FatherMiddleName:  optStr(data.FatherMiddleName),
			MotherLastName:    optStr(data.MotherLastName),
			MotherFirstName:   optStr(data.MotherFirstName),
			MotherMiddleName:  optStr(data.MotherMiddleName),
			SameAsHomeAddress: data.SameAsHomeAddress,
		},
		HomeAddress: &models.HomeAddress{
			AddressLine: data.HomeAddress,
			ZipCode:     optStr(data.ZipCode),
		},
	}

	for _, row := range forms.CollectDependents(fields) {
		rec.Dependents = append(rec.Dependents, models.Dependent{
			Kind:         row.Kind,
			LastName:     orPlaceholder(row.LastName),
			FirstName:    orPlaceholder(row.FirstName),
			MiddleName:   optStr(row.MiddleName),
			Suffix:       optStr(row.Suffix),
			DateOfBirth:  optStr(row.DateOfBirth),
			Relationship: optStr(row.Relationship),
		})
	}

	if se := forms.SelfEmploymentFrom(fields); !se.Empty() {
		rec.SelfEmployment = &models.SelfEmployment{
			ProfessionBusiness: optStr(se.ProfessionBusiness),
			YearStarted:        optStr(se.YearStarted),
			MonthlyEarnings:    optStr(se.MonthlyEarnings),
		}
	}

	if ofw := forms.OverseasWorkFrom(fields); !ofw.Empty() {
		rec.OverseasWork = &models.OverseasWork{
			ForeignAddress:  optStr(ofw.ForeignAddress),
			MonthlyEarnings: optStr(ofw.MonthlyEarnings),
			FlexiFund:       optStr(ofw.FlexiFundValue()),
		}
	}

	nws := forms.NonWorkingSpouseFrom(fields)
	nwsSignature := storage.SaveSignatureUpload(c, h.Store, "nws_signature_file")
	if !nws.Empty() || nwsSignature != nil {
		rec.NonWorkingSpouse = &models.NonWorkingSpouse{
			WorkingSpouseSSNo:          optStr(nws.WorkingSpouseSSNo),
			WorkingSpouseMonthlyIncome: optStr(nws.MonthlyIncome),
			SignatureFilePath:          nwsSignature,
		}
	}

	cert := forms.CertificationFrom(fields)
	certSignature := storage.SaveSignatureUpload(c, h.Store, "cert_signature_file")
	if !cert.Empty() || certSignature != nil {
		rec.Certification = &models.Certification{
			PrintedName:       optStr(cert.PrintedName),
			SignatureText:     optStr(cert.SignatureText),
			SignatureFilePath: certSignature,
			CertDate:          optStr(cert.CertDate),
		}
	}

	office := forms.OfficeProcessingFrom(fields)
	receivedSignature := storage.SaveSignatureUpload(c, h.Store, "sss_received_by_signature")
	processedSignature := storage.SaveSignatureUpload(c, h.Store, "sss_processed_by_signature")
	reviewedSignature := storage.SaveSignatureUpload(c, h.Store, "sss_reviewed_by_signature")
	if !office.Empty() || receivedSignature != nil || processedSignature != nil || reviewedSignature != nil {
		rec.OfficeProcessing = &models.OfficeProcessing{
			BusinessCode:             optStr(office.BusinessCode),
			WorkingSpouseMSC:         optStr(office.WorkingSpouseMSC),
			MonthlyContribution:      optStr(office.MonthlyContribution),
			ApprovedMSC:              optStr(office.ApprovedMSC),
			StartOfPayment:           optStr(office.StartOfPayment),
			FlexiStatus:              optStr(office.FlexiStatusValue()),
			ReceivedBySignaturePath:  receivedSignature,
			ReceivedByDatetime:       optStr(forms.NormalizeLocalDateTime(office.ReceivedByDatetime)),
			ProcessedBySignaturePath: processedSignature,
			ProcessedByDatetime:      optStr(forms.NormalizeLocalDateTime(office.ProcessedByDatetime)),
			ReviewedBySignaturePath:  reviewedSignature,
			ReviewedByDatetime:       optStr(forms.NormalizeLocalDateTime(office.ReviewedByDatetime)),
		}
	}
	return rec
}

// optStr maps "" to NULL.
func optStr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// orPlaceholder keeps the NOT NULL dependent name columns satisfied on rows
// that survived with a blank name.
func orPlaceholder(v string) string {
	if v == "" {
		return models.PlaceholderName
	}
	return v
}
