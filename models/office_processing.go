package models

// OfficeProcessing is the Part 5 office-only row: contribution fields plus
// three independent (signature file, timestamp) pairs for the
// received/processed/reviewed stages.
type OfficeProcessing struct {
	ID                       uint64  `gorm:"primaryKey" json:"id"`
	PersonID                 uint64  `gorm:"index:uniq_person_office,unique" json:"person_id"`
	Person                   Person  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	BusinessCode             *string `gorm:"type:varchar(50)" json:"business_code"`
	WorkingSpouseMSC         *string `gorm:"type:varchar(50)" json:"working_spouse_msc"`
	MonthlyContribution      *string `gorm:"type:varchar(50)" json:"monthly_contribution"`
	ApprovedMSC              *string `gorm:"type:varchar(50)" json:"approved_msc"`
	StartOfPayment           *string `gorm:"type:varchar(50)" json:"start_of_payment"`
	FlexiStatus              *string `gorm:"type:varchar(15)" json:"flexi_status"` // "approved"/"disapproved" only
	ReceivedBySignaturePath  *string `gorm:"type:varchar(255)" json:"received_by_signature_path"`
	ReceivedByDatetime       *string `gorm:"type:varchar(20)" json:"received_by_datetime"`
	ProcessedBySignaturePath *string `gorm:"type:varchar(255)" json:"processed_by_signature_path"`
	ProcessedByDatetime      *string `gorm:"type:varchar(20)" json:"processed_by_datetime"`
	ReviewedBySignaturePath  *string `gorm:"type:varchar(255)" json:"reviewed_by_signature_path"`
	ReviewedByDatetime       *string `gorm:"type:varchar(20)" json:"reviewed_by_datetime"`
}

// TableName overrides the table name
func (OfficeProcessing) TableName() string {
	return "person_office_processing"
}
