package models

// Certification is the Part 4 row: printed name plus either a typed
// signature, an uploaded signature file, or both.
type Certification struct {
	ID                uint64  `gorm:"primaryKey" json:"id"`
	PersonID          uint64  `gorm:"index:uniq_person_cert,unique" json:"person_id"`
	Person            Person  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PrintedName       *string `gorm:"type:varchar(255)" json:"printed_name"`
	SignatureText     *string `gorm:"type:varchar(255)" json:"signature_text"`
	SignatureFilePath *string `gorm:"type:varchar(255)" json:"signature_file_path"`
	CertDate          *string `gorm:"type:varchar(10)" json:"cert_date"`
}
