package models

// Part 3 employment-category rows: up to one of each per person, present
// only when the corresponding form section carried any value.

type SelfEmployment struct {
	ID                 uint64  `gorm:"primaryKey" json:"id"`
	PersonID           uint64  `gorm:"index:uniq_person_se,unique" json:"person_id"`
	Person             Person  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ProfessionBusiness *string `gorm:"type:varchar(255)" json:"profession_business"`
	YearStarted        *string `gorm:"type:varchar(10)" json:"year_started"`
	MonthlyEarnings    *string `gorm:"type:varchar(50)" json:"monthly_earnings"`
}

type OverseasWork struct {
	ID              uint64  `gorm:"primaryKey" json:"id"`
	PersonID        uint64  `gorm:"index:uniq_person_ofw,unique" json:"person_id"`
	Person          Person  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ForeignAddress  *string `gorm:"type:varchar(255)" json:"foreign_address"`
	MonthlyEarnings *string `gorm:"type:varchar(50)" json:"monthly_earnings"`
	FlexiFund       *string `gorm:"type:varchar(3)" json:"flexi_fund"` // "yes"/"no" only
}

type NonWorkingSpouse struct {
	ID                         uint64  `gorm:"primaryKey" json:"id"`
	PersonID                   uint64  `gorm:"index:uniq_person_nws,unique" json:"person_id"`
	Person                     Person  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	WorkingSpouseSSNo          *string `gorm:"type:varchar(30)" json:"working_spouse_ss_no"`
	WorkingSpouseMonthlyIncome *string `gorm:"type:varchar(50)" json:"working_spouse_monthly_income"`
	SignatureFilePath          *string `gorm:"type:varchar(255)" json:"signature_file_path"`
}
