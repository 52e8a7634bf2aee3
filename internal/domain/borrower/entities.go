package borrower

import (
	"time"
)

// Borrower is the applicant business record. One row per email address;
// re-applications update the existing row in place.
type Borrower struct {
	ID              string    `gorm:"primaryKey;size:32;column:id" json:"id"`
	Email           string    `gorm:"size:255;uniqueIndex:ux_borrowers_email" json:"email"`
	Name            string    `gorm:"size:255" json:"name"`
	Phone           string    `gorm:"size:64" json:"phone"`
	CompanyName     string    `gorm:"size:255" json:"company_name"`
	Industry        string    `gorm:"size:128" json:"industry"`
	YearsInBusiness string    `gorm:"size:32" json:"years_in_business"`
	AnnualRevenue   string    `gorm:"size:64" json:"annual_revenue"`
	AuthUserID      string    `gorm:"size:64;index:idx_borrowers_auth_user" json:"auth_user_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Borrower) TableName() string { return "borrowers" }
