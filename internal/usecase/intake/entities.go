package intake

// SubmitInput is the application form payload. Only Name, Email and
// AmountRequested are required; everything else is stored as submitted.
type SubmitInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	CompanyName     string `json:"company_name"`
	Industry        string `json:"industry"`
	YearsInBusiness string `json:"years_in_business"`
	AnnualRevenue   string `json:"annual_revenue"`
	AmountRequested string `json:"amount_requested"`
	LoanPurpose     string `json:"loan_purpose"`
}

// Result is the submission outcome returned to the form. Demo marks a
// simulated success that performed no writes.
type Result struct {
	Success    bool   `json:"success"`
	Demo       bool   `json:"demo,omitempty"`
	Message    string `json:"message,omitempty"`
	LoanID     string `json:"loanId,omitempty"`
	BorrowerID string `json:"borrowerId,omitempty"`
}
