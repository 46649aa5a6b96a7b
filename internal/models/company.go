package models

// CompanyProfile holds the letterhead data printed on quotation PDFs.
type CompanyProfile struct {
	ID          int64  `json:"id,omitempty"`
	CompanyName string `json:"company_name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	LogoPath    string `json:"logo_path,omitempty"`
}

// TermsConditions is the free-form terms text appended to quotations.
type TermsConditions struct {
	ID        int64  `json:"id,omitempty"`
	Content   string `json:"content"`
	AccountID int64  `json:"account_id,omitempty"`
}
