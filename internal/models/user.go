package models

// User is a sales advisor managed within an account.
type User struct {
	ID        int64  `json:"id,omitempty"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active,omitempty"`
	AccountID int64  `json:"account_id,omitempty"`
}

// UserUpdate carries the mutable advisor fields; nil means "leave as is".
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
