package models

// Client is a customer a quotation can be addressed to.
type Client struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"name"`
	ClientIDNumber string `json:"client_id_number,omitempty"`
	ContactPerson  string `json:"contact_person,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	AccountID      int64  `json:"account_id,omitempty"`
}
