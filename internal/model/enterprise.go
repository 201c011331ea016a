package model

// Company is an enterprise offering services, identified by a unique phone.
type Company struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"enterpriseName"`
	City        string `db:"city" json:"city"`
	Address     string `db:"address" json:"address"`
	PhoneNumber string `db:"phone" json:"enterprisePhoneNumber"`
}

type EnterpriseRegistrationRequest struct {
	UserID                int64  `json:"userId"`
	EnterpriseName        string `json:"enterpriseName"`
	City                  string `json:"city"`
	Address               string `json:"address"`
	EnterprisePhoneNumber string `json:"enterprisePhoneNumber"`
}

type EnterpriseRegistrationResponse struct {
	EnterpriseID int64 `json:"enterpriseId"`
}

// Enterprise is the outward company shape used by GET and PUT.
type Enterprise struct {
	EnterpriseName        string `json:"enterpriseName"`
	City                  string `json:"city"`
	Address               string `json:"address"`
	EnterprisePhoneNumber string `json:"enterprisePhoneNumber"`
}
