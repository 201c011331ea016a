package model

// User is an account holder identified by a unique phone number.
type User struct {
	ID           int64  `db:"id" json:"id"`
	FullName     string `db:"full_name" json:"fullName"`
	PhoneNumber  string `db:"phone" json:"phoneNumber"`
	PasswordHash string `db:"password_hash" json:"-"`
}

// Project links a user to a company with an access role. Despite the name
// it models membership, not a task-tracking concept.
type Project struct {
	ID        int64  `db:"id" json:"id"`
	Access    string `db:"access" json:"access"`
	UserID    int64  `db:"user_id" json:"userId"`
	CompanyID int64  `db:"company_id" json:"companyId"`
}

type RegisterRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	UserID int64 `json:"userId"`
}

type LoginRequest struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// UserData is the outward user shape; the password field is kept for wire
// compatibility and is always empty in responses.
type UserData struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// UserEnterprise is one row of the user's company memberships.
type UserEnterprise struct {
	EnterpriseID   int64  `db:"enterprise_id" json:"enterpriseId"`
	EnterpriseName string `db:"enterprise_name" json:"enterpriseName"`
	UserID         int64  `db:"user_id" json:"userId"`
	Access         string `db:"access" json:"access"`
}
