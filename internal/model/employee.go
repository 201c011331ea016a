package model

// Employee is a staff member of a company. An employee may exist before the
// matching user account is registered; the phone number ties them together.
type Employee struct {
	ID          int64  `db:"id" json:"id"`
	CompanyID   int64  `db:"company_id" json:"-"`
	FullName    string `db:"full_name" json:"employee_fio"`
	PhoneNumber string `db:"phone" json:"employee_phone"`
	Position    string `db:"position" json:"position"`
	Access      string `db:"access" json:"access"`
}

type EmployeeCreateRequest struct {
	EnterpriseID int64  `json:"enterpriseId"`
	FullName     string `json:"employee_fio"`
	PhoneNumber  string `json:"employee_phone"`
	Position     string `json:"position"`
	Access       string `json:"access"`
}

// EmployeeEdit is the outward employee shape used by GET and PUT.
type EmployeeEdit struct {
	FullName    string `json:"employee_fio"`
	PhoneNumber string `json:"employee_phone"`
	Position    string `json:"position"`
	Access      string `json:"access"`
}
