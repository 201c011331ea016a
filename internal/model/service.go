package model

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, matching the historical wire format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Service is a bookable offering of a company.
type Service struct {
	ID            int64           `db:"id" json:"id"`
	CompanyID     int64           `db:"company_id" json:"-"`
	Name          string          `db:"name" json:"serviceName"`
	Price         decimal.Decimal `db:"price" json:"price"`
	Currency      string          `db:"currency" json:"currency"`
	Length        int             `db:"length" json:"length"`
	BreakDuration int             `db:"break_duration" json:"breakDuration"`
}

type ServiceCreateRequest struct {
	EnterpriseID  int64           `json:"enterpriseId"`
	ServiceName   string          `json:"serviceName"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Length        int             `json:"length"`
	BreakDuration int             `json:"breakDuration"`
}

type ServiceAddResponse struct {
	ServiceID int64  `json:"serviceId"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
}

// ServiceEdit is the outward service shape used by GET and PUT.
type ServiceEdit struct {
	ServiceName   string          `json:"serviceName"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	Length        int             `json:"length"`
	BreakDuration int             `json:"breakDuration"`
}

// ServiceEmployeeAssignment attaches a set of employees to a service.
type ServiceEmployeeAssignment struct {
	ServiceID   int64   `json:"service_id"`
	EmployeeIDs []int64 `json:"employee_ids"`
}
