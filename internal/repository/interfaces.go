package repository

import (
	"context"
	"errors"

	"github.com/yelizavetafitil/BookingBack/internal/model"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

// All repository interfaces in one file
type (
	// UserRepository handles user accounts and their company memberships.
	UserRepository interface {
		// Register inserts the user and, when an employee row shares the
		// phone number, links the new user into that employee's company.
		// Both writes happen in one transaction.
		Register(ctx context.Context, user *model.User) (int64, error)
		Get(ctx context.Context, id int64) (*model.User, error)
		GetByPhone(ctx context.Context, phone string) (*model.User, error)
		GetByPhoneAndName(ctx context.Context, phone, fullName string) (*model.User, error)
		UpdateFullName(ctx context.Context, id int64, fullName string) error
		Delete(ctx context.Context, id int64) error
		ListEnterprises(ctx context.Context, userID int64) ([]model.UserEnterprise, error)
	}

	// CompanyRepository handles enterprises.
	CompanyRepository interface {
		// Register inserts the company and grants the creating user an
		// admin membership in one transaction.
		Register(ctx context.Context, company *model.Company, userID int64, access string) (int64, error)
		Get(ctx context.Context, id int64) (*model.Company, error)
		GetByPhone(ctx context.Context, phone string) (*model.Company, error)
		Update(ctx context.Context, company *model.Company) error
		Delete(ctx context.Context, id int64) error
	}

	// ServiceRepository handles the service catalog and the
	// service-employee many-to-many link.
	ServiceRepository interface {
		Create(ctx context.Context, svc *model.Service) (int64, error)
		Get(ctx context.Context, id int64) (*model.Service, error)
		ListByCompany(ctx context.Context, companyID int64) ([]model.Service, error)
		Update(ctx context.Context, svc *model.Service) error
		Delete(ctx context.Context, id int64) error

		AssignEmployees(ctx context.Context, serviceID int64, employeeIDs []int64) error
		ListEmployeeIDs(ctx context.Context, serviceID int64) ([]int64, error)
		// ReplaceEmployees removes every link of the service and reinserts
		// the given set in one transaction.
		ReplaceEmployees(ctx context.Context, serviceID int64, employeeIDs []int64) error
	}

	// EmployeeRepository handles staff.
	EmployeeRepository interface {
		// Create inserts the employee and, when a user shares the phone
		// number, links that user into the company in one transaction.
		Create(ctx context.Context, employee *model.Employee) (int64, error)
		Get(ctx context.Context, id int64) (*model.Employee, error)
		ListByCompany(ctx context.Context, companyID int64) ([]model.Employee, error)
		Update(ctx context.Context, employee *model.Employee) error
		Delete(ctx context.Context, id int64) error
	}

	// ScheduleRepository persists composed schedules and reconstructs them.
	ScheduleRepository interface {
		// Compose writes every row of one schedule request inside a single
		// transaction: any failure rolls the whole request back.
		Compose(ctx context.Context, comp *model.ScheduleComposition) error
		ListRows(ctx context.Context, employeeID int64, kind model.ScheduleKind, filter model.ScheduleFilter) ([]model.ScheduleRow, error)
		ListBreaks(ctx context.Context, slotID int64) ([]model.WorkBreak, error)
	}
)
