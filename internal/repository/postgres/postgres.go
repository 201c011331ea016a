package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/yelizavetafitil/BookingBack/internal/repository"
)

type userRepository struct {
	BaseRepository
}

type companyRepository struct {
	BaseRepository
}

type serviceRepository struct {
	BaseRepository
}

type employeeRepository struct {
	BaseRepository
}

type scheduleRepository struct {
	BaseRepository
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{NewBaseRepository(db)}
}

func NewCompanyRepository(db *sqlx.DB) repository.CompanyRepository {
	return &companyRepository{NewBaseRepository(db)}
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{NewBaseRepository(db)}
}

func NewEmployeeRepository(db *sqlx.DB) repository.EmployeeRepository {
	return &employeeRepository{NewBaseRepository(db)}
}

func NewScheduleRepository(db *sqlx.DB) repository.ScheduleRepository {
	return &scheduleRepository{NewBaseRepository(db)}
}
