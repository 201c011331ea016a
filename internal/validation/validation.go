package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/yelizavetafitil/BookingBack/pkg/apperror"
)

var (
	nameRe  = regexp.MustCompile(`^[\p{L} .'-]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	mustRegister(v, "name_chars", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "has_digit", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsDigit)
	})
	mustRegister(v, "has_letter", func(fl validator.FieldLevel) bool {
		return strings.ContainsFunc(fl.Field().String(), unicode.IsLetter)
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Rule checks one value against one validator tag. Message is the
// user-facing reason reported when the check fails.
type Rule struct {
	Value   string
	Tag     string
	Message string
}

// First applies the rules in order and returns the first failure as a
// validation error, or nil when every rule passes.
func First(rules ...Rule) error {
	for _, r := range rules {
		if err := validate.Var(r.Value, r.Tag); err != nil {
			return apperror.Validation(r.Message)
		}
	}
	return nil
}

func notBlank(s string) string {
	return strings.TrimSpace(s)
}

// UserRegistration validates the /register payload.
func UserRegistration(fullName, phone, password string) error {
	return First(
		Rule{notBlank(fullName), "required", "ФИО обязательно для заполнения"},
		Rule{fullName, "max=100", "ФИО слишком длинное (макс. 100 символов)"},
		Rule{fullName, "name_chars", "Недопустимые символы в ФИО"},
		Rule{notBlank(phone), "required", "Номер телефона обязателен"},
		Rule{phone, "phone", "Неверный формат номера телефона"},
		Rule{notBlank(password), "required", "Пароль обязателен"},
		Rule{password, "min=8", "Пароль слишком короткий (мин. 8 символов)"},
		Rule{password, "max=50", "Пароль слишком длинный (макс. 50 символов)"},
		Rule{password, "has_digit", "Пароль должен содержать цифры"},
		Rule{password, "has_letter", "Пароль должен содержать буквы"},
	)
}

// Login validates the /login payload.
func Login(fullName, phone, password string) error {
	return First(
		Rule{notBlank(fullName), "required", "ФИО обязательно для заполнения"},
		Rule{notBlank(phone), "required", "Номер телефона обязателен"},
		Rule{phone, "phone", "Неверный формат номера телефона"},
		Rule{notBlank(password), "required", "Пароль обязателен"},
	)
}

// EnterpriseRegistration validates the /enterpriseRegistration payload.
func EnterpriseRegistration(name, city, address, phone string) error {
	return First(
		Rule{notBlank(name), "required", "Имя предприятия обязательно для заполнения"},
		Rule{name, "max=100", "Имя предприятия слишком длинное (макс. 100 символов)"},
		Rule{name, "name_chars", "Недопустимые символы в имени предприятия"},
		Rule{notBlank(city), "required", "Город обязателен"},
		Rule{city, "max=50", "Город слишком длинный (макс. 50 символов)"},
		Rule{city, "name_chars", "Недопустимые символы в имени города"},
		Rule{notBlank(address), "required", "Адрес обязателен"},
		Rule{address, "max=100", "Адрес слишком длинный (макс. 100 символов)"},
		Rule{address, "name_chars", "Недопустимые символы в адресе"},
		Rule{notBlank(phone), "required", "Номер телефона предприятия обязателен"},
		Rule{phone, "phone", "Неверный формат номера телефона предприятия"},
	)
}

// ServiceName validates the catalog service name.
func ServiceName(name string) error {
	return First(
		Rule{name, "max=100", "Название слишком длинное (макс. 100 символов)"},
		Rule{name, "name_chars", "Недопустимые символы в названии"},
	)
}

// Employee validates the /addEmployee payload.
func Employee(fullName, phone, position, access string) error {
	return First(
		Rule{fullName, "max=100", "ФИО слишком длинное (макс. 100 символов)"},
		Rule{fullName, "name_chars", "Недопустимые символы в ФИО"},
		Rule{position, "max=100", "Должность слишком длинная (макс. 100 символов)"},
		Rule{position, "name_chars", "Недопустимые символы в должности"},
		Rule{notBlank(phone), "required", "Номер телефона обязателен"},
		Rule{notBlank(access), "required", "Доступ обязателен"},
		Rule{phone, "phone", "Неверный формат номера телефона"},
	)
}
