package session

import (
	"time"

	"github.com/magabrotheeeer/loyalty-userapp/internal/models"
	"github.com/magabrotheeeer/loyalty-userapp/internal/validation"
)

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldDateOfBirth = "date_of_birth"
	FieldUserName    = "user_name"
	FieldNationality = "nationality"
	FieldGender      = "gender"
)

// MinPasswordLength минимальная длина пароля при регистрации.
const MinPasswordLength = 6

// LoginForm правила формы входа.
func LoginForm() validation.Form {
	return validation.Form{
		FieldEmail: validation.Chain(
			validation.Required("Email is required"),
			validation.Email("Invalid email"),
		),
		FieldPassword: validation.Required("Password is required"),
	}
}

// RegisterForm правила формы регистрации. Национальность и пол проверяются только
// на заполненность, допустимые варианты задает слой представления.
func RegisterForm(now func() time.Time) validation.Form {
	required := validation.Required("This field is required")
	return validation.Form{
		FieldFirstName: required,
		FieldLastName:  required,
		FieldEmail: validation.Chain(
			validation.Required("Email is required"),
			validation.Email("Invalid email address"),
		),
		FieldDateOfBirth: validation.Chain(
			validation.Required("Date of birth is required"),
			validation.DateNotFuture("Invalid date", "Date cannot be in the future", now),
		),
		FieldUserName:    required,
		FieldNationality: required,
		FieldGender:      required,
		FieldPassword: validation.Chain(
			validation.Required("Password is required"),
			validation.MinLength(MinPasswordLength, "Password must be at least 6 characters"),
		),
	}
}

// CredentialsValues значения формы входа по именам полей.
func CredentialsValues(c models.Credentials) map[string]string {
	return map[string]string{
		FieldEmail:    c.Email,
		FieldPassword: c.Password,
	}
}

// RegistrationValues значения формы регистрации по именам полей.
func RegistrationValues(p models.RegistrationProfile) map[string]string {
	return map[string]string{
		FieldFirstName:   p.FirstName,
		FieldLastName:    p.LastName,
		FieldEmail:       p.Email,
		FieldDateOfBirth: p.DateOfBirth,
		FieldUserName:    p.UserName,
		FieldNationality: p.Nationality,
		FieldGender:      p.Gender,
		FieldPassword:    p.Password,
	}
}
