// Package models содержит структуры данных клиента сервиса баллов:
// учетные данные, профиль регистрации, профиль пользователя, транзакции,
// балансы по магазинам и агрегированную модель домашнего экрана.
package models

// Credentials учетные данные для входа. Живут только во время отправки формы.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationProfile данные формы регистрации.
// UID — необязательный идентификатор реферальной ссылки, передается без изменений,
// при пустом значении ключ uid в запрос не попадает.
type RegistrationProfile struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	UserName    string `json:"user_name"`
	Nationality string `json:"nationality"`
	Gender      string `json:"gender"`
	Password    string `json:"password"`
	UID         string `json:"uid,omitempty"`
}

// UserProfile профиль пользователя, получаемый с сервера. Только для чтения.
type UserProfile struct {
	Email       string `json:"email"`
	UserName    string `json:"user_name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

// TokenResponse тело успешного ответа на вход и регистрацию.
type TokenResponse struct {
	Token string `json:"token"`
}
