// Package views описывает модели страниц, которые клиент отдает слою отрисовки.
package views

import "net/url"

// Link ссылка на маршрут клиента.
type Link struct {
	Title string `json:"title"`
	Href  string `json:"href"`
}

// Page простая страница с заголовком, текстом и ссылками.
type Page struct {
	Title string `json:"title"`
	Text  string `json:"text,omitempty"`
	Links []Link `json:"links,omitempty"`
}

// Option вариант выбора в поле формы.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field описание поля формы.
type Field struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Placeholder string   `json:"placeholder,omitempty"`
	Required    bool     `json:"required"`
	Options     []Option `json:"options,omitempty"`
}

// Form описание формы: куда отправлять и какие поля показывать.
type Form struct {
	Title  string            `json:"title"`
	Action string            `json:"action"`
	Fields []Field           `json:"fields"`
	Hidden map[string]string `json:"hidden,omitempty"`
}

// Landing стартовая страница для неавторизованного пользователя.
func Landing() Page {
	return Page{
		Title: "Points",
		Text:  "Collect points in partner shops and track your balances in one place.",
		Links: []Link{
			{Title: "Login", Href: "/user/login"},
			{Title: "Register", Href: "/register"},
		},
	}
}

// NotFound страница для неизвестных маршрутов.
func NotFound() Page {
	return Page{
		Title: "Page not found",
		Text:  "The page you are looking for does not exist.",
		Links: []Link{{Title: "Back to start", Href: "/"}},
	}
}

// Nationalities варианты национальности в форме регистрации.
var Nationalities = []Option{
	{Value: "American", Label: "American"},
	{Value: "Australian", Label: "Australian"},
	{Value: "Canadian", Label: "Canadian"},
	{Value: "Other", Label: "Other"},
}

// Genders варианты пола в форме регистрации.
var Genders = []Option{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
	{Value: "other", Label: "Other"},
}

// LoginForm форма входа.
func LoginForm() Form {
	return Form{
		Title:  "Login",
		Action: "/user/login",
		Fields: []Field{
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
		},
	}
}

// RegisterForm форма регистрации. Непустой uid передается обратно как скрытое поле.
func RegisterForm(uid string) Form {
	form := Form{
		Title:  "Register",
		Action: "/register",
		Fields: []Field{
			{Name: "first_name", Label: "First Name", Type: "text", Placeholder: "First Name", Required: true},
			{Name: "last_name", Label: "Last Name", Type: "text", Placeholder: "Last Name", Required: true},
			{Name: "email", Label: "Email", Type: "email", Placeholder: "me@example.com", Required: true},
			{Name: "date_of_birth", Label: "Date of Birth", Type: "date", Required: true},
			{Name: "user_name", Label: "User Name", Type: "text", Placeholder: "User name", Required: true},
			{Name: "nationality", Label: "Nationality", Type: "select", Placeholder: "Select nationality", Required: true, Options: Nationalities},
			{Name: "gender", Label: "Gender", Type: "radio", Required: true, Options: Genders},
			{Name: "password", Label: "Password", Type: "password", Placeholder: "Enter password", Required: true},
		},
	}
	if uid != "" {
		form.Action = "/register?uid=" + url.QueryEscape(uid)
		form.Hidden = map[string]string{"uid": uid}
	}
	return form
}
