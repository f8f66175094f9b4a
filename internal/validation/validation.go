// Package validation содержит чистые валидаторы полей форм.
//
// Валидатор получает значение поля и возвращает текст ошибки или пустую строку.
// Форма — отображение имени поля в его единственный валидатор. Отправка блокируется,
// если хотя бы один валидатор вернул ошибку; признак "поле тронуто" влияет только
// на показ ошибок, но не на блокировку отправки.
package validation

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator"
)

// Validator проверяет значение поля. Пустая строка означает отсутствие ошибки.
type Validator func(value string) string

var validate = validator.New()

// Required проверяет, что значение не пустое.
func Required(msg string) Validator {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return msg
		}
		return ""
	}
}

// Email проверяет формат адреса. Пустое значение пропускается, для него используется Required.
func Email(msg string) Validator {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if err := validate.Var(value, "email"); err != nil {
			return msg
		}
		return ""
	}
}

// MinLength проверяет минимальную длину значения в символах.
func MinLength(n int, msg string) Validator {
	return func(value string) string {
		if value != "" && utf8.RuneCountInString(value) < n {
			return msg
		}
		return ""
	}
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// DateNotFuture проверяет, что значение является датой не позже текущего момента.
// now позволяет подменить часы в тестах, при nil используется time.Now.
func DateNotFuture(invalidMsg, futureMsg string, now func() time.Time) Validator {
	if now == nil {
		now = time.Now
	}
	return func(value string) string {
		if value == "" {
			return ""
		}
		date, ok := parseDate(value)
		if !ok {
			return invalidMsg
		}
		if date.After(now()) {
			return futureMsg
		}
		return ""
	}
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Chain объединяет правила в один валидатор поля, возвращается первая ошибка.
func Chain(rules ...Validator) Validator {
	return func(value string) string {
		for _, rule := range rules {
			if msg := rule(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// Errors ошибки формы по именам полей.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, field+": "+e[field])
	}
	return strings.Join(msgs, ", ")
}

// Form отображение имени поля в его валидатор.
type Form map[string]Validator

// Validate запускает все валидаторы и возвращает ошибки. Пустой результат означает валидную форму.
func (f Form) Validate(values map[string]string) Errors {
	errs := Errors{}
	for field, v := range f {
		if msg := v(values[field]); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// Valid сообщает, можно ли отправлять форму.
func (f Form) Valid(values map[string]string) bool {
	return len(f.Validate(values)) == 0
}
