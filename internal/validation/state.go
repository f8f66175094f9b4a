package validation

// State состояние заполнения формы: какие поля тронуты и была ли попытка отправки.
type State struct {
	form      Form
	touched   map[string]bool
	submitted bool
}

func NewState(form Form) *State {
	return &State{
		form:    form,
		touched: make(map[string]bool),
	}
}

// Touch отмечает поле как тронутое пользователем. Неизвестные поля игнорируются.
func (s *State) Touch(fields ...string) {
	for _, field := range fields {
		if _, ok := s.form[field]; ok {
			s.touched[field] = true
		}
	}
}

// Submit отмечает попытку отправки и проверяет все поля независимо от того, тронуты ли они.
// Второе значение сообщает, можно ли отправлять форму.
func (s *State) Submit(values map[string]string) (Errors, bool) {
	s.submitted = true
	errs := s.form.Validate(values)
	return errs, len(errs) == 0
}

// Visible возвращает ошибки, которые нужно показать: по тронутым полям,
// а после попытки отправки по всем.
func (s *State) Visible(values map[string]string) Errors {
	errs := s.form.Validate(values)
	if s.submitted {
		return errs
	}
	for field := range errs {
		if !s.touched[field] {
			delete(errs, field)
		}
	}
	return errs
}
