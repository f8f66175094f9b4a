package models

// HomeViewModel агрегированная модель домашнего экрана.
//
// Пока Loading == true остальные поля не имеют смысла. После загрузки Profile == nil
// означает ошибку агрегации (текст в Error), а пустые Transactions и Shops это корректное
// состояние "нет данных".
type HomeViewModel struct {
	Profile      *UserProfile  `json:"profile"`
	Transactions []Transaction `json:"transactions"`
	Shops        []ShopBalance `json:"shops"`
	Loading      bool          `json:"loading"`
	Error        *string       `json:"error"`
}

// Failed сообщает, завершилась ли агрегация ошибкой.
func (m HomeViewModel) Failed() bool {
	return !m.Loading && m.Profile == nil
}
