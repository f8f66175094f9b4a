// Package sl содержит вспомогательные функции для работы с логгером slog.
// Нужен для единообразных полей лога во всех потоках клиента.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
//
// Пример:
//
//	log.Error("failed to fetch home data", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Op возвращает slog.Attr с именем операции, из которой пишется лог.
func Op(op string) slog.Attr {
	return slog.String("op", op)
}
