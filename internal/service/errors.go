package service

import "errors"

// Классы ошибок доменного слоя. Ошибки чтения из БД сюда не попадают:
// чтение деградирует до "не найдено" / частичного списка и только логируется.
var (
	ErrNotFound        = errors.New("not found")
	ErrTutorNotFound   = errors.New("tutor not found")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrValidation      = errors.New("validation failed")
)
