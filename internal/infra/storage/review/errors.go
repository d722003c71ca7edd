package review

import "errors"

var (
	// ErrAlreadyExists возвращается при попытке второго отзыва
	// на ту же лодку от того же пользователя
	ErrAlreadyExists = errors.New("review.repository: review already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("review.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("review.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("review.repository: failed to scan row")
)
