package kv

import "errors"

var (
	// ErrKeyNotFound возвращается, когда документ с таким ключом не найден
	ErrKeyNotFound = errors.New("kv.repository: key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("kv.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("kv.repository: failed to scan row")
)
