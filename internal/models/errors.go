package models

import "errors"

var (
	// ErrNotFound - запись с указанным ID не существует
	ErrNotFound = errors.New("record not found")
	// ErrAreaReferenced - удаление района заблокировано зависимыми проектами или инцидентами (ON DELETE RESTRICT)
	ErrAreaReferenced = errors.New("area is referenced by projects or incidents; delete dependent rows first")
	// ErrDuplicateArea - район с такой парой (name, province) уже есть
	ErrDuplicateArea = errors.New("area with the same name and province already exists")
	// ErrUnknownArea - ссылка на несуществующий район
	ErrUnknownArea = errors.New("referenced area does not exist")
	// ErrUnknownReport - запрошен отчет вне фиксированного набора
	ErrUnknownReport = errors.New("unknown report")
)
