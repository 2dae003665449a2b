package interfaces

import "errors"

// Ошибки хранилища, общие для всех репозиториев.
var (
	// ErrNotFound — сущность не найдена (или не принадлежит пользователю).
	ErrNotFound = errors.New("entity not found")

	// ErrEmailExists — пользователь с таким email уже есть.
	ErrEmailExists = errors.New("email already exists")

	// ErrUsernameExists — пользователь с таким username уже есть.
	ErrUsernameExists = errors.New("username already exists")

	// ErrConstraintViolation — запись нарушает ограничение схемы (CHECK, NOT NULL, FK).
	ErrConstraintViolation = errors.New("constraint violation")
)
