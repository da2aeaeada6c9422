package repo

import (
	"errors"
	"fmt"
)

// ErrNotFound: записи с таким id нет (в том числе ноль затронутых строк при UPDATE/DELETE).
var ErrNotFound = errors.New("record not found")

// StorageError: любая ошибка движка БД (ввод-вывод, нарушение ограничений).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
