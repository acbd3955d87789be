package repositories

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
