package booking

import "errors"

var (
	// ErrKeyMismatch возвращается, когда дата/время записи не совпадают с ключом
	ErrKeyMismatch = errors.New("booking.store: record does not match booking key")

	// ErrInvalidRecord возвращается для записи без обязательных полей слота
	ErrInvalidRecord = errors.New("booking.store: invalid booking record")
)
