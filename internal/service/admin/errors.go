package admin

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("admin: wrong credentials")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("admin: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admin: invalid input data")
)
