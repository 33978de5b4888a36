package slotstorage

import "errors"

var (
	// ErrSlotEmpty возвращается, когда слот ещё ни разу не записывался
	ErrSlotEmpty = errors.New("slotstorage: slot is empty")

	// ErrRead возвращается при ошибке чтения слота
	ErrRead = errors.New("slotstorage: failed to read slot")

	// ErrWrite возвращается при ошибке записи слота
	ErrWrite = errors.New("slotstorage: failed to write slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slotstorage: failed to build query")

	// ErrInvalidSlotName возвращается для пустого или небезопасного имени слота
	ErrInvalidSlotName = errors.New("slotstorage: invalid slot name")
)
