package domain

// Значения по умолчанию для конфигурации планировщика
const (
	DefaultStartHour       = 8
	DefaultEndHour         = 18
	DefaultIntervalMinutes = 30
	DefaultMonthsForward   = 3
	DefaultPhoneDigits     = 9
	DefaultCountryCode     = "359"
	DefaultStorageSlot     = "scheduler-bookings-v1"
	DefaultToastDelayMS    = 3200
)

// Ограничения бизнес-валидации конфигурации
const (
	MinIntervalMinutes = 5
	MaxIntervalMinutes = 720
	MaxMonthsForward   = 24
	MaxPhoneDigits     = 15
	MaxNameLength      = 200
	MaxNotesLength     = 1000
)

// Параметры ссылки отказа в query string
const (
	DeclineParam     = "decline"
	DeclineDateParam = "declineDate"
	DeclineTimeParam = "declineTime"
)
