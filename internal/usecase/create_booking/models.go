package create_booking

import (
	"net/url"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/internal/notify"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// Config параметры оформления бронирования
type Config struct {
	PhoneDigits     int      // точное количество цифр локального номера
	CountryCode     string   // префикс страны, добавляется при сохранении
	Recipient       string   // адрес получателя уведомлений
	DefaultLocation *url.URL // адрес страницы, если клиент не передал свой
}

// Request модель запроса на создание бронирования
type Request struct {
	Date     types.DateString // пусто в режиме одного дня
	Time     types.TimeString
	Name     string
	Phone    string   // цифры локального номера, нецифровые символы отбрасываются
	Notes    string
	Location *url.URL // текущий адрес страницы, из него строится ссылка отказа
}

// Response модель ответа с созданным бронированием
type Response struct {
	Key          domain.BookingKey
	Booking      domain.BookingRecord
	Notification *notify.Notification
}
