package create_booking

import (
	"fmt"
	"net/url"

	"github.com/m04kA/SMC-SlotScheduler/internal/service/scheduler/models"
	createBooking "github.com/m04kA/SMC-SlotScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// CreateBookingRequest HTTP запрос на бронирование слота
type CreateBookingRequest struct {
	Date     string `json:"date,omitempty"`
	Time     string `json:"time"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes,omitempty"`
	Location string `json:"location,omitempty"` // адрес страницы для ссылки отказа
}

// SubmitRequest HTTP запрос на отправку формы открытого слота
type SubmitRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes,omitempty"`
	Location string `json:"location,omitempty"`
}

// BookingResponse созданное бронирование
type BookingResponse struct {
	Key   string `json:"key"`
	Date  string `json:"date,omitempty"`
	Time  string `json:"time"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// NotificationResponse письмо для почтового клиента
type NotificationResponse struct {
	Recipient   string `json:"recipient"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	DeclineLink string `json:"declineLink"`
	Mailto      string `json:"mailto"`
}

// CreateBookingResponse HTTP ответ на бронирование
type CreateBookingResponse struct {
	Booking      BookingResponse      `json:"booking"`
	Notification NotificationResponse `json:"notification"`
	Toast        string               `json:"toast,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос сервиса
func (r *CreateBookingRequest) ToServiceRequest() (*models.BookRequest, error) {
	form, err := toForm(r.Name, r.Phone, r.Notes, r.Location)
	if err != nil {
		return nil, err
	}
	return &models.BookRequest{
		Date: types.DateString(r.Date),
		Time: types.TimeString(r.Time),
		Form: form,
	}, nil
}

// ToForm конвертирует HTTP запрос в форму сервиса
func (r *SubmitRequest) ToForm() (models.Form, error) {
	return toForm(r.Name, r.Phone, r.Notes, r.Location)
}

func toForm(name, phone, notes, location string) (models.Form, error) {
	form := models.Form{Name: name, Phone: phone, Notes: notes}
	if location == "" {
		return form, nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return models.Form{}, fmt.Errorf("invalid location: %w", err)
	}
	form.Location = u
	return form, nil
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response, toast string) CreateBookingResponse {
	n := resp.Notification
	return CreateBookingResponse{
		Booking: BookingResponse{
			Key:   resp.Key.String(),
			Date:  resp.Booking.Date.String(),
			Time:  resp.Booking.Time.String(),
			Name:  resp.Booking.Name,
			Phone: resp.Booking.Phone,
			Notes: resp.Booking.Notes,
		},
		Notification: NotificationResponse{
			Recipient:   n.Recipient,
			Subject:     n.Subject,
			Body:        n.Body(),
			DeclineLink: n.DeclineLink,
			Mailto:      n.MailtoURI(),
		},
		Toast: toast,
	}
}
