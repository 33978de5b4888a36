package decline_booking

import (
	declineBooking "github.com/m04kA/SMC-SlotScheduler/internal/usecase/decline_booking"
)

// DeclineRequest адрес страницы, открытой по ссылке отказа
type DeclineRequest struct {
	Location string `json:"location"`
}

// DeclinedBooking освобожденный слот
type DeclinedBooking struct {
	Key  string `json:"key"`
	Date string `json:"date,omitempty"`
	Time string `json:"time"`
	Name string `json:"name"`
}

// DeclineResponse результат сверки
type DeclineResponse struct {
	Requested bool             `json:"requested"`
	Declined  bool             `json:"declined"`
	Booking   *DeclinedBooking `json:"booking,omitempty"`
	Location  string           `json:"location"`
	GridDirty bool             `json:"gridDirty"`
	Message   string           `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует результат сверки в HTTP ответ
func FromUseCaseResponse(resp *declineBooking.Response) DeclineResponse {
	result := DeclineResponse{
		Requested: resp.Requested,
		Declined:  resp.Declined,
		Location:  resp.Location.String(),
		GridDirty: resp.GridDirty,
		Message:   resp.Message,
	}
	if resp.Booking != nil {
		result.Booking = &DeclinedBooking{
			Key:  resp.Key.String(),
			Date: resp.Booking.Date.String(),
			Time: resp.Booking.Time.String(),
			Name: resp.Booking.Name,
		}
	}
	return result
}
