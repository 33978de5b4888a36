package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// SanitizePhone оставляет только цифры и обрезает до maxDigits
func SanitizePhone(raw string, maxDigits int) string {
	digits := onlyDigits(raw)
	if maxDigits > 0 && len(digits) > maxDigits {
		digits = digits[:maxDigits]
	}
	return digits
}

// validateSlot проверяет дату и время относительно сетки слотов
func validateSlot(date types.DateString, t types.TimeString, mode domain.Mode, slots SlotDomain) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, t)
	}
	if !slots.IsValidTime(t) {
		return fmt.Errorf("%w: %s is not in the slot grid", ErrInvalidTimeSlot, t)
	}

	if !mode.IsDateAware() {
		return nil
	}

	if err := date.Validate(); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	if !slots.IsDateInWindow(date) {
		return fmt.Errorf("%w: %s is outside of the booking window", ErrInvalidDate, date)
	}

	return nil
}

// validateName проверяет, что имя не пустое
func validateName(name string) error {
	if name == "" {
		return ErrMissingName
	}
	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}

// validatePhone проверяет, что после удаления нецифровых символов осталось ровно digits цифр
func validatePhone(phone string, digits int) error {
	cleaned := onlyDigits(phone)
	if len(cleaned) != digits {
		return fmt.Errorf("%w: expected %d digits, got %d", ErrBadPhone, digits, len(cleaned))
	}
	return nil
}

// validateNotes ограничивает длину заметок
func validateNotes(notes string) error {
	if utf8.RuneCountInString(notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
