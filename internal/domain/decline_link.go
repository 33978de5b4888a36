package domain

import (
	"net/url"
	"slices"
	"strings"

	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// DeclineRequest инструкция освободить слот, пришедшая через ссылку
type DeclineRequest struct {
	Date types.DateString
	Time types.TimeString
}

// declineParams имена параметров ссылки отказа для режима
func declineParams(mode Mode) []string {
	if mode.IsDateAware() {
		return []string{DeclineDateParam, DeclineTimeParam}
	}
	return []string{DeclineParam}
}

// ParseDeclineRequest извлекает инструкцию отказа из query string.
// Возвращает false, если нужных параметров нет или они пустые
func ParseDeclineRequest(mode Mode, query url.Values) (DeclineRequest, bool) {
	if !mode.IsDateAware() {
		t := query.Get(DeclineParam)
		if t == "" {
			return DeclineRequest{}, false
		}
		return DeclineRequest{Time: types.TimeString(t)}, true
	}

	date := query.Get(DeclineDateParam)
	t := query.Get(DeclineTimeParam)
	if date == "" || t == "" {
		return DeclineRequest{}, false
	}
	return DeclineRequest{Date: types.DateString(date), Time: types.TimeString(t)}, true
}

// StripDeclineParams возвращает копию location без параметров отказа.
// Остальные параметры сохраняются в исходном порядке и кодировке, фрагмент не трогается
func StripDeclineParams(mode Mode, location *url.URL) *url.URL {
	cleaned := *location
	cleaned.RawQuery = removeRawParams(location.RawQuery, declineParams(mode))
	cleaned.ForceQuery = false
	return &cleaned
}

// BuildDeclineLink клонирует location и выставляет параметры отказа на конкретный слот
func BuildDeclineLink(mode Mode, location *url.URL, date types.DateString, t types.TimeString) string {
	link := StripDeclineParams(mode, location)

	var extra string
	if mode.IsDateAware() {
		extra = DeclineDateParam + "=" + url.QueryEscape(date.String()) +
			"&" + DeclineTimeParam + "=" + url.QueryEscape(t.String())
	} else {
		extra = DeclineParam + "=" + url.QueryEscape(t.String())
	}

	if link.RawQuery == "" {
		link.RawQuery = extra
	} else {
		link.RawQuery += "&" + extra
	}
	return link.String()
}

// removeRawParams удаляет пары key=value с указанными (декодированными) именами
func removeRawParams(rawQuery string, names []string) string {
	if rawQuery == "" {
		return ""
	}

	kept := make([]string, 0)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawName, _, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(rawName)
		if err != nil {
			name = rawName
		}
		if slices.Contains(names, name) {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}
