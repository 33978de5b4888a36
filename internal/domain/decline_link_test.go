package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestBuildDeclineLink_MultiDay(t *testing.T) {
	location := mustURL(t, "https://book.example.com/calendar?lang=bg&ref=mail%20x#slots")

	link := BuildDeclineLink(ModeMultiDay, location, "2024-06-01", "09:00")

	assert.Equal(t,
		"https://book.example.com/calendar?lang=bg&ref=mail%20x&declineDate=2024-06-01&declineTime=09%3A00#slots",
		link)
	assert.Equal(t, "https://book.example.com/calendar?lang=bg&ref=mail%20x#slots", location.String(),
		"source location must not be mutated")
}

func TestBuildDeclineLink_ReplacesExistingParams(t *testing.T) {
	location := mustURL(t, "https://book.example.com/?declineDate=2020-01-01&declineTime=08:00&x=1")

	link := BuildDeclineLink(ModeMultiDay, location, "2024-06-01", "09:00")

	parsed := mustURL(t, link)
	assert.Equal(t, []string{"2024-06-01"}, parsed.Query()["declineDate"])
	assert.Equal(t, []string{"09:00"}, parsed.Query()["declineTime"])
	assert.Equal(t, "1", parsed.Query().Get("x"))
}

func TestBuildDeclineLink_SingleDay(t *testing.T) {
	link := BuildDeclineLink(ModeSingleDay, mustURL(t, "https://book.example.com/"), "", "17:30")
	assert.Equal(t, "https://book.example.com/?decline=17%3A30", link)
}

func TestParseDeclineRequest(t *testing.T) {
	req, ok := ParseDeclineRequest(ModeMultiDay, url.Values{
		"declineDate": {"2024-06-01"},
		"declineTime": {"09:00"},
	})
	require.True(t, ok)
	assert.Equal(t, DeclineRequest{Date: "2024-06-01", Time: "09:00"}, req)

	_, ok = ParseDeclineRequest(ModeMultiDay, url.Values{"declineDate": {"2024-06-01"}})
	assert.False(t, ok)

	_, ok = ParseDeclineRequest(ModeMultiDay, url.Values{"decline": {"09:00"}})
	assert.False(t, ok)

	req, ok = ParseDeclineRequest(ModeSingleDay, url.Values{"decline": {"09:00"}})
	require.True(t, ok)
	assert.Equal(t, DeclineRequest{Time: "09:00"}, req)
}

func TestStripDeclineParams_PreservesOtherParamsAndFragment(t *testing.T) {
	location := mustURL(t, "https://book.example.com/p?b=2&declineDate=2024-06-01&a=%C3%A9&declineTime=09%3A00#top")

	cleaned := StripDeclineParams(ModeMultiDay, location)
	assert.Equal(t, "https://book.example.com/p?b=2&a=%C3%A9#top", cleaned.String())

	onlyDecline := mustURL(t, "https://book.example.com/p?decline=09:00")
	assert.Equal(t, "https://book.example.com/p", StripDeclineParams(ModeSingleDay, onlyDecline).String())
}
