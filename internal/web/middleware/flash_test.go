package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/yahtzee-scorekeeper/internal/web/templates/layout"
)

func TestParseFlash(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *layout.FlashMessage
	}{
		{"typed", "error:Game+not+found", &layout.FlashMessage{Type: "error", Message: "Game not found"}},
		{"untyped", "hello", &layout.FlashMessage{Type: "info", Message: "hello"}},
		{"colon in message", "success:Added+a%3Ab", &layout.FlashMessage{Type: "success", Message: "Added a:b"}},
		{"bad escape", "error:100%", &layout.FlashMessage{Type: "error", Message: "100%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFlash(tt.value))
		})
	}
}

func TestFlashRoundTrip(t *testing.T) {
	set := httptest.NewRecorder()
	SetFlash(set, "success", "Added Zoë & Bob")

	var got *layout.FlashMessage
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetFlash(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range set.Result().Cookies() {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotNil(t, got)
	assert.Equal(t, "success", got.Type)
	assert.Equal(t, "Added Zoë & Bob", got.Message)

	cleared := rr.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, flashCookieName, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestFlashAbsent(t *testing.T) {
	var called bool
	handler := Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Nil(t, GetFlash(r.Context()))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Empty(t, rr.Result().Cookies())
}
