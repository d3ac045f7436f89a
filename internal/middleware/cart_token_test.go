package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runCartToken(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if header != "" {
		req.Header.Set(CartTokenHeader, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := CartToken()(func(c echo.Context) error {
		token, ok := GetCartToken(c)
		assert.True(t, ok)
		seen = token
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	return rec, seen
}

func TestCartToken_IssuesTokenWhenMissing(t *testing.T) {
	rec, seen := runCartToken(t, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, seen)
	//発行したトークンをレスポンスヘッダで返す
	assert.Equal(t, seen, rec.Header().Get(CartTokenHeader))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
}

func TestCartToken_EchoesExistingToken(t *testing.T) {
	token := uuid.NewString()
	rec, seen := runCartToken(t, token)

	assert.Equal(t, token, seen)
	assert.Equal(t, token, rec.Header().Get(CartTokenHeader))
}

func TestCartToken_RejectsGarbage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(CartTokenHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := CartToken()(func(c echo.Context) error {
		called = true
		return nil
	})

	assert.NoError(t, h(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}
