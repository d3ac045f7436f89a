package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CartTokenHeader = "X-Cart-Token"
	CtxCartTokenKey = "cart_token" // string
)

// ゲストカートの識別子。ヘッダに無ければ発行してレスポンスで返す。
// クライアントは以後同じトークンを送り続ける。
func CartToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(CartTokenHeader)

			if token == "" {
				token = uuid.NewString()
			} else if _, err := uuid.Parse(token); err != nil {
				return c.JSON(http.StatusBadRequest, errorJSON("invalid cart token"))
			}

			c.Set(CtxCartTokenKey, token)
			c.Response().Header().Set(CartTokenHeader, token)

			return next(c)
		}
	}
}

// ハンドラからカートトークンを取り出す
func GetCartToken(c echo.Context) (string, bool) {
	v := c.Get(CtxCartTokenKey)
	token, ok := v.(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
