package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Router は各ハンドラが自分のルートを登録するための口
type Router interface {
	RegisterRoutes(e *echo.Echo)
}

func Start(addr string, routers ...Router) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	for _, r := range routers {
		r.RegisterRoutes(e)
	}

	return e.Start(addr)
}
