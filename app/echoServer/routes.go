package echoServer

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/nasimrifat101/BookWaves-Server/app/echoServer/controller/book"
	"github.com/nasimrifat101/BookWaves-Server/app/echoServer/controller/borrow"
	"github.com/nasimrifat101/BookWaves-Server/app/echoServer/controller/brand"
	"github.com/nasimrifat101/BookWaves-Server/app/echoServer/controller/session"
)

type C struct {
	Session *session.Controller
	Brand   *brand.Controller
	Book    *book.Controller
	Borrow  *borrow.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// session cookie
	e.POST("/jwt", c.Session.Issue)
	e.POST("/logout", c.Session.Logout)

	// catalog
	e.GET("/brands", c.Brand.List)
	e.POST("/books", c.Book.Create)
	e.GET("/books", c.Book.List)
	e.PUT("/book/:id", c.Book.Update)
	e.PUT("/book/update/:id", c.Book.SetQuantity)
	e.DELETE("/delete/book/:id", c.Book.Delete)
	e.GET("/book", c.Book.List)
	e.GET("/book/:category", c.Book.List)
	e.GET("/book/detail/:id", c.Book.Detail)
	e.PUT("/books/inc/:productId", c.Book.Increment)

	// borrowing
	e.POST("/borrow", c.Borrow.Create)
	e.DELETE("/borrowing/:id", c.Borrow.Delete)

	// listing borrows is the only guarded route; the token travels in the
	// session cookie rather than an Authorization header
	guarded := e.Group("/borrowing")
	guarded.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(c.JWTSecret),
		TokenLookup: "cookie:token",
		ErrorHandler: func(ctx echo.Context, err error) error {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
		},
	}))
	guarded.GET("", c.Borrow.ListByEmail)
}
