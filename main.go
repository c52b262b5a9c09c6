// Package main BookWaves API.
//
// @title           BookWaves API
// @version         1.0
// @description     Library catalog and borrowing service (books, brands, borrows, sessions).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/nasimrifat101/BookWaves-Server/app/echoServer"
	bookctrl "github.com/nasimrifat101/BookWaves-Server/app/echoServer/controller/book"
	borrowctrl "github.com/nasimrifat101/BookWaves-Server/app/echoServer/controller/borrow"
	brandctrl "github.com/nasimrifat101/BookWaves-Server/app/echoServer/controller/brand"
	sessionctrl "github.com/nasimrifat101/BookWaves-Server/app/echoServer/controller/session"
	"github.com/nasimrifat101/BookWaves-Server/app/echoServer/validation"
	"github.com/nasimrifat101/BookWaves-Server/config"
	"github.com/nasimrifat101/BookWaves-Server/events"
	bookrepo "github.com/nasimrifat101/BookWaves-Server/repository/book"
	borrowrepo "github.com/nasimrifat101/BookWaves-Server/repository/borrow"
	brandrepo "github.com/nasimrifat101/BookWaves-Server/repository/brand"
	borrowsvc "github.com/nasimrifat101/BookWaves-Server/service/borrow"
	catalogsvc "github.com/nasimrifat101/BookWaves-Server/service/catalog"
	sessionsvc "github.com/nasimrifat101/BookWaves-Server/service/session"
	"github.com/nasimrifat101/BookWaves-Server/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: single shared handle, closed at shutdown
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Error("schema setup failed", "err", err)
		os.Exit(1)
	}

	// optional borrow-event broker
	pub, err := events.New(cfg.AMQPURL, "bookwaves.events")
	if err != nil {
		log.Error("amqp connect failed", "err", err)
		os.Exit(1)
	}
	defer pub.Close()

	// repos
	br := bookrepo.New(db)
	cr := brandrepo.New(db)
	rr := borrowrepo.New(db)

	// services
	cs := catalogsvc.New(br, cr)
	bs := borrowsvc.New(rr, pub)
	ss := sessionsvc.New(cfg.JWTSecret)

	// controllers
	v := validator.New()
	sessionC := &sessionctrl.Controller{Svc: ss, V: v, Log: log}
	brandC := &brandctrl.Controller{Svc: cs, Log: log}
	bookC := &bookctrl.Controller{Svc: cs, V: v, Log: log}
	borrowC := &borrowctrl.Controller{Svc: bs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/", func(c echo.Context) error {
		return c.String(200, "Welcome to BookWaves Server")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Session: sessionC,
		Brand:   brandC,
		Book:    bookC,
		Borrow:  borrowC,

		JWTSecret: cfg.JWTSecret,
	})

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
