package session

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	sessionsvc "github.com/nasimrifat101/BookWaves-Server/service/session"
	"github.com/nasimrifat101/BookWaves-Server/util/token"
)

const cookieName = "token"

type Controller struct {
	Svc sessionsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /jwt
func (h *Controller) Issue(c echo.Context) error {
	var req IssueTokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error"})
	}

	tok, err := h.Svc.Issue(req.Email)
	if err != nil {
		h.Log.Error("token issue", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   int(token.TTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// POST /logout
//
// Clears the client-held cookie only. The token itself stays valid until
// its natural expiry; the server keeps no session table.
func (h *Controller) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
