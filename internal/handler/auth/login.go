// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"
	"time"

	"easybill/internal/api"
	"easybill/internal/database"
	"easybill/internal/service"
	"easybill/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

// @Summary     Authenticate a user
// @Description Verifies email and password, returns a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "credentials"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /authenticate [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Lookup failure and password mismatch get the same response:
		// credentials never leak which half was wrong.
		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		authUser, err := authenticateUser(c.Request().Context(), *user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*authUser, 24*time.Hour)
		if err != nil {
			c.Logger().Errorf("failed to issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token", Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{Message: "Login successful", Token: token})
	}
}
