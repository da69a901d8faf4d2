package users

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"easybill/internal/api"
	"easybill/internal/database"
	"easybill/internal/model"
	"easybill/internal/service"
	"easybill/internal/store"
	"easybill/internal/validation"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword   = service.HashPassword
	listUsers      = store.ListUsers
	createUser     = store.CreateUser
	getUserByID    = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
	updateUser     = store.UpdateUser
	deleteUser     = store.DeleteUser
)

const emailTakenMessage = "The email has already been taken."

// isUniqueViolation reports a postgres unique-constraint failure. The email
// pre-check can race with a concurrent insert; the constraint is the
// authority and its violation maps to the same 422 as the pre-check.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// @Summary     List all users
// @Description Returns every user as a public-safe representation
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserListEnvelope
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("Error fetching users: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to fetch users.", Error: err.Error()})
		}
		data := make([]api.UserResponse, 0, len(users))
		for i := range users {
			data = append(data, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, api.UserListEnvelope{Message: "Request Successfull", Data: data})
	}
}

// @Summary     Create a new user
// @Description Validates the signup payload, hashes the password (Email is lowercased)
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.CreateUserRequest true "signup payload"
// @Success     201 {object} api.UserEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     422 {object} map[string][]string
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			if fields := validation.Errors(err); fields != nil {
				return c.JSON(http.StatusUnprocessableEntity, fields)
			}
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)

		// Uniqueness pre-check; the unique constraint below catches races.
		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusUnprocessableEntity, validation.FieldError("email", emailTakenMessage))
		} else if !errors.Is(err, store.ErrNotFound) {
			c.Logger().Errorf("Error creating user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to create user.", Error: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("Error creating user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to create user.", Error: err.Error()})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return c.JSON(http.StatusUnprocessableEntity, validation.FieldError("email", emailTakenMessage))
			}
			c.Logger().Errorf("Error creating user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Failed to create user.", Error: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.UserEnvelope{Message: "User created!", User: api.NewUserResponse(user)})
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "user ID"
// @Success     200 {object} api.UserEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			c.Logger().Errorf("Error fetching user (ID: %d): %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured fetching user", Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.UserEnvelope{User: api.NewUserResponse(user)})
	}
}

// @Summary     Update a user by ID
// @Description Updates name and email only; email uniqueness excludes the user's own record
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id path int true "user ID"
// @Param       request body api.UpdateUserRequest true "update payload"
// @Success     200 {object} api.UserEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} map[string][]string
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		user, err := getUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			c.Logger().Errorf("Error updating user info (ID: %d): %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured updating user info", Error: err.Error()})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			if fields := validation.Errors(err); fields != nil {
				return c.JSON(http.StatusUnprocessableEntity, fields)
			}
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if other, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			if other.ID != id {
				return c.JSON(http.StatusUnprocessableEntity, validation.FieldError("email", emailTakenMessage))
			}
		} else if !errors.Is(err, store.ErrNotFound) {
			c.Logger().Errorf("Error updating user info (ID: %d): %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured updating user info", Error: err.Error()})
		}

		user.Name = req.Name
		user.Email = req.Email
		if err := updateUser(c.Request().Context(), db, user); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			if isUniqueViolation(err) {
				return c.JSON(http.StatusUnprocessableEntity, validation.FieldError("email", emailTakenMessage))
			}
			c.Logger().Errorf("Error updating user info (ID: %d): %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured updating user info", Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.UserEnvelope{Message: "Request Successfull!", User: api.NewUserResponse(user)})
	}
}

// @Summary     Delete a user by ID
// @Tags        users
// @Param       id path int true "user ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}
		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			}
			c.Logger().Errorf("Error deleting user info (ID: %d): %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured deleting user info", Error: err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
