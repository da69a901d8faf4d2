package transactions

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"easybill/internal/api"
	"easybill/internal/database"
	"easybill/internal/middleware"
	"easybill/internal/model"
	"easybill/internal/service"
	"easybill/internal/store"
	"easybill/internal/validation"
	"easybill/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	listTransactions  = store.ListTransactionsByUser
	createTransaction = store.CreateTransaction
	getTransaction    = store.GetTransactionByID
	updateTransaction = store.UpdateTransaction
	deleteTransaction = store.DeleteTransaction
	insertAuditEntry  = store.InsertAuditEntry
)

// callerID extracts the authenticated user's id from the claims RequireAuth
// stored on the context. Ownership scoping uses this value and never a
// caller-supplied user_id.
func callerID(c echo.Context) (int, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == 0 {
		return 0, false
	}
	return claims.UserID, true
}

// audit queues a fire-and-forget audit write. Failures are logged and never
// surface to the caller.
func audit(wp worker.Pool, db database.DB, logger echo.Logger, userID int, action string, entityID int) {
	if wp == nil {
		return
	}
	wp.Submit(func() {
		entry := &model.AuditEntry{UserID: userID, Action: action, Entity: "transaction", EntityID: entityID}
		if err := insertAuditEntry(context.Background(), db, entry); err != nil {
			logger.Errorf("audit write failed: %v", err)
		}
	})
}

// @Summary     List the caller's transactions
// @Tags        transactions
// @Produce     json
// @Success     200 {object} api.TransactionListEnvelope
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions [get]
func ListTransactionsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		txs, err := listTransactions(c.Request().Context(), db, userID)
		if err != nil {
			c.Logger().Errorf("An error occured fetching transactions: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured", Error: err.Error()})
		}
		out := make([]api.TransactionResponse, 0, len(txs))
		for i := range txs {
			out = append(out, api.NewTransactionResponse(&txs[i]))
		}
		return c.JSON(http.StatusOK, api.TransactionListEnvelope{Message: "Request Successful", Transactions: out})
	}
}

// @Summary     Create a transaction
// @Description user_id is always the authenticated caller, regardless of the payload
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body api.TransactionRequest true "transaction payload"
// @Success     201 {object} api.TransactionEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     422 {object} map[string][]string
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions [post]
func CreateTransactionHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.TransactionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			if fields := validation.Errors(err); fields != nil {
				return c.JSON(http.StatusUnprocessableEntity, fields)
			}
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		txDate, err := time.Parse(model.TransactionDateLayout, req.TransactionDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid transaction date"})
		}

		tx, err := createTransaction(c.Request().Context(), db, &model.Transaction{
			UserID:          userID,
			TransactionType: req.TransactionType,
			Amount:          *req.Amount,
			Status:          req.Status,
			PaymentMethod:   req.PaymentMethod,
			TransactionDate: txDate,
			Description:     req.Description,
		})
		if err != nil {
			c.Logger().Errorf("An error occured creating transaction: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured creating transaction.", Error: err.Error()})
		}

		audit(wp, db, c.Logger(), userID, "create", tx.ID)
		return c.JSON(http.StatusCreated, api.TransactionEnvelope{Message: "Transaction sucessful!", Transaction: api.NewTransactionResponse(tx)})
	}
}

// @Summary     Get one of the caller's transactions
// @Description A transaction owned by another user is reported as not found
// @Tags        transactions
// @Produce     json
// @Param       id path int true "transaction ID"
// @Success     200 {object} api.TransactionEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/{id} [get]
func GetTransactionHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid transaction ID"})
		}
		tx, err := getTransaction(c.Request().Context(), db, id, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "transaction not found"})
			}
			c.Logger().Errorf("An error occured fetching transaction: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured fetching transaction.", Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.TransactionEnvelope{Message: "Request successful", Transaction: api.NewTransactionResponse(tx)})
	}
}

// @Summary     Update one of the caller's transactions
// @Description Full replace: the whole field set is validated and persisted
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id path int true "transaction ID"
// @Param       request body api.TransactionRequest true "transaction payload"
// @Success     200 {object} api.TransactionEnvelope
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} map[string][]string
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/{id} [put]
func UpdateTransactionHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid transaction ID"})
		}

		tx, err := getTransaction(c.Request().Context(), db, id, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "transaction not found"})
			}
			c.Logger().Errorf("An error occured updating transaction: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured updating transaction.", Error: err.Error()})
		}

		var req api.TransactionRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request data"})
		}
		if err := c.Validate(&req); err != nil {
			if fields := validation.Errors(err); fields != nil {
				return c.JSON(http.StatusUnprocessableEntity, fields)
			}
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		txDate, err := time.Parse(model.TransactionDateLayout, req.TransactionDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid transaction date"})
		}

		tx.TransactionType = req.TransactionType
		tx.Amount = *req.Amount
		tx.Status = req.Status
		tx.PaymentMethod = req.PaymentMethod
		tx.TransactionDate = txDate
		tx.Description = req.Description
		if err := updateTransaction(c.Request().Context(), db, tx); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "transaction not found"})
			}
			c.Logger().Errorf("An error occured updating transaction: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured updating transaction.", Error: err.Error()})
		}

		audit(wp, db, c.Logger(), userID, "update", tx.ID)
		return c.JSON(http.StatusOK, api.TransactionEnvelope{Message: "Transaction Updated", Transaction: api.NewTransactionResponse(tx)})
	}
}

// @Summary     Delete one of the caller's transactions
// @Tags        transactions
// @Param       id path int true "transaction ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /transactions/{id} [delete]
func DeleteTransactionHandler(db database.DB, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := callerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid transaction ID"})
		}
		if err := deleteTransaction(c.Request().Context(), db, id, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "transaction not found"})
			}
			c.Logger().Errorf("Error deleting transaction (ID: %d): %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "An error occured deleting transaction", Error: err.Error()})
		}
		audit(wp, db, c.Logger(), userID, "delete", id)
		return c.NoContent(http.StatusNoContent)
	}
}
