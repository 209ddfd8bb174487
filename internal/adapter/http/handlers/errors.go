package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"counter_billing/internal/usecase"
	"counter_billing/pkg"

	"github.com/gin-gonic/gin"
)

const storeWriteNotice = "The change was applied but could not be written to storage. Repeat the action to try again."

var (
	errInvalidRequest       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errConfirmationRequired = pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Repeat the request with confirm=true to delete", http.StatusPreconditionRequired)
)

func mapCounterError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemName), errors.Is(err, usecase.ErrInvalidItemPrice),
		errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidTier), errors.Is(err, usecase.ErrInvalidBillID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrDuplicateItemName):
		return pkg.NewDomainErrorSimple("DUPLICATE_ITEM_NAME", "An item with this name is already on the menu", http.StatusConflict)
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		return pkg.NewDomainErrorSimple("MENU_ITEM_NOT_FOUND", "Menu item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillNotFound):
		return pkg.NewDomainErrorSimple("BILL_NOT_FOUND", "Bill not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyBill):
		return pkg.NewDomainErrorSimple("EMPTY_BILL", "Nothing to save: the bill is empty", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBillTotalOverflow):
		return pkg.NewDomainErrorSimple("BILL_TOTAL_OVERFLOW", "The bill total is too large to record", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStoreWriteFailed):
		return pkg.NewDomainError("STORE_WRITE_FAILED", storeWriteNotice, err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapCounterError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// isFatal reports whether err should replace the success response. A failed
// store write does not: memory already holds the change, so the client gets
// the result plus a notice.
func isFatal(err error) bool {
	return err != nil && !errors.Is(err, usecase.ErrStoreWriteFailed)
}

func noticeFor(err error, tag string) string {
	if err == nil {
		return ""
	}
	log.Printf("[%s][handler] store write failed err=%v", tag, err)
	return storeWriteNotice
}

// confirmed gates destructive deletes. Without confirm=true it writes a 428
// and the caller must return without mutating anything.
func confirmed(c *gin.Context) bool {
	switch strings.ToLower(strings.TrimSpace(c.Query("confirm"))) {
	case "1", "true", "yes":
		return true
	}
	c.JSON(errConfirmationRequired.HTTPStatus, errConfirmationRequired.ToHTTPError())
	return false
}
