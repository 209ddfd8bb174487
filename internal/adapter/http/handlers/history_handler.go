package handlers

import (
	"log"
	"net/http"

	response "counter_billing/internal/adapter/http/dto/response"
	"counter_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves saved bills.
type HistoryHandler struct {
	usecase usecase.ICounterUseCase
}

func NewHistoryHandler(uc usecase.ICounterUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// ListBills godoc
// @Summary      Saved bills, newest first
// @Tags         history
// @Produce      json
// @Success      200  {array}  response.BillHistoryResponse
// @Router       /history [get]
func (h *HistoryHandler) ListBills(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBillHistories(h.usecase.ListHistory()))
}

// GetBill godoc
// @Summary      One saved bill
// @Tags         history
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  response.BillHistoryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /history/{id} [get]
func (h *HistoryHandler) GetBill(c *gin.Context) {
	bill, err := h.usecase.GetBill(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillHistory(bill))
}

// DeleteBill godoc
// @Summary      Delete one saved bill
// @Tags         history
// @Produce      json
// @Param        id       path   string  true  "Bill ID"
// @Param        confirm  query  bool    true  "Must be true"
// @Success      200  {object}  response.DeleteResponse
// @Failure      428  {object}  pkg.HTTPError
// @Router       /history/{id} [delete]
func (h *HistoryHandler) DeleteBill(c *gin.Context) {
	if !confirmed(c) {
		return
	}

	id := c.Param("id")
	deleted, err := h.usecase.DeleteBill(c.Request.Context(), id)
	if isFatal(err) {
		log.Printf("[history][handler] delete failed bill_id=%s err=%v", id, err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: deleted, Notice: noticeFor(err, "history")})
}

// ClearHistory godoc
// @Summary      Delete every saved bill
// @Tags         history
// @Produce      json
// @Param        confirm  query  bool  true  "Must be true"
// @Success      200  {object}  response.DeleteResponse
// @Failure      428  {object}  pkg.HTTPError
// @Router       /history [delete]
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	if !confirmed(c) {
		return
	}

	err := h.usecase.ClearHistory(c.Request.Context())
	if isFatal(err) {
		log.Printf("[history][handler] clear failed err=%v", err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: true, Notice: noticeFor(err, "history")})
}
