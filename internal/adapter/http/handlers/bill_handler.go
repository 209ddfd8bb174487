package handlers

import (
	"log"
	"net/http"

	request "counter_billing/internal/adapter/http/dto/request"
	response "counter_billing/internal/adapter/http/dto/response"
	"counter_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BillHandler serves the in-progress bill.
type BillHandler struct {
	usecase usecase.ICounterUseCase
}

func NewBillHandler(uc usecase.ICounterUseCase) *BillHandler {
	return &BillHandler{usecase: uc}
}

// GetCurrentBill godoc
// @Summary      Current bill
// @Tags         bill
// @Produce      json
// @Success      200  {object}  response.CurrentBillResponse
// @Router       /bill [get]
func (h *BillHandler) GetCurrentBill(c *gin.Context) {
	bill := h.usecase.CurrentBill()
	c.JSON(http.StatusOK, response.FromCurrentBill(bill.Lines, bill.Total))
}

// AddLine godoc
// @Summary      Add a menu item to the bill
// @Tags         bill
// @Accept       json
// @Produce      json
// @Param        line  body      request.AddBillLineRequest  true  "Item and tier (half|full)"
// @Success      201   {object}  response.BillLineResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /bill/lines [post]
func (h *BillHandler) AddLine(c *gin.Context) {
	var payload request.AddBillLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	line, err := h.usecase.SelectItem(payload.ResolveItemID(), payload.ResolveTier())
	if err != nil {
		log.Printf("[bill][handler] add line failed item_id=%s tier=%s err=%v", payload.ItemID, payload.Tier, err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBillLine(line))
}

// ClearBill godoc
// @Summary      Start over with an empty bill
// @Tags         bill
// @Success      204
// @Router       /bill [delete]
func (h *BillHandler) ClearBill(c *gin.Context) {
	h.usecase.ClearBill()
	c.Status(http.StatusNoContent)
}

// SaveBill godoc
// @Summary      Save the current bill to history
// @Description  Clears the current bill once the history accepted it.
// @Tags         bill
// @Produce      json
// @Success      201  {object}  response.BillHistoryResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /bill/save [post]
func (h *BillHandler) SaveBill(c *gin.Context) {
	saved, err := h.usecase.SaveBill(c.Request.Context())
	if isFatal(err) {
		log.Printf("[bill][handler] save failed err=%v", err)
		abortWithError(c, err)
		return
	}

	res := response.FromBillHistory(saved)
	res.Notice = noticeFor(err, "bill")
	c.JSON(http.StatusCreated, res)
}
