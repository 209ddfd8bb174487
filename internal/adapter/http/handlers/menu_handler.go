package handlers

import (
	"log"
	"net/http"

	request "counter_billing/internal/adapter/http/dto/request"
	response "counter_billing/internal/adapter/http/dto/response"
	"counter_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MenuHandler serves the menu catalog.
type MenuHandler struct {
	usecase usecase.ICounterUseCase
}

func NewMenuHandler(uc usecase.ICounterUseCase) *MenuHandler {
	return &MenuHandler{usecase: uc}
}

// ListItems godoc
// @Summary      List menu items
// @Tags         menu
// @Produce      json
// @Success      200  {array}   response.MenuItemResponse
// @Router       /menu/items [get]
func (h *MenuHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFoodItems(h.usecase.ListMenu()))
}

// CreateItem godoc
// @Summary      Add a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        item  body      request.CreateMenuItemRequest  true  "Menu item"
// @Success      201   {object}  response.MenuItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /menu/items [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var payload request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	item, err := h.usecase.AddMenuItem(c.Request.Context(), payload.ResolveName(), *payload.HalfPrice, *payload.FullPrice, payload.ImageURL)
	if isFatal(err) {
		log.Printf("[menu][handler] create failed name=%q err=%v", payload.Name, err)
		abortWithError(c, err)
		return
	}

	res := response.FromFoodItem(item)
	res.Notice = noticeFor(err, "menu")
	c.JSON(http.StatusCreated, res)
}

// DeleteItem godoc
// @Summary      Delete a menu item
// @Description  Also removes lines for this item from the in-progress bill.
// @Tags         menu
// @Produce      json
// @Param        id       path   string  true  "Item ID"
// @Param        confirm  query  bool    true  "Must be true"
// @Success      200  {object}  response.DeleteResponse
// @Failure      428  {object}  pkg.HTTPError
// @Router       /menu/items/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	if !confirmed(c) {
		return
	}

	id := c.Param("id")
	deleted, err := h.usecase.DeleteMenuItem(c.Request.Context(), id)
	if isFatal(err) {
		log.Printf("[menu][handler] delete failed item_id=%s err=%v", id, err)
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.DeleteResponse{Deleted: deleted, Notice: noticeFor(err, "menu")})
}
