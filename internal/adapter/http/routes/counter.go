package routes

import (
	"counter_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathMenu    = "/menu"
	PathBill    = "/bill"
	PathHistory = "/history"
)

func addCounterRoutes(rg *gin.RouterGroup, menuHandler *handlers.MenuHandler, billHandler *handlers.BillHandler, historyHandler *handlers.HistoryHandler) {
	menu := rg.Group(PathMenu)
	{
		menu.GET("/items", menuHandler.ListItems)
		menu.POST("/items", menuHandler.CreateItem)
		menu.DELETE("/items/:id", menuHandler.DeleteItem)
	}

	bill := rg.Group(PathBill)
	{
		bill.GET("", billHandler.GetCurrentBill)
		bill.DELETE("", billHandler.ClearBill)
		bill.POST("/lines", billHandler.AddLine)
		bill.POST("/save", billHandler.SaveBill)
	}

	history := rg.Group(PathHistory)
	{
		history.GET("", historyHandler.ListBills)
		history.DELETE("", historyHandler.ClearHistory)
		history.GET("/:id", historyHandler.GetBill)
		history.DELETE("/:id", historyHandler.DeleteBill)
	}
}
