package routes

import (
	"poolworks/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChat      = "/chat"
	PathEstimates = "/estimates"
	PathInventory = "/inventory"
	PathDeposits  = "/deposits"
)

func addEstimatorRoutes(
	rg *gin.RouterGroup,
	chatHandler *handlers.ChatHandler,
	estimateHandler *handlers.EstimateHandler,
	reportHandler *handlers.ReportHandler,
	inventoryHandler *handlers.InventoryHandler,
	depositHandler *handlers.DepositHandler,
) {
	rg.POST(PathChat, chatHandler.PostMessage)

	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.GenerateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.GET("/:id/report", reportHandler.GetEstimateReport)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/:id/cancel", estimateHandler.CancelEstimate)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.POST("/check", inventoryHandler.CheckInventory)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:estimate_id", depositHandler.CollectDeposit)
		deposits.GET("/:estimate_id", depositHandler.GetDeposit)
	}
}
