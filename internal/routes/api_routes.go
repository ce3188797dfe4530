package routes

import (
	"github.com/AlgisPropolov/ad-rental-platform/internal/handlers"
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все API-маршруты.
func RegisterAPIRoutes(rg *gin.RouterGroup) {
	// Клиенты
	rg.GET("/clients", handlers.ListClientsHandler)
	rg.POST("/clients", handlers.CreateClientHandler)
	rg.GET("/clients/:id", handlers.GetClientHandler)
	rg.PUT("/clients/:id", handlers.UpdateClientHandler)
	rg.DELETE("/clients/:id", handlers.DeleteClientHandler)

	// Рекламные площадки и их календарь доступности
	rg.GET("/assets", handlers.ListAssetsHandler)
	rg.POST("/assets", handlers.CreateAssetHandler)
	rg.GET("/assets/:id", handlers.GetAssetHandler)
	rg.PUT("/assets/:id", handlers.UpdateAssetHandler)
	rg.DELETE("/assets/:id", handlers.DeleteAssetHandler)
	rg.GET("/assets/:id/slots", handlers.GetAssetSlotsHandler)

	// Слоты доступности
	rg.POST("/slots", handlers.CreateSlotHandler)
	rg.PUT("/slots/:id", handlers.UpdateSlotHandler)
	rg.DELETE("/slots/:id", handlers.DeleteSlotHandler)

	// Теги площадок
	rg.GET("/tags", handlers.ListTagsHandler)
	rg.POST("/tags", handlers.CreateTagHandler)
	rg.PUT("/tags/:id", handlers.UpdateTagHandler)
	rg.DELETE("/tags/:id", handlers.DeleteTagHandler)

	// Сделки и задачи по ним
	rg.GET("/deals", handlers.ListDealsHandler)
	rg.POST("/deals", handlers.CreateDealHandler)
	rg.GET("/deals/:id", handlers.GetDealHandler)
	rg.PUT("/deals/:id", handlers.UpdateDealHandler)
	rg.DELETE("/deals/:id", handlers.DeleteDealHandler)

	rg.GET("/tasks", handlers.ListDealTasksHandler)
	rg.POST("/tasks", handlers.CreateDealTaskHandler)
	rg.PUT("/tasks/:id", handlers.UpdateDealTaskHandler)
	rg.DELETE("/tasks/:id", handlers.DeleteDealTaskHandler)

	// Договоры, их позиции и график оплат
	rg.GET("/contracts", handlers.ListContractsHandler)
	rg.POST("/contracts", handlers.CreateContractHandler)
	rg.GET("/contracts/:id", handlers.GetContractHandler)
	rg.PUT("/contracts/:id", handlers.UpdateContractHandler)
	rg.DELETE("/contracts/:id", handlers.DeleteContractHandler)
	rg.POST("/contracts/:id/assets", handlers.AddContractLineHandler)
	rg.DELETE("/contracts/:id/assets/:lineId", handlers.RemoveContractLineHandler)
	rg.GET("/contracts/:id/schedule", handlers.GetContractScheduleHandler)

	// Платежи
	rg.GET("/payments", handlers.ListPaymentsHandler)
	rg.POST("/payments", handlers.CreatePaymentHandler)
	rg.GET("/payments/export", handlers.ExportPaymentsHandler)
	rg.GET("/payments/:id", handlers.GetPaymentHandler)
	rg.PUT("/payments/:id", handlers.UpdatePaymentHandler)
	rg.DELETE("/payments/:id", handlers.DeletePaymentHandler)
	rg.POST("/payments/:id/confirm", handlers.ConfirmPaymentHandler)

	// Пользователи
	rg.GET("/users", handlers.ListUsersHandler)
	rg.POST("/users", handlers.CreateUserHandler)
	rg.GET("/users/:id", handlers.GetUserHandler)
	rg.PUT("/users/:id", handlers.UpdateUserHandler)
	rg.DELETE("/users/:id", handlers.DeleteUserHandler)

	// Дашборды и аналитика
	rg.GET("/dashboard", handlers.GetDashboardSummaryHandler)
	rg.GET("/dashboard/tasks", handlers.GetTasksDueSoonHandler)
	rg.GET("/analytics", handlers.GetAnalyticsHandler)
	rg.GET("/dashboards", handlers.ListDashboardsHandler)
	rg.POST("/dashboards", handlers.CreateDashboardHandler)
	rg.PUT("/dashboards/:id", handlers.UpdateDashboardHandler)
	rg.DELETE("/dashboards/:id", handlers.DeleteDashboardHandler)
	rg.POST("/dashboards/:id/refresh", handlers.RefreshDashboardHandler)

	// Финансовые отчёты
	rg.GET("/reports", handlers.ListReportsHandler)
	rg.POST("/reports", handlers.CreateReportHandler)
	rg.GET("/reports/:id", handlers.GetReportHandler)
	rg.DELETE("/reports/:id", handlers.DeleteReportHandler)
	rg.POST("/reports/:id/generate", handlers.GenerateReportHandler)
	rg.GET("/reports/:id/download", handlers.DownloadReportHandler)
}
