package cmd

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mazikuben/construction-be/config"
	"github.com/mazikuben/construction-be/database"
	"github.com/mazikuben/construction-be/handler"
	"github.com/mazikuben/construction-be/middleware"
	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
	"github.com/mazikuben/construction-be/utils"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Starts the HTTP server with all project, inventory, expense and AI routes`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		mongoClient, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		db := mongoClient.Database(cfg.DatabaseName)
		if err := database.EnsureIndexes(ctx, db); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}

		tokens := utils.NewTokenManager(cfg.JWTSecret, 24*time.Hour)

		// init repos
		userRepo := repository.NewUserRepo(db.Collection(database.CollectionUsers))
		projectRepo := repository.NewProjectRepo(db.Collection(database.CollectionProjects))
		inventoryRepo := repository.NewInventoryRepo(db.Collection(database.CollectionInventory))
		expenseRepo := repository.NewExpenseRepo(db.Collection(database.CollectionExpenses))
		requestRepo := repository.NewRequestRepo(db.Collection(database.CollectionRequests))
		usageRepo := repository.NewMaterialUsageRepo(db.Collection(database.CollectionMaterialUsage))
		notificationRepo := repository.NewNotificationRepo(db.Collection(database.CollectionNotifications))

		// init services
		fileService := service.NewFileService(cfg.UploadDir)
		streamService := service.NewStreamService()
		notificationService := service.NewNotificationService(notificationRepo, streamService)
		userService := service.NewUserService(userRepo, tokens)
		projectService := service.NewProjectService(projectRepo, userRepo, expenseRepo, usageRepo)
		inventoryService := service.NewInventoryService(inventoryRepo, projectRepo, fileService)
		expenseService := service.NewExpenseService(expenseRepo, projectRepo, fileService, notificationService)
		requestService := service.NewRequestService(requestRepo, projectRepo, notificationService)
		usageService := service.NewMaterialUsageService(usageRepo, inventoryRepo, projectRepo)

		assistant := buildAssistant(cfg.AI)
		assistService := service.NewAssistService(assistant, projectService)

		// init handlers
		corsHandler := handler.NewCorsHandler()
		authHandler := handler.NewAuthHandler(userService)
		userMngHandler := handler.NewUserManageHandler(userService)
		projectHandler := handler.NewProjectHandler(projectService)
		inventoryHandler := handler.NewInventoryHandler(inventoryService)
		expenseHandler := handler.NewExpenseHandler(expenseService, fileService)
		requestHandler := handler.NewRequestHandler(requestService)
		usageHandler := handler.NewMaterialUsageHandler(usageService)
		notificationHandler := handler.NewNotificationHandler(notificationService, streamService)
		aiHandler := handler.NewAIHandler(assistService)

		auth := middleware.NewAuthMiddleware(tokens)

		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		// item images are public, receipts are served behind auth below
		router.Static("/inventory-images", fileService.InventoryImagesDir())

		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, types.DataResponse{
				Status:  true,
				Message: "Construction Management API",
			})
		})

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/register", authHandler.HandleRegister)
		apiV1.POST("/login", authHandler.HandleLogin)

		anyRole := apiV1.Group("/")
		anyRole.Use(auth.RequireRoles())
		{
			anyRole.GET("/me", authHandler.HandleMe)
			anyRole.GET("/users/:id/notifications", notificationHandler.HandleListNotifications)
			anyRole.PATCH("/notifications/:id/read", notificationHandler.HandleMarkRead)
			anyRole.GET("/ws/notifications", notificationHandler.HandleStream)
		}

		managerRoutes := apiV1.Group("/")
		managerRoutes.Use(auth.RequireRoles(types.USER_ROLE_MANAGER))
		{
			managerRoutes.POST("/users", userMngHandler.HandleCreateStaff)
			managerRoutes.GET("/users", userMngHandler.HandleListUsers)
			managerRoutes.GET("/users/:id", userMngHandler.HandleGetUser)
			managerRoutes.PUT("/users/:id", userMngHandler.HandleUpdateUser)
			managerRoutes.DELETE("/users/:id", userMngHandler.HandleDeleteUser)

			managerRoutes.POST("/projects", projectHandler.HandleCreateProject)
			managerRoutes.PUT("/projects/:id", projectHandler.HandleUpdateProject)
			managerRoutes.DELETE("/projects/:id", projectHandler.HandleDeleteProject)
			managerRoutes.POST("/projects/:id/progress-reports", projectHandler.HandleAddProgressReport)

			managerRoutes.POST("/inventory", inventoryHandler.HandleCreateItem)
			managerRoutes.POST("/inventory/:id/image", inventoryHandler.HandleAttachImage)
			managerRoutes.GET("/projects/:id/inventory", inventoryHandler.HandleListItems)

			managerRoutes.POST("/expenses", expenseHandler.HandleCreateExpense)
			managerRoutes.PATCH("/requests/:id/status", requestHandler.HandleResolveRequest)
			managerRoutes.GET("/projects/:id/requests", requestHandler.HandleListByProject)

			managerRoutes.POST("/material-usage", usageHandler.HandleLogUsage)
			managerRoutes.GET("/projects/:id/material-usage", usageHandler.HandleListUsage)

			managerRoutes.POST("/ai/manager-advice", aiHandler.HandleManagerAdvice)
		}

		workerRoutes := apiV1.Group("/")
		workerRoutes.Use(auth.RequireRoles(types.USER_ROLE_WORKER))
		{
			workerRoutes.POST("/requests", requestHandler.HandleCreateRequest)
			workerRoutes.GET("/workers/:workerId/requests", requestHandler.HandleListByWorker)
			workerRoutes.POST("/ai/worker-help", aiHandler.HandleWorkerHelp)
		}

		clientRoutes := apiV1.Group("/")
		clientRoutes.Use(auth.RequireRoles(types.USER_ROLE_CLIENT))
		{
			clientRoutes.PATCH("/expenses/:id/verify", expenseHandler.HandleVerifyExpense)
			clientRoutes.POST("/ai/client-analysis", aiHandler.HandleClientAnalysis)
		}

		// reads shared with the owning client; the handlers enforce ownership
		managerClientRoutes := apiV1.Group("/")
		managerClientRoutes.Use(auth.RequireRoles(types.USER_ROLE_MANAGER, types.USER_ROLE_CLIENT))
		{
			managerClientRoutes.GET("/projects/:id/progress-reports", projectHandler.HandleListProgressReports)
			managerClientRoutes.GET("/projects/:id/summary", projectHandler.HandleProjectSummary)
			managerClientRoutes.GET("/projects/:id/expenses", expenseHandler.HandleListExpenses)
			managerClientRoutes.GET("/receipts/:filename", expenseHandler.HandleGetReceipt)
		}

		readRoutes := apiV1.Group("/")
		readRoutes.Use(auth.RequireRoles(types.USER_ROLE_MANAGER, types.USER_ROLE_WORKER, types.USER_ROLE_CLIENT))
		{
			readRoutes.GET("/projects", projectHandler.HandleListProjects)
			readRoutes.GET("/projects/:id", projectHandler.HandleGetProject)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func buildAssistant(cfg config.AIConfig) service.Assistant {
	if cfg.Provider == "gemini" {
		assistant, err := service.NewGeminiAssistant(cfg.GeminiAPIKey, cfg.Model, cfg.Timeout())
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		return assistant
	}
	return service.NewOpenAIAssistant(cfg.Endpoint, cfg.OpenAIAPIKey, cfg.Model, cfg.Timeout())
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
