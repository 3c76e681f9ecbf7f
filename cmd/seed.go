package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/mazikuben/construction-be/config"
	"github.com/mazikuben/construction-be/database"
	"github.com/mazikuben/construction-be/repository"
	"github.com/mazikuben/construction-be/types"
)

// seedCmd populates the database with demonstration data for local testing.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demonstration data into the database",
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

		users := repository.NewUserRepo(db.Collection(database.CollectionUsers))
		projects := repository.NewProjectRepo(db.Collection(database.CollectionProjects))
		inventory := repository.NewInventoryRepo(db.Collection(database.CollectionInventory))
		expenses := repository.NewExpenseRepo(db.Collection(database.CollectionExpenses))

		seedUser := func(username, email, role string) string {
			hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("Failed to hash password: %v", err)
			}
			id, err := users.CreateUser(ctx, &types.User{
				Username:       username,
				Email:          email,
				Role:           role,
				HashedPassword: string(hash),
				CreatedAt:      time.Now().Unix(),
			})
			if err != nil {
				log.Fatalf("Failed to create user %s: %v", username, err)
			}
			return id
		}

		managerID := seedUser("demomanager", "manager@example.com", types.USER_ROLE_MANAGER)
		seedUser("demoworker", "worker@example.com", types.USER_ROLE_WORKER)
		clientID := seedUser("democlient", "client@example.com", types.USER_ROLE_CLIENT)

		today := time.Now()
		projectID, err := projects.CreateProject(ctx, &types.Project{
			Name:        "Riverside Apartment Complex",
			Description: "Six-storey residential block with underground parking",
			Location:    "Nakuru, Kenya",
			Budget:      12_500_000,
			StartDate:   today.Format(types.DateLayout),
			EndDate:     today.AddDate(1, 0, 0).Format(types.DateLayout),
			ClientID:    clientID,
			Status:      types.PROJECT_STATUS_IN_PROGRESS,
			CreatedBy:   managerID,
			CreatedAt:   today.Unix(),
		})
		if err != nil {
			log.Fatalf("Failed to create project: %v", err)
		}

		items := []struct {
			name        string
			unit        string
			quantity    float64
			costPerUnit float64
		}{
			{"Cement Bags", "bags", 400, 550},
			{"Sand", "tonnes", 60, 2500},
			{"Steel Bars (12mm)", "pieces", 250, 1200},
			{"Concrete Blocks", "pieces", 3000, 55},
		}
		for _, it := range items {
			if _, err := inventory.CreateItem(ctx, &types.InventoryItem{
				Name:        it.name,
				Quantity:    it.quantity,
				Unit:        it.unit,
				CostPerUnit: it.costPerUnit,
				ProjectID:   projectID,
				CreatedAt:   today.Unix(),
			}); err != nil {
				log.Fatalf("Failed to create inventory item %s: %v", it.name, err)
			}
		}

		if _, err := expenses.CreateExpense(ctx, &types.Expense{
			Amount:      220_000,
			Description: "Purchase of cement",
			Date:        today.Format(types.DateLayout),
			ProjectID:   projectID,
			CreatedBy:   managerID,
			Verified:    types.EXPENSE_STATUS_PENDING,
			CreatedAt:   today.Unix(),
		}); err != nil {
			log.Fatalf("Failed to create expense: %v", err)
		}

		fmt.Println("Demo data loaded. Accounts use password \"password123\".")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
