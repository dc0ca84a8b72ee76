// cmd/tenantctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nebulahq/tessera/internal/auth"
	"github.com/nebulahq/tessera/internal/config"
	"github.com/nebulahq/tessera/internal/model"
	"github.com/nebulahq/tessera/internal/repository"
	"github.com/nebulahq/tessera/internal/service"
	"github.com/nebulahq/tessera/internal/tenant"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(migrateCmd)
}

var rootCmd = &cobra.Command{
	Use:   "tenantctl",
	Short: "tenantctl manages tenant organisations and their schemas",
	Long:  `tenantctl provisions tenant schemas, inspects organisation state, and bootstraps operator accounts.`,
}

var provisionCmd = &cobra.Command{
	Use:   "provision [org-id]",
	Short: "Provision (or re-provision) a tenant schema",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid organisation id: %v", err)
		}

		cfg := config.Load()
		db := openDB(cfg)
		orgRepo := repository.NewOrganisationRepository(db)
		provisioner := tenant.NewProvisioner(cfg.TenantPoolURL(), nil)
		orgService := service.NewOrganisationService(orgRepo, provisioner, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		org, err := orgService.Provision(ctx, id)
		if err != nil {
			log.Fatalf("Provisioning failed: %v", err)
		}

		schema, _ := tenant.SchemaName(org.ID.String())
		fmt.Printf("Provisioned %s (%s) into schema %s\n", org.Name, org.Domain, schema)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List organisations and their provisioning status",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := openDB(cfg)
		orgRepo := repository.NewOrganisationRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		orgs, total, err := orgRepo.FindAllPaginated(ctx, 0, 100)
		if err != nil {
			log.Fatalf("Failed to list organisations: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDOMAIN\tSTATUS")
		for _, org := range orgs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", org.ID, org.Name, org.Domain, org.Status)
		}
		w.Flush()
		fmt.Printf("\n%d of %d organisations\n", len(orgs), total)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status [org-id]",
	Short: "Show one organisation's provisioning status and schema name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := uuid.Parse(args[0])
		if err != nil {
			log.Fatalf("Invalid organisation id: %v", err)
		}

		cfg := config.Load()
		db := openDB(cfg)
		orgRepo := repository.NewOrganisationRepository(db)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		org, err := orgRepo.FindByID(ctx, id)
		if err != nil {
			log.Fatalf("Failed to find organisation: %v", err)
		}

		schema, err := tenant.SchemaName(org.ID.String())
		if err != nil {
			log.Fatalf("Invalid schema name: %v", err)
		}

		fmt.Printf("Organisation: %s\n", org.Name)
		fmt.Printf("Domain:       %s\n", org.Domain)
		fmt.Printf("Status:       %s\n", org.Status)
		fmt.Printf("Schema:       %s\n", schema)
		if verbose {
			fmt.Printf("Created:      %s\n", org.CreatedAt.Format(time.RFC3339))
			fmt.Printf("Updated:      %s\n", org.UpdatedAt.Format(time.RFC3339))
		}
	},
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin [email] [password]",
	Short: "Create a system admin account",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := openDB(cfg)
		adminRepo := repository.NewSystemAdminRepository(db)
		adminService := service.NewSystemAdminService(
			adminRepo,
			auth.NewPasswordHasher(),
			auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		admin, err := adminService.CreateAdmin(ctx, service.CreateAdminInput{
			Email:    args[0],
			Password: args[1],
		})
		if err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}

		fmt.Printf("Created system admin %s (%s)\n", admin.Email, admin.ID)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the public-schema tables",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := openDB(cfg)

		if err := db.AutoMigrate(&model.Organisation{}, &model.SystemAdmin{}); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Public schema migrated")
	},
}

func openDB(cfg *config.Config) *gorm.DB {
	logMode := gormlogger.Silent
	if verbose {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
