package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bom-manager/core/config"
	"bom-manager/core/loader"
	"bom-manager/core/logger"
	"bom-manager/core/middleware/auth"
	"bom-manager/core/middleware/rayid"

	"bom-manager/feature/bom"
	"bom-manager/feature/printcheck"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the BOM manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 4. Build the catalog walker and mesh file source
		walker, store, err := newWalker(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create catalog walker", zap.Error(err))
		}
		source, err := newFileSource(cfg, store)
		if err != nil {
			logg.Fatal("Failed to create mesh file source", zap.Error(err))
		}

		// 5. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		consumables := bom.DefaultConsumables
		if !cfg.Bom.Consumables {
			consumables = nil
		}
		mgr.Register(bom.NewFeature(walker, consumables, logg))
		mgr.Register(printcheck.NewFeature(walker, source, cfg.Printcheck.Threshold, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
