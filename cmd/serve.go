package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GuangSTrip/BenchAnnotate/api"
	"github.com/GuangSTrip/BenchAnnotate/api/types"
	"github.com/GuangSTrip/BenchAnnotate/internal/database"
	"github.com/GuangSTrip/BenchAnnotate/internal/models"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/catalog"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/ledger"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/segmentation"
	"github.com/GuangSTrip/BenchAnnotate/internal/services/videos"
	"github.com/GuangSTrip/BenchAnnotate/pkg/config"
	"github.com/GuangSTrip/BenchAnnotate/pkg/ffmpeg"
	"github.com/GuangSTrip/BenchAnnotate/pkg/ytdlp"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the BenchAnnotate API server with the configured settings.

Example:
  benchannotate serve
  benchannotate serve --port 9090
  benchannotate serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Video{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	deps, err := buildDependencies(cfg, db)
	if err != nil {
		return err
	}

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s:%d\n", serverHost, serverPort)

	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires services with the configured storage roots
// and external tools
func buildDependencies(cfg *config.Config, db *database.DB) (*types.Dependencies, error) {
	ledgerStore, err := ledger.NewFileStore(cfg.Storage.LedgerDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ledger store: %w", err)
	}

	downloader := ytdlp.New(cfg.Tools.YtdlpPath, cfg.Tools.MaxHeight, cfg.Tools.DownloadTimeout)
	if err := downloader.ValidateBinary(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	tools := ffmpeg.New(cfg.Tools.FFmpegPath, cfg.Tools.FFprobePath, cfg.Tools.SceneThreshold, cfg.Tools.DetectTimeout)
	if err := tools.ValidateBinaries(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	videoRepo := videos.NewRepository(db.DB)
	videoService := videos.NewService(cfg.Storage.VideoDir, downloader, downloader, ledgerStore, videoRepo)

	return &types.Dependencies{
		DB:                  db,
		VideoService:        videoService,
		SegmentationService: segmentation.NewService(videoService, tools, tools),
		LedgerStore:         ledgerStore,
		CatalogService:      catalog.NewService(ledgerStore, videoRepo),
	}, nil
}
