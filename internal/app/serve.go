package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/insighthub/insighthub/internal/config"
	"github.com/insighthub/insighthub/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the analysis pipeline as an HTTP API",
	Long: `Start an HTTP server with POST /api/analyze and GET /api/health.
Requests are rate limited per client IP.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	pipe, closeCache, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if !flagVerbose {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(pipe, cfg.Server, cfg.Crawl.MaxCompetitors)
	fmt.Println("listening on", cfg.Server.Addr)
	return srv.Run()
}
