package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/local-mcps/grocery-mcps/config"
	"github.com/local-mcps/grocery-mcps/internal/common"
	"github.com/local-mcps/grocery-mcps/internal/recipes"
	"github.com/local-mcps/grocery-mcps/pkg/mcp"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Recipes.Enabled {
		log.Fatal("Recipe server is disabled in configuration")
	}

	if err := cfg.ValidateRecipes(); err != nil {
		log.Fatalf("Invalid recipe configuration: %v", err)
	}

	server := mcp.NewServer("recipe-server", "1.0.0")

	logger := common.NewLogger(
		common.ParseLogLevel(cfg.Global.LogLevel),
		common.ParseLogFormat(cfg.Global.LogFormat),
		nil,
		"recipes",
	)
	recipeServer := recipes.NewServer(&cfg.Recipes, logger)
	recipeServer.RegisterTools(server)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	if err := server.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Server error: %v", err)
	}
}
