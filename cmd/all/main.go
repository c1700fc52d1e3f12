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
	"github.com/local-mcps/grocery-mcps/internal/grocery"
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

	server := mcp.NewServer("grocery-mcps-all", "1.0.0")

	logLevel := common.ParseLogLevel(cfg.Global.LogLevel)
	logFormat := common.ParseLogFormat(cfg.Global.LogFormat)

	if cfg.Grocery.Enabled {
		if err := cfg.ValidateGrocery(); err != nil {
			log.Fatalf("Invalid grocery configuration: %v", err)
		}
		groceryServer := grocery.NewServer(&cfg.Grocery, common.NewLogger(logLevel, logFormat, nil, "grocery"))
		groceryServer.RegisterTools(server)
		log.Println("Registered Grocery tools")
	}

	if cfg.Recipes.Enabled {
		if err := cfg.ValidateRecipes(); err != nil {
			log.Fatalf("Invalid recipe configuration: %v", err)
		}
		recipeServer := recipes.NewServer(&cfg.Recipes, common.NewLogger(logLevel, logFormat, nil, "recipes"))
		recipeServer.RegisterTools(server)
		log.Println("Registered Recipe tools")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	log.Println("Starting grocery-mcps-all server...")

	if err := server.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Server error: %v", err)
	}
}
