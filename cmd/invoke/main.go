// Command invoke runs one invocation record through the request dispatcher,
// the way the serverless runtime would, and prints the response record.
//
//	invoke event.json
//	echo '{"httpMethod":"GET","path":"/accounts"}' | invoke
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"budgetapi/internal/config"
	"budgetapi/internal/database"
	"budgetapi/internal/gateway"
	"budgetapi/internal/handlers"
	"budgetapi/internal/logger"
	"budgetapi/internal/metrics"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Get().Fatalf("Invocation error: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	req, err := readRequest(args, stdin)
	if err != nil {
		return err
	}

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			logger.Get().Warnf("failed to close database: %v", err)
		}
	}()

	m := metrics.New()
	db := dbManager.DB()
	router := handlers.NewRouter(handlers.RouterConfig{
		Services:  handlers.NewServices(db, m),
		ErrorMode: appConfig.ErrorMode,
		DB:        db,
		Metrics:   m,
	})

	resp, err := gateway.New(router).Invoke(context.Background(), req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func readRequest(args []string, stdin io.Reader) (gateway.Request, error) {
	var src io.Reader = stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return gateway.Request{}, fmt.Errorf("open event: %w", err)
		}
		defer f.Close()
		src = f
	}

	var req gateway.Request
	if err := json.NewDecoder(src).Decode(&req); err != nil {
		return gateway.Request{}, fmt.Errorf("decode event: %w", err)
	}
	return req, nil
}
