package main

import (
	"context"
	"flag"
	"log"
	"os"

	"threadpress/internal/config"
	"threadpress/internal/db"
	"threadpress/internal/importer"
	productrepo "threadpress/internal/repository/product"
)

func main() {
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	path := flag.String("file", "", "path to the catalog JSON export")
	flag.Parse()
	if *path == "" {
		logger.Fatal("usage: importer -file <catalog.json>")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open export: %v", err)
	}
	defer f.Close()

	repo := productrepo.NewPostgres(pool, logger)
	count, err := importer.NewJSONImporter(f, repo).Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", count, err)
	}
	logger.Printf("imported %d products", count)
}
