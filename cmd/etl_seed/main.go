// Package main is a one-shot seeder: it generates a synthetic dataset and
// loads it into the configured database, creating the reporting schema on
// the way. Counts and seed come from flags.
package main

import (
	"context"
	"flag"
	"log"

	"finlytics/internal/config"
	"finlytics/internal/repositories"
	"finlytics/internal/services/pipeline"
)

func main() {
	customers := flag.Int("customers", 500, "number of customers to generate")
	merchants := flag.Int("merchants", 50, "number of merchants to generate")
	transactions := flag.Int("transactions", 5000, "number of payments to generate")
	seed := flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	flag.Parse()

	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer repositories.Close()

	if err := repositories.InitReportingSchema(); err != nil {
		log.Fatalf("failed to create reporting schema: %v", err)
	}

	svc := pipeline.NewService(repositories.NewBatchSink(repositories.DB))
	result, err := svc.Run(context.Background(), pipeline.Config{
		CustomerCount:    *customers,
		MerchantCount:    *merchants,
		TransactionCount: *transactions,
		Seed:             config.GetInt64Env("PIPELINE_SEED", *seed),
	})
	if err != nil {
		log.Fatalf("pipeline failed: %v", err)
	}

	log.Printf("seed complete (run %s): %d customers, %d merchants, %d payments, %d settlements",
		result.RunID, result.Customers, result.Merchants, result.Payments, result.Settlements)
}
