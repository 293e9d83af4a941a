package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	forge "github.com/nousresearch/forge-go"
	"github.com/nousresearch/forge-go/internal/config"
	"github.com/nousresearch/forge-go/metrics"
)

const prompt = `
Consider a near-future scenario where atmospheric carbon capture technology becomes highly efficient, capable of removing 1 gigaton of CO2 per year at $100 per ton. However, implementing this technology produces black carbon particulates as a byproduct, which have a stronger but shorter-term warming effect than CO2. If this technology were deployed globally tomorrow, analyze the complex tradeoffs between immediate climate effects versus long-term benefits, considering:

 - The different atmospheric residence times of CO2 (centuries) versus black carbon (weeks)
 - The economic implications for developing nations
 - The potential feedback loops in both atmospheric chemistry and global policy
 - How this might affect international climate agreements and carbon markets

   What would be the optimal deployment strategy to maximize benefit while minimizing risk?
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client, err := forge.New(forge.Config{
		APIKey:  cfg.Forge.APIKey,
		BaseURL: cfg.Forge.BaseURL,
		Metrics: metrics.New(),
	}, logger)
	if err != nil {
		logger.Fatal("create client", zap.Error(err))
	}
	defer client.Close()

	resp, err := client.CompleteWithOptions(context.Background(), prompt, forge.CompleteOptions{
		ReasoningSpeed: forge.ReasoningSpeed(cfg.Forge.ReasoningSpeed),
		Track:          cfg.Forge.Track,
		Timeout:        cfg.Forge.Timeout,
		PollInterval:   cfg.Forge.PollInterval,
		MaxRetries:     cfg.Forge.MaxRetries,
	})
	if err != nil {
		logger.Fatal("completion failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(resp.Result, "", "  ")
	if err != nil {
		logger.Fatal("encode result", zap.Error(err))
	}

	if resp.Succeeded() {
		fmt.Printf("\nCompletion succeeded in %.1f seconds\n\nResult:\n%s\n", resp.CompletionTime.Seconds(), out)
	} else {
		fmt.Printf("\nCompletion failed with status: %s\n\nError details:\n%s\n", resp.Status, out)
	}
}
