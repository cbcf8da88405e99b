package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"noesis/internal/model"
	"noesis/pkg/noesis"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	switch args[0] {
	case "catalog":
		return runCatalog(ctx, cfg, args[1:])
	case "verify":
		return runVerify(ctx, cfg, args[1:])
	case "audit":
		return runAudit(ctx, cfg, args[1:])
	case "persist":
		return runPersist(ctx, cfg, args[1:])
	case "stats":
		return runStats(ctx, cfg, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runCatalog(_ context.Context, cfg Config, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	catalogPath := fs.String("file", cfg.Catalog, "YAML catalog path; empty uses the built-in seeds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, h, err := buildHierarchy(cfg, *catalogPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	type domainItem struct {
		Name      string `json:"name"`
		Type      string `json:"type"`
		State     string `json:"state"`
		Concepts  int    `json:"concepts"`
		Compliant bool   `json:"compliant"`
	}
	out := struct {
		Hierarchy string       `json:"hierarchy"`
		Domains   []domainItem `json:"domains"`
	}{Hierarchy: h.Name()}
	for _, d := range h.Domains() {
		out.Domains = append(out.Domains, domainItem{
			Name:      d.Name(),
			Type:      string(d.Type()),
			State:     string(d.State()),
			Concepts:  len(d.Concepts()),
			Compliant: d.Compliant(),
		})
	}
	return printJSON(out)
}

func runVerify(_ context.Context, cfg Config, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	catalogPath := fs.String("file", cfg.Catalog, "YAML catalog path; empty uses the built-in seeds")
	proof := fs.Bool("proof", false, "emit the full per-domain evidence report")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, h, err := buildHierarchy(cfg, *catalogPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if *proof {
		return printJSON(client.Proof(h))
	}

	report := client.Verify(h)
	slog.Info("verified hierarchy",
		"hierarchy", h.Name(),
		"domains", report.Total,
		"compliant", report.Valid,
	)
	return printJSON(report)
}

func runAudit(_ context.Context, cfg Config, args []string) error {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	catalogPath := fs.String("file", cfg.Catalog, "YAML catalog path; empty uses the built-in seeds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, _, err := buildHierarchy(cfg, *catalogPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	return printJSON(client.Audit())
}

func runPersist(ctx context.Context, cfg Config, args []string) error {
	fs := flag.NewFlagSet("persist", flag.ContinueOnError)
	catalogPath := fs.String("file", cfg.Catalog, "YAML catalog path; empty uses the built-in seeds")
	backend := fs.String("store", cfg.Backend, "store backend: memory|sqlite")
	dbPath := fs.String("db-path", cfg.DBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := noesis.New(noesis.Options{StoreKind: *backend, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	h, err := loadHierarchy(client, *catalogPath)
	if err != nil {
		return err
	}

	saved, err := client.Persist(ctx, h)
	if err != nil {
		return err
	}
	slog.Info("persisted hierarchy", "hierarchy", h.Name(), "domains", len(saved), "store", *backend)

	stats, err := client.Stats(ctx)
	if err != nil {
		return err
	}
	return printJSON(struct {
		Saved []string     `json:"saved"`
		Stats noesis.Stats `json:"stats"`
	}{Saved: saved, Stats: stats})
}

func runStats(ctx context.Context, cfg Config, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	backend := fs.String("store", cfg.Backend, "store backend: memory|sqlite")
	dbPath := fs.String("db-path", cfg.DBPath, "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := noesis.New(noesis.Options{StoreKind: *backend, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	stats, err := client.Stats(ctx)
	if err != nil {
		return err
	}
	return printJSON(stats)
}

// buildHierarchy makes a memory-backed client and builds the requested
// catalog. Commands that only inspect domains never touch the durable store.
func buildHierarchy(cfg Config, catalogPath string) (*noesis.Client, *model.Hierarchy, error) {
	client, err := noesis.New(noesis.Options{StoreKind: "memory", DBPath: cfg.DBPath})
	if err != nil {
		return nil, nil, err
	}
	h, err := loadHierarchy(client, catalogPath)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return client, h, nil
}

func loadHierarchy(client *noesis.Client, catalogPath string) (*model.Hierarchy, error) {
	if catalogPath == "" {
		return client.BuildSeeds()
	}
	return client.BuildCatalog(catalogPath)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: noesisctl <catalog|verify|audit|persist|stats> [flags]", msg)
}
