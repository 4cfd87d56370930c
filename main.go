package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"time"

	"tailor-system/bot"
	"tailor-system/config"
	"tailor-system/db"
	"tailor-system/logsink"
	"tailor-system/seed"
	"tailor-system/server"
	"tailor-system/services"
	"tailor-system/store"

	"github.com/olekukonko/tablewriter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "migrate":
			runMigrate(cfg)
			return
		case "seed":
			runSeed(cfg)
			return
		case "stats":
			runStats(cfg)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown subcommand %q (want migrate | seed | stats)\n", os.Args[1])
			os.Exit(2)
		}
	}

	stores, cleanup, err := openStores(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "store:", err)
		os.Exit(1)
	}
	defer cleanup()

	// Optional auto-migration (useful in production and for fresh DBs).
	// Set AUTO_MIGRATE=1 (or "true") to enable.
	if v := strings.TrimSpace(os.Getenv("AUTO_MIGRATE")); !cfg.DemoMode && (v == "1" || strings.EqualFold(v, "true")) {
		if err := applyMigrations(context.Background(), false); err != nil {
			fmt.Fprintln(os.Stderr, "migrate:", err)
			os.Exit(1)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sink := logsink.New(cfg.Log.File, cfg.Log.MaxBytes)

	// Status-lookup bot is optional: enabled by TOKEN.
	if cfg.Telegram.Token != "" {
		b, err := bot.New(cfg, stores)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bot:", err)
			os.Exit(1)
		}
		go b.Start()
		fmt.Println("Telegram status bot started.")
	}

	srv := server.New(cfg, stores, sink)
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

// openStores picks the backend: in demo mode an in-memory store pre-loaded
// with the demo dataset (no database needed), otherwise Postgres.
func openStores(cfg *config.Config) (store.Stores, func(), error) {
	if cfg.DemoMode {
		stores := store.NewMemoryStores()
		if _, err := seed.Run(context.Background(), stores); err != nil {
			return store.Stores{}, nil, fmt.Errorf("demo seed: %w", err)
		}
		fmt.Println("Demo mode: in-memory store seeded.")
		return stores, func() {}, nil
	}
	if err := db.Init(cfg.DB); err != nil {
		return store.Stores{}, nil, err
	}
	return store.NewPostgresStores(db.Pool), db.Close, nil
}

func runMigrate(cfg *config.Config) {
	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := applyMigrations(context.Background(), true); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func runSeed(cfg *config.Config) {
	if cfg.DemoMode {
		fmt.Fprintln(os.Stderr, "seed: demo mode seeds itself on startup")
		os.Exit(2)
	}
	if err := db.Init(cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	n, err := seed.Run(context.Background(), store.NewPostgresStores(db.Pool))
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded %d records.\n", n)
}

// runStats prints the capacity ledger for the next ten days and an order
// count per status.
func runStats(cfg *config.Config) {
	stores, cleanup, err := openStores(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "store:", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	settings, err := stores.Settings.GetSettings(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "settings:", err)
		os.Exit(1)
	}
	orders, err := stores.Orders.GetOrders(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "orders:", err)
		os.Exit(1)
	}

	fmt.Printf("Daily stitch capacity: %d, orders so far: %d\n\n", settings.DailyStitchCapacity, settings.OrderCounter)

	capTable := tablewriter.NewWriter(os.Stdout)
	capTable.Header("Date", "Load", "Capacity", "Free")
	for i := 0; i < 10; i++ {
		date := time.Now().AddDate(0, 0, i).Format("2006-01-02")
		info := services.CapacityForDate(settings, date)
		free := "full"
		if info.Available {
			free = strconv.Itoa(info.Capacity - info.Load)
		}
		_ = capTable.Append([]string{info.Date, strconv.Itoa(info.Load), strconv.Itoa(info.Capacity), free})
	}
	_ = capTable.Render()

	byStatus := map[string]int{}
	for _, o := range orders {
		byStatus[string(o.Status)]++
	}
	keys := make([]string, 0, len(byStatus))
	for k := range byStatus {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println()
	statusTable := tablewriter.NewWriter(os.Stdout)
	statusTable.Header("Status", "Orders")
	for _, k := range keys {
		_ = statusTable.Append([]string{k, strconv.Itoa(byStatus[k])})
	}
	_ = statusTable.Render()
}
