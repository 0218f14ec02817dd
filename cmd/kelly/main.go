package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"KellyFolio/internal/capital"
	"KellyFolio/internal/collector"
	"KellyFolio/internal/config"
	"KellyFolio/internal/notifier"
	"KellyFolio/internal/recorder"
	"KellyFolio/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	lookback := flag.Int("lookback", 126, "lookback period in days")
	riskFree := flag.Float64("risk-free-rate", 0.05, "annual risk-free rate as a fraction")
	diagonal := flag.Bool("diagonal", false, "use only diagonal covariance (ignore correlations)")
	fullKelly := flag.Bool("full-kelly", false, "recommend full Kelly instead of half Kelly")
	watch := flag.Bool("watch", false, "keep running and recompute on the configured cron schedule")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [TICKER ...]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Computes the Kelly-optimal capital allocation across the given tickers.")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Positional tickers and explicitly set flags win over the config file.
	if args := flag.Args(); len(args) > 0 {
		symbols := make([]string, len(args))
		for i, t := range args {
			symbols[i] = strings.ToUpper(t)
		}
		cfg.Portfolio.Symbols = symbols
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lookback":
			cfg.Portfolio.LookbackDays = *lookback
		case "risk-free-rate":
			cfg.Portfolio.RiskFreeRate = *riskFree
		case "diagonal":
			cfg.Portfolio.DiagonalOnly = *diagonal
		case "full-kelly":
			cfg.Portfolio.FullKelly = *fullKelly
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}

	col := collector.NewCollector(fetcher, cfg.Portfolio.Symbols, cfg.Portfolio.LookbackDays)

	cm, err := capital.NewManager(cfg.Capital.StateFile, cfg.Capital.Bankroll)
	if err != nil {
		log.Fatalf("[FATAL] init capital manager: %v", err)
	}

	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, cm, tn, rec, scheduler.Params{
		RiskFreeRate: cfg.Portfolio.RiskFreeRate,
		DiagonalOnly: cfg.Portfolio.DiagonalOnly,
		FullKelly:    cfg.Portfolio.FullKelly,
	})

	if *watch {
		if err := sched.Register(cfg.Schedule.WatchCron); err != nil {
			log.Fatalf("[FATAL] register watch task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
		log.Printf("[INFO] watch mode: %s on %q via %s", strings.Join(cfg.Portfolio.Symbols, ","), cfg.Schedule.WatchCron, fetcher.Name())

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
		return
	}

	// One-shot mode: results on stdout, cautions on stderr.
	alloc, advice, err := sched.RunNow()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	fmt.Print(notifier.FormatReport(alloc, cfg.Portfolio.FullKelly))
	state := cm.GetState()
	fmt.Print(notifier.FormatPositions(state.Bankroll, cm.PlanPositions(alloc, cfg.Portfolio.FullKelly)))
	fmt.Fprint(os.Stderr, notifier.FormatWarnings(advice))
}
