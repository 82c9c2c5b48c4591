package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"FinSight/internal/analyzer"
	"FinSight/internal/config"
	"FinSight/internal/favorites"
	"FinSight/internal/provider"
	"FinSight/internal/recorder"
	"FinSight/internal/render"
	"FinSight/internal/scheduler"
	"FinSight/internal/ticker"
)

const usage = `Usage:
  finsight <ticker or company name>   analyze a security
  finsight analyze <ticker or name>   same, explicit
  finsight fav add <ticker or name>   add to favorites
  finsight fav rm <ticker or name>    remove from favorites
  finsight fav list                   show favorites
  finsight watch                      re-analyze favorites on a schedule
`

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch args[0] {
	case "analyze":
		if len(args) < 2 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		runAnalyze(cfg, strings.Join(args[1:], " "))
	case "fav":
		runFav(cfg, args[1:])
	case "watch":
		runWatch(cfg)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		runAnalyze(cfg, strings.Join(args, " "))
	}
}

func newAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	p := provider.NewYahooProvider(cfg.Provider.Proxy)
	log.Printf("[INFO] data source: %s", p.Name())
	return analyzer.NewAnalyzer(p, cfg.Filters.MinYear, cfg.Filters.HistoryYears)
}

// newRecorder opens the SQLite recorder, degrading to a noop on failure the
// same way the history layer is optional by configuration.
func newRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	r, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return r
}

func runAnalyze(cfg *config.Config, input string) {
	symbol := ticker.Resolve(input)
	a := newAnalyzer(cfg)

	report, err := a.Analyze(symbol)
	switch {
	case errors.Is(err, analyzer.ErrNoStatementData):
		log.Fatalf("[FATAL] no financial statements available for %s, check the ticker", symbol)
	case errors.Is(err, analyzer.ErrNoDataInRange):
		log.Fatalf("[FATAL] %s has statements, but none on or after %d", symbol, cfg.Filters.MinYear)
	case err != nil:
		log.Fatalf("[FATAL] analyze %s: %v", symbol, err)
	}

	fmt.Print(render.Table(report))

	rec := newRecorder(cfg)
	defer rec.Close()
	if err := rec.RecordRun(recorder.NewRunRecord(report)); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}

func runFav(cfg *config.Config, args []string) {
	store := favorites.NewStore(cfg.Favorites.File)
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch args[0] {
	case "list":
		list := store.Load()
		if len(list) == 0 {
			fmt.Println("no favorites yet")
			return
		}
		for _, symbol := range list {
			fmt.Println(symbol)
		}
	case "add":
		if len(args) < 2 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		symbol := ticker.Resolve(strings.Join(args[1:], " "))
		changed, err := store.Add(symbol)
		if err != nil {
			log.Fatalf("[FATAL] save favorites: %v", err)
		}
		if changed {
			fmt.Printf("added %s\n", symbol)
		} else {
			fmt.Printf("%s is already a favorite\n", symbol)
		}
	case "rm":
		if len(args) < 2 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		symbol := ticker.Resolve(strings.Join(args[1:], " "))
		changed, err := store.Remove(symbol)
		if err != nil {
			log.Fatalf("[FATAL] save favorites: %v", err)
		}
		if changed {
			fmt.Printf("removed %s\n", symbol)
		} else {
			fmt.Printf("%s is not a favorite\n", symbol)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runWatch(cfg *config.Config) {
	a := newAnalyzer(cfg)
	store := favorites.NewStore(cfg.Favorites.File)
	rec := newRecorder(cfg)
	defer rec.Close()

	sched := scheduler.NewScheduler(a, store, rec, os.Stdout)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, sweeping favorites now")
		go sched.RunNow()
	}

	log.Println("[INFO] finsight watch is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}
