package scheduler

import (
	"fmt"
	"io"
	"log"

	"github.com/robfig/cron/v3"

	"FinSight/internal/analyzer"
	"FinSight/internal/favorites"
	"FinSight/internal/recorder"
	"FinSight/internal/render"
)

// Scheduler periodically re-analyzes every favorite on a cron spec.
type Scheduler struct {
	Cron      *cron.Cron
	Analyzer  *analyzer.Analyzer
	Favorites *favorites.Store
	Recorder  recorder.Recorder
	Out       io.Writer
}

// NewScheduler creates a Scheduler writing rendered tables to out.
func NewScheduler(a *analyzer.Analyzer, fav *favorites.Store, rec recorder.Recorder, out io.Writer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Analyzer:  a,
		Favorites: fav,
		Recorder:  rec,
		Out:       out,
	}
}

// Register adds the sweep task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.sweep); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] watch scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] watch scheduler stopped")
}

// RunNow executes a sweep immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.sweep()
}

// sweep re-analyzes the favorites list. A failing symbol is logged and
// skipped; it never aborts the rest of the sweep.
func (s *Scheduler) sweep() {
	symbols := s.Favorites.Load()
	if len(symbols) == 0 {
		log.Println("[INFO] watch sweep: favorites list is empty")
		return
	}
	log.Printf("[INFO] watch sweep: analyzing %d favorites", len(symbols))

	for _, symbol := range symbols {
		report, err := s.Analyzer.Analyze(symbol)
		if err != nil {
			log.Printf("[ERROR] watch %s: %v", symbol, err)
			continue
		}
		fmt.Fprintln(s.Out, render.Table(report))
		if err := s.Recorder.RecordRun(recorder.NewRunRecord(report)); err != nil {
			log.Printf("[ERROR] record %s: %v", symbol, err)
		}
	}
}
