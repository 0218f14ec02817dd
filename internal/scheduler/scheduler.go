package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"KellyFolio/internal/advisor"
	"KellyFolio/internal/calculator"
	"KellyFolio/internal/capital"
	"KellyFolio/internal/collector"
	"KellyFolio/internal/model"
	"KellyFolio/internal/notifier"
	"KellyFolio/internal/recorder"
)

// Params are the knobs the allocation task needs on every run.
type Params struct {
	RiskFreeRate float64
	DiagonalOnly bool
	FullKelly    bool
}

// Scheduler runs the allocation pipeline, either once on demand or on a cron
// schedule in watch mode.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Capital   *capital.Manager
	Notifier  *notifier.TelegramNotifier // nil when Telegram is not configured
	Recorder  recorder.Recorder
	Params    Params
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, cm *capital.Manager, tn *notifier.TelegramNotifier, rec recorder.Recorder, params Params) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Capital:   cm,
		Notifier:  tn,
		Recorder:  rec,
		Params:    params,
		Ctx:       ctx,
	}
}

// Register adds the watch-mode allocation task on the given cron expression.
func (s *Scheduler) Register(watchCron string) error {
	if _, err := s.Cron.AddFunc(watchCron, s.watchTask); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the full pipeline once: collect prices, solve the Kelly
// allocation, assess it, and persist the run. Formatting and process exit
// codes stay with the caller.
func (s *Scheduler) RunNow() (*model.Allocation, *advisor.Advice, error) {
	prices, err := s.Collector.CollectPrices()
	if err != nil {
		return nil, nil, fmt.Errorf("collect prices: %w", err)
	}

	alloc, err := calculator.Allocate(prices, s.Params.RiskFreeRate, s.Params.DiagonalOnly)
	if err != nil {
		return nil, nil, fmt.Errorf("compute allocation: %w", err)
	}
	advice := advisor.Assess(alloc)

	if err := s.Recorder.RecordRun(alloc); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	if err := s.Capital.RecordRun(alloc); err != nil {
		log.Printf("[ERROR] update capital state: %v", err)
	}

	return alloc, advice, nil
}

func (s *Scheduler) watchTask() {
	log.Println("[INFO] running scheduled allocation")
	alloc, advice, err := s.RunNow()
	if err != nil {
		log.Printf("[ERROR] scheduled allocation: %v", err)
		s.trySend(fmt.Sprintf("allocation run failed: %v", err))
		return
	}

	report := notifier.FormatReport(alloc, s.Params.FullKelly)
	state := s.Capital.GetState()
	report += notifier.FormatPositions(state.Bankroll, s.Capital.PlanPositions(alloc, s.Params.FullKelly))
	if len(advice.Warnings) > 0 {
		report += notifier.FormatWarnings(advice)
	}
	s.trySend(report)
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] telegram send: %v", err)
	}
}
