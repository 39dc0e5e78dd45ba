package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/pennantbot/internal/engine"
	"github.com/robfig/cron/v3"
)

// MinInterval keeps auto-advance under the chat rate limit.
const MinInterval = time.Second

var (
	ErrAutoRunning     = errors.New("auto-advance is already running")
	ErrAutoStopped     = errors.New("auto-advance is not running")
	ErrIntervalTooFast = fmt.Errorf("interval must be at least %s", MinInterval)
)

// Season is the part of the pennant service the scheduler drives.
type Season interface {
	PlayDay() (string, error)
	GetStandings() (string, error)
	SeasonFinished() bool
}

type Scheduler struct {
	s           gocron.Scheduler
	season      Season
	sendMessage func(string) error
	digest      string

	mu       sync.Mutex
	autoJob  gocron.Job
	interval time.Duration
}

func NewScheduler(season Season, sendMessage func(string) error, timezone, digestSchedule string, interval time.Duration) (*Scheduler, error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Error("Failed to load location", "timezone", timezone, "error", err)
		location = time.UTC
	}

	if _, err := cron.ParseStandard(digestSchedule); err != nil {
		return nil, fmt.Errorf("invalid digest schedule %q: %w", digestSchedule, err)
	}
	if interval < MinInterval {
		return nil, ErrIntervalTooFast
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:           s,
		season:      season,
		sendMessage: sendMessage,
		digest:      digestSchedule,
		interval:    interval,
	}, nil
}

func (s *Scheduler) Start() error {
	// Standings digest
	_, err := s.s.NewJob(
		gocron.CronJob(s.digest, false),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings digest job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// StartAuto plays one day per interval until stopped or the season ends.
// A zero interval keeps the current speed.
func (s *Scheduler) StartAuto(interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.autoJob != nil {
		return ErrAutoRunning
	}
	if interval != 0 {
		if interval < MinInterval {
			return ErrIntervalTooFast
		}
		s.interval = interval
	}
	return s.scheduleAuto()
}

func (s *Scheduler) StopAuto() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.autoJob == nil {
		return ErrAutoStopped
	}
	return s.removeAuto()
}

// SetSpeed changes the auto-advance interval, restarting the job if it is running.
func (s *Scheduler) SetSpeed(interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interval < MinInterval {
		return ErrIntervalTooFast
	}
	s.interval = interval
	if s.autoJob == nil {
		return nil
	}
	if err := s.removeAuto(); err != nil {
		return err
	}
	return s.scheduleAuto()
}

func (s *Scheduler) AutoRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.autoJob != nil
}

func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Scheduler) scheduleAuto() error {
	job, err := s.s.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.playDay),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create auto-advance job: %w", err)
	}
	s.autoJob = job
	slog.Info("Auto-advance started", "interval", s.interval)
	return nil
}

func (s *Scheduler) removeAuto() error {
	id := s.autoJob.ID()
	s.autoJob = nil
	if err := s.s.RemoveJob(id); err != nil {
		return fmt.Errorf("failed to remove auto-advance job: %w", err)
	}
	slog.Info("Auto-advance stopped")
	return nil
}

func (s *Scheduler) playDay() {
	report, err := s.season.PlayDay()
	if err != nil {
		if errors.Is(err, engine.ErrSeasonOver) {
			s.stopAfterSeason()
			return
		}
		slog.Error("Failed to play day", "error", err)
		return
	}
	s.sendMessage(report)

	if s.season.SeasonFinished() {
		s.stopAfterSeason()
	}
}

func (s *Scheduler) stopAfterSeason() {
	if err := s.StopAuto(); err != nil && !errors.Is(err, ErrAutoStopped) {
		slog.Error("Failed to stop auto-advance", "error", err)
	}
}

func (s *Scheduler) sendStandings() {
	standings, err := s.season.GetStandings()
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	s.sendMessage(standings)
}
