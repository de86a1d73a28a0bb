package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/mwalto7/statbot/internal/service"
)

type Scheduler struct {
	s              gocron.Scheduler
	statsService   *service.StatsService
	awardsSchedule string
	sendMessage    func(string) error
}

func NewScheduler(statsService *service.StatsService, awardsSchedule string, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		statsService:   statsService,
		awardsSchedule: awardsSchedule,
		sendMessage:    sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Weekly awards on the configured cron expression (validated at
	// config load), by default Tuesday morning once all scores are final.
	_, err = s.s.NewJob(
		gocron.CronJob(s.awardsSchedule, false),
		gocron.NewTask(s.sendWeeklyAwards),
	)
	if err != nil {
		return fmt.Errorf("failed to create weekly awards job: %w", err)
	}

	// Luck index - Tuesday 17:30 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(17, 30, 0))),
		gocron.NewTask(s.sendLuckReport),
	)
	if err != nil {
		return fmt.Errorf("failed to create luck report job: %w", err)
	}

	// Lineup efficiency - Wednesday 7:30 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendEfficiencyReport),
	)
	if err != nil {
		return fmt.Errorf("failed to create efficiency report job: %w", err)
	}

	// Standings - Thursday 7:30 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	// Season summary - 1st of each month 7:30 CDT
	_, err = s.s.NewJob(
		gocron.MonthlyJob(1, gocron.NewDaysOfTheMonth(1), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendSeasonSummary),
	)
	if err != nil {
		return fmt.Errorf("failed to create season summary job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendWeeklyAwards() {
	report, err := s.statsService.WeeklyAwardsReport()
	if err != nil {
		slog.Error("Failed to build weekly awards report", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendLuckReport() {
	report, err := s.statsService.LuckReport()
	if err != nil {
		slog.Error("Failed to build luck report", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendEfficiencyReport() {
	report, err := s.statsService.EfficiencyReport()
	if err != nil {
		slog.Error("Failed to build efficiency report", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendStandings() {
	report, err := s.statsService.StandingsReport()
	if err != nil {
		slog.Error("Failed to build standings report", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendSeasonSummary() {
	report, err := s.statsService.SeasonSummaryReport()
	if err != nil {
		slog.Error("Failed to build season summary report", "error", err)
		return
	}
	s.sendMessage(report)
}
