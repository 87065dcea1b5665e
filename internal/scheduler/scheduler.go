// Package scheduler запускает ежедневное начисление прибыли по расписанию.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/fsdevblog/safevault/internal/service"
	"github.com/sirupsen/logrus"
)

// Accruer запускает прогон начисления по всем подходящим юзерам.
type Accruer interface {
	AccrueAll(ctx context.Context) (*service.AccrualReport, error)
}

// Status текущее состояние планировщика.
type Status struct {
	Running bool
	NextRun time.Time
}

// Scheduler будит прогон начисления в полночь UTC. Жизненным циклом владеет
// вызывающая сторона: Run блокируется до отмены контекста.
type Scheduler struct {
	accruer Accruer
	l       *logrus.Entry

	mu      sync.Mutex
	running bool
	nextRun time.Time
}

func New(accruer Accruer, l *logrus.Logger) *Scheduler {
	return &Scheduler{
		accruer: accruer,
		l:       l.WithField("component", "scheduler"),
	}
}

// Run блокируется до отмены контекста. Каждая итерация ждет ближайшей полуночи
// UTC и запускает прогон начисления; ошибка прогона логируется и не
// останавливает планировщик.
func (s *Scheduler) Run(ctx context.Context) {
	s.setRunning(true)
	defer s.setRunning(false)

	s.l.Info("Starting")

	for {
		next := NextMidnightUTC(time.Now())
		s.setNextRun(next)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.l.Info("Got stop signal, exiting...")
			return
		case <-timer.C:
		}

		if _, err := s.accruer.AccrueAll(ctx); err != nil {
			s.l.WithError(err).Error("scheduled accrual run failed")
		}
	}
}

// Status отдает состояние для админского эндпоинта.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Running: s.running, NextRun: s.nextRun}
}

func (s *Scheduler) setRunning(running bool) {
	s.mu.Lock()
	s.running = running
	s.mu.Unlock()
}

func (s *Scheduler) setNextRun(next time.Time) {
	s.mu.Lock()
	s.nextRun = next
	s.mu.Unlock()
}

// NextMidnightUTC ближайшая полночь UTC строго после now.
func NextMidnightUTC(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}
