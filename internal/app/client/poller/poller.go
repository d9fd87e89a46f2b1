package poller

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

const maxBackoff = 5 * time.Minute

// Task одна периодическая загрузка. Ошибка не останавливает опрос.
type Task func(ctx context.Context) error

type task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Scheduler периодические задачи по ключам. Задачи живут, пока жива сессия.
type Scheduler struct {
	log   *slog.Logger
	mu    sync.Mutex
	tasks map[string]*task
}

func NewScheduler(log *slog.Logger) *Scheduler {
	return &Scheduler{
		log:   log.With(slog.String("component", "poller")),
		tasks: make(map[string]*task),
	}
}

// Start запускает задачу с интервалом. Задача с тем же ключом перезапускается.
// Первый вызов fn происходит через interval.
func (s *Scheduler) Start(ctx context.Context, key string, interval time.Duration, fn Task) {
	s.Stop(key)

	taskCtx, cancel := context.WithCancel(ctx)
	t := &task{cancel: cancel, done: make(chan struct{})}

	s.mu.Lock()
	s.tasks[key] = t
	s.mu.Unlock()

	s.log.Debug("Опрос запущен", "key", key, "interval", interval)
	go s.loop(taskCtx, t, key, interval, fn)
}

func (s *Scheduler) loop(ctx context.Context, t *task, key string, interval time.Duration, fn Task) {
	defer close(t.done)

	failures := 0
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("Опрос остановлен", "key", key)
			return
		case <-timer.C:
		}

		if err := fn(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			failures++
			s.log.Warn("Ошибка опроса", "key", key, "failures", failures, "error", err)
		} else {
			failures = 0
		}

		timer.Reset(calculateBackoff(failures, interval))
	}
}

// Stop останавливает задачу и ждет ее завершения
func (s *Scheduler) Stop(key string) {
	s.mu.Lock()
	t, ok := s.tasks[key]
	delete(s.tasks, key)
	s.mu.Unlock()

	if ok {
		t.cancel()
		<-t.done
	}
}

// StopAll останавливает все задачи
func (s *Scheduler) StopAll() {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = make(map[string]*task)
	s.mu.Unlock()

	for _, t := range tasks {
		t.cancel()
	}
	for _, t := range tasks {
		<-t.done
	}
}

func (s *Scheduler) Running(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[key]
	return ok
}

// Keys ключи запущенных задач по алфавиту
func (s *Scheduler) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.tasks))
	for k := range s.tasks {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// calculateBackoff удваивает интервал после каждой неудачи подряд.
// Потолок - maxBackoff, но не меньше самого интервала.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	ceiling := maxBackoff
	if interval > ceiling {
		ceiling = interval
	}

	delay := interval
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= ceiling {
			return ceiling
		}
	}
	return delay
}
