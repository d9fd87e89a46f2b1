package mutation

import "golang.org/x/exp/slog"

type Level int

const (
	LevelSuccess Level = iota
	LevelFailure
)

func (l Level) String() string {
	if l == LevelFailure {
		return "failure"
	}
	return "success"
}

// Notice сообщение пользователю об исходе операции
type Notice struct {
	Level   Level
	Command string
	Message string
	Err     error
}

type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc адаптер функции к Notifier
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// LogNotifier пишет уведомления в лог
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With(slog.String("component", "notice"))}
}

func (n *LogNotifier) Notify(notice Notice) {
	if notice.Level == LevelFailure {
		n.log.Error(notice.Message, "command", notice.Command, "error", notice.Err)
		return
	}
	n.log.Info(notice.Message, "command", notice.Command)
}
