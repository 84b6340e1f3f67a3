package dashboard

import (
	"go.uber.org/zap"
)

// Notifier is the toast boundary: one non-blocking message per outcome.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier writes notifications to a structured log. It stands in for
// a UI toast layer.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(message string) {
	n.log.Info(message)
}

func (n *LogNotifier) Error(message string) {
	n.log.Warn(message)
}
