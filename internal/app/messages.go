package app

import (
	"time"

	"github.com/kmacinski/huntgame/internal/config"
)

// scheduledMsg fires a callback registered with ScheduleOnce
type scheduledMsg struct {
	fn    func(elapsed time.Duration) error
	start time.Time
}

// ConfigChangedMsg is sent when the config file was reloaded
type ConfigChangedMsg struct {
	Config *config.Config
}

// ErrorMsg is sent when a background operation fails
type ErrorMsg struct {
	Err error
}

// StatusMsg shows a transient message in the status bar
type StatusMsg struct {
	Text string
}
