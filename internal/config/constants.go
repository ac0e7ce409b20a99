// internal/config/constants.go
package config

// Application metadata.
const (
	AppName    = "wordvault"
	AppVersion = "1.0.0"
)

// Default settings.
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultTotalWords      = 200
	DefaultDailyWordGoal   = 10
	DefaultMinDailyGoal    = 1
	DefaultMaxDailyGoal    = 50
	DefaultGroupMaxMembers = 30
	DefaultAuthEnabled     = true
)

// ReviewIntervals[s] is how long a word waits after passing stage s before
// it becomes due for stage s+1. The unit is a day in production and may be
// compressed to a minute via app.review_interval_unit for verification; the
// mapping itself never changes.
var ReviewIntervals = [6]int{1, 3, 7, 14, 21, 28}

// DefaultAverageAccuracy is assumed for the completion-date projection
// when no per-user accuracy data exists.
const DefaultAverageAccuracy = 0.8

// DiligencePenaltyPerDay is subtracted from 100 for every missed study
// day within the current month.
const DiligencePenaltyPerDay = 3
