package constants

const (
	AppName           = "hard75"
	DefaultConfigPath = "~/.config/hard75/hard75.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Challenge configuration
	ChallengeDays = 75

	// Water tracking
	WaterGoalOz         = 128
	WaterIncrementSmall = 8
	WaterIncrementLarge = 16

	// Workout requirements
	WorkoutDurationMinutes = 45
	WorkoutGapHours        = 3

	// Reading requirements
	ReadingGoalPages = 10

	// Default settings
	DefaultWaterBottleOz = 16

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "hard75-"

	// Storage key for the key/value backend. Settings live inside the
	// challenge state blob, not under their own key.
	KeyChallengeState = "@75hard/challenge_state"
)

// Milestones are the day numbers celebrated in the stats view.
var Milestones = []int{25, 50, 75}

// WorkoutTypes are the workout categories offered by the UI. Free text is
// still accepted; this list only drives help output and forms.
var WorkoutTypes = []string{
	"Walk",
	"Run",
	"HIIT",
	"Strength Training",
	"Yoga",
	"Cycling",
	"Swimming",
	"Sports",
	"Other",
}

// TaskConfig describes one of the five daily tasks for display purposes.
type TaskConfig struct {
	ID       string
	Title    string
	Subtitle string
}

// DailyTasks lists the five daily tasks in display order.
var DailyTasks = []TaskConfig{
	{ID: "photo", Title: "Progress Photo", Subtitle: "Take a daily photo"},
	{ID: "water", Title: "Drink 1 Gallon of Water", Subtitle: "128 oz total"},
	{ID: "workouts", Title: "Two 45-Min Workouts", Subtitle: "One must be outdoors, 3+ hours apart"},
	{ID: "reading", Title: "Read 10 Pages", Subtitle: "Non-fiction / self-development"},
	{ID: "diet", Title: "Follow Diet", Subtitle: "No cheat meals, no alcohol"},
}
