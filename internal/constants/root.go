package constants

// SessionState represents the current screen of the TUI application
type SessionState int

const (
	AppName            = "mentalift"
	LauncherName       = "mentalift-launcher"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/mentalift"
	Version            = "v0.2.0"

	AboutText = "MentaLift – Your digital companion for mental well-being.\n" +
		"Designed to monitor mental status and provide daily insights."

	// EntryDateFormat is the timestamp format persisted on every entry,
	// minute granularity (YYYY-MM-DD HH:MM)
	EntryDateFormat = "2006-01-02 15:04"

	// Rating bounds for mood, stress, anxiety and sleep
	RatingMin = 1
	RatingMax = 10

	// MaxUsernameLen caps usernames; they double as data file names
	MaxUsernameLen = 64

	// SessionFileName holds the single active username
	SessionFileName = "session.json"

	// HistoryFileSuffix is appended to the username for per-user history files
	HistoryFileSuffix = "_data.json"

	// ChartFileSuffix is appended to the username for the trend chart image
	ChartFileSuffix = "_graph.png"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mentalift-"
)

// Screen states
const (
	StateWelcome SessionState = iota
	StateLogin
	StateHome
	StateCheckin
	StateHistory
	StateAbout
)
