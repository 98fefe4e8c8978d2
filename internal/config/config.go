// Package config loads bot configuration from environment variables.
// envconfig maps the environment onto the Config struct; main loads an
// optional .env file first via godotenv.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds ALL application settings.
type Config struct {
	// --- Telegram ---
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	// The one group chat the bot scores submissions in.
	GroupChatID int64 `envconfig:"GROUP_CHAT_ID" required:"true"`
	// Usernames allowed to run admin commands (/say, /recalcstreaks, /export).
	AdminUsernamesRaw string   `envconfig:"ADMIN_USERNAMES" default:""`
	AdminUsernames    []string `envconfig:"-"` // filled manually from the CSV above

	// --- Database ---
	// Inside Docker "localhost" is almost always wrong; default to the
	// docker-compose service name and override DB_HOST=localhost locally.
	DBHost     string `envconfig:"DB_HOST" default:"postgres"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"wordlebot"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" default:"wordlebot"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
	DBMinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`

	// --- Application ---
	AppEnv      string `envconfig:"APP_ENV" default:"development"`
	AppLogLevel string `envconfig:"APP_LOG_LEVEL" default:"debug"`
	AppTimezone string `envconfig:"APP_TIMEZONE" default:"Europe/London"`

	// --- Bot runtime ---
	// How many updates we process in parallel. Without a cap, "one goroutine
	// per update" leaks memory under flood.
	BotMaxInflight          int `envconfig:"BOT_MAX_INFLIGHT" default:"64"`
	BotUpdateTimeoutSeconds int `envconfig:"BOT_UPDATE_TIMEOUT_SECONDS" default:"60"`

	// --- Scoring ---
	// Submissions posted before this local hour count for the previous day,
	// so a 1am post still scores yesterday's puzzle.
	GraceHour int `envconfig:"GRACE_HOUR" default:"3"`
	// Weekday with doubled points, 0=Sunday ... 5=Friday (time.Weekday).
	DoublePointsWeekday int `envconfig:"DOUBLE_POINTS_WEEKDAY" default:"5"`
	// Totals closer than this are announced as "tied" rather than ahead/behind.
	RivalTieTolerance float64 `envconfig:"RIVAL_TIE_TOLERANCE" default:"0.5"`

	// --- Reactions ---
	// How many recently used reaction phrases to remember (repeat suppression).
	ReactionCacheSize int `envconfig:"REACTION_CACHE_SIZE" default:"10"`

	// --- Rate limiting ---
	RateLimitRequests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"10"`
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// --- Feature flags ---
	FeatureReactionsEnabled     bool `envconfig:"FEATURE_REACTIONS_ENABLED" default:"true"`
	FeatureAnnouncementsEnabled bool `envconfig:"FEATURE_ANNOUNCEMENTS_ENABLED" default:"true"`
}

// DatabaseDSN returns the PostgreSQL connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Location resolves the configured timezone. Falls back to UTC if the
// tz database entry is missing (e.g. stripped container images).
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsAdmin reports whether a Telegram username is on the admin allow-list.
// Matching is case-insensitive; an empty list means no admins.
func (c *Config) IsAdmin(username string) bool {
	if username == "" {
		return false
	}
	username = strings.ToLower(username)
	for _, admin := range c.AdminUsernames {
		if admin == username {
			return true
		}
	}
	return false
}

func (c *Config) Validate() error {
	if c.GroupChatID == 0 {
		return fmt.Errorf("GROUP_CHAT_ID is not set or zero")
	}
	if c.BotMaxInflight <= 0 {
		return fmt.Errorf("BOT_MAX_INFLIGHT must be > 0")
	}
	if c.BotUpdateTimeoutSeconds <= 0 {
		return fmt.Errorf("BOT_UPDATE_TIMEOUT_SECONDS must be > 0")
	}
	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("invalid DB_MIN_CONNS/DB_MAX_CONNS")
	}
	if c.GraceHour < 0 || c.GraceHour > 23 {
		return fmt.Errorf("GRACE_HOUR must be in [0,23]")
	}
	if c.DoublePointsWeekday < 0 || c.DoublePointsWeekday > 6 {
		return fmt.Errorf("DOUBLE_POINTS_WEEKDAY must be in [0,6]")
	}
	if c.RivalTieTolerance < 0 {
		return fmt.Errorf("RIVAL_TIE_TOLERANCE must be >= 0")
	}
	if c.ReactionCacheSize <= 0 {
		return fmt.Errorf("REACTION_CACHE_SIZE must be > 0")
	}
	return nil
}

// Load reads the environment and fills a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.AdminUsernames = parseUsernameCSV(cfg.AdminUsernamesRaw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseUsernameCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(p, "@")))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
