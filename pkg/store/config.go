package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/tourdiary/pkg/timeutil"
)

const (
	DefaultPath = "~/.tourdiary"
	// DefaultKey matches the key the diary has always been stored under.
	DefaultKey = "tourDiaryEntries"
)

type Config interface {
	BasePath() string
	Key() string
}

// Settings is the resolved configuration for a tourdiary process.
type Settings struct {
	Path              string        `json:"path"`
	StorageKey        string        `json:"key"`
	ReminderInterval  time.Duration `json:"reminderInterval"`
	ReminderTolerance time.Duration `json:"reminderTolerance"`
	ReminderDedupe    bool          `json:"reminderDedupe"`
	Notifier          string        `json:"notifier"`
	LogLevel          string        `json:"logLevel"`
	ConfigFile        string        `json:"configFile,omitempty"`
}

func (s *Settings) BasePath() string {
	return s.Path
}

func (s *Settings) Key() string {
	return s.StorageKey
}

// LoadConfig walks $TOURDIARY_CONFIG_PATH, ./ and $HOME for .tourdiary.yaml,
// then overlays TOURDIARY_* environment variables.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("reminder.interval", timeutil.DefaultInterval)
	v.SetDefault("reminder.tolerance", timeutil.DefaultInterval)
	v.SetDefault("reminder.dedupe", false)
	v.SetDefault("notifier", "desktop")
	v.SetDefault("log.level", "info")

	v.SetConfigName(".tourdiary") // .yaml is implicit
	v.SetEnvPrefix("TOURDIARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TOURDIARY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return settingsFrom(v)
}

func settingsFrom(v *viper.Viper) (*Settings, error) {
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	interval, _, err := timeutil.ParseInterval(v.GetString("reminder.interval"))
	if err != nil {
		return nil, fmt.Errorf("store: reminder.interval: %w", err)
	}
	tolerance, _, err := timeutil.ParseInterval(v.GetString("reminder.tolerance"))
	if err != nil {
		return nil, fmt.Errorf("store: reminder.tolerance: %w", err)
	}

	key := v.GetString("key")
	if key == "" {
		key = DefaultKey
	}

	return &Settings{
		Path:              path,
		StorageKey:        key,
		ReminderInterval:  interval,
		ReminderTolerance: tolerance,
		ReminderDedupe:    v.GetBool("reminder.dedupe"),
		Notifier:          v.GetString("notifier"),
		LogLevel:          v.GetString("log.level"),
		ConfigFile:        v.ConfigFileUsed(),
	}, nil
}
