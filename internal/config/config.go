package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds the board and planner settings
type GameConfig struct {
	Board        []int `mapstructure:"board"`
	MaxHouse     int   `mapstructure:"max_house"`
	StrictBoards bool  `mapstructure:"strict_boards"`
	PreviewOnly  bool  `mapstructure:"preview_only"`
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
	LogEvents      bool `mapstructure:"log_events"`
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	cfg   *Config
	cfgMu sync.RWMutex // guards cfg against the config watcher
	v     *viper.Viper

	// baseFile is set only when a config file was actually read; overlayFile
	// only when an environment overlay was merged on top of it.
	baseFile    string
	overlayFile string
)

func setConfig(c *Config) {
	cfgMu.Lock()
	cfg = c
	cfgMu.Unlock()
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.board", []int{0, 0, 1, 1, 3, 5, 0})
	v.SetDefault("game.max_house", 6)
	v.SetDefault("game.strict_boards", false)
	v.SetDefault("game.preview_only", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", FormatConsole)

	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.log_events", false)
}

// isNotFound reports whether err means there was no config file to read.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Init initializes the configuration. A missing config file falls back to
// defaults; any other read or parse error is returned.
func Init(configPath string) error {
	v = viper.New()
	baseFile, overlayFile = "", ""
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/solitaire-mancala")
	}

	v.SetEnvPrefix("MANCALA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(err) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		baseFile = v.ConfigFileUsed()
	}

	loaded, err := decode(v)
	if err != nil {
		return err
	}
	setConfig(loaded)
	return nil
}

func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Get returns the global config instance
func Get() *Config {
	cfgMu.RLock()
	c := cfg
	cfgMu.RUnlock()
	if c == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
		cfgMu.RLock()
		c = cfg
		cfgMu.RUnlock()
	}
	return c
}

// mergeOverlay merges overlay into v and points v back at base, so later
// reads (including the watcher's) still load the base file.
func mergeOverlay(v *viper.Viper, overlay, base string) error {
	v.SetConfigFile(overlay)
	err := v.MergeInConfig()
	if base != "" {
		v.SetConfigFile(base)
	}
	return err
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded configuration.
// The overlay is looked up next to the base config file, or in the working
// directory when no base file was read. A missing overlay is ignored.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if baseFile != "" {
		envFile = filepath.Join(filepath.Dir(baseFile), envFile)
	}
	if err := mergeOverlay(v, envFile, baseFile); err != nil {
		if isNotFound(err) {
			return nil
		}
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}
	overlayFile = envFile

	merged, err := decode(v)
	if err != nil {
		return err
	}
	setConfig(merged)
	return nil
}

// Set allows runtime config updates. Invalid values are rejected and leave the
// current configuration in place.
func Set(key string, value interface{}) error {
	v.Set(key, value)
	updated, err := decode(v)
	if err != nil {
		return err
	}
	setConfig(updated)
	return nil
}

// ConfigFilePath returns the base config file that was read, or "" when
// running on defaults.
func ConfigFilePath() string {
	return baseFile
}

// OverlayFilePath returns the environment overlay merged by
// LoadEnvironmentConfig, or "".
func OverlayFilePath() string {
	return overlayFile
}

// WatchConfig reloads the base config file whenever it changes and re-applies
// the environment overlay on top. onChange receives the reload error, if any;
// an invalid file leaves the previous config active. It fails when no config
// file was read.
func WatchConfig(onChange func(err error)) error {
	if baseFile == "" {
		return errors.New("no config file loaded to watch")
	}

	watched, base, overlay := v, baseFile, overlayFile
	watched.OnConfigChange(func(e fsnotify.Event) {
		var err error
		if overlay != "" {
			if mergeErr := mergeOverlay(watched, overlay, base); mergeErr != nil && !isNotFound(mergeErr) {
				err = fmt.Errorf("error merging environment config %s: %w", overlay, mergeErr)
			}
		}
		if err == nil {
			var reloaded *Config
			if reloaded, err = decode(watched); err == nil {
				setConfig(reloaded)
			}
		}
		if onChange != nil {
			onChange(err)
		}
	})
	watched.WatchConfig()
	return nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if len(c.Game.Board) == 0 {
		return fmt.Errorf("game.board must contain at least the store")
	}
	if c.Game.MaxHouse < 1 {
		return fmt.Errorf("game.max_house must be at least 1")
	}
	if c.Game.StrictBoards {
		for i, seeds := range c.Game.Board {
			if seeds < 0 {
				return fmt.Errorf("game.board[%d] must be non-negative", i)
			}
		}
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != FormatConsole && c.Logging.Format != FormatJSON {
		return fmt.Errorf("logging.format must be %q or %q", FormatConsole, FormatJSON)
	}

	return nil
}
