package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultPath is where the device image keeps the menu configuration.
const DefaultPath = "/etc/menu_prefs.conf"

// Prefs are the user-visible display preferences, toggled from the settings
// screens and persisted on every change.
type Prefs struct {
	ShowSeconds bool
	Is24Hour    bool
}

// Paths locates the device resources the menu reads.
type Paths struct {
	ROMDir        string
	InfoFile      string
	HistoryDB     string
	MigrationsDir string
	LogFile       string
}

// Commands are the shell commands the menu hands off to. They are spawned
// fire-and-forget; the menu never observes their exit status.
type Commands struct {
	Reboot       string
	Game         string
	ConsoleStart string
	ConsoleStop  string
	OTAStart     string
	OTAStop      string
	ROMLaunch    string
}

type Config struct {
	Prefs      Prefs
	Paths      Paths
	Commands   Commands
	DeviceName string
	OTAURL     string
}

// Store holds the live configuration and its file path. The UI is a single
// poll loop, so mutation happens only from the update thread.
type Store struct {
	path string
	cfg  Config
}

// Load reads the flat KEY=value config file, applying defaults for missing
// keys. A missing file is not an error: defaults are applied and persisted
// so the first boot leaves a well-formed file behind.
func Load(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	setDefaults(v)

	firstRun := false
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			firstRun = true
		} else {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	s := &Store{path: path, cfg: fromViper(v)}
	if firstRun {
		if err := s.Save(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("show_seconds", "1")
	v.SetDefault("is_24_hour", "1")
	v.SetDefault("device_name", "Luckfox Pico")
	v.SetDefault("ota_url", "http://172.32.0.92")
	v.SetDefault("rom_dir", "/oem/nes_game")
	v.SetDefault("info_file", "/oem/pkpy/info")
	v.SetDefault("history_db", "/root/.picomenu/history.db")
	v.SetDefault("migrations_dir", "/oem/picomenu/migrations")
	v.SetDefault("log_file", "/tmp/picomenu.log")
	v.SetDefault("reboot_cmd", "reboot")
	v.SetDefault("game_cmd", "/root/term_start_all.sh < /dev/null")
	v.SetDefault("console_start_cmd", "/etc/init.d/S99fbterm start_with_input")
	v.SetDefault("console_stop_cmd", "/etc/init.d/S99fbterm stop")
	v.SetDefault("ota_start_cmd", "toggle_httpd.sh restart")
	v.SetDefault("ota_stop_cmd", "toggle_httpd.sh stop")
	v.SetDefault("rom_launch_cmd", "/root/nes_start.sh")
}

func fromViper(v *viper.Viper) Config {
	return Config{
		Prefs: Prefs{
			ShowSeconds: v.GetBool("show_seconds"),
			Is24Hour:    v.GetBool("is_24_hour"),
		},
		Paths: Paths{
			ROMDir:        v.GetString("rom_dir"),
			InfoFile:      v.GetString("info_file"),
			HistoryDB:     v.GetString("history_db"),
			MigrationsDir: v.GetString("migrations_dir"),
			LogFile:       v.GetString("log_file"),
		},
		Commands: Commands{
			Reboot:       v.GetString("reboot_cmd"),
			Game:         v.GetString("game_cmd"),
			ConsoleStart: v.GetString("console_start_cmd"),
			ConsoleStop:  v.GetString("console_stop_cmd"),
			OTAStart:     v.GetString("ota_start_cmd"),
			OTAStop:      v.GetString("ota_stop_cmd"),
			ROMLaunch:    v.GetString("rom_launch_cmd"),
		},
		DeviceName: v.GetString("device_name"),
		OTAURL:     v.GetString("ota_url"),
	}
}

// Save rewrites the config file from the current in-memory state. Booleans
// go out as 1/0 to match what the device tooling expects.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("env")
	v.Set("show_seconds", boolFlag(s.cfg.Prefs.ShowSeconds))
	v.Set("is_24_hour", boolFlag(s.cfg.Prefs.Is24Hour))
	v.Set("device_name", s.cfg.DeviceName)
	v.Set("ota_url", s.cfg.OTAURL)
	v.Set("rom_dir", s.cfg.Paths.ROMDir)
	v.Set("info_file", s.cfg.Paths.InfoFile)
	v.Set("history_db", s.cfg.Paths.HistoryDB)
	v.Set("migrations_dir", s.cfg.Paths.MigrationsDir)
	v.Set("log_file", s.cfg.Paths.LogFile)
	v.Set("reboot_cmd", s.cfg.Commands.Reboot)
	v.Set("game_cmd", s.cfg.Commands.Game)
	v.Set("console_start_cmd", s.cfg.Commands.ConsoleStart)
	v.Set("console_stop_cmd", s.cfg.Commands.ConsoleStop)
	v.Set("ota_start_cmd", s.cfg.Commands.OTAStart)
	v.Set("ota_stop_cmd", s.cfg.Commands.OTAStop)
	v.Set("rom_launch_cmd", s.cfg.Commands.ROMLaunch)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (s *Store) Config() Config {
	return s.cfg
}

func (s *Store) Prefs() Prefs {
	return s.cfg.Prefs
}

// SetPrefs updates the display preferences and persists them immediately,
// so the owner screen reflects the change the moment the option page closes.
func (s *Store) SetPrefs(p Prefs) error {
	s.cfg.Prefs = p
	return s.Save()
}
