package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultPath is read when no config path is given.
const DefaultPath = "arcadepong.toml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ARCADEPONG_"

var ErrInvalid = errors.New("invalid configuration")

var Config Configuration

type Audio struct {
	Enabled           bool    `toml:"enabled"`
	MasterVolume      float64 `toml:"master_volume"`
	MusicVolume       float64 `toml:"music_volume"`
	SampleRate        int     `toml:"sample_rate"`
	SynthesizeMissing bool    `toml:"synthesize_missing"`
}

type Configuration struct {
	LogLevel    int     `toml:"log_level"`
	LogFile     string  `toml:"log_file"`
	Frontend    string  `toml:"frontend"` // auto, terminal or desktop
	WindowScale float64 `toml:"window_scale"`
	Fullscreen  bool    `toml:"fullscreen"`
	TickRate    int     `toml:"tick_rate"`
	AssetsDir   string  `toml:"assets_dir"`
	MetricsAddr string  `toml:"metrics_addr"`
	Seed        uint64  `toml:"seed"`
	Audio       Audio   `toml:"audio"`
}

func Default() Configuration {
	return Configuration{
		LogLevel:    int(slog.LevelWarn),
		Frontend:    "auto",
		WindowScale: 1,
		TickRate:    70,
		AssetsDir:   "sounds",
		Audio: Audio{
			Enabled:           true,
			MasterVolume:      1,
			MusicVolume:       0.1,
			SampleRate:        44100,
			SynthesizeMissing: true,
		},
	}
}

// LoadConfig fills Config from the TOML file at path, then from a .env file
// next to it, then from ARCADEPONG_* environment variables. A missing or
// unreadable file falls back to defaults; bad override values are errors.
func LoadConfig(path string) error {
	var c = Default()

	if path == "" {
		path = DefaultPath
	}
	md, err := toml.DecodeFile(path, &c)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("no config at path provided, using default config instead", slog.String("path", path))
	case err != nil:
		slog.Info("failed to read configuration, using default config instead...", slog.Any("err", err))
		c = Default()
	default:
		for _, key := range md.Undecoded() {
			slog.Warn("unknown config key", slog.String("key", key.String()))
		}
	}

	dotenv, err := godotenv.Read(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to read .env", slog.Any("err", err))
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if err := applyEnv(&c, lookup); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	Config = c
	return nil
}

type override struct {
	key string
	set func(c *Configuration, v string) error
}

func str(f func(*Configuration) *string) func(*Configuration, string) error {
	return func(c *Configuration, v string) error { *f(c) = v; return nil }
}

func integer(f func(*Configuration) *int) func(*Configuration, string) error {
	return func(c *Configuration, v string) error {
		n, err := strconv.Atoi(v)
		*f(c) = n
		return err
	}
}

func float(f func(*Configuration) *float64) func(*Configuration, string) error {
	return func(c *Configuration, v string) error {
		n, err := strconv.ParseFloat(v, 64)
		*f(c) = n
		return err
	}
}

func boolean(f func(*Configuration) *bool) func(*Configuration, string) error {
	return func(c *Configuration, v string) error {
		b, err := strconv.ParseBool(v)
		*f(c) = b
		return err
	}
}

var overrides = []override{
	{"LOG_LEVEL", integer(func(c *Configuration) *int { return &c.LogLevel })},
	{"LOG_FILE", str(func(c *Configuration) *string { return &c.LogFile })},
	{"FRONTEND", str(func(c *Configuration) *string { return &c.Frontend })},
	{"WINDOW_SCALE", float(func(c *Configuration) *float64 { return &c.WindowScale })},
	{"FULLSCREEN", boolean(func(c *Configuration) *bool { return &c.Fullscreen })},
	{"TICK_RATE", integer(func(c *Configuration) *int { return &c.TickRate })},
	{"ASSETS_DIR", str(func(c *Configuration) *string { return &c.AssetsDir })},
	{"METRICS_ADDR", str(func(c *Configuration) *string { return &c.MetricsAddr })},
	{"SEED", func(c *Configuration, v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		c.Seed = n
		return err
	}},
	{"AUDIO_ENABLED", boolean(func(c *Configuration) *bool { return &c.Audio.Enabled })},
	{"AUDIO_MASTER_VOLUME", float(func(c *Configuration) *float64 { return &c.Audio.MasterVolume })},
	{"AUDIO_MUSIC_VOLUME", float(func(c *Configuration) *float64 { return &c.Audio.MusicVolume })},
	{"AUDIO_SAMPLE_RATE", integer(func(c *Configuration) *int { return &c.Audio.SampleRate })},
	{"AUDIO_SYNTHESIZE_MISSING", boolean(func(c *Configuration) *bool { return &c.Audio.SynthesizeMissing })},
}

func applyEnv(c *Configuration, lookup func(string) (string, bool)) error {
	for _, o := range overrides {
		v, ok := lookup(EnvPrefix + o.key)
		if !ok {
			continue
		}
		if err := o.set(c, v); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %w", ErrInvalid, EnvPrefix, o.key, v, err)
		}
	}
	return nil
}

func (c Configuration) Validate() error {
	switch c.Frontend {
	case "auto", "terminal", "desktop":
	default:
		return fmt.Errorf("%w: frontend %q", ErrInvalid, c.Frontend)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.TickRate)
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("%w: window_scale %v", ErrInvalid, c.WindowScale)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	for name, v := range map[string]float64{
		"audio.master_volume": c.Audio.MasterVolume,
		"audio.music_volume":  c.Audio.MusicVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalid, name, v)
		}
	}
	return nil
}
