package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Health   HealthConfig   `yaml:"health"`
	Matching MatchingConfig `yaml:"matching"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	Telegram TelegramConfig `yaml:"telegram"`
	Logging  LoggingConfig  `yaml:"logging"`
	Leagues  LeaguesConfig  `yaml:"leagues"`
	Pinnacle PinnacleConfig `yaml:"pinnacle"`
}

type HTTPConfig struct {
	Timeout     time.Duration `yaml:"timeout"`      // per-request timeout
	Concurrency int           `yaml:"concurrency"`  // parallel league fetches
	Retries     int           `yaml:"retries"`      // retries after the first attempt
	UserAgent   string        `yaml:"user_agent"`
}

type HealthConfig struct {
	Addr              string        `yaml:"addr"` // empty disables the server
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

type MatchingConfig struct {
	TimeToleranceMinutes int     `yaml:"time_tolerance_minutes"` // kickoff window, default 12
	MinSimilarity        float64 `yaml:"min_similarity"`         // fuzzy threshold, default 0.85
	FuzzyPenaltySec      float64 `yaml:"fuzzy_penalty_sec"`      // exact-over-fuzzy bias, default 1000
}

type AnalysisConfig struct {
	MinEdge        float64 `yaml:"min_edge"`        // default 0.025
	KellyFraction  float64 `yaml:"kelly_fraction"`  // default 0.25
	MaxStakePct    float64 `yaml:"max_stake_pct"`   // default 0.05
	Bankroll       float64 `yaml:"bankroll"`        // default 1000
	SwapHysteresis float64 `yaml:"swap_hysteresis"` // default 0.05
}

type OutputConfig struct {
	Dir  string `yaml:"dir"`  // result files, default "output"
	TopN int    `yaml:"top_n"` // console summary size, default 10
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
	// Minutes before the same fixture/market/outcome may alert again.
	CooldownMinutes int `yaml:"cooldown_minutes"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Dir   string `yaml:"dir"`   // session log files; empty disables file logging
}

type LeaguesConfig struct {
	MinPriority int `yaml:"min_priority"`
	MaxPriority int `yaml:"max_priority"`
}

type PinnacleConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	MirrorURL string `yaml:"mirror_url"` // resolved via headless browser when the base host is blocked
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyDefaults()

	return &config, nil
}

// Default returns a config with all defaults applied, for runs without a
// config file.
func Default() *Config {
	var config Config
	config.applyDefaults()
	return &config
}

func (c *Config) applyDefaults() {
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = 25 * time.Second
	}
	if c.HTTP.Concurrency == 0 {
		c.HTTP.Concurrency = 12
	}
	if c.HTTP.Retries == 0 {
		c.HTTP.Retries = 2
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if c.Health.ReadHeaderTimeout == 0 {
		c.Health.ReadHeaderTimeout = 5 * time.Second
	}
	if c.Matching.TimeToleranceMinutes == 0 {
		c.Matching.TimeToleranceMinutes = 12
	}
	if c.Matching.MinSimilarity == 0 {
		c.Matching.MinSimilarity = 0.85
	}
	if c.Matching.FuzzyPenaltySec == 0 {
		c.Matching.FuzzyPenaltySec = 1000
	}
	if c.Analysis.MinEdge == 0 {
		c.Analysis.MinEdge = 0.025
	}
	if c.Analysis.KellyFraction == 0 {
		c.Analysis.KellyFraction = 0.25
	}
	if c.Analysis.MaxStakePct == 0 {
		c.Analysis.MaxStakePct = 0.05
	}
	if c.Analysis.Bankroll == 0 {
		c.Analysis.Bankroll = 1000
	}
	if c.Analysis.SwapHysteresis == 0 {
		c.Analysis.SwapHysteresis = 0.05
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "output"
	}
	if c.Output.TopN == 0 {
		c.Output.TopN = 10
	}
	if c.Telegram.CooldownMinutes == 0 {
		c.Telegram.CooldownMinutes = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Leagues.MinPriority == 0 {
		c.Leagues.MinPriority = 1
	}
	if c.Leagues.MaxPriority == 0 {
		c.Leagues.MaxPriority = 2
	}
}
