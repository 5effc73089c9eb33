// Package config loads application configuration and initializes the
// global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Collector CollectorConfig `yaml:"collector" mapstructure:"collector"`
	Scoring   ScoringConfig   `yaml:"scoring" mapstructure:"scoring"`
	Profile   string          `yaml:"profile" mapstructure:"profile"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// CollectorConfig configures the upstream data collection phase.
type CollectorConfig struct {
	Concurrency int     `yaml:"concurrency" mapstructure:"concurrency"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// ScoringConfig holds every knob of the scoring pipeline. It is
// constructed once per process and passed by value into component
// constructors; nothing mutates it afterwards.
type ScoringConfig struct {
	// IdealPopulation is the floating population that earns a full
	// population-adequacy score.
	IdealPopulation float64 `yaml:"ideal_population" mapstructure:"ideal_population"`
	// IdealPayment is the monthly payment count that earns a full
	// payment-activity score.
	IdealPayment float64 `yaml:"ideal_payment" mapstructure:"ideal_payment"`
	// MinParetoSize is the Pareto front size below which the pipeline
	// falls back to the full candidate set.
	MinParetoSize int `yaml:"min_pareto_size" mapstructure:"min_pareto_size"`
	// MinRelaxStores is the store-count floor used when filter results
	// fall short of the requested result count.
	MinRelaxStores int `yaml:"min_relax_stores" mapstructure:"min_relax_stores"`

	Weights RankWeights      `yaml:"weights" mapstructure:"weights"`
	Filters FilterThresholds `yaml:"filters" mapstructure:"filters"`
}

// RankWeights holds the default ranking weights before per-request
// preference adjustment.
type RankWeights struct {
	Profitability     float64 `yaml:"profitability" mapstructure:"profitability"`
	Stability         float64 `yaml:"stability" mapstructure:"stability"`
	Accessibility     float64 `yaml:"accessibility" mapstructure:"accessibility"`
	NetworkEfficiency float64 `yaml:"network_efficiency" mapstructure:"network_efficiency"`
	MorningShare      float64 `yaml:"morning_share" mapstructure:"morning_share"`
	WeekdayShare      float64 `yaml:"weekday_share" mapstructure:"weekday_share"`
}

// FilterThresholds holds the bucket boundaries used by the constraint
// filter chain.
type FilterThresholds struct {
	CompetitionBlueOceanMax   int `yaml:"competition_blue_ocean_max" mapstructure:"competition_blue_ocean_max"`
	CompetitionModerateMin    int `yaml:"competition_moderate_min" mapstructure:"competition_moderate_min"`
	CompetitionModerateMax    int `yaml:"competition_moderate_max" mapstructure:"competition_moderate_max"`
	CompetitionCompetitiveMin int `yaml:"competition_competitive_min" mapstructure:"competition_competitive_min"`
	CompetitionCompetitiveMax int `yaml:"competition_competitive_max" mapstructure:"competition_competitive_max"`

	PriceLowMax     int64 `yaml:"price_low_max" mapstructure:"price_low_max"`
	PriceMidLowMax  int64 `yaml:"price_mid_low_max" mapstructure:"price_mid_low_max"`
	PriceMidMax     int64 `yaml:"price_mid_max" mapstructure:"price_mid_max"`
	PriceMidHighMax int64 `yaml:"price_mid_high_max" mapstructure:"price_mid_high_max"`

	PeakShareMin float64 `yaml:"peak_share_min" mapstructure:"peak_share_min"`
	WeekdayMin   float64 `yaml:"weekday_min" mapstructure:"weekday_min"`
	WeekendMax   float64 `yaml:"weekend_max" mapstructure:"weekend_max"`

	FemaleCenteredMin float64 `yaml:"female_centered_min" mapstructure:"female_centered_min"`
	MaleCenteredMax   float64 `yaml:"male_centered_max" mapstructure:"male_centered_max"`
	BalancedMin       float64 `yaml:"balanced_min" mapstructure:"balanced_min"`
	BalancedMax       float64 `yaml:"balanced_max" mapstructure:"balanced_max"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LOCUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("profile", ProfileEstimated)
	v.SetDefault("collector.concurrency", 5)
	v.SetDefault("collector.rate_per_sec", 10.0)

	v.SetDefault("scoring.ideal_population", 30000.0)
	v.SetDefault("scoring.ideal_payment", 10000.0)
	v.SetDefault("scoring.min_pareto_size", 5)
	v.SetDefault("scoring.min_relax_stores", 1)

	v.SetDefault("scoring.weights.profitability", 0.30)
	v.SetDefault("scoring.weights.stability", 0.20)
	v.SetDefault("scoring.weights.accessibility", 0.15)
	v.SetDefault("scoring.weights.network_efficiency", 0.15)
	v.SetDefault("scoring.weights.morning_share", 0.10)
	v.SetDefault("scoring.weights.weekday_share", 0.10)

	v.SetDefault("scoring.filters.competition_blue_ocean_max", 10)
	v.SetDefault("scoring.filters.competition_moderate_min", 11)
	v.SetDefault("scoring.filters.competition_moderate_max", 30)
	v.SetDefault("scoring.filters.competition_competitive_min", 31)
	v.SetDefault("scoring.filters.competition_competitive_max", 50)
	v.SetDefault("scoring.filters.price_low_max", 5000)
	v.SetDefault("scoring.filters.price_mid_low_max", 8000)
	v.SetDefault("scoring.filters.price_mid_max", 12000)
	v.SetDefault("scoring.filters.price_mid_high_max", 15000)
	v.SetDefault("scoring.filters.peak_share_min", 0.2)
	v.SetDefault("scoring.filters.weekday_min", 0.7)
	v.SetDefault("scoring.filters.weekend_max", 0.5)
	v.SetDefault("scoring.filters.female_centered_min", 0.6)
	v.SetDefault("scoring.filters.male_centered_max", 0.4)
	v.SetDefault("scoring.filters.balanced_min", 0.4)
	v.SetDefault("scoring.filters.balanced_max", 0.6)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the configuration for values the engine cannot run
// with. Returns all problems joined into one error.
func (c *Config) Validate() error {
	var problems []string

	if _, err := ProfileByName(c.Profile); err != nil {
		problems = append(problems, "profile must be one of: estimated, legacy")
	}
	if c.Collector.Concurrency < 1 || c.Collector.Concurrency > 50 {
		problems = append(problems, "collector.concurrency must be between 1 and 50")
	}
	if c.Collector.RatePerSec <= 0 {
		problems = append(problems, "collector.rate_per_sec must be > 0")
	}
	if c.Scoring.IdealPopulation <= 0 {
		problems = append(problems, "scoring.ideal_population must be > 0")
	}
	if c.Scoring.IdealPayment <= 0 {
		problems = append(problems, "scoring.ideal_payment must be > 0")
	}
	if c.Scoring.MinParetoSize < 1 {
		problems = append(problems, "scoring.min_pareto_size must be >= 1")
	}

	w := c.Scoring.Weights
	total := 0.0
	for _, v := range []float64{w.Profitability, w.Stability, w.Accessibility, w.NetworkEfficiency, w.MorningShare, w.WeekdayShare} {
		if v < 0 {
			problems = append(problems, "scoring.weights values must be >= 0")
			break
		}
		total += v
	}
	if total <= 0 {
		problems = append(problems, "scoring.weights must not all be zero")
	}

	if len(problems) > 0 {
		return eris.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
