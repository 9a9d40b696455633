package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`

	Engine     EngineConfig     `mapstructure:"engine"`
	Market     MarketConfig     `mapstructure:"market"`
	Risk       RiskConfig       `mapstructure:"risk"`
	Strategies StrategiesConfig `mapstructure:"strategies"`
	Snapshot   SnapshotConfig   `mapstructure:"snapshot"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

// DBConfig configures the optional postgres store. An empty DSN selects the
// in-memory repository instead.
type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

type EngineConfig struct {
	InitialCash     float64       `mapstructure:"initial_cash"`
	MinCashToInvest float64       `mapstructure:"min_cash_to_invest"`
	CycleInterval   time.Duration `mapstructure:"cycle_interval"`
	ErrorBackoff    time.Duration `mapstructure:"error_backoff"`
}

type MarketConfig struct {
	Latency time.Duration `mapstructure:"latency"`
	Seed    int64         `mapstructure:"seed"`
}

type RiskConfig struct {
	MaxSingleShare   float64 `mapstructure:"max_single_share"`
	MaxCategoryShare float64 `mapstructure:"max_category_share"`
	MaxSameSymbol    int     `mapstructure:"max_same_symbol"`
}

type StrategiesConfig struct {
	ETF    StrategyParams `mapstructure:"etf"`
	Crypto StrategyParams `mapstructure:"crypto"`
	Value  StrategyParams `mapstructure:"value"`
}

// StrategyParams is the per-variant tuning tuple. MinScore 0 disables the
// confidence gate.
type StrategyParams struct {
	Enabled      bool    `mapstructure:"enabled"`
	TargetShare  float64 `mapstructure:"target_share"`
	MinCash      float64 `mapstructure:"min_cash"`
	CashFraction float64 `mapstructure:"cash_fraction"`
	MaxAmount    float64 `mapstructure:"max_amount"`
	MinScore     float64 `mapstructure:"min_score"`
}

type SnapshotConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ML")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")

	v.SetDefault("engine.initial_cash", 1000)
	v.SetDefault("engine.min_cash_to_invest", 100)
	v.SetDefault("engine.cycle_interval", "1m")
	v.SetDefault("engine.error_backoff", "5m")

	v.SetDefault("market.latency", "100ms")
	v.SetDefault("market.seed", 0)

	v.SetDefault("risk.max_single_share", 0.20)
	v.SetDefault("risk.max_category_share", 0.40)
	v.SetDefault("risk.max_same_symbol", 3)

	v.SetDefault("strategies.etf.enabled", true)
	v.SetDefault("strategies.etf.target_share", 0.30)
	v.SetDefault("strategies.etf.min_cash", 200)
	v.SetDefault("strategies.etf.cash_fraction", 0.15)
	v.SetDefault("strategies.etf.max_amount", 500)
	v.SetDefault("strategies.etf.min_score", 0)

	v.SetDefault("strategies.crypto.enabled", true)
	v.SetDefault("strategies.crypto.target_share", 0.10)
	v.SetDefault("strategies.crypto.min_cash", 100)
	v.SetDefault("strategies.crypto.cash_fraction", 0.05)
	v.SetDefault("strategies.crypto.max_amount", 300)
	v.SetDefault("strategies.crypto.min_score", 0.6)

	v.SetDefault("strategies.value.enabled", true)
	v.SetDefault("strategies.value.target_share", 0.40)
	v.SetDefault("strategies.value.min_cash", 150)
	v.SetDefault("strategies.value.cash_fraction", 0.10)
	v.SetDefault("strategies.value.max_amount", 600)
	v.SetDefault("strategies.value.min_score", 0.7)

	v.SetDefault("snapshot.enabled", true)
	v.SetDefault("snapshot.schedule", "@every 5m")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
