package demo

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/benz9527/xlinked/lib/infra"
	"github.com/benz9527/xlinked/xlog"
)

// Config of the demo runner.
// The yaml file is optional, the environment variables override it.
type Config struct {
	LogLevel       string `yaml:"log_level" env:"XLINKED_LOG_LEVEL" env-default:"INFO" env-description:"DEBUG, INFO, WARN or ERROR"`
	LogEncoder     string `yaml:"log_encoder" env:"XLINKED_LOG_ENCODER" env-default:"plain" env-description:"json or plain"`
	Workers        int    `yaml:"workers" env:"XLINKED_WORKERS" env-default:"4" env-description:"scenario worker pool size"`
	Sizes          []int  `yaml:"sizes" env:"XLINKED_SIZES" env-separator:"," env-default:"1,2,3,4,5,6,7,8,9,10" env-description:"list lengths of the middle element scenarios"`
	CycleListSize  int    `yaml:"cycle_list_size" env:"XLINKED_CYCLE_LIST_SIZE" env-default:"5" env-description:"list length of the cycle scenarios"`
	CyclePositions []int  `yaml:"cycle_positions" env:"XLINKED_CYCLE_POSITIONS" env-separator:"," env-default:"0,1,2,3,4" env-description:"positions the tail links back to"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if len(path) > 0 {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[demo] unable to load config")
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate collects all the invalid fields.
func (cfg *Config) Validate() error {
	var merr error
	if _, err := xlog.ParseLogLevel(cfg.LogLevel); err != nil {
		merr = infra.AppendErrorStack(merr, err)
	}
	if _, err := xlog.ParseLogEncoder(cfg.LogEncoder); err != nil {
		merr = infra.AppendErrorStack(merr, err)
	}
	if cfg.Workers <= 0 {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf("[demo] workers %d must be positive", cfg.Workers)))
	}
	for _, n := range cfg.Sizes {
		if n < 0 {
			merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf("[demo] negative list size %d", n)))
		}
	}
	if cfg.CycleListSize < 0 {
		merr = infra.AppendErrorStack(merr, infra.NewErrorStack(fmt.Sprintf("[demo] negative cycle list size %d", cfg.CycleListSize)))
	}
	return merr
}

// Usage lists the supported environment variables.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return err.Error()
	}
	return text
}

// NewLogger builds the logger from cfg.
// The scenario name is extracted from the log context.
func NewLogger(cfg *Config) (xlog.XLogger, error) {
	lvl, err := xlog.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	enc, err := xlog.ParseLogEncoder(cfg.LogEncoder)
	if err != nil {
		return nil, err
	}
	return xlog.NewXLogger(
		xlog.WithXLoggerLevel(lvl),
		xlog.WithXLoggerEncoder(enc),
		xlog.WithXLoggerContextFieldExtract(scenarioCtxKey, xlog.ContextKeyMapToOmitempty),
	), nil
}
