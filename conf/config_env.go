package conf

import (
	"github.com/caarlos0/env/v6"
)

// AppConfig presents app conf
type AppConfig struct {
	Port      string `env:"PORT" envDefault:"8081"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	DBHost    string `env:"DB_HOST" envDefault:"10.10.1.4"`
	DBPort    string `env:"DB_PORT" envDefault:"5432"`
	DBUser    string `env:"DB_USER" envDefault:"jx_report_user"`
	DBPass    string `env:"DB_PASS" envDefault:""`
	DBName    string `env:"DB_NAME" envDefault:"jx_data_info"`
	EnableDB  string `env:"ENABLE_DB" envDefault:"true"`

	// MaxReportWorkers bounds how many report jobs run at once
	MaxReportWorkers int    `env:"MAX_REPORT_WORKERS" envDefault:"5"`
	TempDir          string `env:"TEMP_DIR" envDefault:"/tmp/jx_reports"`
	MSConsumer       string `env:"MS_CONSUMER" envDefault:""`
}

var config AppConfig

func SetEnv() {
	_ = env.Parse(&config)
}

func LoadEnv() AppConfig {
	return config
}
