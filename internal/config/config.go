package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address        string        `env:"RUN_ADDRESS"        envDefault:"localhost:8080"`
	Database       string        `env:"DATABASE_URL"`
	LogLvl         string        `env:"LOG_LVL"            envDefault:"info"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	ExposeErrors   bool          `env:"EXPOSE_ERRORS"      envDefault:"true"`
	AMQPURL        string        `env:"AMQP_URL"`
	AMQPExchange   string        `env:"AMQP_EXCHANGE"      envDefault:"orders_topic"`
}

// New reads an optional .env file, then the environment, then command line
// flags. DATABASE_URL has no default: an empty value is reported to callers
// per request instead of failing start-up.
func New() *Config {
	cfg := &Config{}

	_ = godotenv.Load()
	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.AMQPURL, "q", cfg.AMQPURL, "amqp broker url for order events")
	flag.Parse()

	return cfg
}

func (c *Config) DatabaseConfigured() bool {
	return c.Database != ""
}
