package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env              string        `yaml:"env" env:"ENV" env-default:"local"`
	ConnectionString string        `yaml:"connection_string" env:"CONNECTION_STRING" env-required:"true"`
	DBName           string        `yaml:"db_name" env:"DB_NAME" env-default:"atelier"`
	MigrationsPath   string        `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"migrations"`
	SessionSecret    string        `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
	TokenTTL         time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"12h"`
	HTTP             HTTPConfig    `yaml:"http"`
	Redis            RedisConf     `yaml:"redis"`
}

type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type RedisConf struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"REDIS_DB"`
}

// DSN combines the cluster connection string with the selected
// logical database name.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.ConnectionString, "/"), c.DBName)
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
