package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
}

type HTTPConfig struct {
	Address string `yaml:"address" env-default:""`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host" env:"MYSQL_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"MYSQL_PORT" env-default:"3306"`
	User            string        `yaml:"user" env:"MYSQL_ROOT_NAME" env-default:"root"`
	Password        string        `yaml:"password" env:"MYSQL_ROOT_PASSWORD"`
	Name            string        `yaml:"name" env:"MYSQL_DATABASE_NAME"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"20"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"1h"`
}

type JWTConfig struct {
	Secret string        `yaml:"secret" env:"JWT_KEY"`
	// TTL of zero issues tokens without an exp claim.
	TTL time.Duration `yaml:"ttl" env:"JWT_TTL" env-default:"24h"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	cfg.setDefaults()

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
}

// DSN builds the MySQL connection string for the gorm driver.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.Name)
}
