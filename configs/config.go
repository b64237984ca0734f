package configs

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Postgres `mapstructure:"postgres"`
	Line     `mapstructure:"line"`
	Bot      `mapstructure:"bot"`
	Session  `mapstructure:"session"`
	Manager  Service `mapstructure:"manager"`
	Data     Service `mapstructure:"data"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Postgres struct
type Postgres struct {
	Host            string `mapstructure:"host"`
	Port            string `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	DbName          string `mapstructure:"database"`
	SSLMode         bool   `mapstructure:"sslmode"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// Line struct
type Line struct {
	ChannelSecret string `mapstructure:"channel_secret"`
	ChannelToken  string `mapstructure:"channel_token"`
}

// Service struct - one currency backend, both as server (Port) and as seen by the bot (URL)
type Service struct {
	URL     string `mapstructure:"url"`
	Port    string `mapstructure:"port"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// Bot struct
type Bot struct {
	BaseCurrency string   `mapstructure:"base_currency"`
	Admins       []string `mapstructure:"admins"` // LINE user IDs, empty allows everyone
}

// Session struct
type Session struct {
	Timeout int `mapstructure:"timeout"` // minutes, 0 disables expiry
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infof("Config file has changed: %s", e.Name)
	})
	config = Config{}
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
	if env != "" && config.App.Env == "" {
		config.App.Env = env
	}
}
