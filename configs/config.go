package configs

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Postgres `mapstructure:"postgres"`
	SQLite   `mapstructure:"sqlite"`
	Catalog  `mapstructure:"catalog"`
	Line     `mapstructure:"line"`
	Search   `mapstructure:"search"`
	Cache    `mapstructure:"cache"`
	Session  `mapstructure:"session"`
}

// App struct
type App struct {
	Debug    bool   `mapstructure:"debug"`
	Env      string `mapstructure:"env"`
	Port     string `mapstructure:"port"`
	AdminKey string `mapstructure:"admin_key"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// SQLite struct
type SQLite struct {
	Path string `mapstructure:"path"`
}

// Catalog struct - selects the catalog database driver: postgres or sqlite
type Catalog struct {
	Driver string `mapstructure:"driver"`
}

// Line struct
type Line struct {
	ChannelSecret string `mapstructure:"channel_secret"`
	ChannelToken  string `mapstructure:"channel_token"`
	AdminUserID   string `mapstructure:"admin_user_id"`
}

// Search struct - external search provider and backoff policy
type Search struct {
	BaseURL           string  `mapstructure:"base_url"`
	APIKey            string  `mapstructure:"api_key"`
	EngineID          string  `mapstructure:"engine_id"`
	Timeout           int     `mapstructure:"timeout"`       // seconds
	BaseDelayMs       int     `mapstructure:"base_delay_ms"` // delay before every attempt
	DelayFactor       float64 `mapstructure:"delay_factor"`  // growth after each rate limit
	MaxRetries        int     `mapstructure:"max_retries"`
	JitterMs          int     `mapstructure:"jitter_ms"` // upper bound of the random retry jitter
	MaxPages          int     `mapstructure:"max_pages"`
	ResultsPerPage    int     `mapstructure:"results_per_page"`
	LinkBudget        int     `mapstructure:"link_budget"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// Cache struct - result cache driver: memory or redis
type Cache struct {
	Driver        string `mapstructure:"driver"`
	MaxEntries    int    `mapstructure:"max_entries"` // memory only, zero means unbounded
	TTLSeconds    int    `mapstructure:"ttl_seconds"` // redis only, zero means no expiry
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	KeyPrefix     string `mapstructure:"key_prefix"`
}

// Session struct
type Session struct {
	Timeout int `mapstructure:"timeout"` // minutes, zero keeps sessions until restart
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
	loadDotEnv(path, env)

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
		log.Println("Config file has changed: ", e.Name)
	})

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}

// loadDotEnv loads .env.<env> and .env from path when present. Variables already set in
// the environment win.
func loadDotEnv(path, env string) {
	files := []string{filepath.Join(path, ".env")}
	if env != "" {
		files = append([]string{filepath.Join(path, ".env."+env)}, files...)
	}
	for _, f := range files {
		if err := godotenv.Load(f); err == nil {
			log.Println("Loaded environment file: ", f)
		}
	}
}
