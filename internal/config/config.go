// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"` // 空ならSQLiteファイルにフォールバック
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type QuizConfig struct {
	SessionSize int     `mapstructure:"session_size"`
	MCQCount    int     `mapstructure:"mcq_count"`
	BlankCount  int     `mapstructure:"blank_count"`
	DueShare    float64 `mapstructure:"due_share"`
	DueLimit    int     `mapstructure:"due_limit"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

var Cfg Config

// LoadConfig は config.yaml と APP_ 接頭辞の環境変数から設定を読み込みます。
// 設定ファイルがなくても起動できるよう、欠けた値はデフォルトで補います。
func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("server.port", "SERVER_PORT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Quiz.SessionSize <= 0 {
		Cfg.Quiz.SessionSize = DefaultSessionSize
	}
	if Cfg.Quiz.MCQCount <= 0 {
		Cfg.Quiz.MCQCount = DefaultMCQCount
	}
	if Cfg.Quiz.BlankCount <= 0 {
		Cfg.Quiz.BlankCount = DefaultBlankCount
	}
	if Cfg.Quiz.DueShare <= 0 || Cfg.Quiz.DueShare > 1 {
		Cfg.Quiz.DueShare = DefaultDueShare
	}
	if Cfg.Quiz.DueLimit <= 0 {
		Cfg.Quiz.DueLimit = DefaultDueLimit
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"Accept", "Content-Type"}
	}
	if Cfg.Database.URL == "" {
		log.Printf("Database URL is not set, falling back to SQLite file %q", DefaultSQLitePath)
		Cfg.Database.URL = DefaultSQLitePath
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Session Size: %d (mcq=%d, blank=%d)", Cfg.Quiz.SessionSize, Cfg.Quiz.MCQCount, Cfg.Quiz.BlankCount)

	return nil
}
