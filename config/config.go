package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	FrontendURL string
	UploadDir   string
	JWTSecret   string

	Server   Server
	Database Database
	Redis    Redis
	LLM      LLM
	Deepgram Deepgram
	SMTP     SMTP
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Redis is optional; an empty Addr disables the distributed question lock.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

type LLM struct {
	Provider      string // gemini | openai
	GeminiApiKey  string
	GeminiModel   string
	OpenAIBaseURL string
	OpenAIApiKey  string
	OpenAIModel   string
}

type Deepgram struct {
	ApiKey string
	URL    string
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("LLM_PROVIDER", "gemini")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("DEEPGRAM_URL", "wss://api.deepgram.com/v1/listen")
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.FrontendURL = viper.GetString("FRONTEND_URL")
	config.UploadDir = viper.GetString("UPLOAD_DIR")
	config.JWTSecret = viper.GetString("JWT_SECRET")

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.LLM.Provider = viper.GetString("LLM_PROVIDER")
	config.LLM.GeminiApiKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.LLM.OpenAIBaseURL = viper.GetString("OPENAI_BASE_URL")
	config.LLM.OpenAIApiKey = viper.GetString("OPENAI_API_KEY")
	config.LLM.OpenAIModel = viper.GetString("OPENAI_MODEL")

	config.Deepgram.ApiKey = viper.GetString("DEEPGRAM_API_KEY")
	config.Deepgram.URL = viper.GetString("DEEPGRAM_URL")

	config.SMTP.Host = viper.GetString("SMTP_HOST")
	config.SMTP.Port = viper.GetInt("SMTP_PORT")
	config.SMTP.Username = viper.GetString("SMTP_USERNAME")
	config.SMTP.Password = viper.GetString("SMTP_PASSWORD")
	config.SMTP.From = viper.GetString("MAIL_FROM")

	if config.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is not set. Tokens are signed with an insecure development secret.")
		config.JWTSecret = "dev-secret-change-me"
	}

	log.Info().
		Str("env", config.AppEnv).
		Str("port", config.Server.Port).
		Str("db_host", config.Database.Host).
		Str("llm_provider", config.LLM.Provider).
		Bool("redis", config.Redis.Addr != "").
		Msg("Config loaded")
	return &config, nil
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
