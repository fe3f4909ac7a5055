package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Extract  ExtractConfig
	LLM      LLMConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds artifact-storage configuration
type StorageConfig struct {
	Bucket       string
	SignedURLTTL time.Duration
}

// ExtractConfig holds recognition-adapter configuration
type ExtractConfig struct {
	TemplateBaseURL string // template-recognition service endpoint
	TemplateAPIKey  string
	Tesseract       string // binary name/path for general OCR
	TesseractLang   string
	Magick          string // binary name/path for image preprocessing
	TessdataDir     string
	Timeout         time.Duration
}

// LLMConfig holds language-model normalizer configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// PipelineConfig holds pipeline thresholds and worker settings
type PipelineConfig struct {
	ConfidenceThreshold float32
	Workers             int
	QueueSize           int
	ProcessTimeout      time.Duration
	SweepLimit          int
	SweepInterval       time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Bucket:       getEnv("ARTIFACT_BUCKET", ""),
			SignedURLTTL: getEnvAsDuration("ARTIFACT_URL_TTL", 15*time.Minute),
		},
		Extract: ExtractConfig{
			TemplateBaseURL: getEnv("TEMPLATE_OCR_URL", ""),
			TemplateAPIKey:  getEnv("TEMPLATE_OCR_API_KEY", ""),
			Tesseract:       getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang:   getEnv("TESSERACT_LANG", "kor+eng"),
			Magick:          getEnv("MAGICK_BIN", "magick"),
			TessdataDir:     getEnv("TESSDATA_PREFIX", ""),
			Timeout:         getEnvAsDuration("EXTRACT_TIMEOUT", 60*time.Second),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Pipeline: PipelineConfig{
			ConfidenceThreshold: getEnvAsFloat32("CONFIDENCE_THRESHOLD", 0.75),
			Workers:             getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:           getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout:      getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 3*time.Minute),
			SweepLimit:          getEnvAsInt("SWEEP_LIMIT", 3),
			SweepInterval:       getEnvAsDuration("SWEEP_INTERVAL", 5*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Storage.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "ARTIFACT_BUCKET is required", ErrInvalidInput)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
