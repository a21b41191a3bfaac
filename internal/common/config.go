package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Input  InputConfig
	NER    NERConfig
	Output OutputConfig
}

// InputConfig holds document-loading configuration
type InputConfig struct {
	Path         string
	PdftotextBin string
	LoadTimeout  time.Duration
}

// NERConfig holds entity-recognition configuration
type NERConfig struct {
	BaseURL  string
	Model    string
	APIToken string
	Timeout  time.Duration
	MaxChars int
}

// OutputConfig holds record-writing configuration
type OutputConfig struct {
	JSONPath string
	XLSXPath string
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Input: InputConfig{
			Path:         getEnv("INPUT_PATH", "document.pdf"),
			PdftotextBin: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			LoadTimeout:  getEnvAsDuration("LOAD_TIMEOUT", 30*time.Second),
		},
		NER: NERConfig{
			BaseURL:  getEnv("HF_API_URL", "https://api-inference.huggingface.co"),
			Model:    getEnv("HF_MODEL", "dbmdz/bert-large-cased-finetuned-conll03-english"),
			APIToken: getEnv("HF_API_TOKEN", ""),
			Timeout:  getEnvAsDuration("NER_TIMEOUT", 45*time.Second),
			MaxChars: getEnvAsInt("NER_MAX_CHARS", 10000),
		},
		Output: OutputConfig{
			JSONPath: getEnv("OUTPUT_PATH", "extracted_data.json"),
			XLSXPath: getEnv("XLSX_PATH", "tender_report.xlsx"),
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration. The API token is optional;
// without it the NER stage is skipped.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return NewAppError("CONFIG_ERROR", "INPUT_PATH must not be empty", ErrInvalidInput)
	}
	if c.Output.JSONPath == "" {
		return NewAppError("CONFIG_ERROR", "OUTPUT_PATH must not be empty", ErrInvalidInput)
	}
	if c.NER.BaseURL == "" || c.NER.Model == "" {
		return NewAppError("CONFIG_ERROR", "HF_API_URL and HF_MODEL must not be empty", ErrInvalidInput)
	}
	if c.NER.Timeout <= 0 {
		return NewAppError("CONFIG_ERROR", "NER_TIMEOUT must be positive", ErrInvalidInput)
	}
	return nil
}
