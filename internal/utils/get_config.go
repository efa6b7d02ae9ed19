package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Ingredient pipeline configuration
	SeasoningThreshold       float64 `yaml:"SEASONING_THRESHOLD"`
	DedupThreshold           float64 `yaml:"DEDUP_THRESHOLD"`
	VagueQuantityProxy       float64 `yaml:"VAGUE_QUANTITY_PROXY"`
	MinMatchRate             float64 `yaml:"MIN_MATCH_RATE"`
	DefaultAlgorithm         string  `yaml:"DEFAULT_ALGORITHM"`
	DefaultLimit             int     `yaml:"DEFAULT_LIMIT"`
	ExcludeSeasoningsDefault bool    `yaml:"EXCLUDE_SEASONINGS_DEFAULT"`
}

// Settings carries the typed pipeline configuration, built once at startup and
// injected into the parser, matcher and scoring services.
type Settings struct {
	SeasoningThreshold       float64
	DedupThreshold           float64
	VagueQuantityProxy       float64
	MinMatchRate             float64
	DefaultAlgorithm         string
	DefaultLimit             int
	ExcludeSeasoningsDefault bool
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}

// GetSettings applies defaults for any pipeline value missing from config.yaml.
func GetSettings() Settings {
	s := Settings{
		SeasoningThreshold:       config.SeasoningThreshold,
		DedupThreshold:           config.DedupThreshold,
		VagueQuantityProxy:       config.VagueQuantityProxy,
		MinMatchRate:             config.MinMatchRate,
		DefaultAlgorithm:         config.DefaultAlgorithm,
		DefaultLimit:             config.DefaultLimit,
		ExcludeSeasoningsDefault: config.ExcludeSeasoningsDefault,
	}

	if s.SeasoningThreshold <= 0 {
		s.SeasoningThreshold = 0.8
	}
	if s.DedupThreshold <= 0 {
		s.DedupThreshold = 0.6
	}
	if s.VagueQuantityProxy <= 0 {
		s.VagueQuantityProxy = 0.3
	}
	if s.MinMatchRate <= 0 {
		s.MinMatchRate = 0.3
	}
	if s.DefaultAlgorithm == "" {
		s.DefaultAlgorithm = "weighted-essential"
	}
	if s.DefaultLimit <= 0 {
		s.DefaultLimit = 20
	}

	return s
}
