package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application. It is loaded once at
// startup and immutable afterwards.
type Config struct {
	// Server
	ServerHost string
	ServerPort string
	LogLevel   string

	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Redis (response cache)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// NATS (mail queue)
	NATSURL     string
	MailSubject string // queue subject for outgoing mail jobs
	MailQueue   string // queue group name for the consumer

	// SMTP
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	SMTPTLSMode  string // "starttls" (default), "tls" or "none"

	// MQTT (community notice broadcasts)
	MQTTBrokerURL string
	MQTTClientID  string
	MQTTUsername  string
	MQTTPassword  string
	MQTTQoS       int

	// Object storage (attachment uploads; read at startup alongside the
	// other credentials, consumed by the deployment's upload sidecar)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string

	// JWT authentication
	JWTSecretKey     string
	JWTExpiryDays    int
	ResetTokenTTLMin int

	// Root account seeded at startup
	RootAdminEmail    string
	RootAdminPassword string
}

// LoadConfig loads config from environment variables.
func LoadConfig() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DBHost:     getEnvRequired("DB_HOST"),
		DBUser:     getEnvRequired("DB_USER"),
		DBPassword: getEnvRequired("DB_PASSWORD"),
		DBName:     getEnvRequired("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "3306"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		NATSURL:     getEnv("NATS_URL", "nats://localhost:4222"),
		MailSubject: getEnv("MAIL_SUBJECT", "condo.mail"),
		MailQueue:   getEnv("MAIL_QUEUE", "condo-mailer"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     smtpPort,
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@mycondominium.local"),
		SMTPTLSMode:  getEnv("SMTP_TLS_MODE", "starttls"),

		MQTTBrokerURL: getEnv("MQTT_BROKER_URL", "tcp://localhost:1883"),
		MQTTClientID:  getEnv("MQTT_CLIENT_ID", "mycondominium_server"),
		MQTTUsername:  getEnv("MQTT_USERNAME", ""),
		MQTTPassword:  getEnv("MQTT_PASSWORD", ""),
		MQTTQoS:       getEnvAsInt("MQTT_QOS", 1),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", "mycondominium"),

		JWTSecretKey:     getEnv("JWT_SECRET_KEY", "mycondominium-secret-change-in-production"),
		JWTExpiryDays:    getEnvAsInt("JWT_EXPIRY_DAYS", 7),
		ResetTokenTTLMin: getEnvAsInt("RESET_TOKEN_TTL_MIN", 15),

		RootAdminEmail:    getEnv("ROOT_ADMIN_EMAIL", "root@mycondominium.local"),
		RootAdminPassword: getEnvRequired("ROOT_ADMIN_PASSWORD"),
	}
}

// GetConfig returns the application configuration as a singleton.
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string.
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

// GetRedisAddr returns the Redis address.
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// GetServerAddr returns the HTTP bind address.
func (c *Config) GetServerAddr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// Helper function to get environment variable with default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper for environment variables that must be present; missing values are
// fatal at startup by design.
func getEnvRequired(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}
