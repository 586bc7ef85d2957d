package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Settings struct {
	HTTPAddr           string
	TaxRate            decimal.Decimal
	JWTSecret          []byte
	EventsTopic        string
	ProjectorGroupID   string
	ReceiptBaseURL     string
	StatusCacheTTL     time.Duration
	StatementTimeoutMS int
	RunMigrations      bool
}

// Load reads settings from the environment. A .env file in the working
// directory is honoured when present.
func Load() Settings {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("failed to load .env file")
	}

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0"))
	if err != nil {
		log.WithError(err).Fatal("invalid TAX_RATE")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	return Settings{
		HTTPAddr:           getEnv("HTTP_ADDR", ":8084"),
		TaxRate:            taxRate,
		JWTSecret:          []byte(secret),
		EventsTopic:        getEnv("KAFKA_TOPIC", "pos-events"),
		ProjectorGroupID:   getEnv("KAFKA_GROUP_ID", "pos-svc-projector"),
		ReceiptBaseURL:     getEnv("RECEIPT_BASE_URL", "http://localhost:8084"),
		StatusCacheTTL:     time.Duration(getEnvInt("STATUS_CACHE_TTL_SECONDS", 30)) * time.Second,
		StatementTimeoutMS: getEnvInt("DB_STATEMENT_TIMEOUT_MS", 5000),
		RunMigrations:      getEnv("DB_MIGRATE", "true") == "true",
	}
}

func MustInitPostgres(statementTimeoutMS int) *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable" +
		" statement_timeout=" + strconv.Itoa(statementTimeoutMS)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}

	return client
}

// KafkaEnabled reports whether a broker is configured. Without one the
// service runs with events disabled.
func KafkaEnabled() bool {
	return os.Getenv("KAFKA_BROKER") != ""
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.WithField("key", key).Warn("invalid integer setting, using default")
		return defaultValue
	}
	return n
}
