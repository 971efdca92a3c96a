package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config is the environment of a Desi Beats process. Empty infrastructure
// fields mean the matching backend is not configured.
type Config struct {
	Port string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	SessionTTL        time.Duration
	CookieSecure      bool

	MongoURI      string
	MongoDatabase string
	DBHost        string
	RedisHost     string
	KafkaBroker   string
	OrdersTopic   string

	AllowedOrigins     []string
	PublicBaseURL      string
	UploadDir          string
	HeroSliderPath     string
	ImageKitPrivateKey string
	SeedCatalog        bool
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	mongoURI := getEnv("MONGO_URI", "")
	if mongoURI == "" {
		mongoURI = getEnv("MONGODB_URI", "")
	}

	return Config{
		Port:               getEnv("PORT", "8081"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin"),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		SessionTTL:         getDuration("SESSION_TTL", 24*time.Hour),
		CookieSecure:       getBool("COOKIE_SECURE", false),
		MongoURI:           mongoURI,
		MongoDatabase:      getEnv("MONGO_DATABASE", "desi_beats"),
		DBHost:             getEnv("DB_HOST", ""),
		RedisHost:          getEnv("REDIS_HOST", ""),
		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		OrdersTopic:        getEnv("ORDERS_TOPIC", "orders"),
		AllowedOrigins:     splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5000")),
		PublicBaseURL:      strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:5000"), "/"),
		UploadDir:          getEnv("UPLOAD_DIR", "./uploads"),
		HeroSliderPath:     getEnv("HERO_SLIDER_PATH", "hero-slider-config.json"),
		ImageKitPrivateKey: getEnv("IMAGEKIT_PRIVATE_KEY", ""),
		SeedCatalog:        getBool("SEED_CATALOG", false),
	}
}

// Storefront is the environment of the storefront CLI.
type Storefront struct {
	APIBaseURL string
	CartDir    string
}

func LoadStorefront() Storefront {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	cartDir := getEnv("DESI_BEATS_CART_DIR", "")
	if cartDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cartDir = filepath.Join(dir, "desi-beats")
		} else {
			cartDir = ".desi-beats"
		}
	}
	return Storefront{
		APIBaseURL: strings.TrimRight(getEnv("DESI_BEATS_API", "http://localhost:8081"), "/"),
		CartDir:    cartDir,
	}
}

func MustInitPostgres() *sql.DB {
	connStr := "host=" + getEnv("DB_HOST", "localhost") +
		" port=" + getEnv("DB_PORT", "5432") +
		" user=" + os.Getenv("DB_USER") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + getEnv("DB_NAME", "desi_beats") + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + getEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func MustInitMongo(uri, database string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	return client.Database(database)
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
		Addr:                   kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
