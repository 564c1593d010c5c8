package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
)

// Хранилища каталога
const (
	BackendPostgres = "postgres"
	BackendBolt     = "bolt"
)

// Драйверы объектного хранилища
const (
	StorageMinio      = "minio"
	StorageCloudinary = "cloudinary"
)

type Config struct {
	App     *AppCfg
	Http    *HTTPConfig
	Db      *PGDBCfg
	Bolt    *BoltCfg
	Redis   *RedisCfg
	Storage *StorageCfg
	Minio   *MinIOCfg
	Kafka   *KafkaCfg
	Auth    *AuthCfg
}

type AppCfg struct {
	Env           string
	Backend       string // postgres | bolt
	AdminEmail    string // учетная запись, создаваемая при старте
	AdminPassword string
}

type BoltCfg struct {
	Path    string
	Timeout time.Duration
}

type KafkaCfg struct {
	Enabled           bool
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

type StorageCfg struct {
	Driver        string // minio | cloudinary
	BucketName    string // бакет (или папка Cloudinary) для изображений каталога
	PublicBaseURL string // базовый публичный URL, к которому добавляется {bucket}/{key}
	MaxUploadSize int64  // максимальный размер загружаемого файла в байтах
	CloudinaryURL string
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	MinioRootUser     string // Имя пользователя для доступа к Minio
	MinioRootPassword string // Пароль для доступа к Minio
	MinioUseSSL       bool
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	SwaggerURL     string
}

type PGDBCfg struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MaxConns       int32
	ConnectTimeout time.Duration
	MigrationsURL  string // источник golang-migrate, например file://db/migrations
}

type RedisCfg struct {
	Enabled     bool
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	ProductTTL  time.Duration
	CategoryTTL time.Duration
}

type AuthCfg struct {
	JWTSecret  string
	Issuer     string
	TokenTTL   time.Duration
	BcryptCost int
}

// LoggerOptions читает настройки логгера. Вызывается до Load, так как
// Load уже пишет в лог.
func LoggerOptions() logger.Options {
	loadDotEnv()
	return logger.Options{
		Level:      getEnvOrDefault("LOG_LEVEL", "info"),
		Production: getEnv("APP_ENV") == "production",
		File:       getEnv("LOG_FILE"),
	}
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	loadDotEnv()

	app, err := loadAppCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var db *PGDBCfg
	if app.Backend == BackendPostgres {
		db, err = loadPGDBCfg(log)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	bolt, err := loadBoltCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storage, err := loadStorageCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	auth, err := loadAuthCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		App:     app,
		Http:    http,
		Db:      db,
		Bolt:    bolt,
		Redis:   redis,
		Storage: storage,
		Minio:   minio,
		Kafka:   kafka,
		Auth:    auth,
	}, nil
}

// loadDotEnv подгружает .env, если он есть. Уже заданные переменные не перезаписываются.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
	}
}

func loadAppCfg(log logger.Logger) (*AppCfg, error) {
	backend := strings.ToLower(getEnvOrDefault("CATALOG_BACKEND", BackendPostgres))
	if backend != BackendPostgres && backend != BackendBolt {
		err := e.Wrap(backend, e.ErrUnknownBackend)
		log.Errorf(err, "invalid CATALOG_BACKEND")
		return nil, err
	}

	return &AppCfg{
		Env:           getEnvOrDefault("APP_ENV", "development"),
		Backend:       backend,
		AdminEmail:    getEnv("ADMIN_EMAIL"),
		AdminPassword: getEnv("ADMIN_PASSWORD"),
	}, nil
}

func loadBoltCfg(log logger.Logger) (*BoltCfg, error) {
	const (
		defaultPath    = "data/catalog.db"
		defaultTimeout = time.Second
	)

	timeout, err := parseDurationEnv("BOLT_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid BOLT_TIMEOUT")
		return nil, err
	}

	return &BoltCfg{
		Path:    getEnvOrDefault("BOLT_PATH", defaultPath),
		Timeout: timeout,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
		defaultTopic             = "catalog-events"
	)

	brokerStr := getEnv("KAFKA_BROKERS")
	if brokerStr == "" {
		return &KafkaCfg{Enabled: false}, nil
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Enabled:           true,
		Brokers:           strings.Split(brokerStr, ","),
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadStorageCfg(log logger.Logger) (*StorageCfg, error) {
	const (
		defaultBucket        = "catalog-images"
		defaultMaxUploadSize = 5 << 20
		defaultPublicBaseURL = "http://localhost:9000"
	)

	driver := strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", StorageMinio))
	if driver != StorageMinio && driver != StorageCloudinary {
		err := fmt.Errorf("unknown STORAGE_DRIVER %q", driver)
		log.Errorf(err, "invalid STORAGE_DRIVER")
		return nil, err
	}

	maxSize, err := parseIntEnv("MAX_UPLOAD_SIZE", defaultMaxUploadSize)
	if err != nil {
		log.Errorf(err, "invalid MAX_UPLOAD_SIZE")
		return nil, err
	}

	cloudinaryURL := getEnv("CLOUDINARY_URL")
	if driver == StorageCloudinary && cloudinaryURL == "" {
		err := fmt.Errorf("CLOUDINARY_URL is required for cloudinary storage")
		log.Errorf(err, "missing CLOUDINARY_URL")
		return nil, err
	}

	return &StorageCfg{
		Driver:        driver,
		BucketName:    getEnvOrDefault("BUCKET_NAME", defaultBucket),
		PublicBaseURL: strings.TrimRight(getEnvOrDefault("STORAGE_PUBLIC_URL", defaultPublicBaseURL), "/"),
		MaxUploadSize: int64(maxSize),
		CloudinaryURL: cloudinaryURL,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL   = false
		defaultEndpoint = "minio:9000"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 15 * time.Second
		defaultWriteTimeout = 60 * time.Second
		defaultIdleTimeout  = 60 * time.Second
		defaultOrigins      = "http://localhost:3000"
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:           port,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultOrigins)),
		SwaggerURL:     getEnvOrDefault("SWAGGER_URL", "http://localhost:"+port+"/swagger/doc.json"),
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost           = "localhost"
		defaultPort           = "5432"
		defaultSSLMode        = "disable"
		defaultMaxConns       = 10
		defaultConnectTimeout = 5 * time.Second
		defaultMigrationsURL  = "file://db/migrations"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	maxConns, err := parseIntEnv("POSTGRES_MAX_CONNS", defaultMaxConns)
	if err != nil || maxConns <= 0 {
		err = e.Wrap("POSTGRES_MAX_CONNS", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid POSTGRES_MAX_CONNS")
		return nil, err
	}

	connectTimeout, err := parseDurationEnv("POSTGRES_CONNECT_TIMEOUT", defaultConnectTimeout)
	if err != nil {
		log.Errorf(err, "invalid POSTGRES_CONNECT_TIMEOUT")
		return nil, err
	}

	return &PGDBCfg{
		Host:           getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:           getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:           user,
		Password:       password,
		DBName:         dbName,
		SSLMode:        getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MaxConns:       int32(maxConns),
		ConnectTimeout: connectTimeout,
		MigrationsURL:  getEnvOrDefault("MIGRATIONS_URL", defaultMigrationsURL),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultProductTTL   = 3 * time.Minute
		defaultCategoryTTL  = 10 * time.Minute
	)

	addr := getEnv("REDIS_ADDR")

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	productTTL, err := parseDurationEnv("PRODUCT_TTL", defaultProductTTL)
	if err != nil {
		log.Errorf(err, "invalid PRODUCT_TTL")
		return nil, err
	}

	categoryTTL, err := parseDurationEnv("CATEGORY_TTL", defaultCategoryTTL)
	if err != nil {
		log.Errorf(err, "invalid CATEGORY_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Enabled:     addr != "",
		Addr:        addr,
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		ProductTTL:  productTTL,
		CategoryTTL: categoryTTL,
	}, nil
}

func loadAuthCfg(log logger.Logger) (*AuthCfg, error) {
	const (
		defaultIssuer     = "bsb-catalog"
		defaultTokenTTL   = 12 * time.Hour
		defaultBcryptCost = 12
	)

	secret := getEnv("JWT_SECRET")
	if secret == "" {
		err := fmt.Errorf("JWT_SECRET is required")
		log.Errorf(err, "missing JWT_SECRET")
		return nil, err
	}

	ttl, err := parseDurationEnv("JWT_TTL", defaultTokenTTL)
	if err != nil {
		log.Errorf(err, "invalid JWT_TTL")
		return nil, err
	}

	cost, err := parseIntEnv("BCRYPT_COST", defaultBcryptCost)
	if err != nil {
		log.Errorf(err, "invalid BCRYPT_COST")
		return nil, err
	}

	return &AuthCfg{
		JWTSecret:  secret,
		Issuer:     getEnvOrDefault("JWT_ISSUER", defaultIssuer),
		TokenTTL:   ttl,
		BcryptCost: cost,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.Wrap(key, e.ErrIncorrectEnvVariable)
	}

	return intValue, nil
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
