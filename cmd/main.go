package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-transactions/internal/facades"
	"github.com/sbilibin2017/gw-transactions/internal/handlers"
	"github.com/sbilibin2017/gw-transactions/internal/jwt"
	"github.com/sbilibin2017/gw-transactions/internal/logger"
	"github.com/sbilibin2017/gw-transactions/internal/middlewares"
	"github.com/sbilibin2017/gw-transactions/internal/repositories"
	"github.com/sbilibin2017/gw-transactions/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-transactions API
// @version 1.0.0
// @description Microservice for registering account movements and money transfers
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, ownerCacheExpSecond,
		kafkaBrokers, kafkaTopic,
		accountServiceURL, accountServiceTimeoutSecond,
		freeTransactionLimit, commissionFee, feeSource,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, ownerCacheExpSecond,
		kafkaBrokers, kafkaTopic,
		accountServiceURL, accountServiceTimeoutSecond,
		freeTransactionLimit, commissionFee, feeSource,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, account service, fee, logging,
// and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, ownerCacheExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	accountServiceURL string, accountServiceTimeoutSecond int,
	freeTransactionLimit int, commissionFee decimal.Decimal, feeSource string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "transactions")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if ownerCacheExpSecond, err = strconv.Atoi(getEnv("OWNER_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	kafkaTopic = getEnv("KAFKA_TOPIC", "transactions.movements")

	// Account service config
	accountServiceURL = getEnv("ACCOUNT_SERVICE_URL", "http://localhost:8081/api/v1")
	if accountServiceTimeoutSecond, err = strconv.Atoi(getEnv("ACCOUNT_SERVICE_TIMEOUT_SECOND", "5")); err != nil {
		return
	}

	// Fee config
	if freeTransactionLimit, err = strconv.Atoi(getEnv("TRANSACTION_FREE_LIMIT", "20")); err != nil {
		return
	}
	if commissionFee, err = decimal.NewFromString(getEnv("TRANSACTION_COMMISSION_FEE", "2.50")); err != nil {
		return
	}
	feeSource = getEnv("TRANSACTION_FEE_SOURCE", "local")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "60")); err != nil {
		return
	}

	return
}

// newRouter assembles the HTTP routes. Single-record writes share a
// per-request database transaction; the transfer route stays outside it,
// because the transfer's debit leg must be durably committed before the
// credit leg and the remote balance updates run. Sharing a transaction
// would roll the debit leg back on a late failure and leave the partial
// failure pointing at a record that no longer exists.
func newRouter(
	db *sqlx.DB,
	tokener middlewares.Tokener,
	swaggerURL string,
	depositHandler, withdrawalHandler, paymentHandler, consumptionHandler,
	transferHandler, thirdPartyHandler,
	movementsHandler, getTransactionHandler, listTransactionsHandler http.HandlerFunc,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	authMiddleware := middlewares.AuthMiddleware(tokener)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Group(func(r chi.Router) {
				r.Use(txMiddleware)

				r.Post("/transactions/deposit", depositHandler)
				r.Post("/transactions/withdrawal", withdrawalHandler)
				r.Post("/transactions/payment", paymentHandler)
				r.Post("/transactions/consumption", consumptionHandler)
				r.Post("/transactions/third-party", thirdPartyHandler)
			})

			r.Post("/transactions/transfer", transferHandler)

			r.Get("/transactions/{id}", getTransactionHandler)
			r.Get("/accounts/{accountId}/transactions", listTransactionsHandler)
			r.Get("/accounts/{accountId}/movements", movementsHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))
	return r
}

// run initializes the logger, database, Redis, Kafka, the account service
// client, and the HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, ownerCacheExpSecond int,
	kafkaBrokers []string, kafkaTopic string,
	accountServiceURL string, accountServiceTimeoutSecond int,
	freeTransactionLimit int, commissionFee decimal.Decimal, feeSource string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for movement events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Account service client
	accountClient := &http.Client{Timeout: time.Duration(accountServiceTimeoutSecond) * time.Second}
	accountFacade := facades.NewAccountHTTPFacade(accountServiceURL, accountClient)

	// Initialize JWT service
	jwtService := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	writeRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	readRepo := repositories.NewTransactionReadRepository(db)
	ownerCache := repositories.NewAccountOwnerCacheRepository(rdb, time.Duration(ownerCacheExpSecond)*time.Second)

	// Initialize services
	feeConfig := services.FeeConfig{
		FreeTransactionLimit: freeTransactionLimit,
		CommissionFee:        commissionFee,
	}
	transactionService := services.NewTransactionService(
		writeRepo, readRepo, accountFacade, ownerCache, kafkaWriter,
		feeConfig, feeSource == "remote",
	)

	// Initialize handlers
	depositHandler := handlers.NewDepositHandler(transactionService)
	withdrawalHandler := handlers.NewWithdrawalHandler(transactionService)
	paymentHandler := handlers.NewPaymentHandler(transactionService)
	consumptionHandler := handlers.NewConsumptionHandler(transactionService)
	transferHandler := handlers.NewTransferHandler(transactionService)
	thirdPartyHandler := handlers.NewThirdPartyHandler(transactionService)
	movementsHandler := handlers.NewMovementsHandler(transactionService)
	getTransactionHandler := handlers.NewGetTransactionHandler(transactionService)
	listTransactionsHandler := handlers.NewListTransactionsHandler(transactionService)

	// Setup router
	r := newRouter(db, jwtService,
		fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort),
		depositHandler, withdrawalHandler, paymentHandler, consumptionHandler,
		transferHandler, thirdPartyHandler,
		movementsHandler, getTransactionHandler, listTransactionsHandler,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
