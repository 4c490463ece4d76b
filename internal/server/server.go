package server

import (
	"context"
	"os"
	"strings"
	"time"

	"facturo-api/internal/client/http"
	"facturo-api/internal/client/storecove"
	"facturo-api/internal/config"
	"facturo-api/internal/db"
	"facturo-api/internal/handlers"
	"facturo-api/internal/logger"
	"facturo-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Handler definitions
var (
	invoiceHandler *handlers.InvoiceHandler
	emailHandler   *handlers.EmailHandler

	dbQueries *db.Queries
)

// InitializeHandlers wires the full pipeline from configuration: database
// pool, Storecove client, Resend client, services, handlers.
func InitializeHandlers(cfg *config.Config) {
	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries = db.New(connPool)

	registry := storecove.NewClient(cfg.StorecoveAPIKey, cfg.StorecoveBaseURL, cfg.ExternalCallTimeout)
	resendClient := resend.NewClient(cfg.ResendAPIKey)

	// Plain fetcher for PDF/terms attachments; no base URL, no bearer.
	fetcher := http.NewClient(http.WithTimeout(cfg.ExternalCallTimeout))

	taxService := services.NewTaxService(cfg.DefaultTaxCountry, logger.Log)
	legalEntityService := services.NewLegalEntityService(registry, dbQueries, logger.Log)
	submissionService := services.NewSubmissionService(registry, cfg.DefaultTaxCountry, logger.Log)
	notificationService := services.NewNotificationService(
		resendClient.Emails,
		fetcher,
		cfg.FromEmail,
		cfg.FromName,
		cfg.AccountingCopyEmail,
		cfg.MaxAttachmentBytes,
		logger.Log,
	)
	invoiceService := services.NewInvoiceService(
		taxService,
		legalEntityService,
		submissionService,
		notificationService,
		dbQueries,
		logger.Log,
	)

	invoiceHandler = handlers.NewInvoiceHandler(invoiceService)
	emailHandler = handlers.NewEmailHandler(notificationService)
}

// InitializeRoutes attaches middleware and routes to the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	router.GET("/health", handlers.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/invoices/send", invoiceHandler.SendInvoice)
		v1.POST("/emails/invoice", emailHandler.SendInvoiceEmail)
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
