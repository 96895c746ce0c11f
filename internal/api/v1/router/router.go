package router

import (
	"context"
	"net/http"

	"portfolio/internal/api/v1/handler"
	"portfolio/internal/config"
	"portfolio/internal/middleware"
	"portfolio/internal/repository"
	"portfolio/internal/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awsmiddleware "github.com/aws/smithy-go/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, error) {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initialized")

	// 1. Initialize the in-memory store, seeded with the project gallery
	store := repository.NewMemStore()

	// 2. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 3. Initialize external collaborators. Each one is optional: an unset
	// key leaves the service nil and its routes answer 503.
	var paymentSvc service.PaymentService
	if cfg.StripeSecretKey != "" {
		paymentSvc = service.NewStripePaymentService(cfg.StripeSecretKey, cfg.StripeWebhookSecret, store, logger)
	} else {
		logger.Warn().Msg("STRIPE_SECRET_KEY not set, payment routes disabled")
	}

	var emailSender service.EmailSender
	if cfg.SendGridAPIKey != "" && cfg.ContactToEmail != "" {
		emailSender = service.NewSendGridSender(cfg.SendGridAPIKey, cfg.ContactFromEmail, cfg.ContactToEmail, logger)
	} else {
		logger.Warn().Msg("SendGrid not configured, contact notifications disabled")
	}

	var objectSvc service.ObjectStorageService
	if cfg.S3URL != "" && cfg.S3Bucket != "" {
		s3Config, err := awsconfig.LoadDefaultConfig(context.TODO(),
			awsconfig.WithRegion(cfg.S3Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
			awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
		)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to load S3 config")
			return nil, err
		}
		s3Client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3URL)
			o.UsePathStyle = true
		})
		objectSvc = service.NewObjectStorageService(s3Client, cfg.S3Bucket, logger)
	} else {
		logger.Warn().Msg("Object storage not configured, object routes disabled")
	}

	authSvc := service.NewAuthService(store, cfg.JWTSecret, logger)

	// 4. Initialize handlers
	projectHandler := handler.NewProjectHandler(store, validate, logger)
	aboutHandler := handler.NewAboutHandler(store, validate, logger)
	reviewHandler := handler.NewReviewHandler(store, validate, logger)
	contactHandler := handler.NewContactHandler(store, emailSender, validate, logger)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, validate, logger)
	authHandler := handler.NewAuthHandler(authSvc, validate, logger)
	objectHandler := handler.NewObjectHandler(objectSvc, store, validate, logger)

	// 5. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret, logger)

	// 6. Create ServeMux router: API routes under /api, object downloads at
	// the root
	mux := http.NewServeMux()
	apiMux := http.NewServeMux()

	projectHandler.RegisterRoutes(apiMux, authMiddleware)
	aboutHandler.RegisterRoutes(apiMux)
	reviewHandler.RegisterRoutes(apiMux)
	contactHandler.RegisterRoutes(apiMux, authMiddleware)
	paymentHandler.RegisterRoutes(apiMux)
	authHandler.RegisterRoutes(apiMux)
	objectHandler.RegisterRoutes(apiMux)

	mux.Handle("/api/", http.StripPrefix("/api", apiMux))
	objectHandler.RegisterRootRoutes(mux)

	// 7. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.LoggerMiddleware(logger)(c.Handler(mux)), nil
}

// removeDisableGzip is a workaround for S3 signature errors with some
// S3-compatible services.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		// Only remove the middleware if it exists; presign operations may
		// inspect the stack without it.
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
