package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pravoline/legal-site-api/internal/api"
	"github.com/pravoline/legal-site-api/internal/core/domain"
	"github.com/pravoline/legal-site-api/internal/core/ports"
	"github.com/pravoline/legal-site-api/internal/core/service"
	"github.com/pravoline/legal-site-api/internal/infrastructure/config"
	mongodb "github.com/pravoline/legal-site-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pravoline/legal-site-api/internal/infrastructure/db/redis"
	"github.com/pravoline/legal-site-api/internal/infrastructure/mailer"
	"github.com/pravoline/legal-site-api/internal/infrastructure/queue"
	"github.com/pravoline/legal-site-api/internal/infrastructure/storage"
	"github.com/pravoline/legal-site-api/internal/ratelimit"
	"github.com/pravoline/legal-site-api/internal/security"
	"github.com/pravoline/legal-site-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := seedAdmin(ctx, userRepo, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// --- Login limiter: Redis when configured, in-memory otherwise ---
	var limiter ports.LoginLimiter
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer client.Close()
		redisClient = client
		limiter = redisdb.NewLoginLimiter(client, cfg.LoginCooldown)
	} else {
		log.Info().Msg("redis not configured, using in-memory login limiter")
		limiter = ratelimit.NewMemoryLimiter(cfg.LoginCooldown)
	}

	// --- Mail + async lead notification ---
	mail := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	if !mail.Enabled() {
		log.Info().Msg("smtp not configured, lead notifications disabled")
	}
	notifier := queue.NewNotifier(userRepo, mail, log)
	notifier.Start(ctx)

	// --- Uploads ---
	fileStore, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload directory unavailable")
	}

	// --- Services ---
	codec := security.NewTokenCodec(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(userRepo, codec, limiter, log)
	userService := service.NewUserService(userRepo, log)
	leadService := service.NewLeadService(mongodb.NewLeadRepository(db), notifier, log)

	e := api.NewRouter(api.Deps{
		Logger:     log,
		SessionTTL: codec.TTL(),

		Auth:  authService,
		Users: userService,
		Leads: leadService,

		Services:   mongodb.NewServiceRepository(db),
		Advantages: mongodb.NewAdvantageRepository(db),
		Team:       mongodb.NewTeamRepository(db),
		Reviews:    mongodb.NewReviewRepository(db),
		Settings:   mongodb.NewSettingsRepository(db),

		Files:      fileStore,
		UploadsDir: cfg.UploadDir,

		Mongo: db,
		Redis: redisClient,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

// seedAdmin creates the default admin/admin credential when no users
// exist yet, so a fresh deployment is reachable through the dashboard.
// The password must be rotated after first login.
func seedAdmin(ctx context.Context, repo ports.UserRepository, log zerolog.Logger) error {
	users, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := security.HashPassword("admin")
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Notify:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}
	log.Warn().Msg("seeded default admin credential, change the password")
	return nil
}
