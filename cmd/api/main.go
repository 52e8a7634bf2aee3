package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	s3store "credit-simplicity-backend/internal/adapter/blobstore/s3"
	httpadp "credit-simplicity-backend/internal/adapter/http"
	"credit-simplicity-backend/internal/adapter/identity/gotrue"
	"credit-simplicity-backend/internal/adapter/mailer/resend"
	appmw "credit-simplicity-backend/internal/adapter/middleware"
	"credit-simplicity-backend/internal/adapter/repository/postgres"
	"credit-simplicity-backend/internal/config"
	"credit-simplicity-backend/internal/domain/identity"
	"credit-simplicity-backend/internal/domain/mail"
	"credit-simplicity-backend/internal/infrastructure/cache"
	"credit-simplicity-backend/internal/infrastructure/db"
	"credit-simplicity-backend/internal/usecase/intake"
	"credit-simplicity-backend/internal/usecase/portal"
	"credit-simplicity-backend/internal/usecase/upload"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	demo := cfg.DemoMode()
	if demo {
		log.Println("no backend credentials configured, running in demo mode")
	}

	var (
		ids       identity.Store
		borrowers *postgres.BorrowerRepository
		loans     *postgres.LoanRepository
		documents *postgres.DocumentRepository
		meetings  *postgres.MeetingRepository
		messages  *postgres.MessageRepository
		blobs     *s3store.Storage
	)
	if !demo {
		gdb, err := db.OpenGorm(cfg.DatabaseDSN)
		if err != nil {
			log.Fatal(err)
		}
		if err := db.AutoMigrate(gdb); err != nil {
			log.Fatal(err)
		}
		borrowers = postgres.NewBorrowerRepository(gdb)
		loans = postgres.NewLoanRepository(gdb)
		documents = postgres.NewDocumentRepository(gdb)
		meetings = postgres.NewMeetingRepository(gdb)
		messages = postgres.NewMessageRepository(gdb)

		ids = gotrue.New(cfg.SupabaseURL, cfg.SupabaseServiceKey)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		blobs, err = s3store.New(ctx, s3store.Config{
			Endpoint:  cfg.StorageEndpoint,
			Region:    cfg.StorageRegion,
			AccessKey: cfg.StorageAccessKey,
			SecretKey: cfg.StorageSecretKey,
			Bucket:    cfg.StorageBucket,
		})
		cancel()
		if err != nil {
			log.Fatal(err)
		}
	}

	var mailer mail.Mailer
	if cfg.EmailEnabled() {
		mailer = resend.New(cfg.ResendAPIKey)
	}

	intakeUC := intake.NewUsecase(ids, borrowers, loans, documents, messages, mailer, cfg.SetupURL(), demo)
	portalUC := portal.NewUsecase(borrowers, loans, documents, meetings, messages, demo)
	uploadUC := upload.NewUsecase(blobs, documents, demo)

	h := httpadp.NewHandler(demo)
	intakeH := httpadp.NewIntakeHandler(intakeUC)
	portalH := httpadp.NewPortalHandler(portalUC, ids, demo)
	uploadH := httpadp.NewUploadHandler(uploadUC)
	emailH := httpadp.NewEmailHandler(mailer)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	// routes
	e.GET("/health", h.Health)
	e.POST("/api/apply", intakeH.Apply)
	e.POST("/api/email", emailH.Send)
	e.GET("/api/portal", portalH.Snapshot)
	e.POST("/api/portal/loans/:loan_id/documents/:document_id", uploadH.Upload)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
