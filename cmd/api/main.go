package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/benecare/member-portal/internal/infra/database"
	"github.com/benecare/member-portal/internal/infra/http/handlers"
	custommw "github.com/benecare/member-portal/internal/infra/http/middleware"
	"github.com/benecare/member-portal/internal/infra/mail"
	"github.com/benecare/member-portal/internal/infra/queue"
	"github.com/benecare/member-portal/internal/infra/report"
	"github.com/benecare/member-portal/internal/pin"
	"github.com/benecare/member-portal/internal/usecase"
)

func main() {
	godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	memberRepo := database.NewMemberRepository(db)
	dependentRepo := database.NewDependentRepository(db)
	accountRepo := database.NewAccountRepository(db)
	statsRepo := database.NewStatsRepository(db)

	// Optional welcome-mail pipeline: broker and SMTP both come up only
	// when configured, the portal works fine without them.
	var producer usecase.QueueProducerInterface
	var rabbitConn *amqp.Connection
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err := queue.NewRabbitMQ(url)
		if err != nil {
			logger.Fatal("rabbitmq connection failed", zap.Error(err))
		}
		defer rabbitMQ.Close()
		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Ch)

		var sender queue.WelcomeSender
		if host := os.Getenv("SMTP_HOST"); host != "" {
			sender = mail.NewEmailSender(
				host, 587,
				os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"),
				os.Getenv("SMTP_FROM"),
			)
		}
		worker := queue.NewWorker(rabbitMQ.Ch, sender, logger)
		go func() {
			if err := worker.Start(queue.QueueName); err != nil {
				logger.Error("welcome worker stopped", zap.Error(err))
			}
		}()
	}

	// UseCases
	allocator := pin.NewAllocator(memberRepo)
	registerUC := usecase.NewRegisterMemberUseCase(memberRepo, allocator, producer, logger)
	createAccountUC := usecase.NewCreateAccountUseCase(memberRepo, accountRepo)
	authenticateUC := usecase.NewAuthenticateUseCase(memberRepo, accountRepo)
	changePasswordUC := usecase.NewChangePasswordUseCase(accountRepo)
	deleteAccountUC := usecase.NewDeleteAccountUseCase(memberRepo)
	replaceDependentsUC := usecase.NewReplaceDependentsUseCase(dependentRepo)

	// Handlers
	registerHandler := handlers.NewRegisterHandler(registerUC)
	authHandler := handlers.NewAuthHandler(authenticateUC)
	accountHandler := handlers.NewAccountHandler(createAccountUC, changePasswordUC, deleteAccountUC, accountRepo)
	memberHandler := handlers.NewMemberHandler(memberRepo, dependentRepo)
	dependentHandler := handlers.NewDependentHandler(replaceDependentsUC, dependentRepo, memberRepo)
	adminHandler := handlers.NewAdminHandler(db, memberRepo, dependentRepo, accountRepo, statsRepo)
	reportHandler := handlers.NewReportHandler(report.NewExporter(), memberRepo, dependentRepo, statsRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// Router
	r := chi.NewRouter()
	r.Use(custommw.RequestLogger(logger))
	r.Use(custommw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Accept"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/register", registerHandler.Handle)
	r.Post("/login", authHandler.HandleLogin)
	r.Post("/create-account", accountHandler.HandleCreate)

	r.Route("/api", func(r chi.Router) {
		r.Get("/check-pin", memberHandler.HandleCheckPIN)
		r.Get("/check-account", accountHandler.HandleCheck)
		r.Get("/member-info", memberHandler.HandleInfo)
		r.Get("/user-profile", accountHandler.HandleProfile)
		r.Post("/change-password", accountHandler.HandleChangePassword)
		r.Post("/delete-account", accountHandler.HandleDelete)
		r.Post("/update-member-contact", memberHandler.HandleUpdateContact)
		r.Post("/update-dependents", dependentHandler.HandleReplace)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/dashboard/stats", adminHandler.HandleDashboardStats)
			r.Get("/dashboard/activities", adminHandler.HandleActivities)
			r.Get("/system-status", adminHandler.HandleSystemStatus)
			r.Post("/generate-report", reportHandler.HandleProgramReport)

			r.Get("/members/search", adminHandler.HandleSearchMembers)
			r.Get("/members/{pin}", adminHandler.HandleGetMember)
			r.Put("/members/{pin}", adminHandler.HandleUpdateMember)
			r.Get("/members/{pin}/report", reportHandler.HandleMemberReport)

			r.Get("/dependents/search", dependentHandler.HandleSearch)
			r.Get("/dependents/{id}", dependentHandler.HandleGet)
			r.Put("/dependents/{id}", dependentHandler.HandleUpdate)
			r.Get("/dependents/{id}/report", reportHandler.HandleDependentReport)
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{Addr: ":" + port, Handler: r}

	go func() {
		logger.Info("server listening", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown: stop accepting, drain in-flight requests, then
	// let the deferred closes tear down the pool and the broker.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
