package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/codeward/backend/internal/handler"
	"github.com/codeward/backend/internal/logging"
	"github.com/codeward/backend/internal/ratelimit"
	"github.com/codeward/backend/internal/repository"
	"github.com/codeward/backend/internal/service"
	"github.com/codeward/backend/internal/storage"
	"github.com/codeward/backend/pkg/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "dev-secret-change-in-production-32bytes"
	}
	sessionSecretBytes := auth.SessionSecretBytes(sessionSecret)
	authRequired := os.Getenv("AUTH_REQUIRED") == "true"

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	// DATABASE_URL 未設定ならデモモード（送信はシミュレート、管理画面なし）
	var pool *pgxpool.Pool
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		p, err := repository.NewPool(context.Background(), dbURL)
		if err != nil {
			logging.Fatal("failed to connect to database", "error", err)
		}
		defer p.Close()
		pool = p
	} else {
		slog.Warn("DATABASE_URL not set; running in demo mode, submissions are simulated")
	}

	window := 60 * time.Second
	if s := os.Getenv("RATE_LIMIT_WINDOW_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			window = time.Duration(n) * time.Second
		}
	}

	// REDIS_URL があれば分散クールダウン、なければプロセス内クールダウン
	var limiter ratelimit.Limiter
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			logging.Fatal("invalid REDIS_URL", "error", err)
		}
		limiter = ratelimit.NewRedisLimiter(redis.NewClient(opts), window)
		slog.Info("using redis cooldown limiter", "window", window)
	} else {
		limiter = ratelimit.NewMemoryLimiter(window)
		slog.Info("using in-memory cooldown limiter", "window", window)
	}

	store := storage.NewLocalStorage(uploadDir, "/uploads")

	var (
		contactRepo     repository.ContactRepository
		applicationRepo repository.ApplicationRepository
	)
	if pool != nil {
		contactRepo = repository.NewPgContactRepository(pool)
		applicationRepo = repository.NewPgApplicationRepository(pool)
	}

	contactService := service.NewContactService(contactRepo, limiter)
	applicationService := service.NewApplicationService(applicationRepo, store, limiter)

	var db handler.DB
	if pool != nil {
		db = pool
	}
	h := handler.New(db, frontendURL)
	contactHandler := handler.NewContactHandler(contactService)
	careerHandler := handler.NewCareerHandler(applicationService)

	mux := http.NewServeMux()

	// 公開 API（認証不要）
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("POST /api/careers/apply", careerHandler.Submit)

	if pool == nil {
		// デモモードでは求人一覧は空で返す
		mux.HandleFunc("GET /api/jobs", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"jobs":[]}`))
		})
	} else {
		userRepo := repository.NewPgUserRepository(pool)
		jobRepo := repository.NewPgJobRepository(pool)
		authService := service.NewAuthService(userRepo)
		adminUserService := service.NewAdminUserService(userRepo)
		jobService := service.NewJobService(jobRepo)

		authHandler := handler.NewAuthHandler(authService, userRepo, sessionSecretBytes)
		adminUserHandler := handler.NewAdminUserHandler(adminUserService, authService)
		jobHandler := handler.NewJobHandler(jobService)

		mux.HandleFunc("GET /api/jobs", jobHandler.PublicList)
		mux.HandleFunc("POST /api/auth/login", authHandler.Login)
		mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

		wrapAuth := func(next http.Handler) http.Handler {
			if authRequired {
				return auth.RequireAuth(sessionSecretBytes)(next)
			}
			return auth.DevAuth(next)
		}
		staff := func(next http.HandlerFunc) http.Handler {
			return wrapAuth(handler.RequireStaff(userRepo)(next))
		}
		admin := func(next http.HandlerFunc) http.Handler {
			return wrapAuth(handler.RequireAdmin(userRepo)(next))
		}

		mux.Handle("GET /api/me", wrapAuth(http.HandlerFunc(authHandler.Me)))

		// 問い合わせ管理
		mux.Handle("GET /api/admin/contacts", staff(contactHandler.AdminList))
		mux.Handle("PATCH /api/admin/contacts/{id}/status", staff(contactHandler.UpdateStatus))
		mux.Handle("POST /api/admin/contacts/{id}/reply", staff(contactHandler.Reply))
		mux.Handle("DELETE /api/admin/contacts/{id}", staff(contactHandler.Delete))

		// 応募管理
		mux.Handle("GET /api/admin/applications", staff(careerHandler.AdminList))
		mux.Handle("PATCH /api/admin/applications/{id}/status", staff(careerHandler.UpdateStatus))
		mux.Handle("DELETE /api/admin/applications/{id}", staff(careerHandler.Delete))

		// 求人管理
		mux.Handle("GET /api/admin/jobs", staff(jobHandler.AdminList))
		mux.Handle("GET /api/admin/jobs/{id}", staff(jobHandler.Get))
		mux.Handle("POST /api/admin/jobs", staff(jobHandler.Create))
		mux.Handle("PUT /api/admin/jobs/{id}", staff(jobHandler.Update))
		mux.Handle("PATCH /api/admin/jobs/{id}/status", staff(jobHandler.PatchStatus))
		mux.Handle("DELETE /api/admin/jobs/{id}", staff(jobHandler.Delete))

		// チームアカウント管理（admin のみ）
		mux.Handle("GET /api/admin/users", admin(adminUserHandler.List))
		mux.Handle("POST /api/admin/users", admin(adminUserHandler.Create))
		mux.Handle("PATCH /api/admin/users/{id}/status", admin(adminUserHandler.PatchStatus))

		// アップロード済み履歴書（スタッフのみ閲覧可）
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
		mux.Handle("GET /uploads/", wrapAuth(handler.RequireStaff(userRepo)(fileServer)))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "demo_mode", pool == nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
