package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"github.com/yzx9/aim-server/internal/auth"
	"github.com/yzx9/aim-server/internal/handlers"
	"github.com/yzx9/aim-server/internal/idgen"
	appmiddleware "github.com/yzx9/aim-server/internal/middleware"
	"github.com/yzx9/aim-server/internal/repository"
	"github.com/yzx9/aim-server/internal/services"
	"github.com/yzx9/aim-server/internal/storage"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
	minioUseSSL         = false // Для локальной разработки
)

// newPostgresDB вынесена в переменную для подмены в тестах.
var newPostgresDB = repository.NewPostgresDB

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db          *sqlx.DB
	fileStorage storage.FileStorage
	authService services.AuthService

	sessionHandler *handlers.SessionHandler
	orgHandler     *handlers.OrganizationHandler
	projectHandler *handlers.ProjectHandler
	itemHandler    *handlers.ItemHandler
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера aim...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Настройка роутера
	r := setupRouter(deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)

	if err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска HTTPS-сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	// 1. Подключение к БД
	deps.db, err = newPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}

	// 2. Инициализация клиента MinIO
	deps.fileStorage, err = storage.NewMinioClient(storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioUser,
		SecretAccessKey: cfg.MinioPassword,
		UseSSL:          minioUseSSL,
		BucketName:      cfg.MinioBucket,
	})
	if err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке MinIO: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 3. Конфигурация аутентификации и генератор идентификаторов
	jwtSecret, err := auth.LoadSecretFromFile(cfg.JWTSecretFile)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки секрета для токенов: %w", err)
	}
	authConfig := auth.NewConfig(jwtSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	idGen, err := idgen.NewSnowflakeGenerator(cfg.MachineID)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации генератора идентификаторов: %w", err)
	}

	// 4. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(deps.db)
	orgRepo := repository.NewPostgresOrganizationRepository(deps.db)
	projectRepo := repository.NewPostgresProjectRepository(deps.db)
	itemRepo := repository.NewPostgresItemRepository(deps.db)

	// 5. Создание сервисов
	deps.authService = services.NewAuthService(userRepo, authConfig, idGen)
	orgService := services.NewOrganizationService(orgRepo, idGen)
	projectService := services.NewProjectService(projectRepo, orgRepo, idGen)
	itemService := services.NewItemService(itemRepo, projectRepo, deps.fileStorage, idGen)

	// 6. Создание обработчиков
	deps.sessionHandler = handlers.NewSessionHandler(deps.authService)
	deps.orgHandler = handlers.NewOrganizationHandler(orgService)
	deps.projectHandler = handlers.NewProjectHandler(projectService)
	deps.itemHandler = handlers.NewItemHandler(itemService)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/api", func(r chi.Router) {
		// Публичные маршруты: регистрация и операции над собственной сессией.
		// PUT и DELETE сами проверяют предъявленный токен.
		r.Post("/register", deps.sessionHandler.Register)
		r.Post("/session", deps.sessionHandler.Create)
		r.Put("/session", deps.sessionHandler.Refresh)
		r.Delete("/session", deps.sessionHandler.Delete)

		// GET /api/session отдает данные текущей сессии,
		// поэтому получает из middleware сессию целиком.
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Authenticator(deps.authService, appmiddleware.IdentitySession))
			r.Get("/session", deps.sessionHandler.Get)
		})

		// Приватные маршруты (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Authenticator(deps.authService, appmiddleware.IdentityPayload))

			r.Route("/organizations", func(r chi.Router) {
				r.Post("/", deps.orgHandler.Create)
				r.Get("/", deps.orgHandler.List)
				r.Get("/{id}", deps.orgHandler.Get)
				r.Post("/{orgID}/projects", deps.projectHandler.Create)
				r.Get("/{orgID}/projects", deps.projectHandler.ListByOrganization)
			})

			r.Route("/projects/{id}", func(r chi.Router) {
				r.Get("/", deps.projectHandler.Get)
				r.Post("/fields", deps.projectHandler.AddField)
				r.Get("/fields", deps.projectHandler.ListFields)
				r.Delete("/fields/{fieldID}", deps.projectHandler.RemoveField)
				r.Post("/items", deps.itemHandler.Create)
				r.Get("/items", deps.itemHandler.List)
			})

			r.Route("/items/{id}", func(r chi.Router) {
				r.Get("/", deps.itemHandler.Get)
				r.Delete("/", deps.itemHandler.Delete)
				r.Post("/attachments", deps.itemHandler.UploadAttachment)
				r.Get("/attachments", deps.itemHandler.ListAttachments)
				r.Get("/attachments/{filename}", deps.itemHandler.DownloadAttachment)
			})
		})
	})
	return r
}
