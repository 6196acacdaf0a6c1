// Package services содержит бизнес-логику сервера: каталог сессий
// и операции над организациями, проектами и элементами.
package services

import (
	"context"
	"errors"
	"log"

	"github.com/yzx9/aim-server/internal/auth"
	"github.com/yzx9/aim-server/internal/idgen"
	"github.com/yzx9/aim-server/internal/models"
	"github.com/yzx9/aim-server/internal/repository"
)

// Кастомные ошибки сервиса аутентификации.
var (
	// ErrInvalidCredentials возвращается и для несуществующего пользователя,
	// и для неверного пароля, чтобы не раскрывать, какие id заняты.
	ErrInvalidCredentials = errors.New("неверный идентификатор пользователя или пароль")
	ErrInvalidToken       = errors.New("недействительный токен")
	ErrInternal           = errors.New("внутренняя ошибка сервера")
)

// AuthService определяет интерфейс каталога сессий: регистрация,
// вход по паролю или токену, обновление и завершение сессий.
type AuthService interface {
	Register(ctx context.Context, name, password string) (*models.User, error)
	LoginByPassword(ctx context.Context, userID int64, password string) (*auth.Session, error)
	LoginByAccessToken(accessToken string) (*auth.Session, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*auth.Session, error)
	Logout(accessToken string) error
	UpdatePassword(ctx context.Context, userID int64, password string) error
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo repository.UserRepository
	cfg      *auth.Config
	idGen    idgen.Generator
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(userRepo repository.UserRepository, cfg *auth.Config, idGen idgen.Generator) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg, idGen: idGen}
}

// Register регистрирует нового пользователя и возвращает его.
func (s *authService) Register(ctx context.Context, name, password string) (*models.User, error) {
	id, err := s.idGen.Generate()
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации идентификатора пользователя: %v", err)
		return nil, ErrInternal
	}

	passwordType, passwordHash, err := auth.HashPassword(password)
	if err != nil {
		log.Printf("[AuthService] Ошибка хеширования пароля: %v", err)
		return nil, ErrInternal
	}

	user := &models.User{
		ID:           id,
		Name:         name,
		PasswordType: passwordType,
		PasswordHash: passwordHash,
	}

	if err = s.userRepo.Create(ctx, user); err != nil {
		log.Printf("[AuthService] Ошибка репозитория при регистрации '%s': %v", name, err)
		return nil, ErrInternal
	}

	log.Printf("[AuthService] Пользователь '%s' (id=%d) успешно зарегистрирован", name, id)
	return user, nil
}

// LoginByPassword аутентифицирует пользователя по паре id/пароль.
// При совпадении пароля, захешированного устаревшим способом, хеш
// прозрачно обновляется до актуального формата.
func (s *authService) LoginByPassword(ctx context.Context, userID int64, password string) (*auth.Session, error) {
	user, err := s.userRepo.Find(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] Попытка входа несуществующего пользователя: %d", userID)
			return nil, ErrInvalidCredentials // Общая ошибка для несуществующего пользователя и неверного пароля
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске пользователя %d: %v", userID, err)
		return nil, ErrInternal
	}

	ok, needsRehash, err := auth.VerifyPassword(user.PasswordType, user.PasswordHash, password)
	if err != nil {
		// Неизвестный тип или поврежденный хеш - проблема целостности данных,
		// а не неверные креды.
		log.Printf("[AuthService] Поврежденные данные пароля пользователя %d: %v", userID, err)
		return nil, ErrInternal
	}
	if !ok {
		log.Printf("[AuthService] Неверный пароль для пользователя %d", userID)
		return nil, ErrInvalidCredentials
	}

	if needsRehash {
		if err = s.rehashPassword(ctx, userID, password); err != nil {
			// Вход остается успешным: обновление хеша - побочный эффект.
			log.Printf("[AuthService] Не удалось обновить хеш пароля пользователя %d: %v", userID, err)
		}
	}

	session, err := auth.NewSession(user, s.cfg)
	if err != nil {
		log.Printf("[AuthService] Ошибка создания сессии для пользователя %d: %v", userID, err)
		return nil, ErrInternal
	}

	log.Printf("[AuthService] Пользователь %d успешно аутентифицирован, сессия %s", userID, session.ID)
	return session, nil
}

// LoginByAccessToken восстанавливает сессию из access-токена.
func (s *authService) LoginByAccessToken(accessToken string) (*auth.Session, error) {
	session, err := auth.SessionFromAccessToken(accessToken, s.cfg)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, ErrInvalidToken
		}
		log.Printf("[AuthService] Ошибка восстановления сессии из access-токена: %v", err)
		return nil, ErrInternal
	}
	return session, nil
}

// RefreshAccessToken выпускает новую сессию по refresh-токену.
func (s *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (*auth.Session, error) {
	session, err := auth.SessionFromRefreshToken(ctx, refreshToken, s.cfg, s.userRepo)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil, ErrInvalidToken
		}
		log.Printf("[AuthService] Ошибка обновления сессии по refresh-токену: %v", err)
		return nil, ErrInternal
	}

	log.Printf("[AuthService] Сессия %s обновлена для пользователя %d", session.ID, session.AccessPayload.UserID)
	return session, nil
}

// Logout завершает сессию. Токены не отзываются на сервере,
// поэтому достаточно проверить, что предъявленный токен действителен.
func (s *authService) Logout(accessToken string) error {
	session, err := auth.SessionFromAccessToken(accessToken, s.cfg)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return ErrInvalidToken
		}
		return ErrInternal
	}

	log.Printf("[AuthService] Сессия %s завершена", session.ID)
	return nil
}

// UpdatePassword устанавливает пользователю новый пароль.
func (s *authService) UpdatePassword(ctx context.Context, userID int64, password string) error {
	return s.rehashPassword(ctx, userID, password)
}

func (s *authService) rehashPassword(ctx context.Context, userID int64, password string) error {
	passwordType, passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if err = s.userRepo.UpdatePassword(ctx, userID, passwordType, passwordHash); err != nil {
		return err
	}

	log.Printf("[AuthService] Хеш пароля пользователя %d обновлен до типа '%s'", userID, passwordType)
	return nil
}
