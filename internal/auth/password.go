package auth

import (
	"crypto/md5" //nolint:gosec // Только для проверки устаревших хешей при миграции
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/yzx9/aim-server/internal/models"
)

// Ошибки политики хеширования.
// ErrUnknownPasswordType и ErrInvalidPasswordHash - ошибки целостности данных,
// а не неверный пароль: они должны всплывать как внутренние ошибки сервера,
// а не превращаться в ответ 401.
var (
	ErrUnknownPasswordType = errors.New("неизвестный тип хеша пароля")
	ErrInvalidPasswordHash = errors.New("некорректный формат хеша пароля")
)

// Версия Argon2, зашитая в формат хеша (argon2.Version == 0x13 == 19).
const argon2Version = 19

// Argon2Params задает параметры стоимости Argon2id.
// Memory указывается в KiB, как требует argon2.IDKey.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params - актуальные параметры хеширования.
// Хеши, созданные с другими параметрами, считаются устаревшими
// и помечаются на перехеширование при успешном входе.
var DefaultArgon2Params = Argon2Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// HashPassword хеширует пароль актуальной схемой (Argon2id).
// Устаревшие схемы никогда не используются для выдачи новых хешей.
// Формат: $argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<hash_b64>
func HashPassword(password string) (models.PasswordType, string, error) {
	params := DefaultArgon2Params

	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", "", fmt.Errorf("ошибка генерации соли: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	b64 := base64.RawStdEncoding
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Version,
		params.Memory,
		params.Iterations,
		params.Parallelism,
		b64.EncodeToString(salt),
		b64.EncodeToString(key),
	)

	return models.PasswordTypeArgon2id, encoded, nil
}

// VerifyPassword проверяет кандидата против сохраненного хеша.
// Возвращает (совпал ли пароль, нужно ли перехеширование, ошибка).
// Несовпадение пароля - обычный отрицательный результат, не ошибка.
// Неизвестный тип хеша - ошибка целостности данных (ErrUnknownPasswordType).
func VerifyPassword(storedType models.PasswordType, storedHash, candidate string) (bool, bool, error) {
	switch storedType {
	case models.PasswordTypeNone:
		// Пароль никогда не устанавливался - вход всегда отклоняется.
		return false, false, nil

	case models.PasswordTypeMD5:
		return verifyMD5(storedHash, candidate)

	case models.PasswordTypeArgon2id:
		return verifyArgon2id(storedHash, candidate)

	default:
		return false, false, fmt.Errorf("%w: '%s'", ErrUnknownPasswordType, storedType)
	}
}

// verifyMD5 проверяет устаревший несолёный MD5-дайджест.
// Каждый успешный вход по этой схеме принудительно помечается
// на миграцию в актуальную схему.
func verifyMD5(storedHash, candidate string) (bool, bool, error) {
	sum := md5.Sum([]byte(candidate)) //nolint:gosec // Проверка легаси-хеша, новые не выдаются
	digest := hex.EncodeToString(sum[:])

	if subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(storedHash))) != 1 {
		return false, false, nil
	}

	return true, true, nil
}

// verifyArgon2id проверяет хеш актуальной схемы.
// Параметры стоимости берутся из самого хеша; отдельно проверяется,
// не устарели ли они относительно DefaultArgon2Params.
func verifyArgon2id(storedHash, candidate string) (bool, bool, error) {
	params, salt, expected, err := decodeArgon2Hash(storedHash)
	if err != nil {
		// Нечитаемый хеш - испорченные данные, а не неверный пароль.
		return false, false, err
	}

	key := argon2.IDKey([]byte(candidate), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	if subtle.ConstantTimeCompare(key, expected) != 1 {
		return false, false, nil
	}

	needsRehash := params != DefaultArgon2Params
	return true, needsRehash, nil
}

// decodeArgon2Hash разбирает строку формата
// $argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<hash_b64>.
func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, ErrInvalidPasswordHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2Version {
		return Argon2Params{}, nil, nil, ErrInvalidPasswordHash
	}

	var memory, iterations, parallelism uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return Argon2Params{}, nil, nil, ErrInvalidPasswordHash
	}
	if memory == 0 || iterations == 0 || parallelism == 0 || parallelism > 255 {
		return Argon2Params{}, nil, nil, ErrInvalidPasswordHash
	}

	b64 := base64.RawStdEncoding
	salt, err := b64.DecodeString(parts[4])
	if err != nil {
		return Argon2Params{}, nil, nil, ErrInvalidPasswordHash
	}
	key, err := b64.DecodeString(parts[5])
	if err != nil {
		return Argon2Params{}, nil, nil, ErrInvalidPasswordHash
	}

	params := Argon2Params{
		Memory:      memory,
		Iterations:  iterations,
		Parallelism: uint8(parallelism),
		SaltLength:  uint32(len(salt)),
		KeyLength:   uint32(len(key)),
	}

	return params, salt, key, nil
}
