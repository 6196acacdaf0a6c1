// Package idgen предоставляет потокобезопасную генерацию уникальных
// 64-битных идентификаторов по алгоритму Snowflake.
package idgen

import (
	"errors"
	"sync"
	"time"
)

// Структура ID:
// - 1 бит: не используется (знаковый бит)
// - 41 бит: метка времени в миллисекундах от собственной эпохи
// - 10 бит: ID машины
// - 12 бит: порядковый номер внутри миллисекунды.
const (
	machineIDBits = 10
	sequenceBits  = 12

	maxMachineID = (1 << machineIDBits) - 1 // 1023
	sequenceMask = (1 << sequenceBits) - 1  // 4095

	timestampShift = machineIDBits + sequenceBits
)

// defaultEpoch - собственная эпоха Snowflake: 2025-01-01 00:00:00 UTC в миллисекундах.
var defaultEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

// Ошибки генератора.
var (
	ErrInvalidMachineID = errors.New("ID машины должен быть в диапазоне 0-1023")
	// ErrClockMovedBackwards - системные часы пошли назад. Фатальная ситуация:
	// повторять генерацию нельзя, иначе возможны дубликаты ID.
	ErrClockMovedBackwards = errors.New("системные часы пошли назад, генерация ID отклонена")
)

// Generator определяет интерфейс генератора уникальных идентификаторов.
type Generator interface {
	Generate() (int64, error)
}

// SnowflakeGenerator генерирует уникальные, упорядоченные по времени ID.
// Потокобезопасен: все операции выполняются под мьютексом.
type SnowflakeGenerator struct {
	mu            sync.Mutex
	machineID     int64
	epoch         int64
	lastTimestamp int64
	sequence      int64

	// now подменяется в тестах.
	now func() time.Time
}

var _ Generator = (*SnowflakeGenerator)(nil)

// NewSnowflakeGenerator создает генератор для машины machineID (0-1023).
func NewSnowflakeGenerator(machineID int64) (*SnowflakeGenerator, error) {
	if machineID < 0 || machineID > maxMachineID {
		return nil, ErrInvalidMachineID
	}

	return &SnowflakeGenerator{
		machineID:     machineID,
		epoch:         defaultEpoch,
		lastTimestamp: -1,
		now:           time.Now,
	}, nil
}

// Generate возвращает новый уникальный ID.
// При исчерпании порядковых номеров внутри миллисекунды ждет следующей
// миллисекунды. Если часы пошли назад, возвращает ErrClockMovedBackwards.
func (g *SnowflakeGenerator) Generate() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	timestamp := g.currentTimestamp()
	if timestamp < g.lastTimestamp {
		return 0, ErrClockMovedBackwards
	}

	if timestamp == g.lastTimestamp {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			// Номера внутри миллисекунды закончились, ждем следующей.
			timestamp = g.waitForNextMillisecond(g.lastTimestamp)
		}
	} else {
		g.sequence = 0
	}

	g.lastTimestamp = timestamp

	return (timestamp << timestampShift) | (g.machineID << sequenceBits) | g.sequence, nil
}

// currentTimestamp возвращает миллисекунды от собственной эпохи.
func (g *SnowflakeGenerator) currentTimestamp() int64 {
	return g.now().UnixMilli() - g.epoch
}

// waitForNextMillisecond крутится до наступления следующей миллисекунды.
func (g *SnowflakeGenerator) waitForNextMillisecond(lastTimestamp int64) int64 {
	timestamp := g.currentTimestamp()
	for timestamp <= lastTimestamp {
		timestamp = g.currentTimestamp()
	}
	return timestamp
}
