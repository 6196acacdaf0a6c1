package idgen

import "time"

// SetNowForTest подменяет источник времени генератора в тестах.
func SetNowForTest(g *SnowflakeGenerator, now func() time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now = now
}
