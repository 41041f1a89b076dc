package monitor

import (
	"context"
	"log"
	"time"
)

// DedupGate подавляет повторные алерты по паре (user_id, metric) внутри
// скользящего окна. Метки хранятся в Redis с TTL равным окну, поэтому
// упавший запрос не может навсегда заблокировать метрику.
type DedupGate struct {
	cache  CacheStore
	window time.Duration
}

// NewDedupGate создает новый DedupGate
func NewDedupGate(cache CacheStore, window time.Duration) *DedupGate {
	return &DedupGate{
		cache:  cache,
		window: window,
	}
}

// Filter возвращает кандидатов, прошедших окно дедупликации. Метки Filter
// не ставит: вызывающий помечает метрику через Mark только после успешного
// сохранения алерта, иначе упавшая запись подавила бы метрику на все окно.
// При ошибке кэша gate пропускает кандидата (fail-open): потеря
// критического алерта хуже, чем дубликат.
//
// Между проверкой и установкой метки нет блокировки: два одновременных
// запроса одного пользователя могут оба пройти. Доставка at-least-once
// считается приемлемой.
func (g *DedupGate) Filter(ctx context.Context, userID string, candidates []AlertCandidate) []AlertCandidate {
	if len(candidates) == 0 {
		return nil
	}

	var passed []AlertCandidate

	for _, candidate := range candidates {
		exists, err := g.cache.DedupMarkExists(ctx, userID, candidate.Metric)
		if err != nil {
			log.Printf("[WARN] Dedup lookup failed for user=%s metric=%s, failing open: %v",
				userID, candidate.Metric, err)
			passed = append(passed, candidate)
			continue
		}

		if exists {
			log.Printf("[DEDUP] Suppressed duplicate alert: user=%s metric=%s window=%s",
				userID, candidate.Metric, g.window)
			continue
		}

		passed = append(passed, candidate)
	}

	return passed
}

// Mark помечает метрику пользователя на время окна. Вызывается после
// успешного сохранения алерта. Ошибка кэша не фатальна: следующий
// дубликат просто пройдет через gate.
func (g *DedupGate) Mark(ctx context.Context, userID string, metric Metric) {
	if err := g.cache.SetDedupMark(ctx, userID, metric, g.window); err != nil {
		log.Printf("[WARN] Failed to set dedup mark for user=%s metric=%s: %v",
			userID, metric, err)
	}
}

// Window возвращает настроенное окно дедупликации
func (g *DedupGate) Window() time.Duration {
	return g.window
}
