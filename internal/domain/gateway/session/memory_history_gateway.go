package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"weather-widget/internal/domain/model"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryHistoryGateway keeps histories in process, used when no redis is configured and in tests
type MemoryHistoryGateway struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryHistoryGateway(ttl time.Duration) *MemoryHistoryGateway {
	return &MemoryHistoryGateway{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (g *MemoryHistoryGateway) Load(_ context.Context, sessionID string) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.items[sessionID]
	if !ok {
		return []string{}, nil
	}
	if g.ttl > 0 && g.now().After(entry.expiresAt) {
		delete(g.items, sessionID)
		return []string{}, nil
	}
	entry.expiresAt = g.now().Add(g.ttl)
	g.items[sessionID] = entry
	return decodeHistory(sessionID, entry.data), nil
}

func (g *MemoryHistoryGateway) Save(_ context.Context, sessionID string, cities []string) error {
	data, err := encodeHistory(cities)
	if err != nil {
		return err
	}
	g.SaveRaw(sessionID, data)
	return nil
}

// SaveRaw stores already serialized data as-is
func (g *MemoryHistoryGateway) SaveRaw(sessionID string, data []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.items[sessionID] = memoryEntry{data: data, expiresAt: g.now().Add(g.ttl)}
}

func (g *MemoryHistoryGateway) Health(context.Context) model.ComponentHealthStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"backend":  "memory",
			"sessions": strconv.Itoa(len(g.items)),
			"ttl":      g.ttl.String(),
		},
	}
}
