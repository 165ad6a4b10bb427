package session

import (
	"context"
	"encoding/json"
	"strings"

	"weather-widget/internal/domain/model"
	"weather-widget/pkg/log"

	"go.uber.org/zap"
)

const (
	// HistoryKey names the session entry holding the serialized recent-search list
	HistoryKey = "weatherSearchHistory"
	// MaxRecentSearches caps the recent-search list
	MaxRecentSearches = 5
)

// HistoryGateway persists one session's recent searches.
// Missing or corrupt data loads as an empty list; only backend failures are returned as errors.
type HistoryGateway interface {
	Load(ctx context.Context, sessionID string) ([]string, error)
	Save(ctx context.Context, sessionID string, cities []string) error
	Health(ctx context.Context) model.ComponentHealthStatus
}

func encodeHistory(cities []string) ([]byte, error) {
	return json.Marshal(normalizeHistory(cities))
}

func decodeHistory(sessionID string, data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}
	var cities []string
	if err := json.Unmarshal(data, &cities); err != nil {
		log.Warn("Discarding corrupt search history",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return []string{}
	}
	return normalizeHistory(cities)
}

// normalizeHistory drops blank and duplicate names and caps the list, keeping order
func normalizeHistory(cities []string) []string {
	result := make([]string, 0, MaxRecentSearches)
	seen := make(map[string]struct{}, len(cities))
	for _, city := range cities {
		city = strings.TrimSpace(city)
		if city == "" {
			continue
		}
		if _, dup := seen[city]; dup {
			continue
		}
		seen[city] = struct{}{}
		result = append(result, city)
		if len(result) == MaxRecentSearches {
			break
		}
	}
	return result
}
