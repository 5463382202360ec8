package favorites

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"weather-favorites/internal/domain/model"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/log"
	"weather-favorites/pkg/msg"
)

// Store holds the favorite locations of one user and their last known weather.
// Location keys are case-sensitive. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]model.WeatherRecord
}

func NewStore() *Store {
	return &Store{records: make(map[string]model.WeatherRecord)}
}

// AddFavorite validates raw weather values and inserts or overwrites the location.
func (s *Store) AddFavorite(location string, temperature, windSpeed, precipitation, humidity json.Number) error {
	record, err := model.ParseWeatherRecord(temperature, windSpeed, precipitation, humidity)
	if err != nil {
		return err
	}
	return s.Put(location, record)
}

// Put inserts or overwrites the record of a location.
func (s *Store) Put(location string, record model.WeatherRecord) error {
	if strings.TrimSpace(location) == "" {
		return apperr.InvalidArgument(msg.GetMessage("favorites.invalid-location"))
	}

	s.mu.Lock()
	s.records[location] = record
	s.mu.Unlock()

	log.Info(msg.GetMessage("favorites.added", location), zap.String("location", location))
	return nil
}

// Update overwrites the record only if the location is still a favorite.
func (s *Store) Update(location string, record model.WeatherRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[location]; !ok {
		return false
	}
	s.records[location] = record
	return true
}

func (s *Store) Get(location string) (model.WeatherRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[location]
	return record, ok
}

func (s *Store) Has(location string) bool {
	_, ok := s.Get(location)
	return ok
}

func (s *Store) Remove(location string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[location]; !ok {
		return false
	}
	delete(s.records, location)
	return true
}

// Clear empties the store. Calling it on an empty store is a no-op.
func (s *Store) Clear() {
	s.mu.Lock()
	s.records = make(map[string]model.WeatherRecord)
	s.mu.Unlock()
}

// Locations returns the favorite names in lexical order.
func (s *Store) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	locations := make([]string, 0, len(s.records))
	for location := range s.records {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}

// Snapshot returns a copy of all records.
func (s *Store) Snapshot() map[string]model.WeatherRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]model.WeatherRecord, len(s.records))
	for location, record := range s.records {
		snapshot[location] = record
	}
	return snapshot
}

// Load adds all given records, overwriting existing keys.
func (s *Store) Load(records map[string]model.WeatherRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for location, record := range records {
		s.records[location] = record
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
