package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"weather-favorites/internal/application/middleware"
	"weather-favorites/internal/domain/entity"
	"weather-favorites/internal/domain/favorites"
	"weather-favorites/internal/domain/gateway/cache"
	"weather-favorites/internal/domain/gateway/queue"
	"weather-favorites/internal/domain/model"
	"weather-favorites/internal/domain/model/external"
	"weather-favorites/internal/domain/usecase/account"
	favoritesuc "weather-favorites/internal/domain/usecase/favorites"
	"weather-favorites/internal/domain/usecase/health"
	"weather-favorites/internal/domain/usecase/session"
	"weather-favorites/internal/mocks"
	"weather-favorites/pkg/apperr"
	"weather-favorites/pkg/redis"
)

// memoryUsers is an in-memory UserGateway honouring the username uniqueness constraint.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func (m *memoryUsers) Create(_ context.Context, user entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Username]; ok {
		return nil, apperr.AlreadyExists("User " + user.Username + " already exists.")
	}
	m.users[user.Username] = user
	return &user, nil
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok || user.Deleted {
		return nil, nil
	}
	return &user, nil
}

func (m *memoryUsers) UpdatePassword(_ context.Context, username, hash, salt string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok || user.Deleted {
		return false, nil
	}
	user.PasswordHash, user.Salt = hash, salt
	m.users[username] = user
	return true, nil
}

func (m *memoryUsers) SoftDelete(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok || user.Deleted {
		return false, nil
	}
	user.Deleted = true
	m.users[username] = user
	return true, nil
}

func (m *memoryUsers) PurgeDeleted(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type ControllerTestSuite struct {
	suite.Suite
	server  *miniredis.Miniredis
	client  *redis.Client
	weather *mocks.MockWeatherGateway
	echo    *echo.Echo
}

func (s *ControllerTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	port, err := strconv.Atoi(s.server.Port())
	s.Require().NoError(err)
	s.client = redis.NewClient(redis.NewRedisConfig().WithHost(s.server.Host()).WithPort(port))
	s.weather = mocks.NewMockWeatherGateway(s.T())

	sessionUseCase := session.NewSessionUseCase(favorites.NewRegistry(), cache.NewRedisSessionGateway(s.client, time.Hour))
	accountUseCase := account.NewAccountUseCase(&memoryUsers{users: map[string]entity.User{}}, queue.NoopPublisher{})
	favoritesUseCase := favoritesuc.NewFavoritesUseCase(s.weather, 2)
	healthUseCase := health.NewHealthUseCase(map[string]health.Component{"redis": cache.NewRedisHealthGateway(s.client)})

	s.echo = echo.New()
	api := s.echo.Group("/api")
	NewAccountController(api, accountUseCase, sessionUseCase).InitAccountRoutes()
	NewFavoritesController(api, favoritesUseCase, sessionUseCase).InitFavoritesRoutes()
	NewHealthController(api, healthUseCase).InitHealthRoutes()
}

func (s *ControllerTestSuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *ControllerTestSuite) do(method, path, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ControllerTestSuite) login(username, password string) string {
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/create-user", "", `{"username":"`+username+`","password":"`+password+`"}`).Code)

	rec := s.do(http.MethodPost, "/api/login", "", `{"username":"`+username+`","password":"`+password+`"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var result model.LoginResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	s.Require().NotEmpty(result.UserID)
	return result.UserID
}

func (s *ControllerTestSuite) TestEndToEndScenario() {
	s.weather.On("GetCurrent", mock.Anything, "Boston").Return(&external.CurrentResponse{
		Current: &external.CurrentDTO{TempF: 41.2, WindMph: 8.1, PrecipIn: 0.02, Humidity: 70},
	}, nil)

	userID := s.login("alice", "pw123")

	rec := s.do(http.MethodPost, "/api/add-favorite", userID, `{"location":"Boston"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"success","location":"Boston"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/get-all-favorites", userID, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`["Boston"]`, rec.Body.String())

	rec = s.do(http.MethodDelete, "/api/clear-favorites", userID, "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/get-all-favorites", userID, "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"No favorite locations saved."}`, rec.Body.String())
}

func (s *ControllerTestSuite) TestFavoritesSurviveLogout() {
	userID := s.login("bob", "secret")
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/add-favorite", userID,
		`{"location":"Denver","temperature":32.5,"wind_speed":12.0,"precipitation":3.5,"humidity":20}`).Code)

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/logout", userID, "").Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/logout", userID, "").Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/get-all-favorites", userID, "").Code)

	rec := s.do(http.MethodPost, "/api/login", "", `{"username":"bob","password":"secret"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/get-all-favorites", userID, "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`["Denver"]`, rec.Body.String())
}

func (s *ControllerTestSuite) TestAddFavoriteRejectsIntegerTemperature() {
	userID := s.login("carol", "pw")

	rec := s.do(http.MethodPost, "/api/add-favorite", userID,
		`{"location":"Boston","temperature":32,"wind_speed":12.0,"precipitation":3.5,"humidity":20}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"Invalid temperature: 32, should be a float."}`, rec.Body.String())
}

func (s *ControllerTestSuite) TestAddFavoritePartialWeather() {
	userID := s.login("carol", "pw")

	rec := s.do(http.MethodPost, "/api/add-favorite", userID, `{"location":"Boston","temperature":32.5}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "wind_speed")
}

func (s *ControllerTestSuite) TestProviderFailureIsSoft() {
	s.weather.On("GetCurrent", mock.Anything, "Boston").Return(&external.CurrentResponse{
		Current: &external.CurrentDTO{TempF: 41.2},
	}, nil).Once()
	s.weather.On("GetCurrent", mock.Anything, "Boston").Return(nil, &apperr.ProviderFailure{
		Cause: apperr.CauseStatus, StatusCode: 400, Code: "1006", Message: "No matching location found.",
	}).Once()
	userID := s.login("dave", "pw")
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/add-favorite", userID, `{"location":"Boston"}`).Code)

	rec := s.do(http.MethodGet, "/api/get-favorite-weather/Boston", userID, "")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"failed","error":"1006","message":"No matching location found."}`, rec.Body.String())
}

func (s *ControllerTestSuite) TestUnknownLocationIsBadRequest() {
	userID := s.login("erin", "pw")

	rec := s.do(http.MethodGet, "/api/get-favorite-weather/New%20York", userID, "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"Location New York not found in favorites."}`, rec.Body.String())
}

func (s *ControllerTestSuite) TestBatchOnEmptyStoreIsNotFound() {
	userID := s.login("frank", "pw")

	for _, path := range []string{
		"/api/get-all-favorites-current-weather",
		"/api/get-all-favorites-historical",
		"/api/get-all-favorites-forecast",
		"/api/get-all-favorites-alerts",
		"/api/get-all-favorites-coordinates",
	} {
		s.Equal(http.StatusNotFound, s.do(http.MethodGet, path, userID, "").Code, path)
	}
}

func (s *ControllerTestSuite) TestAccountErrors() {
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/create-user", "", `{"username":"gina","password":"pw"}`).Code)

	rec := s.do(http.MethodPost, "/api/create-user", "", `{"username":"gina","password":"pw"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"User gina already exists."}`, rec.Body.String())

	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/create-user", "", `{"username":42,"password":"pw"}`).Code)

	rec = s.do(http.MethodPost, "/api/login", "", `{"username":"gina","password":"nope"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "Sorry, incorrect username or password")

	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/login", "", `{"username":"nobody","password":"pw"}`).Code)

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/change-password", "", `{"username":"gina","password":"pw2"}`).Code)
	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/login", "", `{"username":"gina","password":"pw2"}`).Code)

	s.Equal(http.StatusOK, s.do(http.MethodDelete, "/api/remove-user", "", `{"username":"gina"}`).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodDelete, "/api/remove-user", "", `{"username":"gina"}`).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/login", "", `{"username":"gina","password":"pw2"}`).Code)
}

func (s *ControllerTestSuite) TestLogoutWithoutSession() {
	s.Equal(http.StatusUnauthorized, s.do(http.MethodPost, "/api/logout", "", "").Code)

	rec := s.do(http.MethodPost, "/api/logout", "ghost", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"User with ID ghost not found for logout."}`, rec.Body.String())
}

func (s *ControllerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/api/health", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"UP"`)

	s.server.Close()
	rec = s.do(http.MethodGet, "/api/health", "", "")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}
