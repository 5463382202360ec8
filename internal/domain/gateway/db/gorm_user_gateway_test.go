package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"weather-favorites/internal/domain/model"
)

type GormUserGatewaySuite struct {
	suite.Suite
	DB      *gorm.DB
	mock    sqlmock.Sqlmock
	gateway *GormUserGateway
}

func (s *GormUserGatewaySuite) SetupTest() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp), sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true, TranslateError: true, DisableAutomaticPing: true})
	s.Require().NoError(err)

	s.gateway = NewGormUserGateway(s.DB)
}

func (s *GormUserGatewaySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *GormUserGatewaySuite) TestFindByUsername() {
	s.Run("returns the active user", func() {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "salt", "deleted", "created_at", "updated_at"}).
			AddRow("0b8f6c1e-0000-4000-8000-000000000001", "alice", "hash", "salt", false, now, now)
		s.mock.ExpectQuery(`SELECT \* FROM "users" WHERE \(username = \$1 AND deleted = \$2\)`).
			WillReturnRows(rows)

		user, err := s.gateway.FindByUsername(context.Background(), "alice")

		s.Require().NoError(err)
		s.Require().NotNil(user)
		s.Equal("hash", user.PasswordHash)
		s.Equal("salt", user.Salt)
	})

	s.Run("returns nil when missing", func() {
		s.mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := s.gateway.FindByUsername(context.Background(), "ghost")

		s.Require().NoError(err)
		s.Nil(user)
	})
}

func (s *GormUserGatewaySuite) TestSoftDelete() {
	s.mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := s.gateway.SoftDelete(context.Background(), "alice")
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.gateway.SoftDelete(context.Background(), "alice")
	s.Require().NoError(err)
	s.False(removed)
}

func (s *GormUserGatewaySuite) TestUpdatePassword() {
	s.mock.ExpectExec(`UPDATE "users" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := s.gateway.UpdatePassword(context.Background(), "alice", "new-hash", "new-salt")

	s.Require().NoError(err)
	s.True(updated)
}

func (s *GormUserGatewaySuite) TestPurgeDeleted() {
	cutoff := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	s.mock.ExpectExec(`DELETE FROM "users" WHERE deleted = \$1 AND updated_at < \$2`).
		WithArgs(true, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := s.gateway.PurgeDeleted(context.Background(), cutoff)

	s.Require().NoError(err)
	s.EqualValues(3, purged)
}

func (s *GormUserGatewaySuite) TestHealth() {
	s.mock.ExpectPing()
	s.Equal(model.StatusUp, NewGormHealthDBGateway(s.DB).Health().Status)

	s.mock.ExpectPing().WillReturnError(sql.ErrConnDone)
	health := NewGormHealthDBGateway(s.DB).Health()
	s.Equal(model.StatusDown, health.Status)
	s.Equal(sql.ErrConnDone.Error(), health.Details["message"])
}

func TestGormUserGatewaySuite(t *testing.T) {
	suite.Run(t, new(GormUserGatewaySuite))
}
