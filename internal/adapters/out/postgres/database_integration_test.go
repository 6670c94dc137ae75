package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/sessionrepo"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// DatabaseIntegrationTestSuite checks that Open connects and migrates against a real
// PostgreSQL.
type DatabaseIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
}

func (suite *DatabaseIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	suite.dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
}

func (suite *DatabaseIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DatabaseIntegrationTestSuite) TestOpenDSN_MigratesSessions() {
	db, err := postgres_adapter.OpenDSN(suite.dsn)
	suite.Require().NoError(err)
	defer func() {
		suite.Require().NoError(postgres_adapter.Close(db))
	}()

	suite.True(db.Migrator().HasTable(&sessionrepo.SessionDTO{}))
}

func (suite *DatabaseIntegrationTestSuite) TestOpenDSN_IsRepeatable() {
	for range 2 {
		db, err := postgres_adapter.OpenDSN(suite.dsn)
		suite.Require().NoError(err)
		suite.Require().NoError(postgres_adapter.Close(db))
	}
}

func TestDatabaseIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DatabaseIntegrationTestSuite))
}
