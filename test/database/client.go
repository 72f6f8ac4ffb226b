// Package database provides the shared database client used by
// integration tests across packages.
package database

import (
	"testing"

	"github.com/loop-symphony/symphony/pkg/database"
	"github.com/loop-symphony/symphony/test/util"
)

// NewTestClient creates a test database client on an isolated schema.
// In CI (when CI_DATABASE_URL is set) it connects to the external
// PostgreSQL service container; locally it uses a shared testcontainer.
// Cleanup (schema drop and connection close) runs when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
