package testingh

import (
	"database/sql"

	"github.com/zestagio/queue-composer/internal/store"
)

// DBSuite provides a fresh migrated in-memory SQLite database for every suite.
type DBSuite struct {
	ContextSuite

	DB *sql.DB
}

func (ds *DBSuite) SetupSuite() {
	ds.ContextSuite.SetupSuite()

	db, err := store.NewSQLiteClient(store.NewSQLiteOptions(""))
	ds.Require().NoError(err)
	ds.Require().NoError(store.Migrate(ds.SuiteCtx, db))

	ds.DB = db
}

func (ds *DBSuite) TearDownSuite() {
	if ds.DB != nil {
		ds.NoError(ds.DB.Close())
	}
	ds.ContextSuite.TearDownSuite()
}
