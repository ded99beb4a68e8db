package bootstrap

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/syntaxscout-api/pkg/config"
	"github.com/noah-isme/syntaxscout-api/pkg/database"
)

func openSQL(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Storage.Driver == config.StorageSQLite {
		return database.NewSQLite(ctx, cfg.Storage.SQLitePath)
	}
	return database.NewPostgres(ctx, cfg.Database)
}
