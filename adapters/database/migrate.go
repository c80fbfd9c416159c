package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrations 回傳內嵌的 goose 遷移檔
func Migrations() fs.FS {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrate 套用所有尚未執行的遷移
// schema 不為空時先建立 schema，遷移與版本表都會建立在連線的 search_path 中
func Migrate(ctx context.Context, db *gorm.DB, schema string, logger *slog.Logger) error {
	const op = "database.Migrate"

	if logger == nil {
		logger = slog.Default()
	}

	if schema != "" {
		if err := db.WithContext(ctx).Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %q`, schema)).Error; err != nil {
			return fmt.Errorf("[%s] Fail to create schema, schema=%s, err=%w", op, schema, err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("[%s] Fail to get sql.DB, err=%w", op, err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, Migrations())
	if err != nil {
		return fmt.Errorf("[%s] Fail to create migration provider, err=%w", op, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("[%s] Fail to apply migrations, err=%w", op, err)
	}

	for _, result := range results {
		logger.Info(
			"Migration applied",
			slog.String("caller", "Migrate"),
			slog.Int64("version", result.Source.Version),
			slog.Duration("duration", result.Duration),
		)
	}
	if len(results) == 0 {
		logger.Info("Database schema is up to date", slog.String("caller", "Migrate"))
	}
	return nil
}
