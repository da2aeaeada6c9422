package repo

import (
	"Wardrobe/internal/model"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// sqlitePragmas добавляются к DSN файловой SQLite, если в нём нет своих параметров.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_time_format=sqlite"

// InitDB открывает БД по DSN и создаёт таблицу clothes, если её ещё нет.
// PostgreSQL выбирается по DSN (postgres://, postgresql:// или host=...), иначе DSN: путь к файлу SQLite.
func InitDB(dsn string) (*gorm.DB, error) {
	dialector := Dialector(dsn)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate идемпотентно создаёт схему.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.ClothingItem{}); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Dialector подбирает gorm-диалект по DSN.
func Dialector(dsn string) gorm.Dialector {
	if IsPostgresDSN(dsn) {
		return postgres.Open(dsn)
	}
	// modernc.org/sqlite регистрируется как "sqlite" (без cgo)
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: sqliteDSN(dsn)}
}

// IsPostgresDSN сообщает, указывает ли DSN на PostgreSQL.
func IsPostgresDSN(dsn string) bool {
	d := strings.TrimSpace(dsn)
	return strings.HasPrefix(d, "postgres://") ||
		strings.HasPrefix(d, "postgresql://") ||
		strings.Contains(d, "host=")
}

func sqliteDSN(dsn string) string {
	if dsn == "" || strings.Contains(dsn, "?") || strings.Contains(dsn, ":memory:") {
		return dsn
	}
	if strings.HasPrefix(dsn, "file:") {
		return dsn + "?" + sqlitePragmas
	}
	return "file:" + dsn + "?" + sqlitePragmas
}
