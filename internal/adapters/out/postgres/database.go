package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"deliverytracking/internal/adapters/out/postgres/deliveryrepo"
	"deliverytracking/internal/adapters/out/postgres/problemrepo"

	"github.com/pkg/errors"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const poolWaitWarnThreshold = 50 * time.Millisecond

// Config describes the PostgreSQL connection.
type Config struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required,min=1,max=65535"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `koanf:"maxopenconns" validate:"min=0"`
	MaxIdleConns    int           `koanf:"maxidleconns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"connmaxlifetime"`
	Debug           bool          `koanf:"debug"`
	AutoMigrate     bool          `koanf:"automigrate"`
}

// DSN renders the connection as a postgres:// URL.
func (c Config) DSN() string {
	return c.dsnFor(c.Name)
}

// MaintenanceDSN points at the "postgres" database, used to create Name.
func (c Config) MaintenanceDSN() string {
	return c.dsnFor("postgres")
}

func (c Config) dsnFor(database string) string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + database,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// Open connects with the pgx-backed GORM driver and applies pool settings.
func Open(cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	return configure(db, cfg, logger)
}

// OpenWithConn builds a GORM handle on top of an existing *sql.DB.
func OpenWithConn(conn *sql.DB, cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	return configure(db, cfg, logger)
}

func configure(db *gorm.DB, cfg Config, logger *slog.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// Writes that need atomicity go through an explicit unit of work.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger.With("component", "gorm"), cfg.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return db, nil
}

// Migrate creates or updates the deliveries and delivery_problems tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&deliveryrepo.DeliveryDTO{}, &problemrepo.ProblemDTO{}); err != nil {
		return errors.Wrap(err, "auto-migrate")
	}
	return nil
}

// MonitorPool logs connection pool waits every interval until ctx is done.
func MonitorPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= poolWaitWarnThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "postgres pool wait",
				slog.Int64("wait_count_delta", waitDelta),
				slog.Duration("wait_duration_delta", waitDurationDelta),
				slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("max_open_conns", cur.MaxOpenConnections),
				slog.Int("open_conns", cur.OpenConnections),
				slog.Int("in_use_conns", cur.InUse),
				slog.Int("idle_conns", cur.Idle),
			)
		}
	}
}
