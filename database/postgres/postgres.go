package postgres

import (
	"fmt"
	"time"

	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Options struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (o Options) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.User, o.Password, o.Name, o.SSLMode)
}

func New(opts Options) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", opts.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres %s:%s/%s: %w", opts.Host, opts.Port, opts.Name, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate creates or extends the blog tables. No foreign keys are created:
// deleting a user, category or blog leaves the rows that pointed at it.
func Migrate(db *sqlx.DB, logger *logrus.Logger) error {
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn: db.DB,
	}), &gorm.Config{
		Logger:                                   log.NewGormLogger(logger),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return fmt.Errorf("open gorm session: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&entity.User{},
		&entity.Category{},
		&entity.Blog{},
		&entity.Comment{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	logger.Info("Database schema is up to date")
	return nil
}
