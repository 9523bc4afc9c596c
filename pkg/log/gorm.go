package log

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type gormBridge struct {
	log           *logrus.Logger
	level         gormLogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger routes GORM output (schema migration statements) into logrus.
func NewGormLogger(l *logrus.Logger) gormLogger.Interface {
	return &gormBridge{
		log:           l,
		level:         gormLogger.Info,
		slowThreshold: 200 * time.Millisecond,
	}
}

func (g *gormBridge) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	copied := *g
	copied.level = level
	return &copied
}

func (g *gormBridge) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.level < gormLogger.Info {
		return
	}
	g.log.WithFields(Fields{"source": "gorm", "data": data}).Info(msg)
}

func (g *gormBridge) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.level < gormLogger.Warn {
		return
	}
	g.log.WithFields(Fields{"source": "gorm", "data": data}).Warn(msg)
}

func (g *gormBridge) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.level < gormLogger.Error {
		return
	}
	g.log.WithFields(Fields{"source": "gorm", "data": data}).Error(msg)
}

func (g *gormBridge) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := Fields{
		"source":  "gorm",
		"elapsed": elapsed.String(),
		"sql":     sql,
		"rows":    rows,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		fields["error"] = err.Error()
		g.log.WithFields(fields).Error("SQL statement failed")
	case elapsed > g.slowThreshold:
		g.log.WithFields(fields).Warn("Slow SQL statement")
	default:
		g.log.WithFields(fields).Debug("SQL statement executed")
	}
}
