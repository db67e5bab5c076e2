package xcontext

import (
	"context"
	"net/http"

	"github.com/Doompy/event-reward-system/config"
	"github.com/Doompy/event-reward-system/pkg/logger"
	"gorm.io/gorm"
)

type (
	configsKey struct{}
	loggerKey  struct{}
	dbKey      struct{}
	txKey      struct{}
	userIDKey  struct{}
	requestKey struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	if cfg := ctx.Value(configsKey{}); cfg != nil {
		return cfg.(config.Configs)
	}

	return config.Configs{}
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	if l := ctx.Value(loggerKey{}); l != nil {
		return l.(logger.Logger)
	}

	return logger.NewLogger(logger.SILENCE)
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the transaction bound to this context if one exists, otherwise
// the root database handle.
func DB(ctx context.Context) *gorm.DB {
	if tx := ctx.Value(txKey{}); tx != nil {
		return tx.(*txWrapper).tx
	}

	if db := ctx.Value(dbKey{}); db != nil {
		return db.(*gorm.DB)
	}

	return nil
}

type txWrapper struct {
	tx   *gorm.DB
	done bool
}

// WithDBTransaction begins a transaction and binds it to the returned
// context. Repository calls through DB(ctx) will use the transaction until
// it is committed or rolled back.
func WithDBTransaction(ctx context.Context) context.Context {
	db := DB(ctx)
	if db == nil {
		return ctx
	}

	return context.WithValue(ctx, txKey{}, &txWrapper{tx: db.Begin()})
}

func WithCommitDBTransaction(ctx context.Context) {
	if w := ctx.Value(txKey{}); w != nil {
		wrapper := w.(*txWrapper)
		if !wrapper.done {
			wrapper.tx.Commit()
			wrapper.done = true
		}
	}
}

func WithRollbackDBTransaction(ctx context.Context) {
	if w := ctx.Value(txKey{}); w != nil {
		wrapper := w.(*txWrapper)
		if !wrapper.done {
			wrapper.tx.Rollback()
			wrapper.done = true
		}
	}
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	if r := ctx.Value(requestKey{}); r != nil {
		return r.(*http.Request)
	}

	return nil
}

func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// RequestUserID returns the authenticated user id set by the middleware, or
// an empty string for anonymous requests.
func RequestUserID(ctx context.Context) string {
	if id := ctx.Value(userIDKey{}); id != nil {
		return id.(string)
	}

	return ""
}
