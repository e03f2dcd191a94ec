// Package sessionstore builds the gin session store that holds each browser's
// quiz state.
package sessionstore

import (
	"context"

	"wikiquiz/internal/config"
	"wikiquiz/internal/db"
	"wikiquiz/internal/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	gsessions "github.com/gin-contrib/sessions/postgres"
)

// maxLengthSetter is implemented by stores that encode session values with
// securecookie codecs, such as the Postgres store.
type maxLengthSetter interface {
	MaxLength(l int)
}

// New uses Postgres when DATABASE_URL is set and an in-memory store otherwise.
// The returned func releases the store's resources.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (sessions.Store, func(), error) {
	secret := []byte(cfg.SessionSecret)
	if cfg.DatabaseURL == "" {
		if cfg.IsProduction() {
			log.Warn("in-memory session store never evicts sessions, set DATABASE_URL in production")
		} else {
			log.Info("using in-memory session store")
		}
		return memstore.NewStore(secret), func() {}, nil
	}

	sessionDB, err := db.OpenSessionDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	store, err := gsessions.NewStore(sessionDB, secret)
	if err != nil {
		sessionDB.Close()
		return nil, nil, err
	}
	if !SetMaxLength(store, cfg.SessionMaxLength) {
		log.Warn("session store has no size limit setting", "max_length", cfg.SessionMaxLength)
	}

	log.Info("using postgres session store", "max_length", cfg.SessionMaxLength)
	return store, func() { sessionDB.Close() }, nil
}

// SetMaxLength raises the encoded-size limit of stores that support one.
// securecookie defaults to 4096 bytes, well below a stored quiz.
func SetMaxLength(store sessions.Store, l int) bool {
	s, ok := store.(maxLengthSetter)
	if !ok {
		return false
	}
	s.MaxLength(l)
	return true
}
