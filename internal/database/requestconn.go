package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jmoiron/sqlx"
)

// ErrUnavailable reports that a dedicated connection could not be checked
// out of the pool. Handlers map it to a 503 response.
var ErrUnavailable = errors.New("database unavailable")

// Queryer is the common query surface of *sqlx.DB and *sqlx.Conn, so
// repositories can run against either the pool or a request's connection.
type Queryer interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// RequestConn holds the single database connection owned by one in-flight
// request. The connection is checked out lazily on first use and returned
// to the pool exactly once when the request ends, on every exit path.
type RequestConn struct {
	db *DB

	mu   sync.Mutex
	conn *sqlx.Conn
	done bool
}

func NewRequestConn(db *DB) *RequestConn {
	return &RequestConn{db: db}
}

// Get returns the request's connection, checking one out on first call.
func (rc *RequestConn) Get(ctx context.Context) (*sqlx.Conn, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.done {
		return nil, fmt.Errorf("%w: request connection already released", ErrUnavailable)
	}

	if rc.conn == nil {
		conn, err := rc.db.Connx(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		rc.conn = conn
	}

	return rc.conn, nil
}

// Release returns the connection to the pool. Safe to call more than once;
// only the first call has an effect.
func (rc *RequestConn) Release() {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.done {
		return
	}
	rc.done = true

	if rc.conn != nil {
		if err := rc.conn.Close(); err != nil {
			log.Printf("failed to release request connection: %v", err)
		}
		rc.conn = nil
	}
}

type connKey struct{}

// WithConn attaches a request-scoped connection holder to the context.
func WithConn(ctx context.Context, rc *RequestConn) context.Context {
	return context.WithValue(ctx, connKey{}, rc)
}

// ConnFrom returns the request's connection holder, or nil outside a request.
func ConnFrom(ctx context.Context) *RequestConn {
	rc, ok := ctx.Value(connKey{}).(*RequestConn)
	if !ok {
		return nil
	}
	return rc
}

// QueryerFrom resolves the Queryer for a context: the request's dedicated
// connection when one is attached, the shared pool otherwise.
func (db *DB) QueryerFrom(ctx context.Context) (Queryer, error) {
	if rc := ConnFrom(ctx); rc != nil {
		conn, err := rc.Get(ctx)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
	return db.DB, nil
}
