package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/Mialde/Micheldekker/internal/common"
)

// Postgres persists documents in a single jsonb table keyed by full path.
// Live updates are fanned out over Redis pub/sub, one channel per
// collection path. Without a Redis client the store falls back to Postgres
// LISTEN/NOTIFY on the configured DSN; with neither, reads and writes still
// work but subscribers never fire.
type Postgres struct {
	db        *sql.DB
	redis     *redis.Client
	appID     string
	listenDSN string
}

func NewPostgres(db *sql.DB, redisClient *redis.Client, appID, listenDSN string) *Postgres {
	return &Postgres{db: db, redis: redisClient, appID: appID, listenDSN: listenDSN}
}

// EnsureSchema creates the backing table when absent.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS documents (
		path TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		body JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to ensure documents table", err)
	}
	_, err = s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection)`)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to ensure collection index", err)
	}
	return nil
}

func (s *Postgres) Add(ctx context.Context, collection string, doc Document) (string, error) {
	id := common.NewUUID().String()
	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Postgres) Set(ctx context.Context, collection, id string, doc Document) error {
	body, err := marshalBody(doc)
	if err != nil {
		return err
	}
	colPath := CollectionPath(s.appID, collection)
	_, err = s.db.ExecContext(ctx, `INSERT INTO documents (path, collection, body, updated_at) VALUES ($1, $2, $3, now())
		ON CONFLICT (path) DO UPDATE SET body = EXCLUDED.body, updated_at = now()`,
		colPath+"/"+id, colPath, body)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to set document", err)
	}
	s.publish(colPath)
	return nil
}

func (s *Postgres) Update(ctx context.Context, collection, id string, patch Document) error {
	body, err := marshalBody(patch)
	if err != nil {
		return err
	}
	colPath := CollectionPath(s.appID, collection)
	result, err := s.db.ExecContext(ctx, `UPDATE documents SET body = body || $1::jsonb, updated_at = now() WHERE path = $2`,
		body, colPath+"/"+id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update document", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "document not found", sql.ErrNoRows)
	}
	s.publish(colPath)
	return nil
}

func (s *Postgres) Delete(ctx context.Context, collection, id string) error {
	colPath := CollectionPath(s.appID, collection)
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE path = $1`, colPath+"/"+id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete document", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows > 0 {
		s.publish(colPath)
	}
	return nil
}

func (s *Postgres) Get(ctx context.Context, collection, id string) (Document, error) {
	colPath := CollectionPath(s.appID, collection)
	row := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE path = $1`, colPath+"/"+id)
	var body []byte
	if err := row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "document not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load document", err)
	}
	return unmarshalBody(body, id)
}

func (s *Postgres) List(ctx context.Context, collection string) ([]Document, error) {
	colPath := CollectionPath(s.appID, collection)
	rows, err := s.db.QueryContext(ctx, `SELECT path, body FROM documents WHERE collection = $1`, colPath)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list documents", err)
	}
	defer rows.Close()
	var docs []Document
	for rows.Next() {
		var path string
		var body []byte
		if err := rows.Scan(&path, &body); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan document", err)
		}
		doc, err := unmarshalBody(body, lastSegment(path))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list documents", err)
	}
	return docs, nil
}

func (s *Postgres) Subscribe(ctx context.Context, collection string, onChange ChangeFunc, onError ErrorFunc) (func(), error) {
	if s.redis == nil {
		if s.listenDSN != "" {
			return s.subscribeListenNotify(ctx, collection, onChange, onError)
		}
		return func() {}, nil
	}
	colPath := CollectionPath(s.appID, collection)
	pubsub := s.redis.Subscribe(ctx, colPath)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, common.NewError(common.CodeInternal, "failed to subscribe to collection", err)
	}
	done := make(chan struct{})
	go func() {
		ch := pubsub.Channel()
		for {
			select {
			case _, ok := <-ch:
				if !ok {
					select {
					case <-done:
					case <-ctx.Done():
					default:
						if onError != nil {
							onError(errors.New("collection subscription closed"))
						}
					}
					return
				}
				if onChange != nil {
					onChange()
				}
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()
	cancel := func() {
		close(done)
		_ = pubsub.Close()
	}
	return cancel, nil
}

// subscribeListenNotify is the Redis-free fallback: a dedicated lib/pq
// listener connection per collection channel.
func (s *Postgres) subscribeListenNotify(ctx context.Context, collection string, onChange ChangeFunc, onError ErrorFunc) (func(), error) {
	listener := pq.NewListener(s.listenDSN, 2*time.Second, time.Minute, nil)
	if err := listener.Listen(notifyChannel(collection)); err != nil {
		_ = listener.Close()
		return nil, common.NewError(common.CodeInternal, "failed to listen on collection channel", err)
	}
	done := make(chan struct{})
	go func() {
		defer listener.Close()
		for {
			select {
			case notification, ok := <-listener.Notify:
				if !ok {
					select {
					case <-done:
					case <-ctx.Done():
					default:
						if onError != nil {
							onError(errors.New("collection listener closed"))
						}
					}
					return
				}
				// A nil notification means the connection was re-established;
				// treat it as a change so a missed window is caught up.
				_ = notification
				if onChange != nil {
					onChange()
				}
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()
	cancel := func() {
		close(done)
	}
	return cancel, nil
}

// publish is fire-and-forget: a lost notification only delays mirrors until
// the next change on the same collection.
func (s *Postgres) publish(collectionPath string) {
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	if s.redis != nil {
		_ = s.redis.Publish(ctx, collectionPath, time.Now().UTC().Format(time.RFC3339Nano)).Err()
		return
	}
	if s.listenDSN != "" {
		_, _ = s.db.ExecContext(ctx, `SELECT pg_notify($1, $2)`, notifyChannel(lastSegment(collectionPath)), time.Now().UTC().Format(time.RFC3339Nano))
	}
}

// notifyChannel keeps channel names inside Postgres identifier limits; the
// collection name alone is enough because one database serves one app id.
func notifyChannel(collection string) string {
	return "documents_" + collection
}

func marshalBody(doc Document) ([]byte, error) {
	stripped := make(map[string]any, len(doc))
	for key, value := range doc {
		if key == "id" {
			continue
		}
		stripped[key] = value
	}
	body, err := json.Marshal(stripped)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode document", err)
	}
	return body, nil
}

func unmarshalBody(body []byte, id string) (Document, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode document", err)
	}
	doc["id"] = id
	return doc, nil
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
