package docstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Mialde/Micheldekker/internal/common"
)

// Memory implements Store in process, with synchronous change delivery.
// It backs tests and token-free local development.
type Memory struct {
	mu          sync.Mutex
	collections map[string]map[string]Document
	subscribers map[string][]*memorySub
}

type memorySub struct {
	onChange ChangeFunc
	closed   bool
}

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]Document),
		subscribers: make(map[string][]*memorySub),
	}
}

func (s *Memory) Add(ctx context.Context, collection string, doc Document) (string, error) {
	id := common.NewUUID().String()
	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Memory) Set(ctx context.Context, collection, id string, doc Document) error {
	s.mu.Lock()
	col := s.collections[collection]
	if col == nil {
		col = make(map[string]Document)
		s.collections[collection] = col
	}
	col[id] = cloneDocument(doc, id)
	s.mu.Unlock()
	s.notify(collection)
	return nil
}

func (s *Memory) Update(ctx context.Context, collection, id string, patch Document) error {
	s.mu.Lock()
	col := s.collections[collection]
	existing, ok := col[id]
	if !ok {
		s.mu.Unlock()
		return common.NewError(common.CodeNotFound, "document not found", nil)
	}
	merged := cloneDocument(existing, id)
	for key, value := range patch {
		if key == "id" {
			continue
		}
		merged[key] = value
	}
	col[id] = merged
	s.mu.Unlock()
	s.notify(collection)
	return nil
}

func (s *Memory) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	col := s.collections[collection]
	_, ok := col[id]
	if ok {
		delete(col, id)
	}
	s.mu.Unlock()
	if ok {
		s.notify(collection)
	}
	return nil
}

func (s *Memory) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "document not found", nil)
	}
	return cloneDocument(doc, id), nil
}

func (s *Memory) List(ctx context.Context, collection string) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.collections[collection]
	docs := make([]Document, 0, len(col))
	for id, doc := range col {
		docs = append(docs, cloneDocument(doc, id))
	}
	return docs, nil
}

func (s *Memory) Subscribe(ctx context.Context, collection string, onChange ChangeFunc, onError ErrorFunc) (func(), error) {
	sub := &memorySub{onChange: onChange}
	s.mu.Lock()
	s.subscribers[collection] = append(s.subscribers[collection], sub)
	s.mu.Unlock()
	cancel := func() {
		s.mu.Lock()
		sub.closed = true
		s.mu.Unlock()
	}
	if ctx != nil && ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			cancel()
		}()
	}
	return cancel, nil
}

// notify runs callbacks outside the store lock so a subscriber may read the
// collection it was notified about.
func (s *Memory) notify(collection string) {
	s.mu.Lock()
	subs := make([]*memorySub, 0, len(s.subscribers[collection]))
	for _, sub := range s.subscribers[collection] {
		if !sub.closed {
			subs = append(subs, sub)
		}
	}
	s.mu.Unlock()
	for _, sub := range subs {
		if sub.onChange != nil {
			sub.onChange()
		}
	}
}

// cloneDocument deep-copies through JSON so stored state matches what the
// Postgres implementation round-trips.
func cloneDocument(doc Document, id string) Document {
	body, err := json.Marshal(doc)
	if err != nil {
		copied := make(Document, len(doc)+1)
		for key, value := range doc {
			copied[key] = value
		}
		copied["id"] = id
		return copied
	}
	var copied Document
	_ = json.Unmarshal(body, &copied)
	if copied == nil {
		copied = make(Document, 1)
	}
	copied["id"] = id
	return copied
}
