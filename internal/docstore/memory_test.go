package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mialde/Micheldekker/internal/common"
)

func TestMemorySetAndGet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionVacancies, "v1", Document{"title": "Operator"}))

	doc, err := store.Get(ctx, CollectionVacancies, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Operator", doc["title"])
	assert.Equal(t, "v1", doc["id"])
}

func TestMemoryGetMissing(t *testing.T) {
	store := NewMemory()
	_, err := store.Get(context.Background(), CollectionVacancies, "nope")
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestMemoryAddGeneratesID(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	id, err := store.Add(ctx, CollectionVacancies, Document{"title": "Operator"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := store.Get(ctx, CollectionVacancies, id)
	require.NoError(t, err)
	assert.Equal(t, id, doc["id"])
}

func TestMemoryUpdateMerges(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionVacancies, "v1", Document{"title": "Operator", "status": "draft"}))
	require.NoError(t, store.Update(ctx, CollectionVacancies, "v1", Document{"status": "active"}))

	doc, err := store.Get(ctx, CollectionVacancies, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Operator", doc["title"], "untouched fields survive a merge")
	assert.Equal(t, "active", doc["status"])
}

func TestMemoryUpdateMissing(t *testing.T) {
	store := NewMemory()
	err := store.Update(context.Background(), CollectionVacancies, "nope", Document{"status": "active"})
	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestMemorySetReplacesWholeDocument(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionUsers, "jan", Document{"username": "jan", "password": "old", "role_id": "editor"}))
	require.NoError(t, store.Set(ctx, CollectionUsers, "jan", Document{"username": "jan", "password": "new"}))

	doc, err := store.Get(ctx, CollectionUsers, "jan")
	require.NoError(t, err)
	assert.Equal(t, "new", doc["password"])
	_, hasRole := doc["role_id"]
	assert.False(t, hasRole, "replace drops fields missing from the new document")
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, CollectionRoles, "r1", Document{"name": "Editor"}))
	require.NoError(t, store.Delete(ctx, CollectionRoles, "r1"))
	require.NoError(t, store.Delete(ctx, CollectionRoles, "r1"))

	docs, err := store.List(ctx, CollectionRoles)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemorySubscribe(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	fired := 0
	cancel, err := store.Subscribe(ctx, CollectionVacancies, func() { fired++ }, nil)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, CollectionVacancies, "v1", Document{"title": "A"}))
	require.NoError(t, store.Set(ctx, CollectionRoles, "r1", Document{"name": "B"}))
	assert.Equal(t, 1, fired, "only the subscribed collection fires")

	cancel()
	require.NoError(t, store.Set(ctx, CollectionVacancies, "v2", Document{"title": "C"}))
	assert.Equal(t, 1, fired, "cancelled subscriptions stay silent")
}

func TestCollectionPath(t *testing.T) {
	assert.Equal(t, "artifacts/careers-portal/public/data/vacancies", CollectionPath("careers-portal", CollectionVacancies))
}
