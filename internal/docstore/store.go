package docstore

// Package docstore models the remote document store the portal is built on:
// four collections of schemaless documents, addressed under the
// artifacts/{appId}/public/data/{collection} namespace, with live change
// notifications per collection.

import "context"

const (
	CollectionVacancies = "vacancies"
	CollectionUsers     = "app_users"
	CollectionRoles     = "roles"
	CollectionSettings  = "settings"
)

// Document is a single schemaless record. Implementations inject the
// document id under the "id" key on reads.
type Document map[string]any

// ChangeFunc is invoked after a collection changed remotely. ErrorFunc is
// invoked when a subscription fails; the subscription is not re-established
// and previously delivered data simply goes stale.
type (
	ChangeFunc func()
	ErrorFunc  func(error)
)

type Store interface {
	// Add stores doc under a generated id and returns it.
	Add(ctx context.Context, collection string, doc Document) (string, error)
	// Set stores doc under an explicit id, replacing any existing document.
	Set(ctx context.Context, collection, id string, doc Document) error
	// Update merges patch into the existing document.
	Update(ctx context.Context, collection, id string, patch Document) error
	Delete(ctx context.Context, collection, id string) error
	Get(ctx context.Context, collection, id string) (Document, error)
	List(ctx context.Context, collection string) ([]Document, error)
	// Subscribe registers live-update callbacks for a collection and
	// returns a teardown function. Teardown is also bound to ctx.
	Subscribe(ctx context.Context, collection string, onChange ChangeFunc, onError ErrorFunc) (func(), error)
}

// CollectionPath returns the namespaced path of a collection.
func CollectionPath(appID, collection string) string {
	return "artifacts/" + appID + "/public/data/" + collection
}
