package repositories

// Storage keys for the shopper's persisted state.
const (
	CartKey    = "freshHerbalCart"
	OrdersKey  = "freshHerbalOrders"
	ProfileKey = "freshHerbalUser"
)

// BlobStore defines the interface for key-value blob persistence.
// Values are stored as JSON blobs under a string key.
type BlobStore interface {
	// Load unmarshals the blob stored under key into out. It returns
	// false when no blob exists for the key.
	Load(key string, out any) (bool, error)
	// Save marshals value and stores it under key, replacing any
	// previous blob.
	Save(key string, value any) error
	// Delete removes the blob stored under key; absent keys are a no-op.
	Delete(key string) error
}
