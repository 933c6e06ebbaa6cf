package constants

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
