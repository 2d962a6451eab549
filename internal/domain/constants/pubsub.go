// Package constants holds values shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

// Message attributes set on published notification events.
const (
	AttrRequestID        = "request_id"
	AttrUserID           = "user_id"
	AttrNotificationType = "notification_type"
)
