package pubsub

// Topic names used across the client core. Protected views subscribe to
// TopicSessionChanged to learn when the session settles or flips state;
// the terminal frontend subscribes to TopicNotifications to surface
// transient success/error messages.
const (
	TopicSessionChanged = "session.changed"
	TopicNotifications  = "ui.notifications"
	TopicModalChanged   = "ui.modal.changed"
)
