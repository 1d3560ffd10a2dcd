package shared

// AggregateRoot is the consistency boundary of a subdomain. All
// modifications go through the root, which records domain events and
// carries an optimistic-lock version.
type AggregateRoot interface {
	// AggregateID returns the root's identity rendered as a string.
	AggregateID() string

	// Version returns the optimistic-lock version.
	Version() int

	// PullEvents returns and clears the recorded domain events.
	// The unit of work calls it once per transaction to feed the outbox.
	PullEvents() []DomainEvent
}
