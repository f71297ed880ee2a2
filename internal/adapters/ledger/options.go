package ledger

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithEventsFileName overrides the events ledger file name.
func WithEventsFileName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.eventsFile = name
		}
	}
}

// WithPlaysFileName overrides the plays ledger file name.
func WithPlaysFileName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.playsFile = name
		}
	}
}
