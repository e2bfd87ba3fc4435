package dedupe

// Option configures a Set.
type Option func(*Set)

// WithMaxSize bounds how many IDs the set remembers before evicting
// the oldest. Non-positive values keep the default.
func WithMaxSize(n int) Option {
	return func(s *Set) {
		if n > 0 {
			s.maxSize = n
		}
	}
}
