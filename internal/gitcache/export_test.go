package gitcache

// NewRepo exports newRepo for testing.
var NewRepo = newRepo //nolint:gochecknoglobals // test export

// IsWithin exports isWithin for testing.
var IsWithin = isWithin //nolint:gochecknoglobals // test export
