package entities

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export

// ExpandEnv exports expandEnv for testing.
var ExpandEnv = expandEnv //nolint:gochecknoglobals // test export
