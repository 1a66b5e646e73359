package commands

// CollectEntries exports collectEntries for testing.
var CollectEntries = collectEntries //nolint:gochecknoglobals // test export

// CollectSubdirectories exports collectSubdirectories for testing.
var CollectSubdirectories = collectSubdirectories //nolint:gochecknoglobals // test export
