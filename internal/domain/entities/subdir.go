package entities

// SubdirStatus is the coarse clean/dirty classification of a repository directory.
type SubdirStatus int

const (
	// SubdirStatusNone means the caller did not ask for a status.
	SubdirStatusNone SubdirStatus = iota
	SubdirStatusClean
	SubdirStatusDirty
	SubdirStatusNoRepository
)

// String returns the string representation of a SubdirStatus.
func (s SubdirStatus) String() string {
	switch s {
	case SubdirStatusClean:
		return "clean"
	case SubdirStatusDirty:
		return "dirty"
	case SubdirStatusNoRepository:
		return "no-repository"
	default:
		return "none"
	}
}

// SubdirSummary describes one directory that may itself be a repository root.
// An empty Branch means detached HEAD, no commits yet, or no repository.
type SubdirSummary struct {
	Status SubdirStatus
	Branch string
}
