package entities

// ListedEntry is one row of a directory listing with its repository status.
type ListedEntry struct {
	Path  string
	Name  string
	IsDir bool
	Git   Git
}

// RepoSummaryRow is one row of a repository overview.
type RepoSummaryRow struct {
	Path    string
	Summary SubdirSummary
}
