package entities

// StatusFlags is the raw status bitset reported by the query engine for one path.
// Index-side and working-tree-side changes are tracked independently.
type StatusFlags uint32

const (
	StatusIndexNew StatusFlags = 1 << iota
	StatusIndexModified
	StatusIndexDeleted
	StatusIndexRenamed
	StatusIndexTypeChange
	StatusWtNew
	StatusWtModified
	StatusWtDeleted
	StatusWtTypeChange
	StatusWtRenamed
	StatusIgnored
	StatusConflicted
)

// StatusCurrent is the empty flag set: the path is unchanged.
const StatusCurrent StatusFlags = 0

// Has reports whether every bit of other is set in f.
func (f StatusFlags) Has(other StatusFlags) bool {
	return f&other == other && other != 0
}

// IsIgnored reports whether the entry is only ignored. An ignored entry that also carries
// a change counts as a change.
func (f StatusFlags) IsIgnored() bool {
	return f == StatusIgnored
}

// StatusEntry pairs an absolute path with the raw flags the engine reported for it.
type StatusEntry struct {
	Path  string
	Flags StatusFlags
}

// GitStatus is the user-facing classification of one side (index or working tree).
type GitStatus int

const (
	// GitStatusUnknown means no repository covers the path.
	GitStatusUnknown GitStatus = iota
	GitStatusNotModified
	GitStatusNew
	GitStatusModified
	GitStatusDeleted
	GitStatusRenamed
	GitStatusTypeChange
	GitStatusIgnored
	GitStatusConflicted
)

// String returns the string representation of a GitStatus.
func (s GitStatus) String() string {
	switch s {
	case GitStatusNotModified:
		return "not-modified"
	case GitStatusNew:
		return "new"
	case GitStatusModified:
		return "modified"
	case GitStatusDeleted:
		return "deleted"
	case GitStatusRenamed:
		return "renamed"
	case GitStatusTypeChange:
		return "type-change"
	case GitStatusIgnored:
		return "ignored"
	case GitStatusConflicted:
		return "conflicted"
	default:
		return "unknown"
	}
}

// Git is the pair of classifications shown for one listed path.
// The zero value means "not tracked by any known repository".
type Git struct {
	Staged   GitStatus
	Unstaged GitStatus
}

// IsUnknown reports whether no repository answered for the path.
func (g Git) IsUnknown() bool {
	return g.Staged == GitStatusUnknown && g.Unstaged == GitStatusUnknown
}

type flagMapping struct {
	flag   StatusFlags
	status GitStatus
}

// Order matters: the first matching flag wins.
//
//nolint:gochecknoglobals // decode tables
var (
	indexPriority = []flagMapping{
		{StatusIndexNew, GitStatusNew},
		{StatusIndexModified, GitStatusModified},
		{StatusIndexDeleted, GitStatusDeleted},
		{StatusIndexRenamed, GitStatusRenamed},
		{StatusIndexTypeChange, GitStatusTypeChange},
	}
	workingTreePriority = []flagMapping{
		{StatusWtNew, GitStatusNew},
		{StatusWtModified, GitStatusModified},
		{StatusWtDeleted, GitStatusDeleted},
		{StatusWtRenamed, GitStatusRenamed},
		{StatusWtTypeChange, GitStatusTypeChange},
		{StatusIgnored, GitStatusIgnored},
		{StatusConflicted, GitStatusConflicted},
	}
)

func firstMatch(flags StatusFlags, table []flagMapping) GitStatus {
	for _, m := range table {
		if flags.Has(m.flag) {
			return m.status
		}
	}
	return GitStatusNotModified
}

// IndexStatus resolves the staged classification of an aggregated flag set.
// Ignored and conflicted paths are never reported as staged.
func IndexStatus(flags StatusFlags) GitStatus {
	return firstMatch(flags, indexPriority)
}

// WorkingTreeStatus resolves the unstaged classification of an aggregated flag set.
func WorkingTreeStatus(flags StatusFlags) GitStatus {
	return firstMatch(flags, workingTreePriority)
}

// NewGit classifies an aggregated flag set on both sides.
func NewGit(flags StatusFlags) Git {
	return Git{
		Staged:   IndexStatus(flags),
		Unstaged: WorkingTreeStatus(flags),
	}
}
