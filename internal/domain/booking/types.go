package booking

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further status transitions are allowed.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

type Branch string

const (
	BranchMain   Branch = "main"
	BranchAnnex  Branch = "annex"
	BranchUptown Branch = "uptown"
)

func (b Branch) String() string {
	return string(b)
}

func (b Branch) IsValid() bool {
	switch b {
	case BranchMain, BranchAnnex, BranchUptown:
		return true
	default:
		return false
	}
}
