package repository

// Error is the closed set of failures a repository may report.
// Driver errors are logged by the implementation and collapsed to ErrUnknown.
type Error int

const (
	ErrUnknown Error = iota
	ErrNotFound
)

func (e Error) String() string {
	switch e {
	case ErrUnknown:
		return "unknown error"
	case ErrNotFound:
		return "not found"
	}
	return "invalid repository error"
}
