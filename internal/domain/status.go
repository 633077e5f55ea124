package domain

// Status is the order lifecycle enum.
type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPending, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether an order may move from s to next. Every
// in-enum transition is currently legal; a stricter lifecycle graph only needs
// to change this predicate.
func (s Status) CanTransitionTo(next Status) bool {
	return s.IsValid() && next.IsValid()
}
