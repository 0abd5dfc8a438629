package reservation

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusConsumed Status = "CONSUMED"
	StatusExpired  Status = "EXPIRED"
	StatusReleased Status = "RELEASED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusConsumed, StatusExpired, StatusReleased:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the reservation can never change again.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusConsumed, StatusExpired, StatusReleased:
		return true
	case StatusActive:
		return false
	default:
		return false
	}
}
