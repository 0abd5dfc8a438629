package order

// Status values keep the persisted pt-BR vocabulary of the marketplace.
type Status string

const (
	StatusPending    Status = "PENDENTE"
	StatusProcessing Status = "PROCESSANDO"
	StatusShipped    Status = "ENVIADO"
	StatusDelivered  Status = "ENTREGUE"
	StatusCanceled   Status = "CANCELADO"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCanceled:
		return true
	default:
		return false
	}
}

// validNext is the transition adjacency. Shipped and delivered sub-orders are
// not cancellable here; returns go through a separate process.
var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusProcessing: true, StatusCanceled: true},
	StatusProcessing: {StatusShipped: true, StatusCanceled: true},
	StatusShipped:    {StatusDelivered: true},
	StatusDelivered:  {},
	StatusCanceled:   {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// Action is a seller-issued command against a sub-order.
type Action string

const (
	ActionMarkProcessing Action = "marcar_processando"
	ActionConfirmShip    Action = "confirmar_envio"
	ActionMarkDelivered  Action = "marcar_entregue"
	ActionCancel         Action = "cancelar"
)

// TargetStatus maps an action onto the status it drives toward.
func (a Action) TargetStatus() (Status, bool) {
	switch a {
	case ActionMarkProcessing:
		return StatusProcessing, true
	case ActionConfirmShip:
		return StatusShipped, true
	case ActionMarkDelivered:
		return StatusDelivered, true
	case ActionCancel:
		return StatusCanceled, true
	default:
		return "", false
	}
}

// statusRank orders statuses by progress for the aggregate roll-up.
var statusRank = map[Status]int{
	StatusPending:    0,
	StatusProcessing: 1,
	StatusShipped:    2,
	StatusDelivered:  3,
}

// RollUp derives the aggregate order status from its sub-orders: the lowest
// progress among non-cancelled items, or CANCELADO once every item is cancelled.
func RollUp(items []Status) Status {
	if len(items) == 0 {
		return StatusPending
	}

	lowest := -1
	allCanceled := true
	for _, st := range items {
		if st == StatusCanceled {
			continue
		}
		allCanceled = false
		r := statusRank[st]
		if lowest == -1 || r < lowest {
			lowest = r
		}
	}
	if allCanceled {
		return StatusCanceled
	}

	for st, r := range statusRank {
		if r == lowest {
			return st
		}
	}
	return StatusPending
}
