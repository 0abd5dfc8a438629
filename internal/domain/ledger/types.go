package ledger

// Tipo distinguishes ledger entries; the persisted values are the marketplace's
// pt-BR vocabulary.
type Tipo string

const (
	TipoVenda Tipo = "VENDA"
	TipoSaque Tipo = "SAQUE"
)

func (t Tipo) String() string {
	return string(t)
}

func (t Tipo) IsValid() bool {
	switch t {
	case TipoVenda, TipoSaque:
		return true
	default:
		return false
	}
}

type TransactionStatus string

const (
	StatusConcluido   TransactionStatus = "CONCLUIDO"
	StatusProcessando TransactionStatus = "PROCESSANDO"
)

func (s TransactionStatus) String() string {
	return string(s)
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusConcluido, StatusProcessando:
		return true
	default:
		return false
	}
}
