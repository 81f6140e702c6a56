package domain

import "time"

// Filter é a escolha de filtro de uma dimensão (loja ou canal): ou não há
// filtro, ou há igualdade com um identificador. Substitui a comparação com a
// string mágica "all" que o frontend envia.
type Filter struct {
	id       string
	selected bool
}

// Unfiltered retorna o filtro que não restringe a dimensão.
func Unfiltered() Filter {
	return Filter{}
}

// EqualTo retorna um filtro de igualdade com o identificador informado. O
// identificador não é validado aqui: um id inexistente apenas não casa com
// nenhuma linha.
func EqualTo(id string) Filter {
	return Filter{id: id, selected: true}
}

// FilterFromParam normaliza o valor cru de um query param: ausente ou o
// token "all" significam sem filtro.
func FilterFromParam(raw string) Filter {
	if raw == "" || raw == "all" {
		return Unfiltered()
	}
	return EqualTo(raw)
}

// Selected retorna o identificador do filtro e se a dimensão está filtrada.
func (f Filter) Selected() (string, bool) {
	return f.id, f.selected
}

// Scope é o escopo de uma consulta: no máximo um filtro por dimensão e uma
// janela de tempo semiaberta [From, To). Os filtros são conjuntivos.
type Scope struct {
	Store   Filter
	Channel Filter
	From    time.Time
	To      time.Time
}
