package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/store-performance-api/internal/domain"
)

func TestComposeScope_Janela(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		rangeToken string
		wantDays   int
	}{
		{name: "7d usa janela de 7 dias", rangeToken: "7d", wantDays: 7},
		{name: "90d usa janela de 90 dias", rangeToken: "90d", wantDays: 90},
		{name: "30d usa janela de 30 dias", rangeToken: "30d", wantDays: 30},
		{name: "token desconhecido cai no padrão de 30 dias", rangeToken: "15d", wantDays: 30},
		{name: "token ausente cai no padrão de 30 dias", rangeToken: "", wantDays: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := composeScopeAt(domain.Unfiltered(), domain.Unfiltered(), tt.rangeToken, now)

			assert.Equal(t, now, scope.To)
			assert.Equal(t, now.Add(-time.Duration(tt.wantDays)*24*time.Hour), scope.From)
			assert.True(t, scope.From.Before(scope.To))
		})
	}
}

func TestComposeScope_Filtros(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	scope := composeScopeAt(domain.EqualTo("store-1"), domain.Unfiltered(), "7d", now)

	storeID, filtered := scope.Store.Selected()
	assert.True(t, filtered)
	assert.Equal(t, "store-1", storeID)

	_, filtered = scope.Channel.Selected()
	assert.False(t, filtered)
}

func TestFilterFromParam(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantFiltered bool
		wantID       string
	}{
		{name: "valor ausente não filtra", raw: "", wantFiltered: false},
		{name: "token all não filtra", raw: "all", wantFiltered: false},
		{name: "identificador vira filtro de igualdade", raw: "42", wantFiltered: true, wantID: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := domain.FilterFromParam(tt.raw)

			id, filtered := filter.Selected()
			assert.Equal(t, tt.wantFiltered, filtered)
			if tt.wantFiltered {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "ausente vira o padrão 10", raw: "", want: 10},
		{name: "não numérico vira o padrão 10", raw: "abc", want: 10},
		{name: "numérico passa direto", raw: "25", want: 25},
		{name: "acima do teto passa direto e o clamp limita depois", raw: "500", want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLimit(tt.raw))
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 1, clampLimit(0))
	assert.Equal(t, 1, clampLimit(-3))
	assert.Equal(t, 10, clampLimit(10))
	assert.Equal(t, 50, clampLimit(50))
	assert.Equal(t, 50, clampLimit(500))
}
