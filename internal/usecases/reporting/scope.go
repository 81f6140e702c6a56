package reporting

import (
	"strconv"
	"time"

	"github.com/vfg2006/store-performance-api/internal/domain"
)

// Tokens de período aceitos pela API. Qualquer outro valor, inclusive
// ausente, cai no período padrão de 30 dias; token inválido nunca é erro.
const (
	RangeWeek    = "7d"
	RangeMonth   = "30d"
	RangeQuarter = "90d"
)

const (
	defaultRangeDays = 30
	defaultTopLimit  = 10
	maxTopLimit      = 50
)

// ComposeScope monta o escopo da consulta a partir dos filtros e do token de
// período. A janela é [now-duração, now), com now recalculado a cada chamada
// para a janela não derivar em processos de vida longa.
func ComposeScope(store, channel domain.Filter, rangeToken string) domain.Scope {
	return composeScopeAt(store, channel, rangeToken, time.Now().UTC())
}

func composeScopeAt(store, channel domain.Filter, rangeToken string, now time.Time) domain.Scope {
	duration := rangeDuration(rangeToken)

	return domain.Scope{
		Store:   store,
		Channel: channel,
		From:    now.Add(-duration),
		To:      now,
	}
}

func rangeDuration(rangeToken string) time.Duration {
	switch rangeToken {
	case RangeWeek:
		return 7 * 24 * time.Hour
	case RangeQuarter:
		return 90 * 24 * time.Hour
	default:
		return defaultRangeDays * 24 * time.Hour
	}
}

// ParseLimit interpreta o limite cru do ranking: não numérico ou ausente
// vira o padrão 10. O valor retornado ainda passa pelo clamp em [1, 50].
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return defaultTopLimit
	}
	return limit
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxTopLimit {
		return maxTopLimit
	}
	return limit
}
