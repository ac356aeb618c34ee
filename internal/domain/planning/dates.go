package planning

import (
	"strings"
	"time"
)

// Formatos de data vistos nas planilhas de marketplace (ML, Shopee, site).
var formatosData = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"02-01-2006",
}

// normalizarDia normaliza a data de uma linha de pedido para a chave de dia
// "2006-01-02". Datas malformadas devolvem ok=false e a linha não contribui
// para o cálculo (degradação tolerante, não é erro).
func normalizarDia(data string) (string, bool) {
	s := strings.TrimSpace(data)
	if s == "" {
		return "", false
	}
	for _, formato := range formatosData {
		if t, err := time.Parse(formato, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
