package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/fulfila/fulfila-api/internal/application/pedidos"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// Aliases de cabeçalho por coluna canônica. Cada marketplace exporta a
// planilha com nomes próprios; normalizamos tudo para minúsculas sem
// sublinhados antes de procurar.
var headerAliases = map[string]string{
	"pedido":                   "pedido_id",
	"pedido id":                "pedido_id",
	"n.º de venda":             "pedido_id",
	"nº de venda":              "pedido_id",
	"numero do pedido":         "pedido_id",
	"número do pedido":         "pedido_id",
	"id do pedido":             "pedido_id",
	"order id":                 "pedido_id",
	"rastreio":                 "rastreio",
	"codigo de rastreio":       "rastreio",
	"código de rastreio":       "rastreio",
	"rastreamento":             "rastreio",
	"tracking number":          "rastreio",
	"sku":                      "sku",
	"sku do produto":           "sku",
	"codigo do anuncio":        "sku",
	"código do anúncio":        "sku",
	"numero de referencia sku": "sku",
	"número de referência sku": "sku",
	"quantidade":               "qty",
	"qtd":                      "qty",
	"qtd.":                     "qty",
	"unidades":                 "qty",
	"quantity":                 "qty",
	"data":                     "data",
	"data da venda":            "data",
	"data de criacao":          "data",
	"data de criação":          "data",
	"hora do pedido":           "data",
	"order creation date":      "data",
}

// PedidoParser lê planilhas de pedidos exportadas dos marketplaces.
// Implementa pedidos.PlanilhaParser.
type PedidoParser struct{}

// NewPedidoParser constrói o parser.
func NewPedidoParser() *PedidoParser {
	return &PedidoParser{}
}

var _ pedidos.PlanilhaParser = (*PedidoParser)(nil)

// Parse extrai as linhas de pedido da primeira aba da planilha. Linhas sem SKU
// são puladas aqui; as demais validações (quantidade, chave de agrupamento)
// ficam com o caso de uso, que as contabiliza no relatório da importação.
func (p *PedidoParser) Parse(r io.Reader, canal string) ([]pedidos.LinhaPlanilha, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir planilha: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ler linhas da aba: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("planilha vazia")
	}

	colMap := mapColumns(rows[0])
	if _, ok := colMap["sku"]; !ok {
		return nil, fmt.Errorf("coluna obrigatória ausente: sku")
	}
	if _, ok := colMap["qty"]; !ok {
		return nil, fmt.Errorf("coluna obrigatória ausente: quantidade")
	}
	// Exportações do site trazem só o número do pedido; marketplaces às vezes
	// só o rastreio. Pelo menos uma das duas chaves de agrupamento é exigida.
	_, temPedido := colMap["pedido_id"]
	_, temRastreio := colMap["rastreio"]
	if !temPedido && !temRastreio {
		return nil, fmt.Errorf("coluna obrigatória ausente: pedido ou rastreio")
	}

	out := make([]pedidos.LinhaPlanilha, 0, len(rows)-1)
	for index := 1; index < len(rows); index++ {
		cells := rows[index]
		sku := strings.TrimSpace(readCell(cells, colMap, "sku"))
		if sku == "" {
			continue
		}
		qtyRaw := strings.TrimSpace(readCell(cells, colMap, "qty"))
		qty, err := parseQty(qtyRaw, canal)
		if err != nil {
			return nil, fmt.Errorf("linha %d quantidade inválida: %w", index+1, err)
		}
		out = append(out, pedidos.LinhaPlanilha{
			PedidoID: strings.TrimSpace(readCell(cells, colMap, "pedido_id")),
			Rastreio: strings.TrimSpace(readCell(cells, colMap, "rastreio")),
			Sku:      sku,
			Qty:      qty,
			Data:     strings.TrimSpace(readCell(cells, colMap, "data")),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("planilha sem linhas de pedido")
	}
	return out, nil
}

// parseQty tolera separadores regionais: exportações do ML vêm com vírgula
// decimal ("2,0"), Shopee e site com ponto.
func parseQty(raw, canal string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, fmt.Errorf("valor vazio")
	}
	if canal == entity.CanalML {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	} else {
		raw = strings.ReplaceAll(raw, ",", "")
	}
	return decimal.NewFromString(raw)
}

func mapColumns(header []string) map[string]int {
	mapped := make(map[string]int)
	for idx, col := range header {
		normalized := normalizeHeader(col)
		if normalized == "" {
			continue
		}
		canonical, ok := headerAliases[normalized]
		if !ok {
			continue
		}
		if _, exists := mapped[canonical]; !exists {
			mapped[canonical] = idx
		}
	}
	return mapped
}

func normalizeHeader(raw string) string {
	value := strings.TrimSpace(raw)
	value = strings.TrimPrefix(value, "\ufeff")
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, "_", " ")
	value = strings.Join(strings.Fields(value), " ")
	return value
}

func readCell(row []string, colMap map[string]int, col string) string {
	idx, ok := colMap[col]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
