package planning

import (
	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// Catalog índice de consulta O(1) construído a partir das listas planas do
// catálogo: codigo → item, SKU importado → SKU master, SKU do produto → ficha.
// É um snapshot imutável: deve ser reconstruído sempre que qualquer lista de
// entrada mudar (não há atualização incremental).
type Catalog struct {
	itens    map[string]*entity.ItemEstoque
	vinculos map[string]string
	fichas   map[string]*entity.FichaTecnica
	ordem    []*entity.ItemEstoque // ordem original de entrada, para iteração determinística
}

// NewCatalog constrói o índice. Função pura: sem efeitos colaterais, sem
// condições de erro — chaves ausentes apenas resultam em "não encontrado"
// nos cálculos seguintes.
func NewCatalog(itens []*entity.ItemEstoque, vinculos []*entity.VinculoSku, fichas []*entity.FichaTecnica) *Catalog {
	c := &Catalog{
		itens:    make(map[string]*entity.ItemEstoque, len(itens)),
		vinculos: make(map[string]string, len(vinculos)),
		fichas:   make(map[string]*entity.FichaTecnica, len(fichas)),
		ordem:    make([]*entity.ItemEstoque, 0, len(itens)),
	}
	for _, item := range itens {
		c.itens[item.Codigo] = item
		c.ordem = append(c.ordem, item)
	}
	for _, v := range vinculos {
		c.vinculos[v.SkuImportado] = v.SkuMaster
	}
	for _, f := range fichas {
		c.fichas[f.ProdutoSku] = f
	}
	return c
}

// Item devolve o item de estoque pelo código de negócio.
func (c *Catalog) Item(codigo string) (*entity.ItemEstoque, bool) {
	item, ok := c.itens[codigo]
	return item, ok
}

// SkuMaster resolve um SKU importado de marketplace para o SKU master.
func (c *Catalog) SkuMaster(skuImportado string) (string, bool) {
	sku, ok := c.vinculos[skuImportado]
	return sku, ok
}

// Ficha devolve a ficha técnica do produto, se houver.
func (c *Catalog) Ficha(produtoSku string) (*entity.FichaTecnica, bool) {
	f, ok := c.fichas[produtoSku]
	return f, ok
}

// ResolverItem resolve um SKU importado até o item master do catálogo
// (vínculo + item em um passo). false quando falta vínculo ou item.
func (c *Catalog) ResolverItem(skuImportado string) (*entity.ItemEstoque, bool) {
	sku, ok := c.vinculos[skuImportado]
	if !ok {
		return nil, false
	}
	item, ok := c.itens[sku]
	return item, ok
}

// Itens devolve os itens do catálogo na ordem original de entrada.
func (c *Catalog) Itens() []*entity.ItemEstoque {
	return c.ordem
}
