package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/domain/entity"
)

// CreateItemEstoqueRequest criação/edição de item de catálogo.
type CreateItemEstoqueRequest struct {
	Codigo           string                 `json:"codigo"`
	Nome             string                 `json:"nome"`
	Tipo             string                 `json:"tipo"`    // insumo | produto | processado
	Unidade          string                 `json:"unidade"` // kg | un | m | L
	QuantidadeAtual  decimal.Decimal        `json:"quantidade_atual"`
	QuantidadeMinima decimal.Decimal        `json:"quantidade_minima"`
	Composicao       string                 `json:"composicao,omitempty"` // simples | kit
	CodigoSubstituto string                 `json:"codigo_substituto,omitempty"`
	ItensExpedicao   []entity.ItemExpedicao `json:"itens_expedicao,omitempty"`
}

// ItemEstoqueResponse item de catálogo na API.
type ItemEstoqueResponse struct {
	ID               string                 `json:"id"`
	Codigo           string                 `json:"codigo"`
	Nome             string                 `json:"nome"`
	Tipo             string                 `json:"tipo"`
	Unidade          string                 `json:"unidade"`
	QuantidadeAtual  decimal.Decimal        `json:"quantidade_atual"`
	QuantidadeMinima decimal.Decimal        `json:"quantidade_minima"`
	Composicao       string                 `json:"composicao,omitempty"`
	CodigoSubstituto string                 `json:"codigo_substituto,omitempty"`
	ItensExpedicao   []entity.ItemExpedicao `json:"itens_expedicao,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// AjusteEstoqueRequest ajuste manual de quantidade (delta com sinal).
type AjusteEstoqueRequest struct {
	Codigo string          `json:"codigo"`
	Delta  decimal.Decimal `json:"delta"`
}

// UpsertFichaRequest ficha técnica completa de um produto (substitui os itens).
type UpsertFichaRequest struct {
	ProdutoSku string             `json:"produto_sku"`
	Itens      []entity.ItemFicha `json:"itens"`
}

// FichaResponse ficha técnica na API.
type FichaResponse struct {
	ProdutoSku string             `json:"produto_sku"`
	Itens      []entity.ItemFicha `json:"itens"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// UpsertVinculoRequest vínculo SKU importado → SKU master.
type UpsertVinculoRequest struct {
	SkuImportado string `json:"sku_importado"`
	SkuMaster    string `json:"sku_master"`
}

// VinculoResponse vínculo na API.
type VinculoResponse struct {
	SkuImportado string    `json:"sku_importado"`
	SkuMaster    string    `json:"sku_master"`
	CreatedAt    time.Time `json:"created_at"`
}
