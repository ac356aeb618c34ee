package entity

import "time"

// VinculoSku mapeia um SKU importado de marketplace (muitos) para exatamente
// um ItemEstoque.Codigo master (um). Criado pelos operadores ao conciliar a
// importação; sem vínculo, a linha do pedido não resolve para o catálogo e
// fica fora da explosão de materiais.
type VinculoSku struct {
	ID           string
	EmpresaID    string
	SkuImportado string
	SkuMaster    string
	CreatedAt    time.Time
}
