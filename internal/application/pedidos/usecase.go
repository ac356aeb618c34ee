package pedidos

import (
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fulfila/fulfila-api/internal/application/dto"
	"github.com/fulfila/fulfila-api/internal/domain"
	"github.com/fulfila/fulfila-api/internal/domain/entity"
	"github.com/fulfila/fulfila-api/internal/domain/repository"
)

// LinhaPlanilha uma linha já extraída da planilha de pedidos, ainda sem
// identidade nem empresa.
type LinhaPlanilha struct {
	PedidoID string
	Rastreio string
	Sku      string
	Qty      decimal.Decimal
	Data     string
}

// PlanilhaParser porto de leitura de planilhas de pedidos. A implementação
// concreta (xlsx) vive na infraestrutura; o layout varia por canal.
type PlanilhaParser interface {
	Parse(r io.Reader, canal string) ([]LinhaPlanilha, error)
}

// PedidosUseCase importação e consulta de pedidos de venda.
type PedidosUseCase struct {
	pedidoRepo  repository.PedidoRepository
	vinculoRepo repository.VinculoSkuRepository
	parser      PlanilhaParser
}

// NewPedidosUseCase constrói o caso de uso.
func NewPedidosUseCase(pedidoRepo repository.PedidoRepository, vinculoRepo repository.VinculoSkuRepository, parser PlanilhaParser) *PedidosUseCase {
	return &PedidosUseCase{pedidoRepo: pedidoRepo, vinculoRepo: vinculoRepo, parser: parser}
}

func canalValido(canal string) bool {
	switch canal {
	case entity.CanalML, entity.CanalShopee, entity.CanalSite:
		return true
	}
	return false
}

// Importar lê a planilha do canal, persiste as linhas válidas e devolve o
// relatório da importação, inclusive os SKUs sem vínculo — essas linhas são
// gravadas mesmo assim (o vínculo pode ser criado depois), mas o operador
// precisa saber que hoje elas não entram nos cálculos.
func (uc *PedidosUseCase) Importar(empresaID, canal string, r io.Reader) (*dto.ImportacaoResponse, error) {
	if !canalValido(canal) {
		return nil, domain.ErrEntradaInvalida
	}
	linhas, err := uc.parser.Parse(r, canal)
	if err != nil {
		return nil, err
	}

	vinculos, err := uc.vinculoRepo.ListByEmpresa(empresaID)
	if err != nil {
		return nil, err
	}
	vinculados := make(map[string]bool, len(vinculos))
	for _, v := range vinculos {
		vinculados[v.SkuImportado] = true
	}

	now := time.Now()
	itens := make([]*entity.PedidoItem, 0, len(linhas))
	semVinculo := make(map[string]bool)
	ignoradas := 0
	for _, linha := range linhas {
		if linha.Sku == "" || !linha.Qty.IsPositive() {
			ignoradas++
			continue
		}
		if linha.PedidoID == "" && linha.Rastreio == "" {
			ignoradas++
			continue
		}
		if !vinculados[linha.Sku] {
			semVinculo[linha.Sku] = true
		}
		itens = append(itens, &entity.PedidoItem{
			ID:        uuid.New().String(),
			EmpresaID: empresaID,
			PedidoID:  linha.PedidoID,
			Rastreio:  linha.Rastreio,
			Sku:       linha.Sku,
			QtyFinal:  linha.Qty,
			Canal:     canal,
			Data:      linha.Data,
			CreatedAt: now,
		})
	}
	if len(itens) > 0 {
		if err := uc.pedidoRepo.CreateBatch(itens); err != nil {
			return nil, err
		}
	}

	skus := make([]string, 0, len(semVinculo))
	for sku := range semVinculo {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return &dto.ImportacaoResponse{
		LinhasImportadas:  len(itens),
		LinhasIgnoradas:   ignoradas,
		SkusNaoVinculados: skus,
		ImportadoEm:       now,
	}, nil
}

// List devolve linhas de pedido paginadas.
func (uc *PedidosUseCase) List(empresaID string, page dto.PageRequest) ([]*dto.PedidoItemResponse, error) {
	limit := page.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}
	itens, err := uc.pedidoRepo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PedidoItemResponse, 0, len(itens))
	for _, item := range itens {
		out = append(out, &dto.PedidoItemResponse{
			ID:       item.ID,
			PedidoID: item.PedidoID,
			Rastreio: item.Rastreio,
			Sku:      item.Sku,
			QtyFinal: item.QtyFinal,
			Canal:    item.Canal,
			Data:     item.Data,
		})
	}
	return out, nil
}

// Delete remove todas as linhas de um pedido.
func (uc *PedidosUseCase) Delete(empresaID, pedidoID string) error {
	if pedidoID == "" {
		return domain.ErrEntradaInvalida
	}
	return uc.pedidoRepo.DeleteByPedidoID(empresaID, pedidoID)
}
