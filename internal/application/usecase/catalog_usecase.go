package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CatalogPDFUseCase exporta el catálogo de productos activos, agrupados por categoría.
type CatalogPDFUseCase struct {
	tx       CatalogTxRunner
	renderer CatalogRenderer
	title    string
	now      func() time.Time
	log      zerolog.Logger
}

// NewCatalogPDFUseCase construye el caso de uso. title aparece en la cabecera del documento.
func NewCatalogPDFUseCase(tx CatalogTxRunner, renderer CatalogRenderer, title string, log zerolog.Logger) *CatalogPDFUseCase {
	return &CatalogPDFUseCase{
		tx:       tx,
		renderer: renderer,
		title:    title,
		now:      time.Now,
		log:      log.With().Str("component", "catalog_usecase").Logger(),
	}
}

// Build arma el catálogo leyendo categorías y productos en la misma transacción.
// Las categorías sin productos activos se omiten.
func (uc *CatalogPDFUseCase) Build(ctx context.Context) (*dto.CatalogDTO, error) {
	catalog := &dto.CatalogDTO{Title: uc.title, GeneratedAt: uc.now()}
	err := uc.tx.RunCatalog(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
		categories, err := categoryRepo.GetAll(ctx)
		if err != nil {
			return err
		}
		products, err := productRepo.GetAll(ctx)
		if err != nil {
			return err
		}
		byCategory := make(map[int64][]dto.CatalogItemDTO, len(categories))
		for _, p := range products {
			byCategory[p.CategoryID] = append(byCategory[p.CategoryID], dto.CatalogItemDTO{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Stock:       p.Stock,
			})
		}
		for _, c := range categories {
			items := byCategory[c.ID]
			if len(items) == 0 {
				continue
			}
			catalog.Sections = append(catalog.Sections, dto.CatalogSectionDTO{
				Category: *toCategoryResponse(c),
				Products: items,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: leer productos: %w", err)
	}
	return catalog, nil
}

// Generate devuelve el PDF del catálogo y el nombre de archivo sugerido.
func (uc *CatalogPDFUseCase) Generate(ctx context.Context) ([]byte, string, error) {
	catalog, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.renderer.Render(catalog)
	if err != nil {
		return nil, "", fmt.Errorf("catalog: generar pdf: %w", err)
	}
	uc.log.Info().Int("sections", len(catalog.Sections)).Int("bytes", len(doc)).Msg("catálogo generado")
	return doc, fmt.Sprintf("catalogo-%s.pdf", catalog.GeneratedAt.Format("20060102")), nil
}
