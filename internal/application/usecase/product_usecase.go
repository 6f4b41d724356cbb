package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La existencia de la categoría
// la garantiza la FK; el repositorio traduce la violación a error de validación.
type ProductUseCase struct {
	repo repository.ProductRepository
	log  zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, log: log.With().Str("component", "product_usecase").Logger()}
}

// RegisterNew crea un producto activo.
func (uc *ProductUseCase) RegisterNew(ctx context.Context, in *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in == nil {
		return nil, domain.ErrProductInvalid
	}
	p, err := entity.NewProduct(entity.ProductFields{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Add(ctx, p)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", created.ID).Int64("category_id", created.CategoryID).Msg("producto creado")
	return toProductResponse(created), nil
}

// GetByID obtiene un producto activo con su categoría. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetAllActive lista los productos activos.
func (uc *ProductUseCase) GetAllActive(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update reemplaza los campos editables. (nil, nil) si el producto no existe o está inactivo.
func (uc *ProductUseCase) Update(ctx context.Context, in *dto.UpdateProductRequest, id int64) (*dto.ProductResponse, error) {
	if in == nil {
		return nil, domain.ErrProductInvalid
	}
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	err = p.Update(entity.ProductFields{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	out := toProductResponse(updated)
	out.ID = id
	uc.log.Info().Int64("id", id).Msg("producto actualizado")
	return out, nil
}

// DisableByID desactiva el producto y devuelve su proyección de lectura. (nil, nil) si no existe.
func (uc *ProductUseCase) DisableByID(ctx context.Context, id int64) (*dto.ProductReadResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	uc.log.Info().Int64("id", id).Msg("producto desactivado")
	return toProductReadResponse(p), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    toCategoryResponse(p.Category),
		ImageURL:    p.ImageURL,
	}
}

func toProductReadResponse(p *entity.Product) *dto.ProductReadResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductReadResponse{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    toCategoryReadResponse(p.Category),
		ImageURL:    p.ImageURL,
	}
}
