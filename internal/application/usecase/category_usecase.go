package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías. El borrado es lógico.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	log  zerolog.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, log zerolog.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, log: log.With().Str("component", "category_usecase").Logger()}
}

// RegisterNew crea una categoría activa.
func (uc *CategoryUseCase) RegisterNew(ctx context.Context, in *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in == nil {
		return nil, domain.ErrCategoryInvalid
	}
	c, err := entity.NewCategory(in.Name, in.Description)
	if err != nil {
		return nil, err
	}
	created, err := uc.repo.Add(ctx, c)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", created.ID).Msg("categoría creada")
	return toCategoryResponse(created), nil
}

// GetByID obtiene una categoría activa. (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetAllActive lista las categorías activas.
func (uc *CategoryUseCase) GetAllActive(ctx context.Context) ([]*dto.CategoryResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Update reemplaza nombre y descripción. (nil, nil) si la categoría no existe o está inactiva.
func (uc *CategoryUseCase) Update(ctx context.Context, in *dto.UpdateCategoryRequest, id int64) (*dto.CategoryResponse, error) {
	if in == nil {
		return nil, domain.ErrCategoryInvalid
	}
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if err := c.Update(in.Name, in.Description); err != nil {
		return nil, err
	}
	updated, err := uc.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	out := toCategoryResponse(updated)
	out.ID = id
	uc.log.Info().Int64("id", id).Msg("categoría actualizada")
	return out, nil
}

// DisableByID desactiva la categoría y devuelve su proyección de lectura. (nil, nil) si no existe.
func (uc *CategoryUseCase) DisableByID(ctx context.Context, id int64) (*dto.CategoryReadResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	uc.log.Info().Int64("id", id).Msg("categoría desactivada")
	return toCategoryReadResponse(c), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func toCategoryReadResponse(c *entity.Category) *dto.CategoryReadResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryReadResponse{Name: c.Name, Description: c.Description}
}
