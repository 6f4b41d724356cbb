// Package pdf genera el catálogo de productos en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌───────────────────────────────────────────────┐
//	│  Título del catálogo         │  Fecha          │
//	│  ───────────────────────────────────────────  │
//	│  CATEGORÍA + descripción                       │
//	│  Producto | Descripción | Precio | Stock       │
//	│  ...                                           │
//	│  ───────────────────────────────────────────  │
//	│  Total de productos                            │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

var _ usecase.CatalogRenderer = (*CatalogGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CatalogGenerator implementa usecase.CatalogRenderer usando Maroto v2.
type CatalogGenerator struct{}

// NewCatalogGenerator construye el generador.
func NewCatalogGenerator() *CatalogGenerator { return &CatalogGenerator{} }

// Render genera el PDF y devuelve sus bytes.
func (g *CatalogGenerator) Render(catalog *dto.CatalogDTO) ([]byte, error) {
	if catalog == nil {
		return nil, fmt.Errorf("pdf: catálogo vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(catalog.Title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(catalog))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	total := 0
	for _, s := range catalog.Sections {
		m.AddRows(sectionRows(s)...)
		total += len(s.Products)
	}
	if total == 0 {
		m.AddRows(text.NewRow(10, "No hay productos activos.", props.Text{Top: 3, Color: colorGray}))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(text.NewRow(8, fmt.Sprintf("Total de productos: %d", total), props.Text{
		Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
	}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(catalog *dto.CatalogDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(text.New(catalog.Title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Fecha: "+catalog.GeneratedAt.Format("02/01/2006"), props.Text{
			Size: 8, Align: align.Right, Top: 4, Color: colorGray,
		})),
	)
}

// sectionRows: cabecera de la categoría, encabezado de tabla y una fila por producto.
func sectionRows(s dto.CatalogSectionDTO) []core.Row {
	rows := make([]core.Row, 0, len(s.Products)+3)
	rows = append(rows, row.New(12).Add(
		col.New(12).Add(
			text.New(s.Category.Name, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
			text.New(s.Category.Description, props.Text{Size: 8, Color: colorGray, Top: 8}),
		),
	))

	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Top: 1}))
	}
	rows = append(rows, row.New(6).Add(
		h("Producto", 3, align.Left),
		h("Descripción", 5, align.Left),
		h("Precio", 2, align.Right),
		h("Stock", 2, align.Right),
	))

	for _, p := range s.Products {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New(p.Description, props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(p.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(p.Stock.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	rows = append(rows, line.NewRow(2))
	return rows
}
