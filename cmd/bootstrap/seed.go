package bootstrap

import (
	"context"
	"fmt"
	"time"

	"cadcam-storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type demoProduct struct {
	name        string
	price       string
	description string
	category    string
	quantity    int
}

var demoCatalog = []demoProduct{
	{"Mastercam Mill", "4995.00", "2D, 3D and multiaxis milling toolpaths with Dynamic Motion roughing.", "CAM", 8},
	{"SOLIDWORKS Standard", "3995.00", "Parametric 3D CAD for parts, assemblies and 2D drawings.", "CAD", 15},
	{"Fusion 360", "680.00", "Cloud CAD, CAM and CAE in one subscription.", "CAD/CAM", 40},
	{"hyperMILL", "8900.00", "5-axis simultaneous milling with collision avoidance.", "CAM", 4},
	{"ESPRIT EDGE", "7500.00", "Knowledge-based CAM for mill-turn and Swiss-type machines.", "CAM", 3},
	{"CAMWorks", "3490.00", "Feature-based CAM fully integrated with SOLIDWORKS.", "CAM", 10},
	{"GibbsCAM", "4200.00", "Production milling and turning with an intuitive graphical workflow.", "CAM", 6},
	{"PowerMill", "9500.00", "High-speed and 5-axis machining for molds and dies.", "CAM", 2},
}

// Seed writes the demo catalog when the store is empty, or always when force
// is set. It returns the number of products written.
func (app *App) Seed(ctx context.Context, force bool) (int, error) {
	if existing := app.Store.ReadAll(ctx); len(existing) > 0 && !force {
		app.Log.Infof("Catalog already holds %d products, skipping seed", len(existing))
		return 0, nil
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	products := make([]entity.Product, 0, len(demoCatalog))
	for _, d := range demoCatalog {
		products = append(products, entity.Product{
			ID:          uuid.NewString(),
			Name:        d.name,
			Price:       decimal.RequireFromString(d.price),
			Description: d.description,
			Image:       entity.DefaultProductImage,
			Quantity:    d.quantity,
			Category:    d.category,
			Status:      entity.ProductStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := app.Store.WriteAll(ctx, products); err != nil {
		return 0, fmt.Errorf("failed to seed catalog: %w", err)
	}

	app.Log.Infof("Seeded %d demo products", len(products))
	return len(products), nil
}
