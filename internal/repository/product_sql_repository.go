package repository

import (
	"context"
	"fmt"
	"time"

	"cadcam-storefront/internal/domain/entity"
	domainRepo "cadcam-storefront/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// productRow is one catalog entry in SQL storage. Position keeps the
// collection order of the JSON layout.
type productRow struct {
	ID          string          `gorm:"type:varchar(36);primaryKey"`
	Position    int             `gorm:"not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string          `gorm:"type:text"`
	Image       string          `gorm:"type:text"`
	Quantity    int             `gorm:"default:0"`
	Category    string          `gorm:"type:varchar(100);index"`
	Status      string          `gorm:"type:varchar(20)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime:false"`
}

func (productRow) TableName() string {
	return "products"
}

// AutoMigrate creates or updates the products table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&productRow{})
}

type productSQLRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewProductSQLRepository(db *gorm.DB, log *logrus.Logger) domainRepo.ProductRepository {
	return &productSQLRepository{db: db, log: log}
}

func (r *productSQLRepository) ReadAll(ctx context.Context) []entity.Product {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("position").Find(&rows).Error; err != nil {
		r.log.Warnf("Failed to read products table: %+v", err)
		return []entity.Product{}
	}

	products := make([]entity.Product, len(rows))
	for i, row := range rows {
		products[i] = entity.Product{
			ID:          row.ID,
			Name:        row.Name,
			Price:       row.Price,
			Description: row.Description,
			Image:       row.Image,
			Quantity:    row.Quantity,
			Category:    row.Category,
			Status:      entity.ProductStatus(row.Status),
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
	}
	return products
}

// WriteAll replaces every row in one transaction.
func (r *productSQLRepository) WriteAll(ctx context.Context, products []entity.Product) error {
	rows := make([]productRow, len(products))
	for i, p := range products {
		rows[i] = productRow{
			ID:          p.ID,
			Position:    i,
			Name:        p.Name,
			Price:       p.Price,
			Description: p.Description,
			Image:       p.Image,
			Quantity:    p.Quantity,
			Category:    p.Category,
			Status:      string(p.Status),
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&productRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return fmt.Errorf("replace products table: %w", err)
	}
	return nil
}
