package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"sajilo-inventory/models"
)

// Catalog owns categories and products, including the stock invariant:
// Product.Quantity never goes below zero and changes only through
// AdjustStock.
type Catalog struct{ db *gorm.DB }

func NewCatalog(db *gorm.DB) *Catalog { return &Catalog{db: db} }

func (s *Catalog) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidRequest)
	}
	cat := models.Category{Name: name}
	if err := s.db.WithContext(ctx).Create(&cat).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: category %q", ErrDuplicateName, name)
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Catalog) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

type ProductInput struct {
	Name       string
	CategoryID uint
	Price      float64
	Quantity   int
	Image      string
}

func (s *Catalog) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidRequest)
	}
	if in.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if in.Quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	var cnt int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", in.CategoryID).Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt == 0 {
		return nil, fmt.Errorf("%w: id %d", ErrInvalidCategory, in.CategoryID)
	}

	p := models.Product{
		Name:       strings.TrimSpace(in.Name),
		CategoryID: in.CategoryID,
		Price:      in.Price,
		Quantity:   in.Quantity,
		Image:      in.Image,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Preload("Category").First(&p, p.ID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

type ProductFilter struct {
	CategoryID uint // 0 = all categories
	InStock    bool // only products with quantity > 0
}

func (s *Catalog) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Preload("Category").Order("name ASC")
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.InStock {
		q = q.Where("quantity > 0")
	}
	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Catalog) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).Preload("Category").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &p, nil
}

// AdjustStock applies delta to the product's quantity. It is the sole
// mutation path for stock. The guarded update leaves the row untouched
// when the delta would overdraw it, so two concurrent commits can never
// both drain the same units.
func AdjustStock(tx *gorm.DB, productID uint, delta int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND quantity + ? >= 0", productID, delta).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var cnt int64
		if err := tx.Model(&models.Product{}).Where("id = ?", productID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return fmt.Errorf("%w: product %d", ErrInsufficientStock, productID)
	}
	return nil
}

// AdjustStock on the catalog runs the guarded update in its own
// transaction and returns the resulting quantity.
func (s *Catalog) AdjustStock(ctx context.Context, productID uint, delta int) (int, error) {
	var newQty int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := AdjustStock(tx, productID, delta); err != nil {
			return err
		}
		var p models.Product
		if err := tx.First(&p, productID).Error; err != nil {
			return err
		}
		newQty = p.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newQty, nil
}

// SetStock is the administrative absolute restock from the product
// management screen.
func (s *Catalog) SetStock(ctx context.Context, productID uint, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	res := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", ErrNotFound, productID)
	}
	return nil
}
