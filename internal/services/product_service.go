package services

import (
	"sort"
	"strings"

	"freshherbal/internal/models"
	"freshherbal/internal/repositories"
)

// Catalog sort tags.
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
)

// ProductFilter narrows and orders the catalog listing.
type ProductFilter struct {
	Category string
	Search   string
	SortBy   string
}

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all catalog products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct adds a product to the catalog.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// ListProducts returns the catalog filtered by category and
// case-insensitive name/description search, ordered by the sort tag.
func (s *ProductService) ListProducts(filter ProductFilter) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(product.Name), search) &&
			!strings.Contains(strings.ToLower(product.Description), search) {
			continue
		}
		filtered = append(filtered, product)
	}

	switch filter.SortBy {
	case SortByPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortByPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortByName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}
	return filtered, nil
}

// FeaturedProducts returns the products highlighted on the home page.
func (s *ProductService) FeaturedProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	featured := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.Featured {
			featured = append(featured, product)
		}
	}
	return featured, nil
}
