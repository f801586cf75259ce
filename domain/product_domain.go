package domain

import (
	"errors"

	"freshtrack/entities"
)

var (
	MessageSuccessAddProduct     = "product added successfully"
	MessageSuccessAddProducts    = "products added successfully"
	MessageSuccessDeleteProduct  = "product deleted successfully"
	MessageSuccessGetProducts    = "products retrieved successfully"
	MessageSuccessGetDashboard   = "dashboard retrieved successfully"
	MessageSuccessImportProducts = "products imported successfully"
	MessageSuccessExportProducts = "products exported successfully"

	MessageFailedAddProduct     = "failed to add product"
	MessageFailedDeleteProduct  = "failed to delete product"
	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedGetDashboard   = "failed to retrieve dashboard"
	MessageFailedImportProducts = "failed to import products"
	MessageFailedExportProducts = "failed to export products"

	ErrProductNotFound       = errors.New("product not found")
	ErrMissingRequiredFields = errors.New("name, category and expiration date are required")
	ErrInvalidDate           = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNegativePrice         = errors.New("price must not be negative")
	ErrEmptyImport           = errors.New("import payload contains no products")
)

type (
	AddProductRequest struct {
		Name           string   `json:"name" validate:"required"`
		Category       string   `json:"category" validate:"required"`
		PurchaseDate   string   `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
		ExpirationDate string   `json:"expiration_date" validate:"required,datetime=2006-01-02"`
		Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	}

	ProductResponse struct {
		ID             string   `json:"id"`
		Name           string   `json:"name"`
		Category       string   `json:"category"`
		PurchaseDate   string   `json:"purchase_date,omitempty"`
		ExpirationDate string   `json:"expiration_date"`
		Price          *float64 `json:"price,omitempty"`
		Status         string   `json:"status"`
		RemainingDays  int      `json:"remaining_days"`
		TotalDays      int      `json:"total_days"`
		ElapsedDays    int      `json:"elapsed_days"`
		Progress       float64  `json:"progress"`
		ExpiryLabel    string   `json:"expiry_label"`
	}

	ListProductsQuery struct {
		Search   string
		Category string
		Status   string
	}

	StatusCountsResponse struct {
		Fresh    int `json:"fresh"`
		Expiring int `json:"expiring"`
		Expired  int `json:"expired"`
		Total    int `json:"total"`
	}

	CategoryCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}

	DashboardResponse struct {
		Counts     StatusCountsResponse `json:"counts"`
		Categories []CategoryCount      `json:"categories"`
		Upcoming   []ProductResponse    `json:"upcoming"`
	}

	ImportProductsRequest struct {
		Products []entities.Product `json:"products" validate:"required,min=1"`
	}
)
