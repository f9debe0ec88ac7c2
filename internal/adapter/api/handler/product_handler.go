package handler

import (
	"github.com/labstack/echo/v4"

	"mfgmarket/internal/usecase"
	"mfgmarket/pkg/errors"
	"mfgmarket/pkg/response"
	"mfgmarket/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type createProductRequest struct {
	CategoryID      string  `json:"category_id"`
	Title           string  `json:"title" validate:"required,min=3,max=255"`
	Description     string  `json:"description" validate:"max=5000"`
	Material        string  `json:"material"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
	Unit            string  `json:"unit"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	PriceNegotiable bool    `json:"price_negotiable"`
	Condition       string  `json:"condition" validate:"omitempty,oneof=new like_new used scrap"`
	LocationCity    string  `json:"location_city"`
	LocationState   string  `json:"location_state"`
}

type updateProductRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=3,max=255"`
	Description     *string  `json:"description" validate:"omitempty,max=5000"`
	Quantity        *float64 `json:"quantity" validate:"omitempty,gt=0"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	PriceNegotiable *bool    `json:"price_negotiable"`
	Condition       *string  `json:"condition" validate:"omitempty,oneof=new like_new used scrap"`
	Status          *string  `json:"status" validate:"omitempty,oneof=active sold inactive"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	product, err := h.productUseCase.Create(c.Request().Context(), sellerID, usecase.CreateProductInput{
		CategoryID:      req.CategoryID,
		Title:           req.Title,
		Description:     req.Description,
		Material:        req.Material,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		Price:           req.Price,
		PriceNegotiable: req.PriceNegotiable,
		Condition:       req.Condition,
		LocationCity:    req.LocationCity,
		LocationState:   req.LocationState,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, params.Page, params.PageSize)
}

func (h *ProductHandler) GetByID(c echo.Context) error {
	productID := c.Param("id")

	// OptionalAuth: the owner viewing their own listing does not bump the
	// view counter.
	viewerID, _ := c.Get("uid").(string)

	product, err := h.productUseCase.GetByID(c.Request().Context(), productID, viewerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	productID := c.Param("id")
	sellerID := c.Get("uid").(string)

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Update(c.Request().Context(), productID, sellerID, usecase.UpdateProductInput{
		Title:           req.Title,
		Description:     req.Description,
		Quantity:        req.Quantity,
		Price:           req.Price,
		PriceNegotiable: req.PriceNegotiable,
		Condition:       req.Condition,
		Status:          req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	productID := c.Param("id")
	sellerID := c.Get("uid").(string)

	if err := h.productUseCase.Delete(c.Request().Context(), productID, sellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Product removed",
	})
}

func (h *ProductHandler) UploadImage(c echo.Context) error {
	productID := c.Param("id")
	sellerID := c.Get("uid").(string)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.Validation("Image file is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Validation("Failed to read uploaded file", err))
	}
	defer file.Close()

	image, err := h.productUseCase.UploadImage(c.Request().Context(), productID, sellerID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, image)
}

func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.productUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}
