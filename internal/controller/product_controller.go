package controller

import (
	"errors"
	"net/http"

	"admin-dashboard-service/internal/dto"
	"admin-dashboard-service/internal/model"
	"admin-dashboard-service/internal/repository"
	"admin-dashboard-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductController cubre el CRUD de productos. Responde el registro en
// JSON cuando sale bien y {message} cuando no: 400 si el pedido vino
// mal armado, 502 si falló el almacén.
type ProductController struct {
	Service *service.ProductService
}

func NewProductController(s *service.ProductService) *ProductController {
	return &ProductController{Service: s}
}

// GET /api/products — lista con categoría e imagen resueltas.
func (ctl *ProductController) List(c *gin.Context) {
	products, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "store operation failed"})
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// POST /api/products
func (ctl *ProductController) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	product, err := ctl.Service.Create(c.Request.Context(), model.Product{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Image:      req.Image,
		CategoryID: req.Category,
	})
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PUT /api/products
func (ctl *ProductController) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	product, err := ctl.Service.Update(c.Request.Context(), model.Product{
		ID:         req.ID,
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		Image:      req.Image,
		CategoryID: req.Category,
	})
	if err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /api/products
func (ctl *ProductController) Delete(c *gin.Context) {
	var req dto.DeleteProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := ctl.Service.Delete(c.Request.Context(), req.ID); err != nil {
		ctl.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}

func (ctl *ProductController) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product data"})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"message": "store operation failed"})
	}
}
