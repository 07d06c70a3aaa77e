package controller

import (
	"errors"
	"net/http"

	"admin-dashboard-service/internal/dto"
	"admin-dashboard-service/internal/repository"
	"admin-dashboard-service/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardController expone el view-model de órdenes por HTTP. Los
// fallos del almacén se convierten acá en notificaciones genéricas,
// nunca suben como errores sin manejar ni exponen detalle interno.
type DashboardController struct {
	Dashboard *service.Dashboard
}

func NewDashboardController(d *service.Dashboard) *DashboardController {
	return &DashboardController{Dashboard: d}
}

// GET /admin/dashboard — recarga desde el almacén y devuelve la vista
// completa: órdenes, métricas y series para las gráficas.
func (ctl *DashboardController) GetDashboard(c *gin.Context) {
	if err := ctl.Dashboard.Load(c.Request.Context()); err != nil {
		// la colección quedó vacía; el usuario puede reintentar manualmente
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     ctl.Dashboard.FilteredOrders(),
		"filter":     ctl.Dashboard.Filter(),
		"metrics":    ctl.Dashboard.Metrics(),
		"salesByDay": ctl.Dashboard.SalesByDay(),
	})
}

// GET /admin/orders?status=... — lista filtrada; el query param cambia
// el filtro activo antes de derivar.
func (ctl *DashboardController) GetOrders(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		ctl.Dashboard.SetFilter(status)
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": ctl.Dashboard.FilteredOrders(),
		"filter": ctl.Dashboard.Filter(),
	})
}

// GET /admin/metrics — agregados globales, el filtro no influye.
func (ctl *DashboardController) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Dashboard.Metrics())
}

// GET /admin/customers — clientes distintos por email exacto.
func (ctl *DashboardController) GetCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Dashboard.Customers())
}

// POST /admin/orders/:orderId/toggle — expande o colapsa el detalle.
func (ctl *DashboardController) ToggleOrder(c *gin.Context) {
	ctl.Dashboard.ToggleExpanded(c.Param("orderId"))

	resp := gin.H{"expandedOrderId": ctl.Dashboard.ExpandedOrderID()}
	if order, ok := ctl.Dashboard.ExpandedOrder(); ok {
		resp["order"] = order
	}
	c.JSON(http.StatusOK, resp)
}

// PATCH /admin/orders/:orderId/status
func (ctl *DashboardController) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	orderID := c.Param("orderId")
	if err := ctl.Dashboard.ChangeStatus(c.Request.Context(), orderID, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not update order status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "the order is now " + req.Status})
}

// DELETE /admin/orders/:orderId — la confirmación previa es asunto de
// la capa de presentación; acá se borra directo.
func (ctl *DashboardController) DeleteOrder(c *gin.Context) {
	orderID := c.Param("orderId")
	if err := ctl.Dashboard.Remove(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
}
