package service

import (
	"context"
	"sync"

	"admin-dashboard-service/internal/dto"
	"admin-dashboard-service/internal/model"
)

// Interfaz que debe implementar repository
type OrderRepository interface {
	FindAll(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	Delete(ctx context.Context, orderID string) error
}

// FilterAll muestra todas las órdenes sin importar el estado.
const FilterAll = "All"

// Dashboard es el view-model de órdenes: guarda la colección traída del
// almacén, el filtro de estado activo y la orden expandida. Las vistas
// derivadas (lista filtrada, métricas, series) se recalculan en cada
// lectura, nunca se cachean. Toda mutación pasa primero por el almacén
// y recién al confirmarse se refleja en la copia local.
type Dashboard struct {
	mu   sync.Mutex
	repo OrderRepository

	orders       []model.Order
	statusFilter string
	expandedID   string
}

func NewDashboard(repo OrderRepository) *Dashboard {
	return &Dashboard{
		repo:         repo,
		statusFilter: FilterAll,
	}
}

// Load reemplaza la colección completa con lo que devuelva el almacén y
// colapsa cualquier orden expandida. Si la lectura falla, la colección
// queda vacía: "no hay órdenes disponibles" no es lo mismo que "hay cero
// órdenes", y eso lo distingue el error devuelto.
func (d *Dashboard) Load(ctx context.Context) error {
	orders, err := d.repo.FindAll(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.expandedID = ""
	if err != nil {
		d.orders = nil
		return err
	}
	d.orders = orders
	return nil
}

// SetFilter es un cambio de estado puro, no toca el almacén.
func (d *Dashboard) SetFilter(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statusFilter = value
}

func (d *Dashboard) Filter() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.statusFilter
}

// ToggleExpanded expande la orden indicada, o la colapsa si ya estaba
// expandida. A lo sumo una orden está expandida a la vez.
func (d *Dashboard) ToggleExpanded(orderID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.expandedID == orderID {
		d.expandedID = ""
		return
	}
	d.expandedID = orderID
}

func (d *Dashboard) ExpandedOrderID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.expandedID
}

// ExpandedOrder devuelve la orden expandida, si hay una y sigue en la
// colección.
func (d *Dashboard) ExpandedOrder() (model.Order, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.expandedID == "" {
		return model.Order{}, false
	}
	for _, o := range d.orders {
		if o.ID == d.expandedID {
			return o, true
		}
	}
	return model.Order{}, false
}

// Orders devuelve una copia de la colección completa en el orden del
// almacén.
func (d *Dashboard) Orders() []model.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Order, len(d.orders))
	copy(out, d.orders)
	return out
}

// FilteredOrders deriva la sublista cuyo status coincide con el filtro
// activo, preservando el orden original. Con FilterAll devuelve todo.
func (d *Dashboard) FilteredOrders() []model.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.statusFilter == FilterAll {
		out := make([]model.Order, len(d.orders))
		copy(out, d.orders)
		return out
	}
	out := make([]model.Order, 0)
	for _, o := range d.orders {
		if o.Status == d.statusFilter {
			out = append(out, o)
		}
	}
	return out
}

// Metrics deriva los tres agregados SIEMPRE sobre la colección completa,
// el filtro no influye. Los emails se comparan de forma exacta
// (sensible a mayúsculas), igual que la fuente de datos.
func (d *Dashboard) Metrics() dto.MetricsResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	emails := make(map[string]struct{})
	var earnings float64
	for _, o := range d.orders {
		emails[o.Customer.Email] = struct{}{}
		earnings += o.Total
	}
	return dto.MetricsResponse{
		TotalOrders:    len(d.orders),
		TotalCustomers: len(emails),
		TotalEarnings:  earnings,
	}
}

// SalesByDay agrupa las órdenes por día calendario (UTC) para las dos
// gráficas del dashboard. Los días salen en el orden de primera
// aparición dentro de la colección.
func (d *Dashboard) SalesByDay() []dto.DailySalesPoint {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := make(map[string]int)
	out := make([]dto.DailySalesPoint, 0)
	for _, o := range d.orders {
		day := o.OrderDate.UTC().Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			i = len(out)
			index[day] = i
			out = append(out, dto.DailySalesPoint{Date: day})
		}
		out[i].Orders++
		out[i].Sales += o.Total
	}
	return out
}

// Customers lista los clientes distintos (por email exacto) en orden de
// primera aparición.
func (d *Dashboard) Customers() []model.Customer {
	d.mu.Lock()
	defer d.mu.Unlock()

	seen := make(map[string]struct{})
	out := make([]model.Customer, 0)
	for _, o := range d.orders {
		if _, ok := seen[o.Customer.Email]; ok {
			continue
		}
		seen[o.Customer.Email] = struct{}{}
		out = append(out, o.Customer)
	}
	return out
}

// ChangeStatus parchea el status en el almacén y, solo si confirma,
// lo refleja en la copia local (actualización optimista, sin refetch).
// Si el almacén falla la colección queda intacta. El valor no se valida
// contra el catálogo: es responsabilidad de la presentación ofrecer
// solo opciones válidas.
func (d *Dashboard) ChangeStatus(ctx context.Context, orderID, newStatus string) error {
	if err := d.repo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.orders {
		if d.orders[i].ID == orderID {
			d.orders[i].Status = newStatus
			break
		}
	}
	return nil
}

// Remove borra la orden en el almacén y, si confirma, la saca de la
// colección local. Si la orden borrada era la expandida, colapsa.
// La confirmación previa del usuario es asunto de la presentación.
func (d *Dashboard) Remove(ctx context.Context, orderID string) error {
	if err := d.repo.Delete(ctx, orderID); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.orders[:0]
	for _, o := range d.orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	d.orders = kept
	if d.expandedID == orderID {
		d.expandedID = ""
	}
	return nil
}
