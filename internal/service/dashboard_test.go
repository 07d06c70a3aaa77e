package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"admin-dashboard-service/internal/model"
	"admin-dashboard-service/internal/repository"
)

// fakeOrderRepo reemplaza al almacén remoto en los tests.
type fakeOrderRepo struct {
	orders    []model.Order
	failRead  bool
	failWrite bool
}

func (f *fakeOrderRepo) FindAll(ctx context.Context) ([]model.Order, error) {
	if f.failRead {
		return nil, repository.ErrReadFailed
	}
	out := make([]model.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	if f.failWrite {
		return repository.ErrWriteFailed
	}
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeOrderRepo) Delete(ctx context.Context, orderID string) error {
	if f.failWrite {
		return repository.ErrWriteFailed
	}
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleOrders() []model.Order {
	return []model.Order{
		{
			ID:        "A",
			Status:    model.StatusPending,
			Total:     10,
			OrderDate: day("2025-03-01"),
			Customer:  model.Customer{FirstName: "Ana", Email: "x@y.com"},
		},
		{
			ID:        "B",
			Status:    model.StatusSuccess,
			Total:     20,
			OrderDate: day("2025-03-01"),
			Customer:  model.Customer{FirstName: "Ana", Email: "x@y.com"},
		},
		{
			ID:        "C",
			Status:    model.StatusDispatch,
			Total:     5,
			OrderDate: day("2025-03-02"),
			Customer:  model.Customer{FirstName: "Bruno", Email: "b@y.com"},
		},
	}
}

func setupDashboard(t *testing.T, orders []model.Order) (*Dashboard, *fakeOrderRepo) {
	t.Helper()
	repo := &fakeOrderRepo{orders: orders}
	d := NewDashboard(repo)
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return d, repo
}

func TestLoad_FailureLeavesEmptyCollection(t *testing.T) {
	repo := &fakeOrderRepo{orders: sampleOrders(), failRead: true}
	d := NewDashboard(repo)
	if err := d.Load(context.Background()); err == nil {
		t.Fatalf("expected read error")
	}
	if got := len(d.Orders()); got != 0 {
		t.Fatalf("expected empty collection after failed load, got %d", got)
	}
	m := d.Metrics()
	if m.TotalOrders != 0 || m.TotalCustomers != 0 || m.TotalEarnings != 0 {
		t.Fatalf("expected zero metrics, got %+v", m)
	}
}

func TestLoad_ClearsExpanded(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())
	d.ToggleExpanded("A")
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := d.ExpandedOrderID(); got != "" {
		t.Fatalf("expected no expansion after reload, got %q", got)
	}
}

func TestFilteredOrders_AllReturnsEverythingInOrder(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())
	got := d.FilteredOrders()
	if !reflect.DeepEqual(got, d.Orders()) {
		t.Fatalf("filter All should return the full collection in order")
	}
}

func TestFilteredOrders_ByStatus(t *testing.T) {
	orders := sampleOrders()
	d, _ := setupDashboard(t, orders)

	for _, status := range model.KnownStatuses {
		d.SetFilter(status)
		got := d.FilteredOrders()
		// soundness: todo lo devuelto tiene el status pedido
		for _, o := range got {
			if o.Status != status {
				t.Fatalf("filter %q returned order %q with status %q", status, o.ID, o.Status)
			}
		}
		// completeness: toda orden con ese status aparece
		want := 0
		for _, o := range orders {
			if o.Status == status {
				want++
			}
		}
		if len(got) != want {
			t.Fatalf("filter %q: got %d orders, want %d", status, len(got), want)
		}
	}
}

func TestFilteredOrders_UnknownStatusPassesThrough(t *testing.T) {
	orders := sampleOrders()
	orders = append(orders, model.Order{ID: "D", Status: "weird-state", Total: 1})
	d, _ := setupDashboard(t, orders)

	d.SetFilter("weird-state")
	got := d.FilteredOrders()
	if len(got) != 1 || got[0].ID != "D" {
		t.Fatalf("unknown status should filter without crashing, got %v", got)
	}
	if m := d.Metrics(); m.TotalOrders != 4 {
		t.Fatalf("metrics must stay global, got %d orders", m.TotalOrders)
	}
}

func TestMetrics_GlobalAndCaseSensitive(t *testing.T) {
	orders := sampleOrders()
	// mismo email con otra capitalización cuenta como otro cliente
	orders = append(orders, model.Order{
		ID: "D", Total: 2.5, Customer: model.Customer{Email: "X@Y.com"},
	})
	d, _ := setupDashboard(t, orders)
	d.SetFilter(model.StatusSuccess) // el filtro no debe influir

	m := d.Metrics()
	if m.TotalOrders != 4 {
		t.Fatalf("totalOrders: got %d, want 4", m.TotalOrders)
	}
	if m.TotalCustomers != 3 {
		t.Fatalf("totalCustomers: got %d, want 3", m.TotalCustomers)
	}
	if m.TotalEarnings != 37.5 {
		t.Fatalf("totalEarnings: got %v, want 37.5", m.TotalEarnings)
	}
}

func TestMetrics_EmptyCollection(t *testing.T) {
	d, _ := setupDashboard(t, nil)
	m := d.Metrics()
	if m.TotalOrders != 0 || m.TotalCustomers != 0 || m.TotalEarnings != 0 {
		t.Fatalf("empty collection should sum to zero, got %+v", m)
	}
}

func TestToggleExpanded(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())

	d.ToggleExpanded("A")
	if got := d.ExpandedOrderID(); got != "A" {
		t.Fatalf("expected A expanded, got %q", got)
	}
	// expandir otra colapsa la anterior: a lo sumo una expandida
	d.ToggleExpanded("B")
	if got := d.ExpandedOrderID(); got != "B" {
		t.Fatalf("expected B expanded, got %q", got)
	}
	// doble toggle vuelve a null
	d.ToggleExpanded("B")
	if got := d.ExpandedOrderID(); got != "" {
		t.Fatalf("expected collapsed, got %q", got)
	}
}

func TestChangeStatus_OptimisticUpdate(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())
	before := d.Orders()

	if err := d.ChangeStatus(context.Background(), "A", model.StatusSuccess); err != nil {
		t.Fatalf("change status: %v", err)
	}

	after := d.Orders()
	for i := range after {
		if after[i].ID == "A" {
			if after[i].Status != model.StatusSuccess {
				t.Fatalf("status not applied: %q", after[i].Status)
			}
			// solo cambió el status, el resto del documento queda igual
			before[i].Status = model.StatusSuccess
		}
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("only the status field of the matching order may change")
	}
}

func TestChangeStatus_FailureLeavesCollectionUntouched(t *testing.T) {
	d, repo := setupDashboard(t, sampleOrders())
	before := d.Orders()

	repo.failWrite = true
	err := d.ChangeStatus(context.Background(), "A", model.StatusSuccess)
	if !errors.Is(err, repository.ErrWriteFailed) {
		t.Fatalf("expected write failure, got %v", err)
	}
	if !reflect.DeepEqual(before, d.Orders()) {
		t.Fatalf("collection must be untouched after failed write")
	}
}

func TestChangeStatus_NotFound(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())
	if err := d.ChangeStatus(context.Background(), "nope", model.StatusSuccess); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemove_ShrinksAndClearsExpansion(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())
	d.ToggleExpanded("B")

	if err := d.Remove(context.Background(), "B"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	after := d.Orders()
	if len(after) != 2 {
		t.Fatalf("expected 2 orders after remove, got %d", len(after))
	}
	for _, o := range after {
		if o.ID == "B" {
			t.Fatalf("removed order still present")
		}
	}
	if got := d.ExpandedOrderID(); got != "" {
		t.Fatalf("expansion should clear when the expanded order is removed, got %q", got)
	}
}

func TestRemove_KeepsOtherExpansion(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())
	d.ToggleExpanded("A")

	if err := d.Remove(context.Background(), "B"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := d.ExpandedOrderID(); got != "A" {
		t.Fatalf("expansion of another order must survive, got %q", got)
	}
}

func TestRemove_FailureLeavesCollectionUntouched(t *testing.T) {
	d, repo := setupDashboard(t, sampleOrders())
	before := d.Orders()

	repo.failWrite = true
	if err := d.Remove(context.Background(), "A"); err == nil {
		t.Fatalf("expected error")
	}
	if !reflect.DeepEqual(before, d.Orders()) {
		t.Fatalf("collection must be untouched after failed delete")
	}
}

func TestSalesByDay(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())
	points := d.SalesByDay()
	if len(points) != 2 {
		t.Fatalf("expected 2 days, got %d", len(points))
	}
	if points[0].Date != "2025-03-01" || points[0].Orders != 2 || points[0].Sales != 30 {
		t.Fatalf("day 1 wrong: %+v", points[0])
	}
	if points[1].Date != "2025-03-02" || points[1].Orders != 1 || points[1].Sales != 5 {
		t.Fatalf("day 2 wrong: %+v", points[1])
	}
}

func TestCustomers_DistinctByEmail(t *testing.T) {
	d, _ := setupDashboard(t, sampleOrders())
	customers := d.Customers()
	if len(customers) != 2 {
		t.Fatalf("expected 2 distinct customers, got %d", len(customers))
	}
	if customers[0].Email != "x@y.com" || customers[1].Email != "b@y.com" {
		t.Fatalf("customers out of order: %+v", customers)
	}
}

// Escenario punta a punta de la vista de órdenes.
func TestDashboard_EndToEnd(t *testing.T) {
	orders := []model.Order{
		{ID: "A", Status: model.StatusPending, Total: 10, Customer: model.Customer{Email: "x@y.com"}},
		{ID: "B", Status: model.StatusSuccess, Total: 20, Customer: model.Customer{Email: "x@y.com"}},
	}
	d, _ := setupDashboard(t, orders)

	m := d.Metrics()
	if m.TotalOrders != 2 || m.TotalCustomers != 1 || m.TotalEarnings != 30 {
		t.Fatalf("metrics: %+v", m)
	}

	d.SetFilter(model.StatusSuccess)
	got := d.FilteredOrders()
	if len(got) != 1 || got[0].ID != "B" {
		t.Fatalf("expected [B], got %v", got)
	}
}
