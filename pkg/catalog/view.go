package catalog

import (
	"context"

	"katalog/internal/models"
)

// View maintains the full unfiltered product set plus a derived filtered
// projection, recomputed whenever either the base set or the filter changes.
// Mutations call the backing Service first and only touch local state on
// success; failures invoke the notify hook and leave prior state unchanged.
//
// The view mirrors the original single-threaded client loop and is not safe
// for concurrent use.
type View struct {
	svc      Service
	products []models.Product
	filter   Filter
	visible  []models.Product

	// Notify, when set, receives a transient message for every failed
	// mutation.
	Notify func(msg string)
}

// NewView creates a view over the given service with no products loaded and
// no filter set.
func NewView(svc Service) *View {
	return &View{svc: svc}
}

// Load fetches the full product set from the service and recomputes the
// filtered projection.
func (v *View) Load(ctx context.Context) error {
	products, err := v.svc.List(ctx)
	if err != nil {
		v.notify("Failed to load products: " + err.Error())
		return err
	}
	v.products = products
	v.recompute()
	return nil
}

// SetFilter replaces the active filter criteria and recomputes the
// projection.
func (v *View) SetFilter(f Filter) {
	v.filter = f
	v.recompute()
}

// ClearFilter removes all filter criteria.
func (v *View) ClearFilter() {
	v.SetFilter(Filter{})
}

// Filter returns the active filter criteria.
func (v *View) Filter() Filter {
	return v.filter
}

// Products returns the full unfiltered product set.
func (v *View) Products() []models.Product {
	return v.products
}

// Visible returns the products matching the active filter.
func (v *View) Visible() []models.Product {
	return v.visible
}

// Create submits a new product and, on success, prepends it to the local
// set (lists are newest first).
func (v *View) Create(ctx context.Context, product models.Product) error {
	created, err := v.svc.Create(ctx, product)
	if err != nil {
		v.notify("Failed to create product: " + err.Error())
		return err
	}
	v.products = append([]models.Product{*created}, v.products...)
	v.recompute()
	return nil
}

// Update submits changed fields for a product and, on success, replaces it
// in the local set.
func (v *View) Update(ctx context.Context, id string, product models.Product) error {
	updated, err := v.svc.Update(ctx, id, product)
	if err != nil {
		v.notify("Failed to update product: " + err.Error())
		return err
	}
	for i := range v.products {
		if v.products[i].ID == id {
			v.products[i] = *updated
			break
		}
	}
	v.recompute()
	return nil
}

// Delete removes a product and, on success, drops it from the local set.
func (v *View) Delete(ctx context.Context, id string) error {
	if err := v.svc.Delete(ctx, id); err != nil {
		v.notify("Failed to delete product: " + err.Error())
		return err
	}
	for i := range v.products {
		if v.products[i].ID == id {
			v.products = append(v.products[:i], v.products[i+1:]...)
			break
		}
	}
	v.recompute()
	return nil
}

func (v *View) recompute() {
	v.visible = v.filter.Apply(v.products)
}

func (v *View) notify(msg string) {
	if v.Notify != nil {
		v.Notify(msg)
	}
}
