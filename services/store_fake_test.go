package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Thurzix/Product-Pit-Stop/models"
	"github.com/Thurzix/Product-Pit-Stop/repository"
)

// fakeStore is an in-memory stand-in for the Postgres repositories. RunInTx
// snapshots state before the closure and restores it when the closure fails,
// mirroring the rollback guarantee the real store provides.
type fakeStore struct {
	products map[uuid.UUID]*models.Product
	lines    map[uuid.UUID]*models.CartLine
	orders   []models.Order
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[uuid.UUID]*models.Product),
		lines:    make(map[uuid.UUID]*models.CartLine),
	}
}

func (f *fakeStore) addProduct(title string, price string, stock int) *models.Product {
	p := &models.Product{
		ID:     uuid.New(),
		Title:  title,
		Price:  mustDecimal(price),
		Stock:  stock,
		Seller: &models.User{ID: uuid.New(), Name: "Seller", StoreName: "Store"},
	}
	f.products[p.ID] = p
	return p
}

// --- repository.CartRepository ---

func (f *fakeStore) FindLine(ctx context.Context, userID, productID uuid.UUID) (*models.CartLine, error) {
	for _, line := range f.lines {
		if line.UserID == userID && line.ProductID == productID {
			cp := *line
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) FindLineByID(ctx context.Context, userID, lineID uuid.UUID) (*models.CartLine, error) {
	line, ok := f.lines[lineID]
	if !ok || line.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *line
	return &cp, nil
}

func (f *fakeStore) Save(ctx context.Context, line *models.CartLine) error {
	cp := *line
	f.lines[line.ID] = &cp
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, userID, lineID uuid.UUID) (int64, error) {
	line, ok := f.lines[lineID]
	if !ok || line.UserID != userID {
		return 0, nil
	}
	delete(f.lines, lineID)
	return 1, nil
}

func (f *fakeStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartLine, error) {
	var out []models.CartLine
	for _, line := range f.lines {
		if line.UserID != userID {
			continue
		}
		cp := *line
		cp.Product = f.products[line.ProductID]
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	return out, nil
}

func (f *fakeStore) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	for id, line := range f.lines {
		if line.UserID == userID {
			delete(f.lines, id)
		}
	}
	return nil
}

// --- repository.ProductRepository ---

func (f *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeStore) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	p, ok := f.products[id]
	if !ok || p.Stock < quantity {
		return repository.ErrStockConflict
	}
	p.Stock -= quantity
	return nil
}

func (f *fakeStore) List(ctx context.Context, page, limit int, category, search string) ([]models.Product, int64, error) {
	var out []models.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

// --- repository.OrderRepository ---

func (f *fakeStore) Create(ctx context.Context, order *models.Order) error {
	if order.PurchasedAt.IsZero() {
		order.PurchasedAt = time.Now()
	}
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeStore) FindByUserID(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Order, int64, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

// --- repository.TxManager ---

func (f *fakeStore) RunInTx(ctx context.Context, fn func(carts repository.CartRepository, products repository.ProductRepository, orders repository.OrderRepository) error) error {
	snapshot := f.clone()
	if err := fn(f, f, f); err != nil {
		f.products = snapshot.products
		f.lines = snapshot.lines
		f.orders = snapshot.orders
		return err
	}
	return nil
}

func (f *fakeStore) clone() *fakeStore {
	cp := newFakeStore()
	for id, p := range f.products {
		pc := *p
		cp.products[id] = &pc
	}
	for id, l := range f.lines {
		lc := *l
		cp.lines[id] = &lc
	}
	cp.orders = append([]models.Order(nil), f.orders...)
	return cp
}
