package product_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/labmetricas/labstock-api/internal/application/product"
	"github.com/labmetricas/labstock-api/internal/domain/entity"
	"github.com/labmetricas/labstock-api/internal/domain/repository"
)

// memStore almacén en memoria compartido por todos los repos fake. El runner
// transaccional serializa las escrituras con el mutex y restaura un snapshot
// si el callback falla, imitando Commit/Rollback.
type memStore struct {
	mu sync.Mutex

	products   map[int]entity.Product
	qrCodes    map[int]entity.QrCode
	movements  map[int]entity.StockMovement
	discounts  []entity.ProductDiscountLog
	catalogues map[int]entity.StockCatalogue
	statuses   map[int]entity.ProductStatus
	warehouses map[int]entity.WarehouseType
	units      map[int]entity.UnitOfMeasurement
	audit      []entity.AuditLog

	nextProductID  int
	nextQrID       int
	nextMovementID int
	nextDiscountID int

	failMovementCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		products:   map[int]entity.Product{},
		qrCodes:    map[int]entity.QrCode{},
		movements:  map[int]entity.StockMovement{},
		catalogues: map[int]entity.StockCatalogue{},
		statuses:   map[int]entity.ProductStatus{},
		warehouses: map[int]entity.WarehouseType{},
		units:      map[int]entity.UnitOfMeasurement{},
	}
}

type memSnapshot struct {
	products   map[int]entity.Product
	qrCodes    map[int]entity.QrCode
	movements  map[int]entity.StockMovement
	discounts  []entity.ProductDiscountLog
	catalogues map[int]entity.StockCatalogue

	nextProductID  int
	nextQrID       int
	nextMovementID int
	nextDiscountID int
}

func (s *memStore) snapshot() memSnapshot {
	return memSnapshot{
		products:       copyMap(s.products),
		qrCodes:        copyMap(s.qrCodes),
		movements:      copyMap(s.movements),
		discounts:      append([]entity.ProductDiscountLog(nil), s.discounts...),
		catalogues:     copyMap(s.catalogues),
		nextProductID:  s.nextProductID,
		nextQrID:       s.nextQrID,
		nextMovementID: s.nextMovementID,
		nextDiscountID: s.nextDiscountID,
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.products = snap.products
	s.qrCodes = snap.qrCodes
	s.movements = snap.movements
	s.discounts = snap.discounts
	s.catalogues = snap.catalogues
	s.nextProductID = snap.nextProductID
	s.nextQrID = snap.nextQrID
	s.nextMovementID = snap.nextMovementID
	s.nextDiscountID = snap.nextDiscountID
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// memTxRunner implementación de product.TxRunner sobre memStore.
type memTxRunner struct {
	s *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(product.TxRepos) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	snap := r.s.snapshot()
	err := fn(product.TxRepos{
		Products:   &memProductRepo{s: r.s},
		QrCodes:    &memQrRepo{s: r.s},
		Movements:  &memMovementRepo{s: r.s},
		Discounts:  &memDiscountRepo{s: r.s},
		Catalogues: &memCatalogueRepo{s: r.s},
	})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// ─── ProductRepository ────────────────────────────────────────────────────────

type memProductRepo struct {
	s *memStore
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	r.s.nextProductID++
	p.ID = r.s.nextProductID
	r.s.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetActiveByID(id int) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *memProductRepo) GetActiveForUpdate(id int) (*entity.Product, error) {
	return r.GetActiveByID(id)
}

func (r *memProductRepo) GetActiveByQrCodeID(qrCodeID int) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.QrCodeID != nil && *p.QrCodeID == qrCodeID && p.DeletedAt == nil {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) ExistsByID(id int) (bool, error) {
	_, ok := r.s.products[id]
	return ok, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if cur, ok := r.s.products[p.ID]; ok && cur.DeletedAt == nil {
		r.s.products[p.ID] = *p
	}
	return nil
}

func (r *memProductRepo) UpdateCantidadTotal(id, cantidadTotal int) error {
	p, ok := r.s.products[id]
	if !ok || p.DeletedAt != nil {
		return nil
	}
	p.CantidadTotal = cantidadTotal
	p.UpdatedAt = time.Now()
	r.s.products[id] = p
	return nil
}

func (r *memProductRepo) BindQrCode(productID, qrCodeID int) error {
	p, ok := r.s.products[productID]
	if !ok {
		return errors.New("producto inexistente")
	}
	id := qrCodeID
	p.QrCodeID = &id
	r.s.products[productID] = p
	return nil
}

func (r *memProductRepo) SoftDelete(id int, at time.Time) error {
	p, ok := r.s.products[id]
	if !ok || p.DeletedAt != nil {
		return nil
	}
	t := at
	p.DeletedAt = &t
	p.UpdatedAt = at
	r.s.products[id] = p
	return nil
}

func (r *memProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var all []*entity.Product
	for _, p := range r.s.products {
		if p.DeletedAt != nil {
			continue
		}
		if filter.StockCatalogueID != nil && p.StockCatalogueID != *filter.StockCatalogueID {
			continue
		}
		if filter.ProductStatusID != nil && p.ProductStatusID != *filter.ProductStatusID {
			continue
		}
		cp := p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memProductRepo) Count(filter repository.ProductFilter) (int, error) {
	list, _ := r.List(filter, len(r.s.products)+1, 0)
	return len(list), nil
}

// ─── QrCodeRepository ─────────────────────────────────────────────────────────

type memQrRepo struct {
	s *memStore
}

var _ repository.QrCodeRepository = (*memQrRepo)(nil)

func (r *memQrRepo) Create(c *entity.QrCode) error {
	for _, ex := range r.s.qrCodes {
		if ex.QrContenido == c.QrContenido {
			return errors.New("hash duplicado")
		}
	}
	r.s.nextQrID++
	c.ID = r.s.nextQrID
	r.s.qrCodes[c.ID] = *c
	return nil
}

func (r *memQrRepo) GetActiveByID(id int) (*entity.QrCode, error) {
	c, ok := r.s.qrCodes[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

func (r *memQrRepo) GetActiveByHash(hash string) (*entity.QrCode, error) {
	for _, c := range r.s.qrCodes {
		if c.QrContenido == hash && c.DeletedAt == nil {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

// ─── StockMovementRepository ─────────────────────────────────────────────────

type memMovementRepo struct {
	s *memStore
}

var _ repository.StockMovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	if r.s.failMovementCreate {
		return errors.New("fallo inyectado en kardex")
	}
	r.s.nextMovementID++
	m.ID = r.s.nextMovementID
	r.s.movements[m.ID] = *m
	return nil
}

func (r *memMovementRepo) GetByID(id int) (*entity.StockMovement, error) {
	m, ok := r.s.movements[id]
	if !ok || m.DeletedAt != nil {
		return nil, nil
	}
	cp := m
	return &cp, nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.StockMovement, error) {
	var all []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.DeletedAt != nil {
			continue
		}
		if filter.StockCatalogueID != nil && m.StockCatalogueID != *filter.StockCatalogueID {
			continue
		}
		if filter.Tipo != nil && m.Tipo != *filter.Tipo {
			continue
		}
		if filter.FechaInicio != nil && m.CreatedAt.Before(*filter.FechaInicio) {
			continue
		}
		if filter.FechaFin != nil && m.CreatedAt.After(*filter.FechaFin) {
			continue
		}
		cp := m
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memMovementRepo) Count(filter repository.MovementFilter) (int, error) {
	list, _ := r.List(filter, len(r.s.movements)+1, 0)
	return len(list), nil
}

// ─── ProductDiscountLogRepository ────────────────────────────────────────────

type memDiscountRepo struct {
	s *memStore
}

var _ repository.ProductDiscountLogRepository = (*memDiscountRepo)(nil)

func (r *memDiscountRepo) Create(l *entity.ProductDiscountLog) error {
	r.s.nextDiscountID++
	l.ID = r.s.nextDiscountID
	r.s.discounts = append(r.s.discounts, *l)
	return nil
}

func (r *memDiscountRepo) ListByProduct(productID int) ([]*entity.ProductDiscountLog, error) {
	var out []*entity.ProductDiscountLog
	for i := len(r.s.discounts) - 1; i >= 0; i-- {
		if r.s.discounts[i].ProductID == productID {
			cp := r.s.discounts[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ─── StockCatalogueRepository ────────────────────────────────────────────────

type memCatalogueRepo struct {
	s *memStore
}

var _ repository.StockCatalogueRepository = (*memCatalogueRepo)(nil)

func (r *memCatalogueRepo) Create(c *entity.StockCatalogue) error {
	c.ID = len(r.s.catalogues) + 1
	r.s.catalogues[c.ID] = *c
	return nil
}

func (r *memCatalogueRepo) GetActiveByID(id int) (*entity.StockCatalogue, error) {
	c, ok := r.s.catalogues[id]
	if !ok || c.DeletedAt != nil {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

func (r *memCatalogueRepo) List(limit, offset int) ([]*entity.StockCatalogue, error) {
	var all []*entity.StockCatalogue
	for _, c := range r.s.catalogues {
		if c.DeletedAt == nil {
			cp := c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all, nil
}

func (r *memCatalogueRepo) Count() (int, error) {
	list, _ := r.List(0, 0)
	return len(list), nil
}

func (r *memCatalogueRepo) Touch(id int, at time.Time) error {
	c, ok := r.s.catalogues[id]
	if !ok {
		return nil
	}
	c.UpdatedAt = at
	r.s.catalogues[id] = c
	return nil
}

// ─── Repos de referencia ─────────────────────────────────────────────────────

type memStatusRepo struct {
	s *memStore
}

var _ repository.ProductStatusRepository = (*memStatusRepo)(nil)

func (r *memStatusRepo) GetActiveByID(id int) (*entity.ProductStatus, error) {
	st, ok := r.s.statuses[id]
	if !ok || st.DeletedAt != nil {
		return nil, nil
	}
	cp := st
	return &cp, nil
}

func (r *memStatusRepo) List() ([]*entity.ProductStatus, error) {
	var out []*entity.ProductStatus
	for _, st := range r.s.statuses {
		if st.DeletedAt == nil {
			cp := st
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memWarehouseRepo struct {
	s *memStore
}

var _ repository.WarehouseTypeRepository = (*memWarehouseRepo)(nil)

func (r *memWarehouseRepo) GetActiveByID(id int) (*entity.WarehouseType, error) {
	w, ok := r.s.warehouses[id]
	if !ok || w.DeletedAt != nil {
		return nil, nil
	}
	cp := w
	return &cp, nil
}

func (r *memWarehouseRepo) List() ([]*entity.WarehouseType, error) {
	var out []*entity.WarehouseType
	for _, w := range r.s.warehouses {
		if w.DeletedAt == nil {
			cp := w
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memUnitRepo struct {
	s *memStore
}

var _ repository.UnitOfMeasurementRepository = (*memUnitRepo)(nil)

func (r *memUnitRepo) GetActiveByID(id int) (*entity.UnitOfMeasurement, error) {
	u, ok := r.s.units[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (r *memUnitRepo) List() ([]*entity.UnitOfMeasurement, error) {
	var out []*entity.UnitOfMeasurement
	for _, u := range r.s.units {
		if u.DeletedAt == nil {
			cp := u
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ─── AuditLogRepository ──────────────────────────────────────────────────────

type memAuditRepo struct {
	s *memStore
}

var _ repository.AuditLogRepository = (*memAuditRepo)(nil)

func (r *memAuditRepo) Create(l *entity.AuditLog) error {
	l.ID = len(r.s.audit) + 1
	r.s.audit = append(r.s.audit, *l)
	return nil
}

func (r *memAuditRepo) List(limit, offset int) ([]*entity.AuditLog, error) {
	var out []*entity.AuditLog
	for i := len(r.s.audit) - 1; i >= 0; i-- {
		cp := r.s.audit[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAuditRepo) Count() (int, error) {
	return len(r.s.audit), nil
}
