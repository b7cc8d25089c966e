package usecase

import (
	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// VendorCatalog operaciones del catálogo que usa el caso de uso (implementado por catalog.Catalog).
type VendorCatalog interface {
	Add(v entity.Vendor) string
	GetByID(id string) (entity.Vendor, bool)
	UpdateByID(id string, v entity.Vendor) bool
	RemoveByID(id string) bool
	Snapshot() []entity.Vendor
	FilterByCategory(category string) []entity.Vendor
	FilterByLocation(fragment string) []entity.Vendor
	Search(query string) []entity.Vendor
	SortedByPrice(ascending bool) []entity.Vendor
	SortedByRating() []entity.Vendor
}

// VendorUseCase casos de uso del catálogo público de proveedores.
type VendorUseCase struct {
	catalog VendorCatalog
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(catalog VendorCatalog) *VendorUseCase {
	return &VendorUseCase{catalog: catalog}
}

// List aplica un único criterio según la precedencia search > category > location > sortBy.
// category y location con valor "all" (o vacíos) no filtran; un sortBy desconocido devuelve el orden del catálogo.
func (uc *VendorUseCase) List(q dto.VendorListQuery) []dto.VendorResponse {
	var vendors []entity.Vendor
	switch {
	case q.Search != "":
		vendors = uc.catalog.Search(q.Search)
	case q.Category != "" && q.Category != dto.FilterAll:
		vendors = uc.catalog.FilterByCategory(q.Category)
	case q.Location != "" && q.Location != dto.FilterAll:
		vendors = uc.catalog.FilterByLocation(q.Location)
	default:
		vendors = uc.sorted(q.SortBy)
	}
	return dto.NewVendorResponses(vendors)
}

func (uc *VendorUseCase) sorted(sortBy string) []entity.Vendor {
	switch sortBy {
	case dto.SortPriceAsc:
		return uc.catalog.SortedByPrice(true)
	case dto.SortPriceDesc:
		return uc.catalog.SortedByPrice(false)
	case dto.SortRating:
		return uc.catalog.SortedByRating()
	default:
		return uc.catalog.Snapshot()
	}
}

// GetByID obtiene un proveedor. Devuelve domain.ErrVendorNotFound si no existe.
func (uc *VendorUseCase) GetByID(id string) (*dto.VendorResponse, error) {
	v, ok := uc.catalog.GetByID(id)
	if !ok {
		return nil, domain.ErrVendorNotFound
	}
	out := dto.NewVendorResponse(v)
	return &out, nil
}

// Create agrega el proveedor y devuelve su ID (asignado si no venía).
func (uc *VendorUseCase) Create(in dto.VendorRequest) string {
	return uc.catalog.Add(in.ToEntity())
}

// Update reemplaza la ficha completa. El ID de la ruta prevalece sobre el del cuerpo.
func (uc *VendorUseCase) Update(id string, in dto.VendorRequest) error {
	if !uc.catalog.UpdateByID(id, in.ToEntity()) {
		return domain.ErrVendorNotFound
	}
	return nil
}

// Delete elimina el proveedor.
func (uc *VendorUseCase) Delete(id string) error {
	if !uc.catalog.RemoveByID(id) {
		return domain.ErrVendorNotFound
	}
	return nil
}
