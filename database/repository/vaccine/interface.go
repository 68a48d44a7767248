package vaccineRepo

import "vaxportal/models"

// VaccineRepository defines data access for the vaccine catalog.
type VaccineRepository interface {
	// GetAll retrieves every active catalog entry.
	GetAll() ([]models.Vaccine, error)
	// GetByIDs retrieves active catalog entries for the given IDs. Unknown
	// and retired IDs are simply absent from the result.
	GetByIDs(ids []string) ([]models.Vaccine, error)
}
