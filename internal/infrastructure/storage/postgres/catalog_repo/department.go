package catalog_repo

import (
	"procompare/internal/domain/catalogs/department"
	"procompare/internal/infrastructure/storage/postgres"
)

const departmentTable = "cat_departments"

// DepartmentRepo implements department.Repository.
type DepartmentRepo struct {
	*BaseCatalogRepo[*department.Department]
}

// NewDepartmentRepo creates a new department repository.
func NewDepartmentRepo(txm *postgres.TxManager, audit *postgres.AuditService) *DepartmentRepo {
	return &DepartmentRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			departmentTable,
			postgres.ExtractDBColumns[department.Department](),
			func() *department.Department { return &department.Department{} },
			txm,
			audit,
		),
	}
}
