package repository

import (
	apperrors "carebase-backend/internal/errors"

	"gorm.io/gorm"
)

// Repos bundles the repositories participating in a unit of work. All of
// them share one underlying connection, so inside a transaction every
// repository sees and joins the same uncommitted state.
type Repos struct {
	Shifts         ShiftRepositoryInterface
	Authorizations AuthorizationRepositoryInterface
	Alerts         AuthorizationAlertRepositoryInterface
	EVVRecords     EVVRecordRepositoryInterface
	Clients        ClientRepositoryInterface
	Carers         CarerRepositoryInterface
	AuditLogs      AuditLogRepositoryInterface
}

// NewRepos binds all repositories to the given connection or transaction
func NewRepos(db *gorm.DB) *Repos {
	return &Repos{
		Shifts:         NewShiftRepository(db),
		Authorizations: NewAuthorizationRepository(db),
		Alerts:         NewAuthorizationAlertRepository(db),
		EVVRecords:     NewEVVRecordRepository(db),
		Clients:        NewClientRepository(db),
		Carers:         NewCarerRepository(db),
		AuditLogs:      NewAuditLogRepository(db),
	}
}

// GormUnitOfWork implements UnitOfWork on a gorm connection
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work bound to the database handle
func NewUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Do begins a transaction, runs fn against transaction-bound repositories
// and commits. Any error from fn rolls the whole unit back and is returned
// unchanged; a commit that fails on the database side is wrapped as a
// PersistenceError so callers can distinguish it from business failures.
func (u *GormUnitOfWork) Do(fn func(r *Repos) error) error {
	var fnErr error
	err := u.db.Transaction(func(tx *gorm.DB) error {
		fnErr = fn(NewRepos(tx))
		return fnErr
	})
	if err != nil {
		if fnErr != nil {
			return fnErr
		}
		return apperrors.NewPersistenceError("commit transaction", err)
	}
	return nil
}

// Repos returns repositories bound to the bare (non-transactional)
// connection, for read paths that do not need atomicity.
func (u *GormUnitOfWork) Repos() *Repos {
	return NewRepos(u.db)
}
