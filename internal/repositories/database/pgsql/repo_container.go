package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/signordemola/belize-app/internal/core/ports/repositories"
)

// NewRepositoryContainer wires all pgsql repositories against one pool.
func NewRepositoryContainer(dbPool *pgxpool.Pool) portsrepo.RepositoryContainer {
	userRepo := newPgxUserRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, accountRepo)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryContainer{
		User:         userRepo,
		Account:      accountRepo,
		Ledger:       ledgerRepo,
		Notification: notificationRepo,
	}
}
