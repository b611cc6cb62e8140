package repositories

// RepositoryContainer groups the repository facades handed to the service
// layer at startup.
type RepositoryContainer struct {
	User         UserRepositoryFacade
	Account      AccountRepositoryFacade
	Ledger       LedgerRepositoryFacade
	Notification NotificationRepositoryFacade
}
