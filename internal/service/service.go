// Package service implements the contact-book operations consumed by
// the web layer: VCF import/export, manual contact CRUD, duplicate
// resolution, book access and directory login.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/roosych/contactsbook/internal/cache"
	"github.com/roosych/contactsbook/internal/dedup"
	"github.com/roosych/contactsbook/internal/directory"
	"github.com/roosych/contactsbook/internal/models"
	"github.com/roosych/contactsbook/internal/policy"
	"github.com/roosych/contactsbook/internal/vcf"
)

// ContactsStore is the contacts repository surface the service needs.
type ContactsStore interface {
	GetContact(ctx context.Context, id string) (*models.Contact, error)
	CreateContact(ctx context.Context, c *models.Contact) (string, error)
	UpdateContact(ctx context.Context, c *models.Contact) error
	DeleteContact(ctx context.Context, id string) error
	FindByPhone(ctx context.Context, scope models.Scope, number string, excludeID string) (*models.Contact, error)
	ListByScope(ctx context.Context, scope models.Scope, search string, limit, offset int) ([]models.Contact, error)
}

// BooksStore is the books repository surface the service needs.
type BooksStore interface {
	GetBookByID(ctx context.Context, id string) (*models.ContactBook, error)
	GetBookByDepartmentOU(ctx context.Context, ou string) (*models.ContactBook, error)
	CreateBook(ctx context.Context, b *models.ContactBook) (string, error)
	ListBooks(ctx context.Context) ([]models.ContactBook, error)
	GetGrant(ctx context.Context, userID, bookID string) (*models.BookGrant, error)
	ListGrantedBookIDs(ctx context.Context, userID string) ([]string, error)
	ReplaceGrants(ctx context.Context, userID string, grants map[string]bool) error
}

// UsersStore is the users repository surface the service needs.
type UsersStore interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertByUsername(ctx context.Context, u *models.User) (string, error)
}

// Directory verifies credentials against the corporate directory.
type Directory interface {
	Authenticate(username, password string) (*directory.Account, error)
}

// EventPublisher pushes aggregate import results to the notification
// stream. Optional; nil disables publication.
type EventPublisher interface {
	PublishImport(ctx context.Context, userID string, scope models.Scope, processed int) error
}

// Service wires the contact-book core together.
type Service struct {
	contacts   ContactsStore
	books      BooksStore
	users      UsersStore
	dir        Directory
	deduper    *dedup.Deduper
	policy     *policy.Policy
	parser     *vcf.Parser
	booksCache *cache.BooksCache
	events     EventPublisher
	logger     *zap.Logger
}

// Options carries the optional collaborators.
type Options struct {
	Directory  Directory
	BooksCache *cache.BooksCache
	Events     EventPublisher
}

// New creates the service.
func New(contacts ContactsStore, books BooksStore, users UsersStore, opts Options, logger *zap.Logger) *Service {
	return &Service{
		contacts:   contacts,
		books:      books,
		users:      users,
		dir:        opts.Directory,
		deduper:    dedup.New(contacts, logger),
		policy:     policy.New(books),
		parser:     vcf.NewParser(logger),
		booksCache: opts.BooksCache,
		events:     opts.Events,
		logger:     logger,
	}
}
