package mirror

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/docstore"
	"github.com/Mialde/Micheldekker/internal/domain/role"
	"github.com/Mialde/Micheldekker/internal/domain/settings"
	"github.com/Mialde/Micheldekker/internal/domain/user"
	"github.com/Mialde/Micheldekker/internal/domain/vacancy"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// Mirror keeps local snapshots of the four remote collections, refreshed on
// every change notification. A failed subscription leaves the affected
// snapshot stale but present; it is never cleared.
type Mirror struct {
	store     docstore.Store
	vacancies vacancy.Repository
	users     user.Repository
	roles     role.Repository
	settings  settings.Repository
	logger    Logger

	mu           sync.RWMutex
	vacancyList  []vacancy.Vacancy
	userList     []user.AppUser
	roleList     []role.Role
	site         settings.Site
	listeners    map[int]func(collection string)
	nextListener int
	cancels      []func()
}

func New(store docstore.Store, vacancies vacancy.Repository, users user.Repository, roles role.Repository, siteSettings settings.Repository, logger Logger) *Mirror {
	return &Mirror{
		store:     store,
		vacancies: vacancies,
		users:     users,
		roles:     roles,
		settings:  siteSettings,
		logger:    logger,
		site:      settings.Default(),
		listeners: make(map[int]func(collection string)),
	}
}

// Start performs the initial reads and registers the four collection
// subscriptions. The subscriptions live until Close or ctx cancellation.
func (m *Mirror) Start(ctx context.Context) error {
	collections := []string{
		docstore.CollectionVacancies,
		docstore.CollectionUsers,
		docstore.CollectionRoles,
		docstore.CollectionSettings,
	}
	for _, collection := range collections {
		m.refresh(ctx, collection)
		col := collection
		cancel, err := m.store.Subscribe(ctx, col,
			func() {
				m.refresh(context.Background(), col)
				m.notify(col)
			},
			func(err error) {
				m.logError(fmt.Sprintf("collection subscription failed collection=%s: %v", col, err))
			},
		)
		if err != nil {
			m.Close()
			return err
		}
		m.mu.Lock()
		m.cancels = append(m.cancels, cancel)
		m.mu.Unlock()
	}
	return nil
}

func (m *Mirror) Close() {
	m.mu.Lock()
	cancels := m.cancels
	m.cancels = nil
	m.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// Subscribe registers a re-render listener invoked with the collection name
// after each snapshot refresh. The returned function unsubscribes.
func (m *Mirror) Subscribe(fn func(collection string)) func() {
	m.mu.Lock()
	id := m.nextListener
	m.nextListener++
	m.listeners[id] = fn
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

func (m *Mirror) Vacancies() []vacancy.Vacancy {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]vacancy.Vacancy(nil), m.vacancyList...)
}

func (m *Mirror) Users() []user.AppUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]user.AppUser(nil), m.userList...)
}

func (m *Mirror) Roles() []role.Role {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]role.Role(nil), m.roleList...)
}

func (m *Mirror) Settings() settings.Site {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.site
}

func (m *Mirror) refresh(ctx context.Context, collection string) {
	switch collection {
	case docstore.CollectionVacancies:
		items, err := m.vacancies.List(ctx)
		if err != nil {
			m.logError(fmt.Sprintf("failed to refresh vacancies: %v", err))
			return
		}
		SortVacancies(items)
		m.mu.Lock()
		m.vacancyList = items
		m.mu.Unlock()
	case docstore.CollectionUsers:
		items, err := m.users.List(ctx)
		if err != nil {
			m.logError(fmt.Sprintf("failed to refresh users: %v", err))
			return
		}
		m.mu.Lock()
		m.userList = items
		m.mu.Unlock()
	case docstore.CollectionRoles:
		items, err := m.roles.List(ctx)
		if err != nil {
			m.logError(fmt.Sprintf("failed to refresh roles: %v", err))
			return
		}
		m.mu.Lock()
		m.roleList = items
		m.mu.Unlock()
	case docstore.CollectionSettings:
		site, err := m.settings.Get(ctx)
		if err != nil {
			if !common.Is(err, common.CodeNotFound) {
				m.logError(fmt.Sprintf("failed to refresh settings: %v", err))
			}
			return
		}
		m.mu.Lock()
		m.site = *site
		m.mu.Unlock()
	}
}

func (m *Mirror) notify(collection string) {
	m.mu.RLock()
	listeners := make([]func(string), 0, len(m.listeners))
	for _, fn := range m.listeners {
		listeners = append(listeners, fn)
	}
	m.mu.RUnlock()
	for _, fn := range listeners {
		fn(collection)
	}
}

func (m *Mirror) logError(msg string) {
	if m.logger == nil {
		return
	}
	m.logger.Error(msg)
}

// SortVacancies orders newest first. A zero creation time sorts as the
// earliest possible moment, so undated documents sink to the end.
func SortVacancies(items []vacancy.Vacancy) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
