package session

import "sync"

// View names one of the four screens the portal can show. Navigation is
// purely in-memory; there is no URL routing.
type View string

const (
	ViewListing View = "listing"
	ViewDetail  View = "detail"
	ViewLogin   View = "login"
	ViewAdmin   View = "admin"
)

// Tab selects a pane of the admin dashboard.
type Tab string

const (
	TabVacancies Tab = "vacancies"
	TabUsers     Tab = "users"
	TabRoles     Tab = "roles"
	TabSettings  Tab = "settings"
)

// ViewState is the navigation state of one visitor. It is deliberately
// separate from authorization and from the data mirror.
type ViewState struct {
	mu         sync.Mutex
	view       View
	selectedID string
	tab        Tab
}

func NewViewState() *ViewState {
	return &ViewState{view: ViewListing, tab: TabVacancies}
}

func (s *ViewState) Current() (View, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view, s.selectedID
}

func (s *ViewState) Show(view View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	if view != ViewDetail {
		s.selectedID = ""
	}
}

// ShowDetail opens the detail view for a vacancy.
func (s *ViewState) ShowDetail(vacancyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewDetail
	s.selectedID = vacancyID
}

func (s *ViewState) ActiveTab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

func (s *ViewState) SelectTab(tab Tab) {
	switch tab {
	case TabVacancies, TabUsers, TabRoles, TabSettings:
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
}
