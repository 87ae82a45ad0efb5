package service

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/kimo/alma-take-home-assignment/model"
)

// LeadStore is an in-memory store for leads. Records live for the process
// lifetime; there is no backing database and no delete operation.
type LeadStore struct {
	mu     sync.RWMutex
	leads  map[string]*model.Lead
	nextID int64
}

// NewLeadStore creates an empty lead store.
func NewLeadStore() *LeadStore {
	return &LeadStore{
		leads:  make(map[string]*model.Lead),
		nextID: 1,
	}
}

// CreateLeadParams carries the caller-supplied fields for a new lead.
// ID, status, and submission time are assigned by the store.
type CreateLeadParams struct {
	FirstName      string
	LastName       string
	Email          string
	Country        string
	LinkedIn       string
	VisaInterests  []string
	ResumePath     string
	ResumeFileName string
	HelpMessage    string
}

// Create inserts a new lead with a fresh identifier, PENDING status, and
// the current time as submission timestamp, and returns a copy of it.
// Validation is the caller's responsibility.
func (s *LeadStore) Create(p CreateLeadParams) model.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.FormatInt(s.nextID, 10)
	s.nextID++

	lead := &model.Lead{
		ID:             id,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Country:        p.Country,
		LinkedIn:       p.LinkedIn,
		VisaInterests:  append([]string(nil), p.VisaInterests...),
		ResumePath:     p.ResumePath,
		ResumeFileName: p.ResumeFileName,
		HelpMessage:    p.HelpMessage,
		Status:         model.StatusPending,
		SubmittedAt:    time.Now(),
	}
	s.leads[id] = lead

	return copyLead(lead)
}

// GetAll returns copies of every lead, most recently submitted first.
// Leads submitted at the same instant are ordered newest identifier first.
func (s *LeadStore) GetAll() []model.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		result = append(result, copyLead(l))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].SubmittedAt.Equal(result[j].SubmittedAt) {
			return result[i].SubmittedAt.After(result[j].SubmittedAt)
		}
		return numericID(result[i].ID) > numericID(result[j].ID)
	})
	return result
}

// GetByID returns a copy of the lead with the given identifier, or nil if
// no such lead exists.
func (s *LeadStore) GetByID(id string) *model.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil
	}
	c := copyLead(lead)
	return &c
}

// UpdateStatus sets the status of the lead with the given identifier and
// returns a copy of the updated record, or nil if the identifier is
// unknown. All other fields are left untouched.
func (s *LeadStore) UpdateStatus(id string, status model.LeadStatus) *model.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := s.leads[id]
	if !ok {
		return nil
	}
	lead.Status = status
	c := copyLead(lead)
	return &c
}

// Count returns the number of leads in the store.
func (s *LeadStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.leads)
}

// copyLead returns a value copy that shares no mutable state with the
// stored record.
func copyLead(l *model.Lead) model.Lead {
	c := *l
	c.VisaInterests = append([]string(nil), l.VisaInterests...)
	return c
}

func numericID(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}
