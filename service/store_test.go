package service

import (
	"testing"

	"github.com/kimo/alma-take-home-assignment/model"
)

func sampleParams(first, last string) CreateLeadParams {
	return CreateLeadParams{
		FirstName:     first,
		LastName:      last,
		Email:         first + "@example.com",
		Country:       "Canada",
		LinkedIn:      "https://linkedin.com/in/" + first,
		VisaInterests: []string{"O-1"},
		HelpMessage:   "Need help with visa",
	}
}

func TestLeadStoreCreate(t *testing.T) {
	store := NewLeadStore()

	lead := store.Create(sampleParams("John", "Doe"))

	if lead.ID == "" {
		t.Fatal("Expected non-empty ID")
	}
	if lead.Status != model.StatusPending {
		t.Errorf("Expected status %s, got %s", model.StatusPending, lead.Status)
	}
	if lead.SubmittedAt.IsZero() {
		t.Error("Expected submission timestamp to be set")
	}

	retrieved := store.GetByID(lead.ID)
	if retrieved == nil {
		t.Fatal("Expected to retrieve created lead")
	}
	if retrieved.FirstName != "John" {
		t.Errorf("Expected first name John, got %s", retrieved.FirstName)
	}
}

func TestLeadStoreCreateAssignsDistinctIDs(t *testing.T) {
	store := NewLeadStore()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		lead := store.Create(sampleParams("A", "B"))
		if seen[lead.ID] {
			t.Fatalf("Duplicate ID issued: %s", lead.ID)
		}
		seen[lead.ID] = true
	}

	if store.Count() != 20 {
		t.Errorf("Expected 20 leads, got %d", store.Count())
	}
}

func TestLeadStoreGetAllSortedBySubmissionDesc(t *testing.T) {
	store := NewLeadStore()

	first := store.Create(sampleParams("First", "Lead"))
	second := store.Create(sampleParams("Second", "Lead"))
	third := store.Create(sampleParams("Third", "Lead"))

	all := store.GetAll()
	if len(all) != 3 {
		t.Fatalf("Expected 3 leads, got %d", len(all))
	}

	// Most recent first; equal timestamps fall back to newest ID first
	for i := 1; i < len(all); i++ {
		if all[i].SubmittedAt.After(all[i-1].SubmittedAt) {
			t.Errorf("Leads not sorted by submission time descending at index %d", i)
		}
	}
	if all[0].ID != third.ID {
		t.Errorf("Expected newest lead first, got %s", all[0].ID)
	}
	if all[1].ID != second.ID {
		t.Errorf("Expected second lead in the middle, got %s", all[1].ID)
	}
	if all[2].ID != first.ID {
		t.Errorf("Expected oldest lead last, got %s", all[2].ID)
	}
}

func TestLeadStoreGetAllEmpty(t *testing.T) {
	store := NewLeadStore()

	all := store.GetAll()
	if len(all) != 0 {
		t.Errorf("Expected empty slice, got %d leads", len(all))
	}
}

func TestLeadStoreGetByIDNotFound(t *testing.T) {
	store := NewLeadStore()

	if lead := store.GetByID("999"); lead != nil {
		t.Errorf("Expected nil for unknown ID, got %+v", lead)
	}
}

func TestLeadStoreUpdateStatus(t *testing.T) {
	store := NewLeadStore()

	lead := store.Create(sampleParams("Jane", "Smith"))

	updated := store.UpdateStatus(lead.ID, model.StatusReachedOut)
	if updated == nil {
		t.Fatal("Expected updated lead")
	}
	if updated.Status != model.StatusReachedOut {
		t.Errorf("Expected status %s, got %s", model.StatusReachedOut, updated.Status)
	}

	// Other fields unchanged
	if updated.FirstName != "Jane" || updated.Email != lead.Email {
		t.Error("Expected non-status fields to be unchanged")
	}
	if !updated.SubmittedAt.Equal(lead.SubmittedAt) {
		t.Error("Expected submission timestamp to be immutable")
	}

	// Re-affirming the same status is a no-op
	again := store.UpdateStatus(lead.ID, model.StatusReachedOut)
	if again == nil || again.Status != model.StatusReachedOut {
		t.Error("Expected repeated update to succeed")
	}
}

func TestLeadStoreUpdateStatusNotFound(t *testing.T) {
	store := NewLeadStore()

	if updated := store.UpdateStatus("does-not-exist", model.StatusReachedOut); updated != nil {
		t.Errorf("Expected nil for unknown ID, got %+v", updated)
	}
}

func TestLeadStoreReturnsCopies(t *testing.T) {
	store := NewLeadStore()

	lead := store.Create(sampleParams("Copy", "Check"))

	got := store.GetByID(lead.ID)
	got.FirstName = "Mutated"
	got.VisaInterests[0] = "mutated"

	fresh := store.GetByID(lead.ID)
	if fresh.FirstName != "Copy" {
		t.Error("Mutating a returned lead leaked into the store")
	}
	if fresh.VisaInterests[0] != "O-1" {
		t.Error("Mutating a returned visa interest slice leaked into the store")
	}
}
