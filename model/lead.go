package model

import (
	"time"
)

// LeadStatus is the processing state of a lead.
type LeadStatus string

const (
	StatusPending    LeadStatus = "PENDING"
	StatusReachedOut LeadStatus = "REACHED_OUT"
)

// ValidStatus reports whether s is one of the known lead statuses.
func ValidStatus(s LeadStatus) bool {
	return s == StatusPending || s == StatusReachedOut
}

// Lead represents one submission from the public intake form.
type Lead struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Country        string     `json:"country"`
	LinkedIn       string     `json:"linkedIn"`
	VisaInterests  []string   `json:"visaInterests"`
	ResumePath     string     `json:"resumePath"`
	ResumeFileName string     `json:"resumeFileName"`
	HelpMessage    string     `json:"helpMessage"`
	Status         LeadStatus `json:"status"`
	SubmittedAt    time.Time  `json:"submittedAt"`
}

// HasResume reports whether a resume file was stored for this lead.
// ResumePath and ResumeFileName are either both set or both empty.
func (l *Lead) HasResume() bool {
	return l.ResumePath != "" && l.ResumeFileName != ""
}
