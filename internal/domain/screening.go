package domain

import (
	"context"
	"strings"
	"time"
)

type ScreeningOutcome string

const (
	ScreeningPending ScreeningOutcome = "pending"
	ScreeningPass    ScreeningOutcome = "pass"
	ScreeningFail    ScreeningOutcome = "fail"
)

var ScreeningOutcomes = []ScreeningOutcome{ScreeningPending, ScreeningPass, ScreeningFail}

func (o ScreeningOutcome) IsValid() bool {
	for _, v := range ScreeningOutcomes {
		if o == v {
			return true
		}
	}
	return false
}

func ParseScreeningOutcome(raw string) (ScreeningOutcome, bool) {
	o := ScreeningOutcome(strings.ToLower(strings.TrimSpace(raw)))
	return o, o.IsValid()
}

// Screening is an append-only evaluation event on an application.
type Screening struct {
	ID            int64            `json:"screening_id"`
	ApplicationID int64            `json:"application_id"`
	StageName     string           `json:"stage_name"`
	Outcome       ScreeningOutcome `json:"outcome"`
	ScheduledAt   *time.Time       `json:"scheduled_at"`
	Notes         *string          `json:"notes"`
	RecordedBy    *int64           `json:"recorded_by"`
	CreatedAt     time.Time        `json:"created_at"`
}

type ScreeningInput struct {
	StageName   string
	Outcome     string
	ScheduledAt string
	Notes       string
}

type ScreeningRepository interface {
	ListByApplication(ctx context.Context, applicationID int64) ([]Screening, error)
	Create(ctx context.Context, s *Screening) error
}

type ScreeningUsecase interface {
	List(ctx context.Context, userID, jobID, applicationID int64) ([]Screening, error)
	Record(ctx context.Context, userID, jobID, applicationID int64, in ScreeningInput) (*Screening, error)
}
