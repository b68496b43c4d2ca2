package domain

import "context"

type HealthStatus struct {
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}

type HealthUsecase interface {
	Check(ctx context.Context) (*HealthStatus, bool)
}
