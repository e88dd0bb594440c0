package usecase

import (
	"context"

	"github.com/shri8977/FUTURE-FS-01/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	contactUC domain.ContactUsecase
}

func NewHealthUsecase(contactUC domain.ContactUsecase) HealthUsecase {
	return &healthUsecase{contactUC: contactUC}
}

// Check never fails the probe on relay problems; it only reports them.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	relay := "configured"
	if !u.contactUC.RelayConfigured() {
		relay = "unconfigured"
	}
	return map[string]string{
		"status": "ok",
		"relay":  relay,
	}
}
