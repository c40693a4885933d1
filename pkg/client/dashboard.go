package client

import (
	"context"

	"github.com/dougladias/vida-plena-api/internal/model"
)

// DashboardStats summarizes the clinic for the landing view.
type DashboardStats struct {
	TotalPatients          int `json:"total_patients"`
	ScheduledConsultations int `json:"scheduled_consultations"`
}

// GetDashboardStats fetches patients and consultations concurrently and
// joins the counts in memory. The first error wins.
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type patientsResult struct {
		patients []*model.Patient
		err      error
	}
	type consultationsResult struct {
		consultations []*model.Consultation
		err           error
	}

	patientsCh := make(chan patientsResult, 1)
	consultationsCh := make(chan consultationsResult, 1)

	go func() {
		patients, err := c.ListPatients(ctx)
		patientsCh <- patientsResult{patients: patients, err: err}
	}()
	go func() {
		consultations, err := c.ListConsultations(ctx)
		consultationsCh <- consultationsResult{consultations: consultations, err: err}
	}()

	pr := <-patientsCh
	if pr.err != nil {
		return nil, pr.err
	}
	cr := <-consultationsCh
	if cr.err != nil {
		return nil, cr.err
	}

	scheduled := 0
	for _, consultation := range cr.consultations {
		if consultation.Status == string(model.ConsultationStatusScheduled) {
			scheduled++
		}
	}

	return &DashboardStats{
		TotalPatients:          len(pr.patients),
		ScheduledConsultations: scheduled,
	}, nil
}
