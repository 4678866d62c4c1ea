package handler

import (
	"time"

	"scubakeep/internal/domain/entity"

	"github.com/google/uuid"
)

// DiverResponse is the outward shape of a diver profile. The password hash
// never leaves the application; the rank is derived, never stored.
type DiverResponse struct {
	ID                   uuid.UUID `json:"id"`
	Username             string    `json:"username"`
	Email                string    `json:"email"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	CountryCode          string    `json:"countryCode"`
	ProfilePicturePath   string    `json:"profilePicturePath,omitempty"`
	Role                 string    `json:"role"`
	HighestCertification string    `json:"highestCertification"`
	CertificationName    string    `json:"certificationName"`
	Specialties          []string  `json:"specialties"`
	TotalDives           int       `json:"totalDives"`
	Rank                 string    `json:"rank"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// DiveLogResponse is the outward shape of a dive log record.
type DiveLogResponse struct {
	ID        uuid.UUID `json:"id"`
	DiverID   uuid.UUID `json:"diverId"`
	DiveDate  time.Time `json:"diveDate"`
	Location  string    `json:"location"`
	DiveSite  string    `json:"diveSite"`
	MaxDepth  float64   `json:"maxDepth"`
	Duration  int       `json:"duration"`
	DiveBuddy string    `json:"diveBuddy,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDiverResponse(diver *entity.Diver) *DiverResponse {
	specialties := diver.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &DiverResponse{
		ID:                   diver.ID,
		Username:             diver.Username,
		Email:                diver.Email,
		FirstName:            diver.FirstName,
		LastName:             diver.LastName,
		CountryCode:          diver.CountryCode,
		ProfilePicturePath:   diver.ProfilePicturePath,
		Role:                 diver.Role.String(),
		HighestCertification: diver.HighestCertification.String(),
		CertificationName:    diver.HighestCertification.DisplayName(),
		Specialties:          specialties,
		TotalDives:           diver.TotalDives,
		Rank:                 diver.Rank().String(),
		CreatedAt:            diver.CreatedAt,
		UpdatedAt:            diver.UpdatedAt,
	}
}

func toDiverResponses(divers []*entity.Diver) []*DiverResponse {
	responses := make([]*DiverResponse, 0, len(divers))
	for _, diver := range divers {
		responses = append(responses, toDiverResponse(diver))
	}

	return responses
}

func toDiveLogResponse(log *entity.DiveLog) *DiveLogResponse {
	return &DiveLogResponse{
		ID:        log.ID,
		DiverID:   log.DiverID,
		DiveDate:  log.DiveDate,
		Location:  log.Location,
		DiveSite:  log.DiveSite,
		MaxDepth:  log.MaxDepth,
		Duration:  log.Duration,
		DiveBuddy: log.DiveBuddy,
		Notes:     log.Notes,
		CreatedAt: log.CreatedAt,
		UpdatedAt: log.UpdatedAt,
	}
}

func toDiveLogResponses(logs []*entity.DiveLog) []*DiveLogResponse {
	responses := make([]*DiveLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, toDiveLogResponse(log))
	}

	return responses
}
