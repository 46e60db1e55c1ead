package services

import (
	"context"
	"errors"
	"time"

	"github.com/careerfolio/backend/internal/models"
	pgrepo "github.com/careerfolio/backend/internal/repositories/postgres"
	"github.com/careerfolio/backend/internal/utils"
)

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error)
	// Aggregate assembles the core profile plus all seven sections for a
	// single page load. Read-only; an empty section never fails the whole.
	Aggregate(ctx context.Context, userID string) (*models.AggregateProfile, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	sections SectionService
}

func NewProfileService(profiles pgrepo.ProfileRepository, sections SectionService) ProfileService {
	return &profileService{profiles: profiles, sections: sections}
}

// Get returns the core profile, or an empty shape when the placeholder is
// missing. Absence is not a fetch failure: a crash during registration can
// leave no placeholder, and the first update recreates it.
func (s *profileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "ProfileService.Get"

	p, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		return &models.Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to fetch profile", err)
	}
	return p, nil
}

// Update replaces the full core profile for the user. Last write wins.
func (s *profileService) Update(ctx context.Context, userID string, p *models.Profile) (*models.Profile, error) {
	const op = "ProfileService.Update"

	p.UserID = userID
	p.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	return p, nil
}

func (s *profileService) Aggregate(ctx context.Context, userID string) (*models.AggregateProfile, error) {
	core, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	about, err := s.sections.GetAbout(ctx, userID)
	if err != nil {
		return nil, err
	}
	education, err := s.sections.ListEducation(ctx, userID)
	if err != nil {
		return nil, err
	}
	experience, err := s.sections.ListExperience(ctx, userID)
	if err != nil {
		return nil, err
	}
	portfolio, err := s.sections.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}
	projects, err := s.sections.ListProjects(ctx, userID)
	if err != nil {
		return nil, err
	}
	skills, err := s.sections.GetSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	certifications, err := s.sections.ListCertifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.AggregateProfile{
		Profile:        *core,
		About:          *about,
		Education:      education,
		Experience:     experience,
		Portfolio:      *portfolio,
		Projects:       projects,
		Skills:         *skills,
		Certifications: certifications,
	}, nil
}
