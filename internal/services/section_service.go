package services

import (
	"context"
	"errors"

	"github.com/careerfolio/backend/internal/models"
	mongorepo "github.com/careerfolio/backend/internal/repositories/mongo"
	"github.com/careerfolio/backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SectionService is the typed access layer for the seven profile sections.
// The owning user id always comes from a validated token, never from the
// request body; every repository call is scoped by it. Singleton sections
// (about, portfolio, skills) upsert and fetch a default empty shape when no
// document exists yet. Multi-record sections (education, experience,
// projects, certifications) list newest first, validate required fields on
// add, and delete by record id.
type SectionService interface {
	GetAbout(ctx context.Context, userID string) (*models.About, error)
	SaveAbout(ctx context.Context, userID string, a *models.About) (*models.About, error)

	GetPortfolio(ctx context.Context, userID string) (*models.Portfolio, error)
	SavePortfolio(ctx context.Context, userID string, p *models.Portfolio) (*models.Portfolio, error)

	GetSkills(ctx context.Context, userID string) (*models.Skills, error)
	SaveSkills(ctx context.Context, userID string, sk *models.Skills) (*models.Skills, error)

	ListEducation(ctx context.Context, userID string) ([]models.Education, error)
	AddEducation(ctx context.Context, userID string, e *models.Education) (string, error)
	DeleteEducation(ctx context.Context, userID, recordID string) error

	ListExperience(ctx context.Context, userID string) ([]models.Experience, error)
	AddExperience(ctx context.Context, userID string, e *models.Experience) (string, error)
	DeleteExperience(ctx context.Context, userID, recordID string) error

	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
	AddProject(ctx context.Context, userID string, p *models.Project) (string, error)
	DeleteProject(ctx context.Context, userID, recordID string) error

	ListCertifications(ctx context.Context, userID string) ([]models.Certification, error)
	AddCertification(ctx context.Context, userID string, c *models.Certification) (string, error)
	DeleteCertification(ctx context.Context, userID, recordID string) error
}

type sectionService struct {
	about          mongorepo.AboutRepository
	portfolio      mongorepo.PortfolioRepository
	skills         mongorepo.SkillsRepository
	education      mongorepo.EducationRepository
	experience     mongorepo.ExperienceRepository
	projects       mongorepo.ProjectRepository
	certifications mongorepo.CertificationRepository
}

func NewSectionService(
	about mongorepo.AboutRepository,
	portfolio mongorepo.PortfolioRepository,
	skills mongorepo.SkillsRepository,
	education mongorepo.EducationRepository,
	experience mongorepo.ExperienceRepository,
	projects mongorepo.ProjectRepository,
	certifications mongorepo.CertificationRepository,
) SectionService {
	return &sectionService{
		about:          about,
		portfolio:      portfolio,
		skills:         skills,
		education:      education,
		experience:     experience,
		projects:       projects,
		certifications: certifications,
	}
}

// storeErr classifies a document store failure: timeouts mean the store is
// unreachable, everything else is a generic write/read failure.
func storeErr(op, msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return utils.E(utils.CodeUnavailable, op, "profile store unavailable", err)
	}
	return utils.E(utils.CodeInternal, op, msg, err)
}

// requireFields reports the first empty required field, in declaration
// order, as "missing required field: <name>".
func requireFields(op string, fields []struct {
	name string
	ok   bool
}) error {
	for _, f := range fields {
		if !f.ok {
			return utils.E(utils.CodeInvalidArgument, op, "missing required field: "+f.name, nil)
		}
	}
	return nil
}

func parseRecordID(op, recordID string) (primitive.ObjectID, error) {
	if recordID == "" {
		return primitive.NilObjectID, utils.E(utils.CodeInvalidArgument, op, "record id is required", nil)
	}
	id, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return primitive.NilObjectID, utils.E(utils.CodeInvalidArgument, op, "invalid record id", err)
	}
	return id, nil
}

// ---- about ----

func (s *sectionService) GetAbout(ctx context.Context, userID string) (*models.About, error) {
	const op = "SectionService.GetAbout"

	a, err := s.about.Get(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		return &models.About{UserID: userID}, nil
	}
	if err != nil {
		return nil, storeErr(op, "failed to fetch about", err)
	}
	return a, nil
}

func (s *sectionService) SaveAbout(ctx context.Context, userID string, a *models.About) (*models.About, error) {
	const op = "SectionService.SaveAbout"

	if err := s.about.Upsert(ctx, userID, a); err != nil {
		return nil, storeErr(op, "failed to save about", err)
	}
	return a, nil
}

// ---- portfolio ----

func (s *sectionService) GetPortfolio(ctx context.Context, userID string) (*models.Portfolio, error) {
	const op = "SectionService.GetPortfolio"

	p, err := s.portfolio.Get(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		return &models.Portfolio{UserID: userID}, nil
	}
	if err != nil {
		return nil, storeErr(op, "failed to fetch portfolio", err)
	}
	return p, nil
}

func (s *sectionService) SavePortfolio(ctx context.Context, userID string, p *models.Portfolio) (*models.Portfolio, error) {
	const op = "SectionService.SavePortfolio"

	if err := s.portfolio.Upsert(ctx, userID, p); err != nil {
		return nil, storeErr(op, "failed to save portfolio", err)
	}
	return p, nil
}

// ---- skills ----

func (s *sectionService) GetSkills(ctx context.Context, userID string) (*models.Skills, error) {
	const op = "SectionService.GetSkills"

	sk, err := s.skills.Get(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		return emptySkills(userID), nil
	}
	if err != nil {
		return nil, storeErr(op, "failed to fetch skills", err)
	}
	normalizeSkills(sk)
	return sk, nil
}

func (s *sectionService) SaveSkills(ctx context.Context, userID string, sk *models.Skills) (*models.Skills, error) {
	const op = "SectionService.SaveSkills"

	normalizeSkills(sk)
	if err := s.skills.Upsert(ctx, userID, sk); err != nil {
		return nil, storeErr(op, "failed to save skills", err)
	}
	return sk, nil
}

func emptySkills(userID string) *models.Skills {
	return &models.Skills{
		UserID:     userID,
		HardSkills: []string{},
		SoftSkills: []string{},
		Interests:  []string{},
	}
}

// A save always replaces the full sub-document; absent lists become empty,
// never null.
func normalizeSkills(sk *models.Skills) {
	if sk.HardSkills == nil {
		sk.HardSkills = []string{}
	}
	if sk.SoftSkills == nil {
		sk.SoftSkills = []string{}
	}
	if sk.Interests == nil {
		sk.Interests = []string{}
	}
}

// ---- education ----

func (s *sectionService) ListEducation(ctx context.Context, userID string) ([]models.Education, error) {
	const op = "SectionService.ListEducation"

	out, err := s.education.List(ctx, userID)
	if err != nil {
		return nil, storeErr(op, "failed to fetch education", err)
	}
	return out, nil
}

func (s *sectionService) AddEducation(ctx context.Context, userID string, e *models.Education) (string, error) {
	const op = "SectionService.AddEducation"

	err := requireFields(op, []struct {
		name string
		ok   bool
	}{
		{"level", e.Level != ""},
		{"school_name", e.SchoolName != ""},
		{"board", e.Board != ""},
		{"grade", e.Grade != ""},
		{"start_year", e.StartYear != 0},
		{"end_year", e.EndYear != 0},
		{"summary", e.Summary != ""},
	})
	if err != nil {
		return "", err
	}

	id, err := s.education.Insert(ctx, userID, e)
	if err != nil {
		return "", storeErr(op, "failed to add education", err)
	}
	return id, nil
}

func (s *sectionService) DeleteEducation(ctx context.Context, userID, recordID string) error {
	const op = "SectionService.DeleteEducation"

	id, err := parseRecordID(op, recordID)
	if err != nil {
		return err
	}
	n, err := s.education.Delete(ctx, userID, id)
	if err != nil {
		return storeErr(op, "failed to delete education", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "record not found", nil)
	}
	return nil
}

// ---- experience ----

func (s *sectionService) ListExperience(ctx context.Context, userID string) ([]models.Experience, error) {
	const op = "SectionService.ListExperience"

	out, err := s.experience.List(ctx, userID)
	if err != nil {
		return nil, storeErr(op, "failed to fetch experience", err)
	}
	return out, nil
}

func (s *sectionService) AddExperience(ctx context.Context, userID string, e *models.Experience) (string, error) {
	const op = "SectionService.AddExperience"

	err := requireFields(op, []struct {
		name string
		ok   bool
	}{
		{"job_title", e.JobTitle != ""},
		{"company", e.Company != ""},
		{"employment_type", e.EmploymentType != ""},
		{"location", e.Location != ""},
		{"start_year", e.StartYear != 0},
		{"summary", e.Summary != ""},
	})
	if err != nil {
		return "", err
	}

	id, err := s.experience.Insert(ctx, userID, e)
	if err != nil {
		return "", storeErr(op, "failed to add experience", err)
	}
	return id, nil
}

func (s *sectionService) DeleteExperience(ctx context.Context, userID, recordID string) error {
	const op = "SectionService.DeleteExperience"

	id, err := parseRecordID(op, recordID)
	if err != nil {
		return err
	}
	n, err := s.experience.Delete(ctx, userID, id)
	if err != nil {
		return storeErr(op, "failed to delete experience", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "record not found", nil)
	}
	return nil
}

// ---- projects ----

func (s *sectionService) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	const op = "SectionService.ListProjects"

	out, err := s.projects.List(ctx, userID)
	if err != nil {
		return nil, storeErr(op, "failed to fetch projects", err)
	}
	return out, nil
}

func (s *sectionService) AddProject(ctx context.Context, userID string, p *models.Project) (string, error) {
	const op = "SectionService.AddProject"

	err := requireFields(op, []struct {
		name string
		ok   bool
	}{
		{"project_name", p.ProjectName != ""},
		{"role", p.Role != ""},
		{"project_link", p.ProjectLink != ""},
		{"summary", p.Summary != ""},
	})
	if err != nil {
		return "", err
	}

	id, err := s.projects.Insert(ctx, userID, p)
	if err != nil {
		return "", storeErr(op, "failed to add project", err)
	}
	return id, nil
}

func (s *sectionService) DeleteProject(ctx context.Context, userID, recordID string) error {
	const op = "SectionService.DeleteProject"

	id, err := parseRecordID(op, recordID)
	if err != nil {
		return err
	}
	n, err := s.projects.Delete(ctx, userID, id)
	if err != nil {
		return storeErr(op, "failed to delete project", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "record not found", nil)
	}
	return nil
}

// ---- certifications ----

func (s *sectionService) ListCertifications(ctx context.Context, userID string) ([]models.Certification, error) {
	const op = "SectionService.ListCertifications"

	out, err := s.certifications.List(ctx, userID)
	if err != nil {
		return nil, storeErr(op, "failed to fetch certifications", err)
	}
	return out, nil
}

func (s *sectionService) AddCertification(ctx context.Context, userID string, c *models.Certification) (string, error) {
	const op = "SectionService.AddCertification"

	err := requireFields(op, []struct {
		name string
		ok   bool
	}{
		{"name", c.Name != ""},
		{"issuing_org", c.IssuingOrg != ""},
		{"credential_id", c.CredentialID != ""},
		{"credential_link", c.CredentialLink != ""},
		{"issue_year", c.IssueYear != 0},
	})
	if err != nil {
		return "", err
	}

	id, err := s.certifications.Insert(ctx, userID, c)
	if err != nil {
		return "", storeErr(op, "failed to add certification", err)
	}
	return id, nil
}

func (s *sectionService) DeleteCertification(ctx context.Context, userID, recordID string) error {
	const op = "SectionService.DeleteCertification"

	id, err := parseRecordID(op, recordID)
	if err != nil {
		return err
	}
	n, err := s.certifications.Delete(ctx, userID, id)
	if err != nil {
		return storeErr(op, "failed to delete certification", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "record not found", nil)
	}
	return nil
}
