package services

import (
	"context"
	"testing"

	"github.com/careerfolio/backend/internal/models"
	"github.com/careerfolio/backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAboutRepo struct{ byUser map[string]*models.About }

func (f *fakeAboutRepo) Get(_ context.Context, userID string) (*models.About, error) {
	a, ok := f.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return a, nil
}

func (f *fakeAboutRepo) Upsert(_ context.Context, userID string, a *models.About) error {
	a.UserID = userID
	cp := *a
	f.byUser[userID] = &cp
	return nil
}

type fakePortfolioRepo struct{ byUser map[string]*models.Portfolio }

func (f *fakePortfolioRepo) Get(_ context.Context, userID string) (*models.Portfolio, error) {
	p, ok := f.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return p, nil
}

func (f *fakePortfolioRepo) Upsert(_ context.Context, userID string, p *models.Portfolio) error {
	p.UserID = userID
	cp := *p
	f.byUser[userID] = &cp
	return nil
}

type fakeSkillsRepo struct{ byUser map[string]*models.Skills }

func (f *fakeSkillsRepo) Get(_ context.Context, userID string) (*models.Skills, error) {
	s, ok := f.byUser[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return s, nil
}

func (f *fakeSkillsRepo) Upsert(_ context.Context, userID string, s *models.Skills) error {
	s.UserID = userID
	cp := *s
	f.byUser[userID] = &cp
	return nil
}

// fakeEducationRepo prepends on insert so listings come back newest first,
// matching the created_at desc sort of the real repository.
type fakeEducationRepo struct{ records []models.Education }

func (f *fakeEducationRepo) List(_ context.Context, userID string) ([]models.Education, error) {
	out := []models.Education{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEducationRepo) Insert(_ context.Context, userID string, e *models.Education) (string, error) {
	e.ID = primitive.NewObjectID()
	e.UserID = userID
	f.records = append([]models.Education{*e}, f.records...)
	return e.ID.Hex(), nil
}

func (f *fakeEducationRepo) Delete(_ context.Context, userID string, id primitive.ObjectID) (int64, error) {
	for i, r := range f.records {
		if r.ID == id && r.UserID == userID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeExperienceRepo struct{ records []models.Experience }

func (f *fakeExperienceRepo) List(_ context.Context, userID string) ([]models.Experience, error) {
	out := []models.Experience{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeExperienceRepo) Insert(_ context.Context, userID string, e *models.Experience) (string, error) {
	e.ID = primitive.NewObjectID()
	e.UserID = userID
	f.records = append([]models.Experience{*e}, f.records...)
	return e.ID.Hex(), nil
}

func (f *fakeExperienceRepo) Delete(_ context.Context, userID string, id primitive.ObjectID) (int64, error) {
	for i, r := range f.records {
		if r.ID == id && r.UserID == userID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeProjectRepo struct{ records []models.Project }

func (f *fakeProjectRepo) List(_ context.Context, userID string) ([]models.Project, error) {
	out := []models.Project{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Insert(_ context.Context, userID string, p *models.Project) (string, error) {
	p.ID = primitive.NewObjectID()
	p.UserID = userID
	f.records = append([]models.Project{*p}, f.records...)
	return p.ID.Hex(), nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, userID string, id primitive.ObjectID) (int64, error) {
	for i, r := range f.records {
		if r.ID == id && r.UserID == userID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeCertificationRepo struct{ records []models.Certification }

func (f *fakeCertificationRepo) List(_ context.Context, userID string) ([]models.Certification, error) {
	out := []models.Certification{}
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCertificationRepo) Insert(_ context.Context, userID string, c *models.Certification) (string, error) {
	c.ID = primitive.NewObjectID()
	c.UserID = userID
	f.records = append([]models.Certification{*c}, f.records...)
	return c.ID.Hex(), nil
}

func (f *fakeCertificationRepo) Delete(_ context.Context, userID string, id primitive.ObjectID) (int64, error) {
	for i, r := range f.records {
		if r.ID == id && r.UserID == userID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newTestSectionService() SectionService {
	return NewSectionService(
		&fakeAboutRepo{byUser: map[string]*models.About{}},
		&fakePortfolioRepo{byUser: map[string]*models.Portfolio{}},
		&fakeSkillsRepo{byUser: map[string]*models.Skills{}},
		&fakeEducationRepo{},
		&fakeExperienceRepo{},
		&fakeProjectRepo{},
		&fakeCertificationRepo{},
	)
}

func validEducation() *models.Education {
	return &models.Education{
		Level:      "UG",
		SchoolName: "X",
		Board:      "Y",
		Grade:      "A",
		StartYear:  2020,
		EndYear:    2024,
		Summary:    "studied things",
	}
}

func TestGetSingletonDefaultsWhenAbsent(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	a, err := svc.GetAbout(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "", a.Content)

	p, err := svc.GetPortfolio(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "", p.WebsiteURL)

	sk, err := svc.GetSkills(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, sk.HardSkills)
	assert.Empty(t, sk.HardSkills)
}

func TestSaveThenFetchSingletonRoundTrip(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	_, err := svc.SaveAbout(ctx, "u1", &models.About{Content: "hello"})
	require.NoError(t, err)
	a, err := svc.GetAbout(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "hello", a.Content)

	// A second save fully replaces the document.
	_, err = svc.SavePortfolio(ctx, "u1", &models.Portfolio{WebsiteURL: "https://a", GithubURL: "https://g"})
	require.NoError(t, err)
	_, err = svc.SavePortfolio(ctx, "u1", &models.Portfolio{WebsiteURL: "https://b"})
	require.NoError(t, err)
	p, err := svc.GetPortfolio(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "https://b", p.WebsiteURL)
	assert.Equal(t, "", p.GithubURL)
}

func TestSaveSkillsNeverStoresNilLists(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	_, err := svc.SaveSkills(ctx, "u1", &models.Skills{HardSkills: []string{"go"}})
	require.NoError(t, err)

	sk, err := svc.GetSkills(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, sk.HardSkills)
	assert.Equal(t, []string{}, sk.SoftSkills)
	assert.Equal(t, []string{}, sk.Interests)
}

func TestAddEducationValidatesFieldsInOrder(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	e := validEducation()
	e.Board = ""
	e.Summary = ""
	_, err := svc.AddEducation(ctx, "u1", e)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	// The first missing field in declaration order is the one reported.
	assert.Equal(t, "missing required field: board", utils.Message(err))
}

func TestAddExperienceRequiredFields(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	_, err := svc.AddExperience(ctx, "u1", &models.Experience{})
	require.Error(t, err)
	assert.Equal(t, "missing required field: job_title", utils.Message(err))

	// end_year is not required; currently_working covers open-ended roles.
	id, err := svc.AddExperience(ctx, "u1", &models.Experience{
		JobTitle:         "Engineer",
		Company:          "Acme",
		EmploymentType:   "full-time",
		Location:         "Remote",
		StartYear:        2021,
		CurrentlyWorking: true,
		Summary:          "building",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestAddThenDeleteThenFetch(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	id, err := svc.AddEducation(ctx, "u1", validEducation())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	list, err := svc.ListEducation(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "X", list[0].SchoolName)

	require.NoError(t, svc.DeleteEducation(ctx, "u1", id))

	list, err = svc.ListEducation(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	first := validEducation()
	first.SchoolName = "First"
	_, err := svc.AddEducation(ctx, "u1", first)
	require.NoError(t, err)

	second := validEducation()
	second.SchoolName = "Second"
	_, err = svc.AddEducation(ctx, "u1", second)
	require.NoError(t, err)

	list, err := svc.ListEducation(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].SchoolName)
	assert.Equal(t, "First", list[1].SchoolName)
}

func TestDeleteNeverCrossesUsers(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	idB, err := svc.AddProject(ctx, "userB", &models.Project{
		ProjectName: "theirs", Role: "owner", ProjectLink: "https://x", Summary: "s",
	})
	require.NoError(t, err)

	// userA knows userB's record id but must not be able to touch it.
	err = svc.DeleteProject(ctx, "userA", idB)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	list, err := svc.ListProjects(ctx, "userB")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteRequiresRecordID(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	err := svc.DeleteCertification(ctx, "u1", "")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	err = svc.DeleteCertification(ctx, "u1", "not-a-hex-id")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestAddCertificationRequiredFields(t *testing.T) {
	svc := newTestSectionService()
	ctx := context.Background()

	_, err := svc.AddCertification(ctx, "u1", &models.Certification{
		Name: "Cert", IssuingOrg: "Org", CredentialID: "c-1", CredentialLink: "https://c",
	})
	require.Error(t, err)
	assert.Equal(t, "missing required field: issue_year", utils.Message(err))

	id, err := svc.AddCertification(ctx, "u1", &models.Certification{
		Name: "Cert", IssuingOrg: "Org", CredentialID: "c-1", CredentialLink: "https://c",
		IssueYear: 2023, NoExpiry: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}
