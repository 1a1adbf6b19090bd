package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio/internal/models"
)

// skillRepoStub is a stub for repository.SkillRepository.
type skillRepoStub struct {
	createFn    func(context.Context, *models.Skill) error
	getByIDFn   func(context.Context, uint) (*models.Skill, error)
	getByNameFn func(context.Context, string) (*models.Skill, error)
	listFn      func(context.Context) ([]*models.Skill, error)
	updateFn    func(context.Context, *models.Skill) error
	deleteFn    func(context.Context, uint) error
}

func (s *skillRepoStub) Create(ctx context.Context, skill *models.Skill) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *skillRepoStub) GetByName(ctx context.Context, name string) (*models.Skill, error) {
	return s.getByNameFn(ctx, name)
}
func (s *skillRepoStub) List(ctx context.Context) ([]*models.Skill, error) {
	return s.listFn(ctx)
}
func (s *skillRepoStub) Update(ctx context.Context, skill *models.Skill) error {
	return s.updateFn(ctx, skill)
}
func (s *skillRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		createFn:    func(_ context.Context, _ *models.Skill) error { return nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Skill, error) { return &models.Skill{}, nil },
		getByNameFn: func(_ context.Context, _ string) (*models.Skill, error) { return nil, gorm.ErrRecordNotFound },
		listFn:      func(_ context.Context) ([]*models.Skill, error) { return nil, nil },
		updateFn:    func(_ context.Context, _ *models.Skill) error { return nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

func TestSkillService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewSkillService(noopSkillRepo())
	ctx := context.Background()

	t.Run("empty payload lists required fields in order", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(ctx, CreateSkillInput{})
		appErr := assertValidationError(t, err)
		assert.Equal(t, []string{"name", "category", "proficiency"}, appErr.Fields)
	})

	t.Run("unrecognized proficiency rejected", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(ctx, CreateSkillInput{
			Name:        "Go",
			Category:    "Backend",
			Proficiency: "Wizard",
		})
		appErr := assertValidationError(t, err)
		assert.Contains(t, appErr.Message, "proficiency")
	})

	t.Run("proficiency is case sensitive", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(ctx, CreateSkillInput{
			Name:        "Go",
			Category:    "Backend",
			Proficiency: "expert",
		})
		assertValidationError(t, err)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		t.Parallel()
		repo := noopSkillRepo()
		repo.getByNameFn = func(_ context.Context, name string) (*models.Skill, error) {
			return &models.Skill{ID: 1, Name: name}, nil
		}
		svc2 := NewSkillService(repo)
		_, err := svc2.Create(ctx, CreateSkillInput{
			Name:        "Go",
			Category:    "Backend",
			Proficiency: "Expert",
		})
		appErr := assertValidationError(t, err)
		assert.Contains(t, appErr.Message, "already exists")
	})
}

func TestSkillService_Create_Persists(t *testing.T) {
	t.Parallel()

	repo := noopSkillRepo()
	repo.createFn = func(_ context.Context, s *models.Skill) error {
		s.ID = 11
		return nil
	}

	svc := NewSkillService(repo)
	skill, err := svc.Create(context.Background(), CreateSkillInput{
		Name:        "PostgreSQL",
		Category:    "Backend",
		Proficiency: "Expert",
		IconURL:     "https://icons.example.com/pg.svg",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), skill.ID)
	assert.Equal(t, models.ProficiencyExpert, skill.Proficiency)
}

func TestSkillService_Update_SparseFields(t *testing.T) {
	t.Parallel()

	repo := noopSkillRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Skill, error) {
		return &models.Skill{ID: id, Name: "Go", Category: "Backend", Proficiency: models.ProficiencyIntermediate}, nil
	}

	svc := NewSkillService(repo)
	skill, err := svc.Update(context.Background(), 2, UpdateSkillInput{
		Proficiency: strPtr("Expert"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProficiencyExpert, skill.Proficiency)
	assert.Equal(t, "Go", skill.Name)
}

func TestSkillService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	repo := noopSkillRepo()
	repo.deleteFn = func(_ context.Context, _ uint) error {
		return gorm.ErrRecordNotFound
	}

	svc := NewSkillService(repo)
	assertNotFoundError(t, svc.Delete(context.Background(), 5))
}
