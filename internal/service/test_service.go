package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"testseries-service/internal/models"
	"testseries-service/internal/repository"
)

type TestService struct {
	Tests    *repository.TestRepository
	Sections *repository.SectionRepository
}

func NewTestService(tests *repository.TestRepository, sections *repository.SectionRepository) *TestService {
	return &TestService{Tests: tests, Sections: sections}
}

func (s *TestService) GetTest(ctx context.Context, id string) (*models.Test, error) {
	test, err := s.Tests.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTestNotFound)
	}
	return test, nil
}

// GetTestWithSections is the student-facing read: test plus its sections in
// declared order.
func (s *TestService) GetTestWithSections(ctx context.Context, id string) (*models.Test, []models.Section, error) {
	test, err := s.GetTest(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	sections, err := s.Sections.FindByTest(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return test, sections, nil
}

func (s *TestService) ListPublished(ctx context.Context) ([]models.Test, error) {
	return s.Tests.FindPublished(ctx)
}

func (s *TestService) ListAll(ctx context.Context) ([]models.Test, error) {
	return s.Tests.FindAll(ctx)
}

func (s *TestService) CreateTest(ctx context.Context, test *models.Test) error {
	return s.Tests.Create(ctx, test)
}

func (s *TestService) UpdateTest(ctx context.Context, id string, update bson.M) error {
	return s.Tests.Update(ctx, id, update)
}

func (s *TestService) DeleteTest(ctx context.Context, id string) error {
	return s.Tests.Delete(ctx, id)
}
