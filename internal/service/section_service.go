package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"testseries-service/internal/models"
	"testseries-service/internal/repository"
)

type SectionService struct {
	Sections *repository.SectionRepository
	Tests    *repository.TestRepository
}

func NewSectionService(sections *repository.SectionRepository, tests *repository.TestRepository) *SectionService {
	return &SectionService{Sections: sections, Tests: tests}
}

func (s *SectionService) GetSection(ctx context.Context, id string) (*models.Section, error) {
	section, err := s.Sections.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrSectionNotFound)
	}
	return section, nil
}

func (s *SectionService) ListByTest(ctx context.Context, testID string) ([]models.Section, error) {
	return s.Sections.FindByTest(ctx, testID)
}

func (s *SectionService) CreateSection(ctx context.Context, section *models.Section) error {
	if _, err := s.Tests.FindByID(ctx, section.TestID); err != nil {
		return notFound(err, ErrTestNotFound)
	}
	return s.Sections.Create(ctx, section)
}

func (s *SectionService) UpdateSection(ctx context.Context, id string, update bson.M) error {
	return s.Sections.Update(ctx, id, update)
}

func (s *SectionService) DeleteSection(ctx context.Context, id string) error {
	return s.Sections.Delete(ctx, id)
}
