package usecase

import (
	"context"

	"go-futurehire-backend/internal/domain"
	"go-futurehire-backend/pkg/apperror"
)

// Reference-data usecases are thin reads over their repositories.

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) Fetch(ctx context.Context) ([]domain.Company, error) {
	return u.companyRepo.Fetch(ctx)
}

func (u *companyUsecase) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	return u.companyRepo.GetByID(ctx, id)
}

type skillUsecase struct {
	skillRepo domain.SkillRepository
}

func NewSkillUsecase(skillRepo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{skillRepo: skillRepo}
}

func (u *skillUsecase) Fetch(ctx context.Context) ([]domain.Skill, error) {
	return u.skillRepo.Fetch(ctx)
}

var skillCategories = map[string]bool{
	"technical":     true,
	"communication": true,
	"soft":          true,
}

func (u *skillUsecase) FetchByCategory(ctx context.Context, category string) ([]domain.Skill, error) {
	if !skillCategories[category] {
		return nil, apperror.BadRequest("Unknown skill category: " + category)
	}
	return u.skillRepo.FetchByCategory(ctx, category)
}

type courseUsecase struct {
	courseRepo domain.CourseRepository
}

func NewCourseUsecase(courseRepo domain.CourseRepository) domain.CourseUsecase {
	return &courseUsecase{courseRepo: courseRepo}
}

func (u *courseUsecase) Fetch(ctx context.Context) ([]domain.Course, error) {
	return u.courseRepo.Fetch(ctx)
}

func (u *courseUsecase) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return u.courseRepo.GetByID(ctx, id)
}

type higherStudyUsecase struct {
	studyRepo domain.HigherStudyRepository
}

func NewHigherStudyUsecase(studyRepo domain.HigherStudyRepository) domain.HigherStudyUsecase {
	return &higherStudyUsecase{studyRepo: studyRepo}
}

func (u *higherStudyUsecase) Fetch(ctx context.Context) ([]domain.HigherStudy, error) {
	return u.studyRepo.Fetch(ctx)
}

func (u *higherStudyUsecase) GetByID(ctx context.Context, id string) (*domain.HigherStudy, error) {
	return u.studyRepo.GetByID(ctx, id)
}

type mentorUsecase struct {
	mentorRepo domain.MentorRepository
}

func NewMentorUsecase(mentorRepo domain.MentorRepository) domain.MentorUsecase {
	return &mentorUsecase{mentorRepo: mentorRepo}
}

func (u *mentorUsecase) Fetch(ctx context.Context) ([]domain.Mentor, error) {
	return u.mentorRepo.Fetch(ctx)
}
