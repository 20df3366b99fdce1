package catalog

import (
	"context"
	"errors"

	"github.com/dineshpandey3618-web/Rank1/core"
)

var (
	// errors
	ErrSubjectNotFound = errors.New("subject not found")
	ErrChapterNotFound = errors.New("chapter not found")
)

type (
	// Repository lists in insertion order. Empty listings are empty slices,
	// never errors; the UI renders a placeholder for those.
	Repository interface {
		CreateSubject(ctx context.Context, ns NewSubject) (Subject, error)
		GetSubjectByID(ctx context.Context, id int) (Subject, error)
		QueryAllSubjects(ctx context.Context) ([]Subject, error)
		QuerySubjectsByClass(ctx context.Context, classLabel string) ([]Subject, error)

		CreateChapter(ctx context.Context, nc NewChapter) (Chapter, error)
		GetChapterByID(ctx context.Context, id int) (Chapter, error)
		QueryChaptersBySubject(ctx context.Context, subjectID int) ([]Chapter, error)

		CreateMaterial(ctx context.Context, nm NewMaterial) (Material, error)
		QueryMaterialsByChapter(ctx context.Context, chapterID int) ([]Material, error)

		CreateTest(ctx context.Context, nt NewTest) (Test, error)
		QueryAllTests(ctx context.Context) ([]Test, error)
		QueryTestsByClass(ctx context.Context, classLabel string) ([]Test, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddSubject files a subject under one of the fixed class labels.
func (svc *Service) AddSubject(ctx context.Context, ns NewSubject) (Subject, error) {
	if err := ns.Validate(); err != nil {
		return Subject{}, err
	}
	return svc.repo.CreateSubject(ctx, ns)
}

// AddChapter requires an existing parent subject.
func (svc *Service) AddChapter(ctx context.Context, nc NewChapter) (Chapter, error) {
	if err := nc.Validate(); err != nil {
		return Chapter{}, err
	}
	if _, err := svc.repo.GetSubjectByID(ctx, nc.SubjectID); err != nil {
		if err == ErrSubjectNotFound {
			return Chapter{}, core.NewValidationError(err, core.FieldError{Field: "subject_id", Error: err.Error()})
		}
		return Chapter{}, err
	}
	return svc.repo.CreateChapter(ctx, nc)
}

// AddMaterial requires an existing parent chapter.
func (svc *Service) AddMaterial(ctx context.Context, nm NewMaterial) (Material, error) {
	if err := nm.Validate(); err != nil {
		return Material{}, err
	}
	if _, err := svc.repo.GetChapterByID(ctx, nm.ChapterID); err != nil {
		if err == ErrChapterNotFound {
			return Material{}, core.NewValidationError(err, core.FieldError{Field: "chapter_id", Error: err.Error()})
		}
		return Material{}, err
	}
	return svc.repo.CreateMaterial(ctx, nm)
}

func (svc *Service) AddTest(ctx context.Context, nt NewTest) (Test, error) {
	if err := nt.Validate(); err != nil {
		return Test{}, err
	}
	return svc.repo.CreateTest(ctx, nt)
}

func (svc *Service) GetSubject(ctx context.Context, id int) (Subject, error) {
	return svc.repo.GetSubjectByID(ctx, id)
}

func (svc *Service) ListAllSubjects(ctx context.Context) ([]Subject, error) {
	return svc.repo.QueryAllSubjects(ctx)
}

// ListSubjects returns subjects whose class equals classLabel exactly,
// in insertion order.
func (svc *Service) ListSubjects(ctx context.Context, classLabel string) ([]Subject, error) {
	return svc.repo.QuerySubjectsByClass(ctx, classLabel)
}

func (svc *Service) ListChapters(ctx context.Context, subjectID int) ([]Chapter, error) {
	return svc.repo.QueryChaptersBySubject(ctx, subjectID)
}

func (svc *Service) ListMaterials(ctx context.Context, chapterID int) ([]Material, error) {
	return svc.repo.QueryMaterialsByChapter(ctx, chapterID)
}

func (svc *Service) ListAllTests(ctx context.Context) ([]Test, error) {
	return svc.repo.QueryAllTests(ctx)
}

func (svc *Service) ListTests(ctx context.Context, classLabel string) ([]Test, error) {
	return svc.repo.QueryTestsByClass(ctx, classLabel)
}
