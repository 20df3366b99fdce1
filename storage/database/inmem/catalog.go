package inmem

import (
	"context"

	"github.com/dineshpandey3618-web/Rank1/core/catalog"
)

type catalogRepository struct {
	db *catalogTable
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *DB) *catalogRepository {
	return &catalogRepository{db: db.catalog}
}

func (repo *catalogRepository) nextID() int {
	repo.db.pkCount++
	return repo.db.pkCount
}

func (repo *catalogRepository) CreateSubject(_ context.Context, ns catalog.NewSubject) (catalog.Subject, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	sub := catalog.Subject{ID: repo.nextID(), Name: ns.Name, Class: ns.Class, Icon: ns.Icon}
	repo.db.subjects = append(repo.db.subjects, sub)
	return sub, nil
}

func (repo *catalogRepository) GetSubjectByID(_ context.Context, id int) (catalog.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, sub := range repo.db.subjects {
		if sub.ID == id {
			return sub, nil
		}
	}
	return catalog.Subject{}, catalog.ErrSubjectNotFound
}

func (repo *catalogRepository) QueryAllSubjects(_ context.Context) ([]catalog.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]catalog.Subject, len(repo.db.subjects))
	copy(res, repo.db.subjects)
	return res, nil
}

func (repo *catalogRepository) QuerySubjectsByClass(_ context.Context, classLabel string) ([]catalog.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]catalog.Subject, 0)
	for _, sub := range repo.db.subjects {
		if sub.Class == classLabel {
			res = append(res, sub)
		}
	}
	return res, nil
}

func (repo *catalogRepository) CreateChapter(_ context.Context, nc catalog.NewChapter) (catalog.Chapter, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	chap := catalog.Chapter{ID: repo.nextID(), SubjectID: nc.SubjectID, Name: nc.Name}
	repo.db.chapters = append(repo.db.chapters, chap)
	return chap, nil
}

func (repo *catalogRepository) GetChapterByID(_ context.Context, id int) (catalog.Chapter, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, chap := range repo.db.chapters {
		if chap.ID == id {
			return chap, nil
		}
	}
	return catalog.Chapter{}, catalog.ErrChapterNotFound
}

func (repo *catalogRepository) QueryChaptersBySubject(_ context.Context, subjectID int) ([]catalog.Chapter, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]catalog.Chapter, 0)
	for _, chap := range repo.db.chapters {
		if chap.SubjectID == subjectID {
			res = append(res, chap)
		}
	}
	return res, nil
}

func (repo *catalogRepository) CreateMaterial(_ context.Context, nm catalog.NewMaterial) (catalog.Material, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	mat := catalog.Material{ID: repo.nextID(), ChapterID: nm.ChapterID, Type: nm.Type, Title: nm.Title, Link: nm.Link}
	repo.db.materials = append(repo.db.materials, mat)
	return mat, nil
}

func (repo *catalogRepository) QueryMaterialsByChapter(_ context.Context, chapterID int) ([]catalog.Material, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]catalog.Material, 0)
	for _, mat := range repo.db.materials {
		if mat.ChapterID == chapterID {
			res = append(res, mat)
		}
	}
	return res, nil
}

func (repo *catalogRepository) CreateTest(_ context.Context, nt catalog.NewTest) (catalog.Test, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	tst := catalog.Test{ID: repo.nextID(), Name: nt.Name, Class: nt.Class, Subject: nt.Subject, Price: nt.Price}
	repo.db.tests = append(repo.db.tests, tst)
	return tst, nil
}

func (repo *catalogRepository) QueryAllTests(_ context.Context) ([]catalog.Test, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]catalog.Test, len(repo.db.tests))
	copy(res, repo.db.tests)
	return res, nil
}

func (repo *catalogRepository) QueryTestsByClass(_ context.Context, classLabel string) ([]catalog.Test, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]catalog.Test, 0)
	for _, tst := range repo.db.tests {
		if tst.Class == classLabel {
			res = append(res, tst)
		}
	}
	return res, nil
}
