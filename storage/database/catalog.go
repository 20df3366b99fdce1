package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/catalog"
)

type catalogRepository struct {
	db *sqlx.DB
}

var _ catalog.Repository = (*catalogRepository)(nil) // interface compliance check

func NewCatalogRepository(db *sqlx.DB) *catalogRepository {
	return &catalogRepository{db: db}
}

// trapErr maps "no rows" to notFound and everything else to
// core.ErrStorageUnavailable. Listing queries never hit the "no rows" case;
// they return empty slices.
func (repo catalogRepository) trapErr(err error, notFound error, msg string) error {
	if err == sql.ErrNoRows {
		return notFound
	}
	return errors.Wrapf(core.ErrStorageUnavailable, "%s: %s", msg, err)
}

func (repo catalogRepository) CreateSubject(ctx context.Context, ns catalog.NewSubject) (catalog.Subject, error) {
	sub := catalog.Subject{Name: ns.Name, Class: ns.Class, Icon: ns.Icon}
	q := `INSERT INTO subject (name, class, icon) VALUES ($1, $2, $3) RETURNING id`
	if err := repo.db.GetContext(ctx, &sub.ID, q, ns.Name, ns.Class, ns.Icon); err != nil {
		return catalog.Subject{}, repo.trapErr(err, catalog.ErrSubjectNotFound, "inserting subject")
	}
	return sub, nil
}

func (repo catalogRepository) GetSubjectByID(ctx context.Context, id int) (catalog.Subject, error) {
	var sub catalog.Subject
	if err := repo.db.GetContext(ctx, &sub, `SELECT * FROM subject WHERE id = $1`, id); err != nil {
		return catalog.Subject{}, repo.trapErr(err, catalog.ErrSubjectNotFound, "getting subject")
	}
	return sub, nil
}

func (repo catalogRepository) QueryAllSubjects(ctx context.Context) ([]catalog.Subject, error) {
	subs := make([]catalog.Subject, 0)
	if err := repo.db.SelectContext(ctx, &subs, `SELECT * FROM subject ORDER BY id`); err != nil {
		return nil, repo.trapErr(err, catalog.ErrSubjectNotFound, "querying subjects")
	}
	return subs, nil
}

func (repo catalogRepository) QuerySubjectsByClass(ctx context.Context, classLabel string) ([]catalog.Subject, error) {
	subs := make([]catalog.Subject, 0)
	q := `SELECT * FROM subject WHERE class = $1 ORDER BY id`
	if err := repo.db.SelectContext(ctx, &subs, q, classLabel); err != nil {
		return nil, repo.trapErr(err, catalog.ErrSubjectNotFound, "querying subjects by class")
	}
	return subs, nil
}

func (repo catalogRepository) CreateChapter(ctx context.Context, nc catalog.NewChapter) (catalog.Chapter, error) {
	chap := catalog.Chapter{SubjectID: nc.SubjectID, Name: nc.Name}
	q := `INSERT INTO chapter (subject_id, name) VALUES ($1, $2) RETURNING id`
	if err := repo.db.GetContext(ctx, &chap.ID, q, nc.SubjectID, nc.Name); err != nil {
		return catalog.Chapter{}, repo.trapErr(err, catalog.ErrChapterNotFound, "inserting chapter")
	}
	return chap, nil
}

func (repo catalogRepository) GetChapterByID(ctx context.Context, id int) (catalog.Chapter, error) {
	var chap catalog.Chapter
	if err := repo.db.GetContext(ctx, &chap, `SELECT * FROM chapter WHERE id = $1`, id); err != nil {
		return catalog.Chapter{}, repo.trapErr(err, catalog.ErrChapterNotFound, "getting chapter")
	}
	return chap, nil
}

func (repo catalogRepository) QueryChaptersBySubject(ctx context.Context, subjectID int) ([]catalog.Chapter, error) {
	chaps := make([]catalog.Chapter, 0)
	q := `SELECT * FROM chapter WHERE subject_id = $1 ORDER BY id`
	if err := repo.db.SelectContext(ctx, &chaps, q, subjectID); err != nil {
		return nil, repo.trapErr(err, catalog.ErrChapterNotFound, "querying chapters")
	}
	return chaps, nil
}

func (repo catalogRepository) CreateMaterial(ctx context.Context, nm catalog.NewMaterial) (catalog.Material, error) {
	mat := catalog.Material{ChapterID: nm.ChapterID, Type: nm.Type, Title: nm.Title, Link: nm.Link}
	q := `INSERT INTO material (chapter_id, type, title, link) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := repo.db.GetContext(ctx, &mat.ID, q, nm.ChapterID, nm.Type, nm.Title, nm.Link); err != nil {
		return catalog.Material{}, repo.trapErr(err, catalog.ErrChapterNotFound, "inserting material")
	}
	return mat, nil
}

func (repo catalogRepository) QueryMaterialsByChapter(ctx context.Context, chapterID int) ([]catalog.Material, error) {
	mats := make([]catalog.Material, 0)
	q := `SELECT * FROM material WHERE chapter_id = $1 ORDER BY id`
	if err := repo.db.SelectContext(ctx, &mats, q, chapterID); err != nil {
		return nil, repo.trapErr(err, catalog.ErrChapterNotFound, "querying materials")
	}
	return mats, nil
}

func (repo catalogRepository) CreateTest(ctx context.Context, nt catalog.NewTest) (catalog.Test, error) {
	tst := catalog.Test{Name: nt.Name, Class: nt.Class, Subject: nt.Subject, Price: nt.Price}
	q := `INSERT INTO test (name, class, subject, price) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := repo.db.GetContext(ctx, &tst.ID, q, nt.Name, nt.Class, nt.Subject, nt.Price); err != nil {
		return catalog.Test{}, repo.trapErr(err, catalog.ErrSubjectNotFound, "inserting test")
	}
	return tst, nil
}

func (repo catalogRepository) QueryAllTests(ctx context.Context) ([]catalog.Test, error) {
	tsts := make([]catalog.Test, 0)
	if err := repo.db.SelectContext(ctx, &tsts, `SELECT * FROM test ORDER BY id`); err != nil {
		return nil, repo.trapErr(err, catalog.ErrSubjectNotFound, "querying tests")
	}
	return tsts, nil
}

func (repo catalogRepository) QueryTestsByClass(ctx context.Context, classLabel string) ([]catalog.Test, error) {
	tsts := make([]catalog.Test, 0)
	q := `SELECT * FROM test WHERE class = $1 ORDER BY id`
	if err := repo.db.SelectContext(ctx, &tsts, q, classLabel); err != nil {
		return nil, repo.trapErr(err, catalog.ErrSubjectNotFound, "querying tests")
	}
	return tsts, nil
}
