package catalog_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/catalog"
	"github.com/dineshpandey3618-web/Rank1/storage/database/inmem"
	testutil "github.com/dineshpandey3618-web/Rank1/tests"
)

func setup(t *testing.T) (*catalog.Service, catalog.Repository) {
	t.Helper()

	repo := inmem.NewCatalogRepository(inmem.Open())
	return catalog.NewService(repo), repo
}

func TestService_AddSubject(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	sub, err := svc.AddSubject(ctx, catalog.NewSubject{Name: " Mathematics ", Class: "Class 9", Icon: "📐"})
	if err != nil {
		t.Fatalf("AddSubject() error = %v", err)
	}
	if sub.ID == 0 {
		t.Error("ID not assigned")
	}
	if sub.Name != "Mathematics" {
		t.Errorf("Name = %q; want it cleaned", sub.Name)
	}

	// class labels are a fixed enum, exact match
	for _, class := range []string{"Class 5", "class 9", "Class 13", ""} {
		if _, err := svc.AddSubject(ctx, catalog.NewSubject{Name: "X", Class: class, Icon: "x"}); err == nil {
			t.Errorf("AddSubject(class=%q) expected a validation error", class)
		} else if _, ok := err.(validator.ValidationErrors); !ok {
			t.Errorf("AddSubject(class=%q) error = %v; want validator.ValidationErrors", class, err)
		}
	}
}

func TestService_AddChapter(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	sub := testutil.CreateSubject(t, repo, "Science", "Class 9", "🔬")

	chap, err := svc.AddChapter(ctx, catalog.NewChapter{SubjectID: sub.ID, Name: "Light"})
	if err != nil {
		t.Fatalf("AddChapter() error = %v", err)
	}
	if chap.SubjectID != sub.ID {
		t.Errorf("SubjectID = %d, want %d", chap.SubjectID, sub.ID)
	}

	// parent must exist
	_, err = svc.AddChapter(ctx, catalog.NewChapter{SubjectID: 999, Name: "Orphan"})
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("AddChapter() error = %v; want *core.ValidationError", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "subject_id" {
		t.Errorf("Fields = %+v; want a single subject_id error", vErr.Fields)
	}
}

func TestService_AddMaterial(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	sub := testutil.CreateSubject(t, repo, "Science", "Class 9", "🔬")
	chap := testutil.CreateChapter(t, repo, sub.ID, "Light")

	mat, err := svc.AddMaterial(ctx, catalog.NewMaterial{
		ChapterID: chap.ID, Type: "Video", Title: "Reflection", Link: "https://example.com/v/1",
	})
	if err != nil {
		t.Fatalf("AddMaterial() error = %v", err)
	}
	if mat.ChapterID != chap.ID {
		t.Errorf("ChapterID = %d, want %d", mat.ChapterID, chap.ID)
	}

	// parent must exist
	_, err = svc.AddMaterial(ctx, catalog.NewMaterial{
		ChapterID: 999, Type: "Video", Title: "Orphan", Link: "https://example.com/v/2",
	})
	if _, ok := err.(*core.ValidationError); !ok {
		t.Fatalf("AddMaterial() error = %v; want *core.ValidationError", err)
	}

	// links must be URLs
	_, err = svc.AddMaterial(ctx, catalog.NewMaterial{
		ChapterID: chap.ID, Type: "Video", Title: "Bad", Link: "not a url",
	})
	if _, ok := err.(validator.ValidationErrors); !ok {
		t.Fatalf("AddMaterial() error = %v; want validator.ValidationErrors", err)
	}
}

func TestService_listings(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	math9 := testutil.CreateSubject(t, repo, "Mathematics", "Class 9", "📐")
	sci9 := testutil.CreateSubject(t, repo, "Science", "Class 9", "🔬")
	math10 := testutil.CreateSubject(t, repo, "Mathematics", "Class 10", "📐")

	algebra := testutil.CreateChapter(t, repo, math9.ID, "Algebra")
	geometry := testutil.CreateChapter(t, repo, math9.ID, "Geometry")
	testutil.CreateChapter(t, repo, math10.ID, "Trigonometry")

	notes := testutil.CreateMaterial(t, repo, algebra.ID, "PDF", "Algebra Notes", "https://example.com/m/1")
	video := testutil.CreateMaterial(t, repo, algebra.ID, "Video", "Linear Equations", "https://example.com/m/2")

	mock9 := testutil.CreateTest(t, repo, "Mock Test 1", "Class 9", "Mathematics", 49)
	mock10 := testutil.CreateTest(t, repo, "Mock Test 2", "Class 10", "Mathematics", 49)

	// exact class match, insertion order
	subjects, err := svc.ListSubjects(ctx, "Class 9")
	if err != nil {
		t.Fatalf("ListSubjects() error = %v", err)
	}
	if want := []catalog.Subject{math9, sci9}; !reflect.DeepEqual(subjects, want) {
		t.Errorf("ListSubjects() = %+v, want %+v", subjects, want)
	}

	// "Class 1" must not match "Class 10"
	subjects, err = svc.ListSubjects(ctx, "Class 1")
	if err != nil {
		t.Fatalf("ListSubjects() error = %v", err)
	}
	if len(subjects) != 0 {
		t.Errorf("ListSubjects(Class 1) = %+v; want empty", subjects)
	}

	all, err := svc.ListAllSubjects(ctx)
	if err != nil {
		t.Fatalf("ListAllSubjects() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListAllSubjects() len = %d, want 3", len(all))
	}

	chapters, err := svc.ListChapters(ctx, math9.ID)
	if err != nil {
		t.Fatalf("ListChapters() error = %v", err)
	}
	if want := []catalog.Chapter{algebra, geometry}; !reflect.DeepEqual(chapters, want) {
		t.Errorf("ListChapters() = %+v, want %+v", chapters, want)
	}

	materials, err := svc.ListMaterials(ctx, algebra.ID)
	if err != nil {
		t.Fatalf("ListMaterials() error = %v", err)
	}
	if want := []catalog.Material{notes, video}; !reflect.DeepEqual(materials, want) {
		t.Errorf("ListMaterials() = %+v, want %+v", materials, want)
	}

	// an empty listing is not an error
	materials, err = svc.ListMaterials(ctx, geometry.ID)
	if err != nil {
		t.Fatalf("ListMaterials() error = %v", err)
	}
	if materials == nil || len(materials) != 0 {
		t.Errorf("ListMaterials(empty chapter) = %#v; want an empty slice", materials)
	}

	tests, err := svc.ListTests(ctx, "Class 9")
	if err != nil {
		t.Fatalf("ListTests() error = %v", err)
	}
	if want := []catalog.Test{mock9}; !reflect.DeepEqual(tests, want) {
		t.Errorf("ListTests() = %+v, want %+v", tests, want)
	}

	tests, err = svc.ListAllTests(ctx)
	if err != nil {
		t.Fatalf("ListAllTests() error = %v", err)
	}
	if want := []catalog.Test{mock9, mock10}; !reflect.DeepEqual(tests, want) {
		t.Errorf("ListAllTests() = %+v, want %+v", tests, want)
	}
}

func TestService_GetSubject(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	sub := testutil.CreateSubject(t, repo, "Science", "Class 9", "🔬")

	got, err := svc.GetSubject(ctx, sub.ID)
	if err != nil {
		t.Fatalf("GetSubject() error = %v", err)
	}
	if got != sub {
		t.Errorf("GetSubject() = %+v, want %+v", got, sub)
	}

	if _, err = svc.GetSubject(ctx, 999); err != catalog.ErrSubjectNotFound {
		t.Errorf("GetSubject() error = %v, wantErr %v", err, catalog.ErrSubjectNotFound)
	}
}
