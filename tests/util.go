package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/dineshpandey3618-web/Rank1/core/catalog"
	"github.com/dineshpandey3618-web/Rank1/core/user"
)

// CreateUser persists a ready-made account; createdAt pins ordering when the
// test cares about it.
func CreateUser(t *testing.T, repo user.Repository, uname, pwd string, isAdmin bool, createdAt ...time.Time) user.User {
	t.Helper()

	now := time.Now().UTC()
	if len(createdAt) > 0 {
		now = createdAt[0].UTC()
	}
	usr := user.User{
		Username:  uname,
		IsAdmin:   isAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := usr.SetPassword(pwd); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

// OnboardUser completes the role/board/state profile for usr.
func OnboardUser(t *testing.T, repo user.Repository, usr user.User, role, board, state string) user.User {
	t.Helper()

	usr, err := repo.SetUserOnboarding(context.Background(), usr.ID,
		null.StringFrom(role), null.StringFrom(board), null.StringFrom(state))
	if err != nil {
		t.Fatalf("OnboardUser() failed: %v", err)
	}
	return usr
}

func CreateSubject(t *testing.T, repo catalog.Repository, name, class, icon string) catalog.Subject {
	t.Helper()

	sub, err := repo.CreateSubject(context.Background(), catalog.NewSubject{Name: name, Class: class, Icon: icon})
	if err != nil {
		t.Fatalf("CreateSubject() failed: %v", err)
	}
	return sub
}

func CreateChapter(t *testing.T, repo catalog.Repository, subjectID int, name string) catalog.Chapter {
	t.Helper()

	chap, err := repo.CreateChapter(context.Background(), catalog.NewChapter{SubjectID: subjectID, Name: name})
	if err != nil {
		t.Fatalf("CreateChapter() failed: %v", err)
	}
	return chap
}

func CreateMaterial(t *testing.T, repo catalog.Repository, chapterID int, typ, title, link string) catalog.Material {
	t.Helper()

	mat, err := repo.CreateMaterial(context.Background(), catalog.NewMaterial{
		ChapterID: chapterID, Type: typ, Title: title, Link: link,
	})
	if err != nil {
		t.Fatalf("CreateMaterial() failed: %v", err)
	}
	return mat
}

func CreateTest(t *testing.T, repo catalog.Repository, name, class, subject string, price int) catalog.Test {
	t.Helper()

	tst, err := repo.CreateTest(context.Background(), catalog.NewTest{
		Name: name, Class: class, Subject: subject, Price: price,
	})
	if err != nil {
		t.Fatalf("CreateTest() failed: %v", err)
	}
	return tst
}
