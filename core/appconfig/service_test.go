package appconfig_test

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/pkg/errors"

	"github.com/dineshpandey3618-web/Rank1/core"
	"github.com/dineshpandey3618-web/Rank1/core/appconfig"
	logsvc "github.com/dineshpandey3618-web/Rank1/services/logger"
	"github.com/dineshpandey3618-web/Rank1/storage/database/inmem"
)

var testLogger = logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))

func setup(t *testing.T) (*appconfig.Service, appconfig.Repository) {
	t.Helper()

	repo := inmem.NewAppConfigRepository(inmem.Open())
	return appconfig.NewService(repo, testLogger), repo
}

// downRepo simulates a broken store.
type downRepo struct{}

func (downRepo) GetValue(context.Context, string) (string, error) {
	return "", errors.Wrap(core.ErrStorageUnavailable, "reading app_config")
}
func (downRepo) Upsert(context.Context, string, string) error         { return nil }
func (downRepo) InsertIfAbsent(context.Context, string, string) error { return nil }

func TestService_Get(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	// absent keys read as blank, not as errors
	if got := svc.Get(ctx, appconfig.KeyAppName); got != "" {
		t.Errorf("Get(missing) = %q, want \"\"", got)
	}

	if err := repo.Upsert(ctx, appconfig.KeyAppName, "Rank1 Academy"); err != nil {
		t.Fatal(err)
	}
	if got := svc.Get(ctx, appconfig.KeyAppName); got != "Rank1 Academy" {
		t.Errorf("Get() = %q", got)
	}

	// reads degrade to blank when storage is down
	downSvc := appconfig.NewService(downRepo{}, testLogger)
	if got := downSvc.Get(ctx, appconfig.KeyAppName); got != "" {
		t.Errorf("Get(down) = %q, want \"\"", got)
	}
}

func TestService_GetBool(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "True", value: "True", want: true},
		{name: "False", value: "False"},
		{name: "lowercase true is not True", value: "true"},
		{name: "garbage", value: "yes"},
		{name: "blank", value: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Upsert(ctx, appconfig.KeyShowNotice, tt.value); err != nil {
				t.Fatal(err)
			}
			if got := svc.GetBool(ctx, appconfig.KeyShowNotice); got != tt.want {
				t.Errorf("GetBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}

	// missing key reads false
	if svc.GetBool(ctx, "no_such_flag") {
		t.Error("GetBool(missing) = true, want false")
	}
}

func TestService_SeedDefaults(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}
	for key, want := range appconfig.Defaults() {
		if got := svc.Get(ctx, key); got != want {
			t.Errorf("Get(%s) = %q, want %q", key, got, want)
		}
	}

	// re-seeding must not clobber edits
	if err := repo.Upsert(ctx, appconfig.KeyWelcomeMsg, "Hello there"); err != nil {
		t.Fatal(err)
	}
	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults() error = %v", err)
	}
	if got := svc.Get(ctx, appconfig.KeyWelcomeMsg); got != "Hello there" {
		t.Errorf("Get() = %q; seeding overwrote an edit", got)
	}
}

func TestService_Settings(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	if err := svc.SeedDefaults(ctx); err != nil {
		t.Fatal(err)
	}

	in := appconfig.Settings{
		AppName:    "Rank1 Prime",
		WelcomeMsg: "Welcome back",
		BannerURL:  "https://cdn.example.com/banner.png",
		NoticeText: "Holiday on Friday",
		ShowNotice: false,
	}
	if err := svc.UpdateSettings(ctx, in); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	if got := svc.Settings(ctx); got != in {
		t.Errorf("Settings() = %+v, want %+v", got, in)
	}

	// the flag round-trips through its string form
	if got := svc.Get(ctx, appconfig.KeyShowNotice); got != "False" {
		t.Errorf("stored flag = %q, want %q", got, "False")
	}

	// validation failures leave the store untouched
	if err := svc.UpdateSettings(ctx, appconfig.Settings{AppName: "", BannerURL: "nope"}); err == nil {
		t.Fatal("UpdateSettings() expected a validation error")
	}
	if got := svc.Settings(ctx); got != in {
		t.Errorf("Settings() = %+v; a rejected update must change nothing", got)
	}
}
