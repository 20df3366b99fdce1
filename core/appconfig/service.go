package appconfig

import (
	"context"
	"errors"

	"github.com/dineshpandey3618-web/Rank1/core"
)

// Config keys consumed by the UI layer.
const (
	KeyAppName    = "app_name"
	KeyWelcomeMsg = "welcome_msg"
	KeyBannerURL  = "banner_url"
	KeyNoticeText = "notice_text"
	KeyShowNotice = "show_notice"
)

// Boolean flags are stored as "True"/"False" strings so admins can edit them
// like any other setting; they are parsed here, once, at the boundary.
const (
	boolTrue  = "True"
	boolFalse = "False"
)

var ErrNotFound = errors.New("config key not found")

// Defaults returns the seed values for a fresh installation.
func Defaults() map[string]string {
	return map[string]string{
		KeyAppName:    "Rank1 Academy",
		KeyWelcomeMsg: "Your Gateway to Success",
		KeyBannerURL:  "https://via.placeholder.com/800x200.png?text=Welcome+to+Rank1",
		KeyNoticeText: "📢 New Batch starting from Monday! Join now.",
		KeyShowNotice: boolTrue,
	}
}

type (
	Repository interface {
		GetValue(ctx context.Context, key string) (string, error)
		// Upsert replaces an existing row or inserts; last write wins.
		Upsert(ctx context.Context, key, value string) error
		// InsertIfAbsent is a no-op when the key exists, so manual edits
		// survive restarts.
		InsertIfAbsent(ctx context.Context, key, value string) error
	}

	Service struct {
		repo   Repository
		logger core.Logger
	}
)

func NewService(repo Repository, logger core.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Get returns the stored value, or "" when the key is absent or storage is
// down. Reads never fail outward; branding just falls back to blank.
func (svc *Service) Get(ctx context.Context, key string) string {
	val, err := svc.repo.GetValue(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			svc.logger.Warn("appconfig: reading "+key, err)
		}
		return ""
	}
	return val
}

// GetBool parses a "True"/"False" string flag. Anything but "True" is false.
func (svc *Service) GetBool(ctx context.Context, key string) bool {
	return svc.Get(ctx, key) == boolTrue
}

func (svc *Service) Set(ctx context.Context, key, value string) error {
	return svc.repo.Upsert(ctx, key, value)
}

func (svc *Service) SetBool(ctx context.Context, key string, value bool) error {
	s := boolFalse
	if value {
		s = boolTrue
	}
	return svc.repo.Upsert(ctx, key, s)
}

// SeedDefaults inserts the fixed key set where absent. First writer wins.
func (svc *Service) SeedDefaults(ctx context.Context) error {
	for key, val := range Defaults() {
		if err := svc.repo.InsertIfAbsent(ctx, key, val); err != nil {
			return err
		}
	}
	return nil
}

// Settings is the admin-editable branding/announcement bundle.
type Settings struct {
	AppName    string `json:"app_name" validate:"required"`
	WelcomeMsg string `json:"welcome_msg"`
	BannerURL  string `json:"banner_url" validate:"omitempty,url"`
	NoticeText string `json:"notice_text"`
	ShowNotice bool   `json:"show_notice"`
}

func (s *Settings) Validate() error {
	s.AppName = core.CleanString(s.AppName)
	s.WelcomeMsg = core.CleanString(s.WelcomeMsg)
	s.BannerURL = core.CleanString(s.BannerURL)
	s.NoticeText = core.CleanString(s.NoticeText)
	return core.Validate.Struct(s)
}

func (svc *Service) Settings(ctx context.Context) Settings {
	return Settings{
		AppName:    svc.Get(ctx, KeyAppName),
		WelcomeMsg: svc.Get(ctx, KeyWelcomeMsg),
		BannerURL:  svc.Get(ctx, KeyBannerURL),
		NoticeText: svc.Get(ctx, KeyNoticeText),
		ShowNotice: svc.GetBool(ctx, KeyShowNotice),
	}
}

func (svc *Service) UpdateSettings(ctx context.Context, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := svc.Set(ctx, KeyAppName, s.AppName); err != nil {
		return err
	}
	if err := svc.Set(ctx, KeyWelcomeMsg, s.WelcomeMsg); err != nil {
		return err
	}
	if err := svc.Set(ctx, KeyBannerURL, s.BannerURL); err != nil {
		return err
	}
	if err := svc.Set(ctx, KeyNoticeText, s.NoticeText); err != nil {
		return err
	}
	return svc.SetBool(ctx, KeyShowNotice, s.ShowNotice)
}
