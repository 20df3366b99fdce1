package session

import "errors"

// Tab is a mutually exclusive top-level screen.
type Tab string

const (
	TabHome  Tab = "Home"
	TabTests Tab = "Tests"
	TabNews  Tab = "News"
)

var (
	// errors
	ErrUnknownTab        = errors.New("unknown tab")
	ErrNotOnHome         = errors.New("subjects can only be opened from the Home tab")
	ErrSubjectSelected   = errors.New("a subject is already open")
	ErrNoSubjectSelected = errors.New("no subject is open")
)

// View is the transient per-session navigation state. Each session owns its
// View exclusively; requests within a session are handled one at a time, so
// no locking happens here.
type View struct {
	LoggedIn bool   `json:"logged_in"`
	UserID   string `json:"user_id,omitempty"`

	CurrentTab          Tab    `json:"current_tab"`
	SelectedClass       string `json:"selected_class,omitempty"`
	SelectedSubjectID   int    `json:"selected_subject_id,omitempty"`
	SelectedSubjectName string `json:"selected_subject_name,omitempty"`

	// OTP state for the signup flow; never serialized to clients.
	GeneratedOTP string `json:"-"`
	OTPVerified  bool   `json:"-"`
}

func NewView() *View {
	return &View{CurrentTab: TabHome}
}

// Login marks the session authenticated. Navigation state is untouched.
func (v *View) Login(userID string) {
	v.LoggedIn = true
	v.UserID = userID
}

// Logout resets the whole view to its initial values.
func (v *View) Logout() {
	*v = *NewView()
}

// SelectTab switches the top-level screen, last write wins. Going (back) to
// Home drops any open subject and returns to the class picker.
func (v *View) SelectTab(t Tab) error {
	switch t {
	case TabHome, TabTests, TabNews:
	default:
		return ErrUnknownTab
	}
	v.CurrentTab = t
	if t == TabHome {
		v.clearSubject()
	}
	return nil
}

// SelectClass picks the class whose subjects the Home screen lists.
func (v *View) SelectClass(classLabel string) {
	v.SelectedClass = classLabel
}

// SelectSubject opens a subject. Only valid on the Home tab while no subject
// is open.
func (v *View) SelectSubject(id int, name string) error {
	if v.CurrentTab != TabHome {
		return ErrNotOnHome
	}
	if v.SelectedSubjectID != 0 {
		return ErrSubjectSelected
	}
	v.SelectedSubjectID = id
	v.SelectedSubjectName = name
	return nil
}

// GoBack closes the open subject and returns to the class picker. Tab and
// class selection are preserved, so the view ends up exactly where it was
// before SelectSubject.
func (v *View) GoBack() error {
	if v.SelectedSubjectID == 0 {
		return ErrNoSubjectSelected
	}
	v.clearSubject()
	return nil
}

func (v *View) clearSubject() {
	v.SelectedSubjectID = 0
	v.SelectedSubjectName = ""
}

// SetOTP stores a freshly generated code, superseding any previous one.
func (v *View) SetOTP(code string) {
	v.GeneratedOTP = code
	v.OTPVerified = false
}

// ConsumeOTP clears the code after a successful verification so it cannot
// be replayed.
func (v *View) ConsumeOTP() {
	v.GeneratedOTP = ""
	v.OTPVerified = true
}
