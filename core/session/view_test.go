package session

import "testing"

func TestView_SelectTab(t *testing.T) {
	v := NewView()
	if v.CurrentTab != TabHome {
		t.Fatalf("CurrentTab = %q; new views must start on Home", v.CurrentTab)
	}

	if err := v.SelectTab("Settings"); err != ErrUnknownTab {
		t.Errorf("SelectTab() error = %v, wantErr %v", err, ErrUnknownTab)
	}

	// last write wins
	for _, tab := range []Tab{TabTests, TabNews, TabTests} {
		if err := v.SelectTab(tab); err != nil {
			t.Fatalf("SelectTab(%s) error = %v", tab, err)
		}
		if v.CurrentTab != tab {
			t.Errorf("CurrentTab = %q, want %q", v.CurrentTab, tab)
		}
	}
}

func TestView_SelectTab_homeDropsSubject(t *testing.T) {
	v := NewView()
	v.SelectClass("Class 9")
	if err := v.SelectSubject(3, "Mathematics"); err != nil {
		t.Fatalf("SelectSubject() error = %v", err)
	}

	// leaving Home keeps the open subject
	if err := v.SelectTab(TabTests); err != nil {
		t.Fatalf("SelectTab() error = %v", err)
	}
	if v.SelectedSubjectID != 3 {
		t.Error("switching tabs must not close the subject")
	}

	// returning to Home resets to the class picker
	if err := v.SelectTab(TabHome); err != nil {
		t.Fatalf("SelectTab() error = %v", err)
	}
	if v.SelectedSubjectID != 0 || v.SelectedSubjectName != "" {
		t.Error("returning Home must close the subject")
	}
	if v.SelectedClass != "Class 9" {
		t.Error("class selection must survive tab switches")
	}
}

func TestView_SelectSubject(t *testing.T) {
	v := NewView()

	if err := v.SelectTab(TabNews); err != nil {
		t.Fatal(err)
	}
	if err := v.SelectSubject(1, "Science"); err != ErrNotOnHome {
		t.Errorf("SelectSubject() error = %v, wantErr %v", err, ErrNotOnHome)
	}

	if err := v.SelectTab(TabHome); err != nil {
		t.Fatal(err)
	}
	if err := v.SelectSubject(1, "Science"); err != nil {
		t.Fatalf("SelectSubject() error = %v", err)
	}
	if err := v.SelectSubject(2, "Mathematics"); err != ErrSubjectSelected {
		t.Errorf("SelectSubject() error = %v, wantErr %v", err, ErrSubjectSelected)
	}
	if v.SelectedSubjectID != 1 || v.SelectedSubjectName != "Science" {
		t.Error("rejected selection must not overwrite the open subject")
	}
}

// Opening a subject and going back must restore the view exactly.
func TestView_GoBack(t *testing.T) {
	v := NewView()
	v.Login("u-1")
	v.SelectClass("Class 9")

	if err := v.GoBack(); err != ErrNoSubjectSelected {
		t.Errorf("GoBack() error = %v, wantErr %v", err, ErrNoSubjectSelected)
	}

	before := *v
	if err := v.SelectSubject(3, "Mathematics"); err != nil {
		t.Fatalf("SelectSubject() error = %v", err)
	}
	if err := v.GoBack(); err != nil {
		t.Fatalf("GoBack() error = %v", err)
	}
	if *v != before {
		t.Errorf("view after GoBack = %+v, want %+v", *v, before)
	}
}

func TestView_Logout(t *testing.T) {
	v := NewView()
	v.Login("u-1")
	v.SetOTP("1234")
	v.SelectClass("Class 9")
	if err := v.SelectSubject(3, "Mathematics"); err != nil {
		t.Fatal(err)
	}

	v.Logout()
	if *v != *NewView() {
		t.Errorf("view after Logout = %+v, want a pristine view", *v)
	}
}

func TestView_OTP(t *testing.T) {
	v := NewView()

	v.SetOTP("1234")
	if v.GeneratedOTP != "1234" || v.OTPVerified {
		t.Fatalf("after SetOTP: %+v", v)
	}

	// a new request supersedes the old code
	v.SetOTP("5678")
	if v.GeneratedOTP != "5678" {
		t.Errorf("GeneratedOTP = %q, want the latest code", v.GeneratedOTP)
	}

	v.ConsumeOTP()
	if v.GeneratedOTP != "" || !v.OTPVerified {
		t.Errorf("after ConsumeOTP: %+v", v)
	}
}
