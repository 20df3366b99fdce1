package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/dineshpandey3618-web/Rank1/apps/api/echo"
	"github.com/dineshpandey3618-web/Rank1/core/session"
	testutil "github.com/dineshpandey3618-web/Rank1/tests"
)

// getView fetches the current view JSON for sid.
func getView(t *testing.T, sid string) []byte {
	t.Helper()

	req, rec := newAuthRequest(http.MethodGet, "/v1/session", "", sid)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /v1/session: %d %s", rec.Code, rec.Body.String())
	}
	return rec.Body.Bytes()
}

func Test_sessionApi_flow(t *testing.T) {
	maths := testutil.CreateSubject(t, catRepo, "Mathematics", "Class 8", "https://cdn.example.com/maths.png")
	physics := testutil.CreateSubject(t, catRepo, "Physics", "Class 8", "https://cdn.example.com/physics.png")

	// a bare request opens a fresh session with the default view
	req, rec := newRequest(http.MethodGet, "/v1/session")
	app.ServeHTTP(rec, req)
	sid := rec.Header().Get("X-Session-ID")
	if sid == "" {
		t.Fatal("no session ID issued")
	}
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, session.NewView()),
	}, rec)

	do := func(method, path string, body []byte) *httptest.ResponseRecorder {
		t.Helper()
		req, rec := newAuthRequest(method, path, "", sid, body)
		app.ServeHTTP(rec, req)
		return rec
	}

	// class picking is free-form within the known labels
	rec = do(http.MethodPut, "/v1/session/class", marchallObj(t, ClassRequest{Class: "Class 5"}))
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: marchallObj(t, map[string]string{"class": "must be one of Class 6 .. Class 12"}),
	}, rec)

	rec = do(http.MethodPut, "/v1/session/class", marchallObj(t, ClassRequest{Class: "Class 8"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("select class: %d %s", rec.Code, rec.Body.String())
	}
	beforeSubject := getView(t, sid)

	// opening an unknown subject leaves the view alone
	rec = do(http.MethodPut, "/v1/session/subject", marchallObj(t, SubjectRequest{SubjectID: 424242}))
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusNotFound,
		wantData: marchallObj(t, httpErr{Error: "subject not found"}),
	}, rec)
	if ok, _ := jsonBytesEqual(t, getView(t, sid), beforeSubject); !ok {
		t.Error("a failed subject selection changed the view")
	}

	rec = do(http.MethodPut, "/v1/session/subject", marchallObj(t, SubjectRequest{SubjectID: maths.ID}))
	if rec.Code != http.StatusOK {
		t.Fatalf("select subject: %d %s", rec.Code, rec.Body.String())
	}
	var view session.View
	unmarchallObj(t, rec, &view)
	if view.SelectedSubjectID != maths.ID || view.SelectedSubjectName != "Mathematics" {
		t.Fatalf("view = %+v", view)
	}

	// one subject at a time
	rec = do(http.MethodPut, "/v1/session/subject", marchallObj(t, SubjectRequest{SubjectID: physics.ID}))
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusConflict,
		wantData: marchallObj(t, httpErr{Error: "a subject is already open"}),
	}, rec)

	// back restores the view to exactly where it was before the subject opened
	rec = do(http.MethodPost, "/v1/session/back", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("back: %d %s", rec.Code, rec.Body.String())
	}
	if ok, _ := jsonBytesEqual(t, rec.Body.Bytes(), beforeSubject); !ok {
		t.Errorf("back = %s, want %s", rec.Body.String(), beforeSubject)
	}

	rec = do(http.MethodPost, "/v1/session/back", nil)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusConflict,
		wantData: marchallObj(t, httpErr{Error: "no subject is open"}),
	}, rec)

	// subjects can only be opened from Home
	rec = do(http.MethodPut, "/v1/session/tab", marchallObj(t, TabRequest{Tab: "News"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("select tab: %d %s", rec.Code, rec.Body.String())
	}
	rec = do(http.MethodPut, "/v1/session/subject", marchallObj(t, SubjectRequest{SubjectID: maths.ID}))
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusConflict,
		wantData: marchallObj(t, httpErr{Error: "subjects can only be opened from the Home tab"}),
	}, rec)

	rec = do(http.MethodPut, "/v1/session/tab", marchallObj(t, TabRequest{Tab: "Timetable"}))
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusConflict,
		wantData: marchallObj(t, httpErr{Error: "unknown tab"}),
	}, rec)

	// logout wipes everything back to the defaults
	rec = do(http.MethodPost, "/v1/session/logout", nil)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: marchallObj(t, session.NewView()),
	}, rec)

	// and retires the session: the old ID is stale, a fresh one is issued
	req, rec = newAuthRequest(http.MethodGet, "/v1/session", "", sid)
	app.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Session-ID"); got == sid {
		t.Error("logout must retire the session ID")
	}
}

func Test_sessionApi_isolated(t *testing.T) {
	// two sessions never see each other's state
	req, rec := newRequest(http.MethodGet, "/v1/session")
	app.ServeHTTP(rec, req)
	sid1 := rec.Header().Get("X-Session-ID")

	req, rec = newRequest(http.MethodGet, "/v1/session")
	app.ServeHTTP(rec, req)
	sid2 := rec.Header().Get("X-Session-ID")

	if sid1 == sid2 {
		t.Fatal("distinct requests without a session header must get distinct sessions")
	}

	req, rec = newAuthRequest(http.MethodPut, "/v1/session/class", "", sid1,
		marchallObj(t, ClassRequest{Class: "Class 9"}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("select class: %d %s", rec.Code, rec.Body.String())
	}

	var other session.View
	if err := json.Unmarshal(getView(t, sid2), &other); err != nil {
		t.Fatal(err)
	}
	if other.SelectedClass != "" {
		t.Errorf("session %s leaked a class selection: %+v", sid2, other)
	}
}
