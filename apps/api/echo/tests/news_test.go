package tests

import (
	"net/http"
	"testing"

	"github.com/dineshpandey3618-web/Rank1/core/news"
)

func Test_newsApi(t *testing.T) {
	_, token := createOnboardedStudent(t, "reader04")

	req, rec := newRequest(http.MethodGet, "/v1/news")
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)

	// the canned feed carries 6 items; the endpoint caps at 5
	req, rec = newAuthRequest(http.MethodGet, "/v1/news", token, "")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("news: %d %s", rec.Code, rec.Body.String())
	}
	var headlines []news.Headline
	unmarchallObj(t, rec, &headlines)
	if len(headlines) != 5 {
		t.Fatalf("got %d headlines, want 5", len(headlines))
	}
	if headlines[0].Title != "Headline 1" || headlines[0].Link != "https://example.com/news/1" {
		t.Errorf("headlines[0] = %+v", headlines[0])
	}
}
