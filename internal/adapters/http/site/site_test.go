package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	Convey("Given a public directory with a published snapshot", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		payload := `{"title":"Game Night Leaderboard","leaderboard":[]}`
		So(os.WriteFile(filepath.Join(dir, "leaderboard.json"), []byte(payload), 0o644), ShouldBeNil)

		mux := http.NewServeMux()
		Register(ctx, mux, dir)

		Convey("When requesting the snapshot document", func() {
			req := httptest.NewRequest("GET", "/leaderboard.json", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it is served verbatim", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldEqual, payload)
			})
		})

		Convey("When requesting a missing file", func() {
			req := httptest.NewRequest("GET", "/nope.json", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When requesting /healthz", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
			So(w.Body.String(), ShouldContainSubstring, `"status":"ok"`)
		})

		Convey("When requesting /metrics", func() {
			req := httptest.NewRequest("GET", "/metrics", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
		})
	})

	Convey("Given a nil mux", t, func() {
		Convey("Then registration panics", func() {
			So(func() { Register(context.Background(), nil, ".") }, ShouldPanic)
		})
	})
}
