package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskboard/app/config"
	"taskboard/app/controllers"
	"taskboard/app/services"
	"taskboard/app/views"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	db, err := config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := config.EnsureSchema(db); err != nil {
		t.Fatalf("failed to ensure schema: %v", err)
	}

	renderer, err := views.New("../../templates")
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	staticDir := filepath.Join(t.TempDir(), "static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		t.Fatalf("failed to create static dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "style.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("failed to write static file: %v", err)
	}

	controller := controllers.NewUserController(services.NewUserService(db), renderer)
	return NewHandler(staticDir, controller)
}

func postForm(h http.Handler, path, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRootRedirectsToUsers(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/users" {
		t.Errorf("expected redirect to /users, got %q", loc)
	}
}

func TestCreateUserAndListOverHTTP(t *testing.T) {
	h := newTestHandler(t)

	w := postForm(h, "/users", "name=Bob")
	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/users" {
		t.Errorf("expected redirect to /users, got %q", loc)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Bob") {
		t.Error("expected user list to contain Bob")
	}
}

func TestCreateUserFromJSONBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"name":"Carol"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
	if !strings.Contains(w.Body.String(), "Carol") {
		t.Error("expected user list to contain Carol")
	}
}

func TestCreateTaskAndDeleteOverHTTP(t *testing.T) {
	h := newTestHandler(t)

	if w := postForm(h, "/users", "name=Alice"); w.Code != http.StatusFound {
		t.Fatalf("failed to create user: %d %s", w.Code, w.Body.String())
	}

	if w := postForm(h, "/users/1/tasks", "title=Task 1"); w.Code != http.StatusFound {
		t.Fatalf("failed to create task: %d %s", w.Code, w.Body.String())
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
	if !strings.Contains(w.Body.String(), "Task 1") {
		t.Error("expected user list to contain Task 1")
	}

	if w := postForm(h, "/users/1/tasks/1/delete", ""); w.Code != http.StatusFound {
		t.Fatalf("failed to delete task: %d %s", w.Code, w.Body.String())
	}

	if w := postForm(h, "/users/1/delete", ""); w.Code != http.StatusFound {
		t.Fatalf("failed to delete user: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))
	if strings.Contains(w.Body.String(), "Alice") {
		t.Error("expected Alice to be gone after delete")
	}
}

func TestHandlerErrorReported(t *testing.T) {
	h := newTestHandler(t)

	// Blank name is rejected by the store layer and must surface through
	// the terminal error reporter.
	w := postForm(h, "/users", "name=")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "Something went wrong: ") {
		t.Errorf("expected error reporter body, got %q", w.Body.String())
	}
}

func TestTaskUnderMissingUserReported(t *testing.T) {
	h := newTestHandler(t)

	w := postForm(h, "/users/42/tasks", "title=orphan")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "user 42 not found") {
		t.Errorf("expected not-found message, got %q", w.Body.String())
	}
}

func TestNonNumericIDReported(t *testing.T) {
	h := newTestHandler(t)

	w := postForm(h, "/users/abc/delete", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "Something went wrong: ") {
		t.Errorf("expected error reporter body, got %q", w.Body.String())
	}
}

func TestStaticServedThroughPipeline(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/style.css", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "body{}" {
		t.Errorf("expected stylesheet contents, got %q", w.Body.String())
	}
}

func TestUnmatchedPathIs404(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
