package routes

import (
	"net/http"
	"taskboard/app/controllers"
	"taskboard/app/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, userController *controllers.UserController) {
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/users", http.StatusFound)
	}).Methods(http.MethodGet)

	users := router.PathPrefix("/users").Subrouter()
	users.HandleFunc("", middleware.WrapError(userController.Index)).Methods(http.MethodGet)
	users.HandleFunc("", middleware.WrapError(userController.Create)).Methods(http.MethodPost)
	users.HandleFunc("/{id}/delete", middleware.WrapError(userController.Delete)).Methods(http.MethodPost)
	users.HandleFunc("/{id}/tasks", middleware.WrapError(userController.CreateTask)).Methods(http.MethodPost)
	users.HandleFunc("/{id}/tasks/{taskID}/delete", middleware.WrapError(userController.DeleteTask)).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})
}

// NewHandler builds the full request pipeline around the application routes.
// Stage order matters: recovery wraps everything, static resolution runs
// before body decoding and logging, unmatched paths fall through to 404.
func NewHandler(staticDir string, userController *controllers.UserController) http.Handler {
	router := mux.NewRouter()
	RegisterRoutes(router, userController)

	return middleware.Chain(router,
		middleware.Recover,
		middleware.Static(staticDir),
		middleware.JSONBody,
		middleware.FormBody,
		middleware.RequestLog,
		middleware.Timestamp,
	)
}
