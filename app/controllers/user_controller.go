package controllers

import (
	"net/http"
	"strconv"
	"taskboard/app/middleware"
	"taskboard/app/models"
	"taskboard/app/services"
	"taskboard/app/views"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for users and their tasks.
type UserController struct {
	Service  *services.UserService
	Renderer views.Renderer
}

// NewUserController creates a new UserController.
func NewUserController(service *services.UserService, renderer views.Renderer) *UserController {
	return &UserController{Service: service, Renderer: renderer}
}

// Index handles GET /users.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) error {
	users, err := c.Service.ListUsersWithTasks(r.Context())
	if err != nil {
		return err
	}
	return c.Renderer.Render(w, "index.html", map[string]any{"Users": users})
}

// Create handles POST /users.
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) error {
	name := middleware.BodyValue(r, "name")
	if _, err := c.Service.CreateUser(r.Context(), name); err != nil {
		return err
	}
	http.Redirect(w, r, "/users", http.StatusFound)
	return nil
}

// Delete handles POST /users/{id}/delete.
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	if err := c.Service.DeleteUser(r.Context(), id); err != nil {
		return err
	}
	http.Redirect(w, r, "/users", http.StatusFound)
	return nil
}

// CreateTask handles POST /users/{id}/tasks.
func (c *UserController) CreateTask(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	title := middleware.BodyValue(r, "title")
	if _, err := c.Service.CreateTask(r.Context(), id, title); err != nil {
		return err
	}
	http.Redirect(w, r, "/users", http.StatusFound)
	return nil
}

// DeleteTask handles POST /users/{id}/tasks/{taskID}/delete.
func (c *UserController) DeleteTask(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}
	taskID, err := pathID(r, "taskID")
	if err != nil {
		return err
	}
	if err := c.Service.DeleteTask(r.Context(), id, taskID); err != nil {
		return err
	}
	http.Redirect(w, r, "/users", http.StatusFound)
	return nil
}

func pathID(r *http.Request, key string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 32)
	if err != nil {
		return 0, &models.ValidationError{Field: key, Reason: "must be a positive integer"}
	}
	return uint(id), nil
}
