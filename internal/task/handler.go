package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/redmonkez12/go-task-api/internal/auth"
	"github.com/redmonkez12/go-task-api/internal/httputil"
	"github.com/redmonkez12/go-task-api/internal/logging"
)

// Handler contains HTTP handlers for task endpoints. All routes sit behind
// auth.Middleware, so the acting user id is always present in the context.
type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// TaskRequest represents the create/update request body
type TaskRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"max=5000"`
	Status      *string `json:"status,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// List handles listing all tasks of the authenticated user
// @Summary      Get all tasks
// @Description  Retrieve all tasks for the authenticated user
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Task
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	tasks, err := h.service.List(r.Context(), userID)
	if err != nil {
		logger.Error("failed to list tasks", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list tasks", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, tasks, http.StatusOK)
}

// ListByStatus handles listing tasks filtered by status
// @Summary      Get tasks by status
// @Description  Retrieve tasks filtered by status (PENDING or COMPLETED)
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status path string true "Task status: PENDING or COMPLETED"
// @Success      200 {array} Task
// @Failure      400 {object} ErrorResponse "Invalid status"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /tasks/status/{status} [get]
func (h *Handler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())
	rawStatus := chi.URLParam(r, "status")

	tasks, err := h.service.ListByStatus(r.Context(), userID, rawStatus)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			logger.Warn("invalid task status", "status", rawStatus)
			httputil.RespondErrorWithCode(w, "invalid task status", httputil.CodeInvalidStatus, http.StatusBadRequest)
			return
		}
		logger.Error("failed to list tasks by status", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list tasks", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, tasks, http.StatusOK)
}

// Stats handles the per-status task counts of the authenticated user
// @Summary      Get task stats
// @Description  Retrieve per-status task counts for the authenticated user
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Stats
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /tasks/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		logger.Error("failed to get task stats", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to get task stats", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, stats, http.StatusOK)
}

// Get handles fetching a single task by id
// @Summary      Get task by ID
// @Description  Retrieve a specific task by its ID
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Success      200 {object} Task
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Task not found"
// @Router       /tasks/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	found, err := h.service.Get(r.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "task not found", httputil.CodeTaskNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to get task", "task_id", taskID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to get task", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, found, http.StatusOK)
}

// Create handles task creation
// @Summary      Create new task
// @Description  Create a new task for the authenticated user
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TaskRequest true "Task details"
// @Success      201 {object} Task
// @Failure      400 {object} ErrorResponse "Invalid request or validation error"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Router       /tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			logger.Warn("task creation failed: owner does not exist", "user_id", userID)
			httputil.RespondErrorWithCode(w, "user not found", httputil.CodeUserNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to create task", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create task", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("task created", "task_id", created.ID)

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// Update handles task updates
// @Summary      Update task
// @Description  Update an existing task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Param        request body TaskRequest true "Task details"
// @Success      200 {object} Task
// @Failure      400 {object} ErrorResponse "Invalid request or validation error"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Task not found"
// @Router       /tasks/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.service.Update(r.Context(), taskID, userID, req.Name, req.Description, req.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "task not found", httputil.CodeTaskNotFound, http.StatusNotFound)
			return
		}
		if errors.Is(err, ErrInvalidStatus) {
			logger.Warn("invalid task status on update", "task_id", taskID)
			httputil.RespondErrorWithCode(w, "invalid task status", httputil.CodeInvalidStatus, http.StatusBadRequest)
			return
		}
		logger.Error("failed to update task", "task_id", taskID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to update task", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, updated, http.StatusOK)
}

// Toggle handles flipping a task's status
// @Summary      Toggle task status
// @Description  Toggle task status between PENDING and COMPLETED
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Success      200 {object} Task
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Task not found"
// @Router       /tasks/{id}/toggle [put]
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	toggled, err := h.service.ToggleStatus(r.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "task not found", httputil.CodeTaskNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to toggle task status", "task_id", taskID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to toggle task status", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, toggled, http.StatusOK)
}

// Delete handles task deletion
// @Summary      Delete task
// @Description  Delete a task by its ID
// @Tags         tasks
// @Security     BearerAuth
// @Param        id path int true "Task ID"
// @Success      204 "No Content"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Task not found"
// @Router       /tasks/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())
	userID, _ := auth.GetUserIDFromContext(r.Context())

	taskID, ok := parseTaskID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), taskID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "task not found", httputil.CodeTaskNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to delete task", "task_id", taskID, "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to delete task", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("task deleted", "task_id", taskID)

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (*TaskRequest, bool) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid task request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return nil, false
	}

	if err := h.validate.Struct(req); err != nil {
		logger.Warn("task request validation failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidationError, http.StatusBadRequest)
		return nil, false
	}

	return &req, true
}

func parseTaskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid task id", httputil.CodeValidationError, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
