package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"user-service/internal/userservice/domain"
	"user-service/internal/userservice/domain/valueobject"
	"user-service/internal/userservice/usecase"
	"user-service/pkg/problemdetails"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Handler handles HTTP requests for user operations
type Handler struct {
	service *usecase.UserService
	logger  *zap.Logger
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.UserService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Hello handles GET /hello
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("<p> Hello World</p>"))
}

// CreateUser handles POST /user/create
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.logger.Debug("create user rejected", zap.Error(err))
		writeProblem(w, decodeProblem(err))
		return
	}

	if err := h.service.CreateUser(r.Context(), req.User()); err != nil {
		h.logger.Error("create user failed", zap.Error(err))
		problem := problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Internal server error",
		)
		writeProblem(w, problem)
		return
	}

	writeJSON(w, http.StatusOK, AckResponse{Status: "ok"})
}

// decodeProblem maps a CreateUserRequest decode failure to a response.
func decodeProblem(err error) *problemdetails.ProblemDetail {
	var fieldErr *domain.FieldError
	if !errors.As(err, &fieldErr) {
		return problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			"Request body must be valid JSON with 'username' and 'email' fields",
		)
	}

	if errors.Is(err, domain.ErrMissingField) {
		return problemdetails.New(
			http.StatusBadRequest,
			problemdetails.TypeInvalidRequest,
			"Invalid Request",
			fieldErr.Field+" is required",
		)
	}

	var unErr *valueobject.UserNameError
	if errors.As(err, &unErr) {
		fe := problemdetails.FieldError{
			Field:   fieldErr.Field,
			Message: unErr.Error(),
			Reason:  unErr.Reason.String(),
		}
		if unErr.Reason == valueobject.UserNameInvalidCharacter {
			fe.Character = string(unErr.Char)
		}
		return problemdetails.NewValidation(problemdetails.TypeInvalidUsername, "Invalid Username", fe)
	}

	return problemdetails.NewValidation(problemdetails.TypeInvalidEmail, "Invalid Email", problemdetails.FieldError{
		Field:   fieldErr.Field,
		Message: fieldErr.Err.Error(),
	})
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
