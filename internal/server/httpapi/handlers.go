// Package httpapi exposes the REST surface of the user service: signup,
// signin, profile and status retrieval under /api/v1/users.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JayatheerthP/OraBank/internal/logging"
	"github.com/JayatheerthP/OraBank/internal/server/users"
	"github.com/JayatheerthP/OraBank/internal/shared"
)

type HttpEndpoints struct {
	users  *users.Service
	logger logging.Logger
}

func NewHttpEndpoints(users *users.Service, logger logging.Logger) *HttpEndpoints {
	return &HttpEndpoints{
		users:  users,
		logger: logger.With("module", "http_endpoints"),
	}
}

type SignUpReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
}

type SignInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpResp struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	IsActive  bool      `json:"isActive"`
	IsLocked  bool      `json:"isLocked"`
	CreatedAt time.Time `json:"createdAt"`
}

type SignInResp struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"userId"`
	ExpiresIn int64     `json:"expiresIn"`
}

type UserResp struct {
	UserID      uuid.UUID `json:"userId"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth string    `json:"dateOfBirth"`
	Address     string    `json:"address"`
	IsActive    bool      `json:"isActive"`
	IsLocked    bool      `json:"isLocked"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UserStatusResp struct {
	UserID              uuid.UUID `json:"userId"`
	IsActive            bool      `json:"isActive"`
	IsLocked            bool      `json:"isLocked"`
	FailedLoginAttempts int       `json:"failedLoginAttempts"`
}

func (h *HttpEndpoints) signUp(c *gin.Context) {
	var req SignUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(c.Request.Context(), "failed to bind signup request", "error", err.Error())
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var errs validationErrors
	errs = checkEmail(errs, req.Email)
	errs = checkPassword(errs, req.Password)
	errs = checkPhoneNumber(errs, req.PhoneNumber)
	errs = checkName(errs, "firstName", req.FirstName)
	errs = checkName(errs, "lastName", req.LastName)
	errs = checkAddress(errs, req.Address)
	dob, errs := checkDateOfBirth(errs, req.DateOfBirth)
	if err := errs.ErrOrNil(); err != nil {
		h.logger.Warn(c.Request.Context(), "signup request failed validation", "error", err.Error())
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info(c.Request.Context(), "received signup request", "email", req.Email)

	user, err := h.users.SignUp(c.Request.Context(), users.SignUpInput{
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Address:     req.Address,
	})
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SignUpResp{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		IsActive:  user.IsActive,
		IsLocked:  user.IsLocked,
		CreatedAt: user.CreatedAt,
	})
}

func (h *HttpEndpoints) signIn(c *gin.Context) {
	var req SignInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(c.Request.Context(), "failed to bind signin request", "error", err.Error())
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var errs validationErrors
	errs = checkEmail(errs, req.Email)
	errs = checkPassword(errs, req.Password)
	if err := errs.ErrOrNil(); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info(c.Request.Context(), "received signin request", "email", req.Email)

	result, err := h.users.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignInResp{
		Token:     result.Token,
		UserID:    result.UserID,
		ExpiresIn: result.ExpiresIn,
	})
}

func (h *HttpEndpoints) getUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "userId must be a valid UUID")
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResp{
		UserID:      user.ID,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: user.DateOfBirth.Format(dateOfBirthLayout),
		Address:     user.Address,
		IsActive:    user.IsActive,
		IsLocked:    user.IsLocked,
		CreatedAt:   user.CreatedAt,
	})
}

func (h *HttpEndpoints) getStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "userId must be a valid UUID")
		return
	}

	user, err := h.users.GetStatus(c.Request.Context(), userID)
	if err != nil {
		h.domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserStatusResp{
		UserID:              user.ID,
		IsActive:            user.IsActive,
		IsLocked:            user.IsLocked,
		FailedLoginAttempts: user.FailedLoginAttempts,
	})
}

func (h *HttpEndpoints) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// domainError maps sentinel errors to HTTP statuses. Anything unclassified
// becomes a 500 without leaking internal detail.
func (h *HttpEndpoints) domainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shared.ErrorEmailAlreadyExists):
		errorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, shared.ErrorNotFound):
		errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrorAccountLocked):
		errorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, shared.ErrorInvalidCredentials):
		errorResponse(c, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error(c.Request.Context(), "unclassified error", "error", err.Error())
		errorResponse(c, http.StatusInternalServerError, shared.ErrorInternal.Error())
	}
}

func errorResponse(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg, "status": http.StatusText(status)})
}
