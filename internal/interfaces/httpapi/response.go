package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/copa-admin/internal/domain/match"
	"github.com/riskibarqy/copa-admin/internal/domain/team"
	"github.com/riskibarqy/copa-admin/internal/usecase"
)

const (
	googleAPIVersion   = "2.0"
	errorDomain        = "copa-admin"
	internalErrMessage = "internal server error"
)

// envelope follows the Google JSON style guide: exactly one of data or error.
type envelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type errorClass struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var (
	classInvalidInput = errorClass{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	classInvalidValue = errorClass{HTTPStatus: http.StatusBadRequest, Reason: "invalidValue", Status: "INVALID_ARGUMENT"}
	classNotFound     = errorClass{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}
	classConflict     = errorClass{HTTPStatus: http.StatusConflict, Reason: "alreadyExists", Status: "ALREADY_EXISTS"}
	classUnavailable  = errorClass{HTTPStatus: http.StatusServiceUnavailable, Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}
	classInternal     = errorClass{HTTPStatus: http.StatusInternalServerError, Reason: "internalError", Status: "INTERNAL"}
)

// errorRules is checked in order; the first sentinel matched by errors.Is wins.
var errorRules = []struct {
	target error
	class  errorClass
}{
	{usecase.ErrInvalidInput, classInvalidInput},
	{usecase.ErrNotFound, classNotFound},
	{usecase.ErrConflict, classConflict},
	{usecase.ErrDependencyUnavailable, classUnavailable},
	{team.ErrInvalidCountry, classInvalidValue},
	{team.ErrInvalidTeam, classInvalidValue},
	{team.ErrNegativeCounter, classInvalidValue},
	{match.ErrSameTeam, classInvalidValue},
	{match.ErrInvalidPhase, classInvalidValue},
	{match.ErrInvalidDate, classInvalidValue},
	{match.ErrNegativeCounter, classInvalidValue},
}

func classifyError(err error) errorClass {
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule.class
		}
	}
	return classInternal
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{APIVersion: googleAPIVersion, Data: data})
}

// writeError maps err onto its HTTP status. Messages of unclassified errors
// are replaced so driver details never reach the client.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	class := classifyError(err)
	recordSpanError(ctx, class.HTTPStatus, err)

	msg := err.Error()
	if class == classInternal {
		msg = internalErrMessage
	}
	writeErrorBody(w, class, msg)
}

func writeErrorBody(w http.ResponseWriter, class errorClass, msg string) {
	writeJSON(w, class.HTTPStatus, envelope{
		APIVersion: googleAPIVersion,
		Error: &errorBody{
			Code:    class.HTTPStatus,
			Message: msg,
			Status:  class.Status,
			Errors:  []errorItem{{Domain: errorDomain, Reason: class.Reason, Message: msg}},
		},
	})
}
