package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Response struct {
	Error  string `json:"error,omitempty"`
	Status string `json:"status,omitempty"`
}

// CORSHeaders are attached to every JSON response of the public API.
func CORSHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("can't marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	for k, v := range CORSHeaders() {
		w.Header().Set(k, v)
	}
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		zap.L().Warn("can't write response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Error: message})
}
