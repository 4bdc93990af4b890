package api

import (
	"encoding/json"
	"net/http"

	"hermannm.dev/devlog/log"
	"hermannm.dev/wrap"
)

func sendClientError(res http.ResponseWriter, err error, message string) {
	if err != nil {
		message = wrap.Error(err, message).Error()
	}

	log.Warn(message)
	http.Error(res, message, http.StatusBadRequest)
}

func sendServerError(res http.ResponseWriter, err error, message string) {
	log.ErrorCause(err, message)
	http.Error(res, wrap.Error(err, message).Error(), http.StatusInternalServerError)
}

func sendJSON(res http.ResponseWriter, value any) {
	body, err := json.Marshal(value)
	if err != nil {
		sendServerError(res, err, "failed to serialize response")
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)
	if _, err := res.Write(body); err != nil {
		log.ErrorCause(err, "failed to write response")
	}
}
