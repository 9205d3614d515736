package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"partyboard/backend"
	"partyboard/services"
	"partyboard/session"
	"partyboard/wizard"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Error("failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal error", slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusUnauthorized, message)
}

func unprocessableResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
}

func errMissingParam(name string) error {
	return fmt.Errorf("missing %s URL parameter", name)
}

func apiNotFound(err error) bool {
	return errors.Is(err, backend.ErrNotFound)
}

// pageErrorResponse is the envelope for page-level load failures: the
// shell renders the message with a retry button and a back-to-home link.
func pageErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	message := "failed to load data from the server"
	if apiErr, ok := backend.AsAPIError(err); ok {
		message = apiErr.UserMessage()
	}
	env := jsonResponse{"error": message, "retryable": true}
	if writeErr := writeJSON(w, http.StatusBadGateway, env, nil); writeErr != nil {
		slog.Error("failed to write page error response", slog.Any("error", writeErr))
	}
}

// alertResponse is the envelope for mutation failures: the shell surfaces
// the message as a blocking alert while keeping form state intact.
func alertResponse(w http.ResponseWriter, r *http.Request, err error) {
	message := "the request could not be completed"
	if apiErr, ok := backend.AsAPIError(err); ok {
		message = apiErr.UserMessage()
	}
	env := jsonResponse{"error": message, "alert": true}
	status := http.StatusBadGateway
	if apiErr, ok := backend.AsAPIError(err); ok {
		status = apiErr.StatusCode
	}
	if writeErr := writeJSON(w, status, env, nil); writeErr != nil {
		slog.Error("failed to write alert response", slog.Any("error", writeErr))
	}
}

// mapServiceErrorToHTTP translates service and client-validation errors
// into HTTP responses. Validation problems never reached the backend, so
// they map to 422 with the exact message the form should display.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrScoreGameRequired),
		errors.Is(err, services.ErrScoreTeamRequired),
		errors.Is(err, services.ErrScorePlayerRequired),
		errors.Is(err, services.ErrScoreValueInvalid),
		errors.Is(err, services.ErrScoreModeInvalid),
		errors.Is(err, services.ErrGameCodeEmpty),
		errors.Is(err, services.ErrCredentialsRequired),
		errors.Is(err, wizard.ErrNameRequired),
		errors.Is(err, wizard.ErrNotEnoughTeams),
		errors.Is(err, wizard.ErrTeamNameRequired),
		errors.Is(err, wizard.ErrTeamNeedsPlayers),
		errors.Is(err, wizard.ErrPlayerNameRequired),
		errors.Is(err, wizard.ErrPlayerAvatarRequired),
		errors.Is(err, wizard.ErrNoGamesSelected),
		errors.Is(err, wizard.ErrAlreadyAtReview):
		unprocessableResponse(w, r, err)

	case errors.Is(err, session.ErrNoToken),
		errors.Is(err, session.ErrTokenExpired),
		errors.Is(err, backend.ErrUnauthorized):
		unauthorizedResponse(w, r, "session expired, please sign in again")

	case errors.Is(err, backend.ErrNotFound):
		notFoundResponse(w, r)

	case errors.Is(err, backend.ErrUnavailable):
		pageErrorResponse(w, r, err)

	default:
		alertResponse(w, r, err)
	}
}
