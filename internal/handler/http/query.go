package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// queryRequest is the envelope of every API call: an operation name plus its
// raw input, decoded lazily by the resolver that handles the operation.
type queryRequest struct {
	Operation string          `json:"operation"`
	Input     json.RawMessage `json:"input"`
}

// query decodes the request envelope and dispatches it to the resolver
// registered for the operation name.
//
// Dispatch itself never checks authentication: the gate has already attached
// a verdict to the context and every resolver that needs identity enforces
// it via [requireAuth].
func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request queryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, ErrInvalidJSONBody)
		return
	}

	log.Debug().Str("operation", request.Operation).Msg("dispatching operation")

	switch request.Operation {
	case "hello":
		h.hello(w, r)
	case "createAccount":
		h.createAccount(w, r, request.Input)
	case "login":
		h.login(w, r, request.Input)
	case "refreshToken":
		h.refreshToken(w, r)
	case "addNote":
		h.addNote(w, r, request.Input)
	case "editNote":
		h.editNote(w, r, request.Input)
	case "getNotes":
		h.getNotes(w, r)
	case "getNote":
		h.getNote(w, r, request.Input)
	case "deleteNote":
		h.deleteNote(w, r, request.Input)
	default:
		log.Warn().Str("operation", request.Operation).Msg("unknown operation requested")
		writeError(w, fmt.Errorf("%w: %q", ErrUnknownOperation, request.Operation))
	}
}

// hello is the anonymous liveness operation.
func (h *Handler) hello(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "Hello World!", Status: http.StatusOK}, http.StatusOK)
}

// requireAuth reads the gate's verdict and writes a 401 response when the
// caller is anonymous. Returns the verified caller ID and whether the
// resolver may proceed.
func requireAuth(w http.ResponseWriter, r *http.Request) (int64, bool) {
	verdict, ok := utils.GetAuthVerdict(r.Context())
	if !ok || !verdict.IsAuthenticated {
		log := logger.FromRequest(r)
		log.Debug().Msg("operation requires identity, caller is anonymous")

		utils.WriteJSON(w, models.ErrorResponse{
			Message: "Unauthenticated!",
			Status:  http.StatusUnauthorized,
		}, http.StatusUnauthorized)
		return 0, false
	}

	return verdict.UserID, true
}

// decodeInput unmarshals an operation's raw input into dst, mapping decode
// failures onto [ErrInvalidJSONBody].
func decodeInput(input json.RawMessage, dst any) error {
	if len(input) == 0 {
		return ErrInvalidJSONBody
	}
	if err := json.Unmarshal(input, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	return nil
}
