package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// editNoteInput mirrors [models.NoteUpdate] on the wire: the note ID plus
// optional replacement fields.
type editNoteInput struct {
	NoteID   int64                `json:"id"`
	Title    *string              `json:"title"`
	Content  *string              `json:"content"`
	Category *models.NoteCategory `json:"category"`
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request, input json.RawMessage) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var noteInput models.AddNoteInput
	if err := decodeInput(input, &noteInput); err != nil {
		log.Err(err).Msg("invalid addNote input")
		writeError(w, err)
		return
	}

	note, err := h.services.NoteService.AddNote(ctx, callerID, noteInput)
	if err != nil {
		log.Err(err).Msg("adding note failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Note:    models.NewNoteView(note),
		Message: "Note created successfully!",
	}, http.StatusCreated)
}

func (h *Handler) editNote(w http.ResponseWriter, r *http.Request, input json.RawMessage) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var editInput editNoteInput
	if err := decodeInput(input, &editInput); err != nil {
		log.Err(err).Msg("invalid editNote input")
		writeError(w, err)
		return
	}

	update := models.NoteUpdate{
		NoteID:   editInput.NoteID,
		Title:    editInput.Title,
		Content:  editInput.Content,
		Category: editInput.Category,
	}

	note, err := h.services.NoteService.EditNote(ctx, callerID, update)
	if err != nil {
		log.Err(err).Int64("note_id", update.NoteID).Msg("editing note failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NoteResponse{
		Note:    models.NewNoteView(note),
		Message: "Note updated successfully!",
	}, http.StatusOK)
}

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	notes, err := h.services.NoteService.GetNotes(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("listing notes failed")
		writeError(w, err)
		return
	}

	views := make([]models.NoteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, models.NewNoteView(note))
	}

	utils.WriteJSON(w, models.NotesResponse{
		Notes:  views,
		Status: http.StatusOK,
	}, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request, input json.RawMessage) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var idInput models.NoteIDInput
	if err := decodeInput(input, &idInput); err != nil {
		log.Err(err).Msg("invalid getNote input")
		writeError(w, err)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, callerID, idInput.NoteID)
	if err != nil {
		log.Err(err).Int64("note_id", idInput.NoteID).Msg("getting note failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.NewNoteView(note), http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request, input json.RawMessage) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var idInput models.NoteIDInput
	if err := decodeInput(input, &idInput); err != nil {
		log.Err(err).Msg("invalid deleteNote input")
		writeError(w, err)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, callerID, idInput.NoteID); err != nil {
		log.Err(err).Int64("note_id", idInput.NoteID).Msg("deleting note failed")
		writeError(w, err)
		return
	}

	// 200 wrapper with a 204 payload status: the response carries a body, so
	// the transport status cannot itself be No Content
	utils.WriteJSON(w, models.MessageResponse{
		Message: "Note deleted successfully!",
		Status:  http.StatusNoContent,
	}, http.StatusOK)
}
