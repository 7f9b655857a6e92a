package httpadapter

import (
	"adsync/internal/core/port"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodySize = 1 << 20

// decodeJSON reads a single JSON object into dst and validates it. An empty
// body decodes into the zero value so optional payloads may be omitted.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return port.NewValidationError("", "request body too large")
		}
		return port.NewValidationError("", "malformed JSON body: "+err.Error())
	}
	return h.validateStruct(dst)
}

func (h *Handler) validateStruct(v any) error {
	if err := h.validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, port.NewValidationError("id", "must be a valid id")
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, port.NewValidationError(name, fmt.Sprintf("must be an integer, got %q", v))
	}
	return n, nil
}

func queryBool(r *http.Request, name string) (bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, port.NewValidationError(name, fmt.Sprintf("must be a boolean, got %q", v))
	}
	return b, nil
}
