// Package contacthandler serves the contact-form submission endpoint.
package contacthandler

import (
	"context"
	"io"
	"launchpad/internal/contact"
	"launchpad/pkg/logger"
	"launchpad/pkg/serrors"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes is used when the handler is created without a body limit.
const DefaultMaxBodyBytes = 64 << 10

// InternalErrorMessage is the only detail a client sees about a server-side failure.
const InternalErrorMessage = "Something went wrong"

// Handler serves contact form submissions.
type Handler struct {
	contact      contact.Service
	maxBodyBytes int64
}

// New creates a Handler submitting to svc. A non-positive maxBodyBytes uses DefaultMaxBodyBytes.
func New(svc contact.Service, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{
		contact:      svc,
		maxBodyBytes: maxBodyBytes,
	}
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.writeError(ctx, w, errors.Wrap(err, "read body"))

		return
	}

	inquiry, err := DecodeInquiry(body)
	if err != nil {
		h.writeError(ctx, w, err)

		return
	}

	if err := h.contact.Submit(ctx, inquiry); err != nil {
		h.writeError(ctx, w, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Field("ok", func(e *jx.Encoder) { e.Bool(true) })
	})
}

// NewError maps err to a status code and the message returned to the client.
// Only validation failures are reported as such; everything else is a generic 500.
func (h *Handler) NewError(ctx context.Context, err error) (int, string) {
	if serrors.KindOf(err) == serrors.ErrBadRequest {
		msg := serrors.PublicMessage(err, serrors.ErrBadRequest)
		if msg == "" {
			msg = contact.MissingFieldsMessage
		}

		return http.StatusBadRequest, msg
	}

	logger.Error(ctx, "could not handle contact submission", zap.Error(err))

	return http.StatusInternalServerError, InternalErrorMessage
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, msg := h.NewError(ctx, err)
	writeJSON(w, status, func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) { e.Str(msg) })
	})
}

func writeJSON(w http.ResponseWriter, status int, fields func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(fields)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
