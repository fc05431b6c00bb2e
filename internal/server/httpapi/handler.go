package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/logging"
)

// RotatedTokenHeader carries the new session token after a rotation.
const RotatedTokenHeader = "X-Rotated-Session-Token"

// maxBodySize leaves room for a base64 encoded note of maximum size.
const maxBodySize = 2 << 20

type handler struct {
	api *api.Facade
	log logging.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

func handle[Req, Resp any](h *handler, call func(*api.Facade, context.Context, *Req) (*Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := new(Req)
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
		if err := dec.Decode(in); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, api.Classify(fmt.Errorf("%w: malformed request body", common.ErrorValidation)))
			return
		}

		var presented string
		if authed, ok := any(in).(api.Authenticated); ok {
			ref := authed.SessionTokenRef()
			if *ref == "" {
				*ref = bearerToken(r)
			}
			presented = *ref
		}

		out, err := call(h.api, r.Context(), in)
		if err != nil {
			writeError(w, api.Classify(err))
			return
		}

		if re, ok := any(out).(api.Reissued); ok {
			if tok := re.ReissuedToken(); tok != "" && tok != presented {
				w.Header().Set(RotatedTokenHeader, tok)
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func bearerToken(r *http.Request) string {
	v := r.Header.Get("Authorization")
	if len(v) > 7 && strings.EqualFold(v[:7], "bearer ") {
		return strings.TrimSpace(v[7:])
	}
	return ""
}

func statusFor(kind error) int {
	switch {
	case errors.Is(kind, common.ErrorConflict):
		return http.StatusConflict
	case errors.Is(kind, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(kind, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, common.ErrorRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(kind, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(kind, common.ErrorCryptoFailure):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, e *api.Error) {
	writeJSON(w, statusFor(e.Kind), &errorResponse{Error: e.Message})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
