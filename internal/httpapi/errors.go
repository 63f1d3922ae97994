package httpapi

import (
	"encoding/json"
	"net/http"

	"segmentd/internal/detect"
	"segmentd/pkg/types"
)

// statusForError maps service errors to HTTP status codes.
// NotInitialized is a caller sequencing bug (409), ModelLoadFailed means
// the feature is unavailable for now (503), DetectionFailed lost one frame
// (500).
func statusForError(err error) (int, string) {
	switch {
	case detect.IsNotInitialized(err):
		return http.StatusConflict, string(detect.CodeNotInitialized)
	case detect.IsModelLoadFailed(err):
		return http.StatusServiceUnavailable, string(detect.CodeModelLoadFailed)
	case detect.IsDetectionFailed(err):
		return http.StatusInternalServerError, string(detect.CodeDetectionFailed)
	default:
		return http.StatusInternalServerError, ""
	}
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, errorCode, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, ErrorCode: errorCode, Code: status})
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, code := statusForError(err)
	writeJSONError(w, status, code, err.Error())
}
