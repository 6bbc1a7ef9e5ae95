package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/promptdeck/promptdeck/internal/errors"
)

// maxBodyBytes bounds JSON request bodies; templates are human-typed text
const maxBodyBytes = 1 << 20

// DecodeJSONBody reads and decodes a JSON request body into dst, returning
// an AppError suitable for a 400 response when the body is malformed
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	contentType := r.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "application/json") {
		return errors.NewAppError(errors.ErrCodeInvalidInput,
			fmt.Sprintf("unsupported content type %q, expected application/json", contentType))
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidInput, "failed to read request body")
	}

	if len(body) == 0 {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "request body is empty")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return errors.Wrap(err, errors.ErrCodeInvalidFormat, "request body is not valid JSON")
	}

	return nil
}

// RequireMethod returns an AppError when the request method does not match
func RequireMethod(r *http.Request, method string) error {
	if r.Method != method {
		return errors.NewAppError(errors.ErrCodeInvalidInput,
			fmt.Sprintf("method %s not allowed, use %s", r.Method, method))
	}
	return nil
}
