// file: internals/helpers/apperror/apperror_test.go
package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeOf(t *testing.T) {
	if got := CodeOf(NotFound("x")); got != CodeNotFound {
		t.Errorf("CodeOf = %s", got)
	}
	// tetap kebaca lewat wrap
	wrapped := fmt.Errorf("layer: %w", Conflict("bentrok"))
	if got := CodeOf(wrapped); got != CodeConflict {
		t.Errorf("CodeOf wrapped = %s", got)
	}
	if got := CodeOf(errors.New("plain")); got != CodeInternal {
		t.Errorf("CodeOf plain = %s", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidArgument("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{Conflict("x"), http.StatusConflict},
		{InvalidTransition("x"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidTransition, "cannot go from %q to %q", "pending", "completed")
	if err.Error() != `cannot go from "pending" to "completed"` {
		t.Errorf("message = %q", err.Error())
	}
	if err.Code != CodeInvalidTransition {
		t.Errorf("code = %s", err.Code)
	}
}
