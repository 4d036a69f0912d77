package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusByKind(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:    http.StatusNotFound,
		KindValidation:  http.StatusBadRequest,
		KindBadRequest:  http.StatusBadRequest,
		KindInternal:    http.StatusInternalServerError,
		KindUnavailable: http.StatusServiceUnavailable,
		KindUnknown:     http.StatusBadRequest,
	}

	for kind, want := range cases {
		if got := New(kind, "x").HTTPStatus(); got != want {
			t.Fatalf("kind %d: expected status %d, got %d", kind, want, got)
		}
	}
}

func TestGetKindFollowsWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NotFound("missing"))

	if !Is(wrapped, KindNotFound) {
		t.Fatalf("expected wrapped error to be KindNotFound, got %d", GetKind(wrapped))
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("plain errors should report KindUnknown")
	}
}

func TestErrorMessageIncludesOp(t *testing.T) {
	err := Internal("boom").WithOp("find products")
	if err.Error() != "find products: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
