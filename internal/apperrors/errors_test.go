package apperrors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotFoundIsDetectedThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("job 7", nil))
	if !IsNotFound(err) {
		t.Fatalf("expected wrapped not-found to be detected: %v", err)
	}
	if got := TypeOf(err); got != ErrTypeNotFound {
		t.Fatalf("TypeOf = %s", got)
	}
}

func TestPlainErrorsAreInternal(t *testing.T) {
	if got := TypeOf(errors.New("boom")); got != ErrTypeInternal {
		t.Fatalf("TypeOf = %s", got)
	}
	if IsNotFound(nil) {
		t.Fatal("nil must not be not-found")
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("bad yaml")
	err := InvalidInput("catalog", cause)
	if err.Error() != "INVALID_INPUT: catalog: bad yaml" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to unwrap")
	}
	if len(err.StackTrace()) == 0 {
		t.Fatal("expected a captured stack")
	}
}

func TestWrappingKeepsInnermostStack(t *testing.T) {
	inner := Internal("read dataset", errors.New("disk"))
	outer := InvalidInput("catalog", fmt.Errorf("load: %w", inner))
	if string(StackOf(outer)) != string(inner.StackTrace()) {
		t.Fatal("outer error should reuse the stack captured by the inner one")
	}
	if StackOf(errors.New("plain")) != nil {
		t.Fatal("plain errors carry no stack")
	}
}

func TestStackFieldIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	logger.Error("render", StackField(Internal("render page", errors.New("boom"))))
	logger.Error("plain", StackField(errors.New("boom")))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	stack, ok := entries[0].ContextMap()["stack"].(string)
	if !ok || !strings.Contains(stack, "errors_test.go") {
		t.Fatalf("stack field = %v", entries[0].ContextMap()["stack"])
	}
	if _, ok := entries[1].ContextMap()["stack"]; ok {
		t.Fatal("plain error must not add a stack field")
	}
}
