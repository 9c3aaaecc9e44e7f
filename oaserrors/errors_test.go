package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConflictError(t *testing.T) {
	t.Run("Error message with kind and key", func(t *testing.T) {
		err := &ConflictError{Kind: "field", Key: "name"}
		if err.Error() != "duplicate entry for field name" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with scope", func(t *testing.T) {
		err := &ConflictError{Kind: "status code", Key: "200", Scope: "GET /users"}
		if err.Error() != "duplicate entry for status code 200 in GET /users" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Message overrides default text", func(t *testing.T) {
		err := &ConflictError{Kind: "operation", Message: "duplicate operation GET /users"}
		if err.Error() != "duplicate operation GET /users" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConflict only", func(t *testing.T) {
		err := &ConflictError{}
		if !errors.Is(err, ErrConflict) {
			t.Error("ConflictError should match ErrConflict")
		}
		if errors.Is(err, ErrShape) {
			t.Error("ConflictError should not match ErrShape")
		}
	})

	t.Run("As extracts wrapped ConflictError", func(t *testing.T) {
		wrapped := fmt.Errorf("describe: %w", &ConflictError{Kind: "field", Key: "x"})
		var target *ConflictError
		if !errors.As(wrapped, &target) {
			t.Fatal("errors.As should find ConflictError")
		}
		if target.Key != "x" {
			t.Errorf("expected key x, got %s", target.Key)
		}
	})
}

func TestTagConflictError(t *testing.T) {
	t.Run("Field collision", func(t *testing.T) {
		err := &TagConflictError{Tag: "type", Variant: "Circle", Field: "type"}
		if err.Error() != `tag conflict: variant Circle has a field named like the tag "type"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Adjacent collision", func(t *testing.T) {
		err := &TagConflictError{Tag: "t", Content: "t"}
		if err.Error() != `tag conflict: adjacent tag and content must differ (both "t")` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrTagConflict", func(t *testing.T) {
		if !errors.Is(&TagConflictError{}, ErrTagConflict) {
			t.Error("TagConflictError should match ErrTagConflict")
		}
		if errors.Is(&TagConflictError{}, ErrConflict) {
			t.Error("TagConflictError should not match ErrConflict")
		}
	})
}

func TestShapeError(t *testing.T) {
	t.Run("Error message with adapter and shape", func(t *testing.T) {
		err := &ShapeError{Adapter: "flatten", Message: "can only flatten structs and maps", Got: "a sequence"}
		if err.Error() != "flatten: can only flatten structs and maps (got a sequence)" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without adapter", func(t *testing.T) {
		err := &ShapeError{Message: "request body must have content type"}
		if err.Error() != "request body must have content type" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrShape", func(t *testing.T) {
		if !errors.Is(&ShapeError{}, ErrShape) {
			t.Error("ShapeError should match ErrShape")
		}
	})
}

func TestRegistryError(t *testing.T) {
	tests := []struct {
		name string
		err  *RegistryError
		want string
	}{
		{
			name: "conflict",
			err:  &RegistryError{Kind: RegistryConflict, Name: "User", Site: "a.go:1", OtherSite: "b.go:2"},
			want: "registry error: conflicting definitions for schema User (a.go:1 and b.go:2)",
		},
		{
			name: "still shared",
			err:  &RegistryError{Kind: RegistryStillShared, Outstanding: 2},
			want: "registry error: cannot finalize while 2 handle(s) are still shared",
		},
		{
			name: "pending",
			err:  &RegistryError{Kind: RegistryPending, Name: "Node", Site: "n.go:9"},
			want: "registry error: schema Node was reserved at n.go:9 but never defined",
		},
		{
			name: "finalized",
			err:  &RegistryError{Kind: RegistryFinalized},
			want: "registry error: registry already finalized",
		},
		{
			name: "unknown kind",
			err:  &RegistryError{},
			want: "registry error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrRegistry) {
				t.Error("RegistryError should match ErrRegistry")
			}
		})
	}
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("bad url")
		err := &ConfigError{Option: "servers[0].url", Value: "::", Message: "invalid", Cause: cause}
		if err.Error() != "configuration error for servers[0].url (value: ::): invalid: bad url" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
		//nolint:errorlint // testing pointer identity
		if err.Unwrap() != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		if !errors.Is(&ConfigError{}, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
