package controller

import (
	"testing"

	"github.com/scribearc/scribearc/internal/model"
)

func TestValidateRequirements(t *testing.T) {
	schema := model.JSONMap{
		"topic":     "string",
		"wordCount": "number",
		"citations": "bool",
	}

	tests := []struct {
		name         string
		requirements model.JSONMap
		wantErr      bool
	}{
		{
			name: "all fields with correct types",
			requirements: model.JSONMap{
				"topic":     "Victorian literature",
				"wordCount": float64(2500),
				"citations": true,
			},
			wantErr: false,
		},
		{
			name: "missing schema field",
			requirements: model.JSONMap{
				"topic":     "Victorian literature",
				"wordCount": float64(2500),
			},
			wantErr: true,
		},
		{
			name: "wrong type for number field",
			requirements: model.JSONMap{
				"topic":     "Victorian literature",
				"wordCount": "2500",
				"citations": true,
			},
			wantErr: true,
		},
		{
			name: "wrong type for bool field",
			requirements: model.JSONMap{
				"topic":     "Victorian literature",
				"wordCount": float64(2500),
				"citations": "yes",
			},
			wantErr: true,
		},
		{
			name: "extra scalar fields allowed",
			requirements: model.JSONMap{
				"topic":     "Victorian literature",
				"wordCount": float64(2500),
				"citations": true,
				"style":     "APA",
			},
			wantErr: false,
		},
		{
			name: "nested value rejected",
			requirements: model.JSONMap{
				"topic":     "Victorian literature",
				"wordCount": float64(2500),
				"citations": true,
				"extras":    map[string]any{"nested": true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequirements(tt.requirements, schema)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	t.Run("empty schema accepts any scalar payload", func(t *testing.T) {
		if err := validateRequirements(model.JSONMap{"anything": "goes"}, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
