package models

import (
	"errors"
	"testing"
	"time"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr bool
	}{
		{
			name:    "empty text should fail",
			text:    "",
			wantErr: true,
		},
		{
			name:    "whitespace text should fail",
			text:    " \t\n ",
			wantErr: true,
		},
		{
			name: "text is trimmed",
			text: "  Buy milk \n",
			want: "Buy milk",
		},
		{
			name: "inner spaces are kept",
			text: "Walk  the dog",
			want: "Walk  the dog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateText(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrTextRequired) {
					t.Errorf("expected %v, got %v", ErrTextRequired, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPatchApply(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	base := Task{ID: "a", Text: "Buy milk", Completed: false, CreatedAt: created}

	text := "Buy oat milk"
	done := true

	tests := []struct {
		name  string
		patch Patch
		want  Task
	}{
		{
			name:  "empty patch changes nothing",
			patch: Patch{},
			want:  base,
		},
		{
			name:  "completed only",
			patch: Patch{Completed: &done},
			want:  Task{ID: "a", Text: "Buy milk", Completed: true, CreatedAt: created},
		},
		{
			name:  "text only",
			patch: Patch{Text: &text},
			want:  Task{ID: "a", Text: "Buy oat milk", Completed: false, CreatedAt: created},
		},
		{
			name:  "both fields",
			patch: Patch{Text: &text, Completed: &done},
			want:  Task{ID: "a", Text: "Buy oat milk", Completed: true, CreatedAt: created},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.patch.Apply(base)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}

	if base.Completed || base.Text != "Buy milk" {
		t.Error("expected Apply to leave the original task untouched")
	}
}
