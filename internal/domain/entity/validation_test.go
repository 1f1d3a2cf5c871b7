package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateArticleDraft(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		body        string
		wantErr     bool
		wantField   string
	}{
		{
			name:        "valid draft",
			title:       "Go in production",
			description: "Notes from a year of Go",
			body:        "Long enough body text",
			wantErr:     false,
		},
		{
			name:        "empty title",
			title:       "",
			description: "Some description",
			body:        "Long enough body text",
			wantErr:     true,
			wantField:   "title",
		},
		{
			name:        "title too short",
			title:       "Go",
			description: "Some description",
			body:        "Long enough body text",
			wantErr:     true,
			wantField:   "title",
		},
		{
			name:        "whitespace-only title",
			title:       "      ",
			description: "Some description",
			body:        "Long enough body text",
			wantErr:     true,
			wantField:   "title",
		},
		{
			name:        "description too short",
			title:       "Go in production",
			description: "abc",
			body:        "Long enough body text",
			wantErr:     true,
			wantField:   "description",
		},
		{
			name:        "body too short",
			title:       "Go in production",
			description: "Some description",
			body:        "tiny",
			wantErr:     true,
			wantField:   "body",
		},
		{
			name:        "title padded to minimum with spaces",
			title:       " ab ",
			description: "Some description",
			body:        "Long enough body text",
			wantErr:     true,
			wantField:   "title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArticleDraft(tt.title, tt.description, tt.body)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateArticleDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if vErr.Field != tt.wantField {
					t.Errorf("field = %q, want %q", vErr.Field, tt.wantField)
				}
			}
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		want    []string
		wantErr bool
	}{
		{
			name: "list entries kept in order",
			raw:  []string{"go", "web", "backend"},
			want: []string{"go", "web", "backend"},
		},
		{
			name: "entries split on whitespace",
			raw:  []string{"go web", "backend"},
			want: []string{"go", "web", "backend"},
		},
		{
			name: "duplicates removed keeping first occurrence",
			raw:  []string{"go", "web", "go", "backend", "web"},
			want: []string{"go", "web", "backend"},
		},
		{
			name: "mixed whitespace inside entries",
			raw:  []string{"  go\tweb\n backend  "},
			want: []string{"go", "web", "backend"},
		},
		{
			name: "empty input",
			raw:  nil,
			want: nil,
		},
		{
			name: "blank entries only",
			raw:  []string{"", "   \t\n "},
			want: nil,
		},
		{
			name:    "too many tags",
			raw:     []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTags(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeTags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeTags() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("tag[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateCommentBody(t *testing.T) {
	if err := ValidateCommentBody("nice read"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateCommentBody("ok"); err == nil {
		t.Fatal("expected error for short comment")
	}
	if err := ValidateCommentBody("  a  "); err == nil {
		t.Fatal("expected error for padded short comment")
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "valid", username: "jacob", wantErr: false},
		{name: "minimum length", username: "abc", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: strings.Repeat("a", 31), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateUsername(tt.username); (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "jacob@example.com", wantErr: false},
		{name: "empty", email: "", wantErr: true},
		{name: "missing domain", email: "jacob@", wantErr: true},
		{name: "not an address", email: "not-an-email", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateEmail(tt.email); (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("longenough"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidatePassword(""); err == nil {
		t.Fatal("expected error for empty password")
	}
	if err := ValidatePassword("short"); err == nil {
		t.Fatal("expected error for short password")
	}
}
