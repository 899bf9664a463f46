package imagegen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"broderie-tendances.jpg", "broderie-tendances.jpg"},
		{"Broderie Éléphant.PNG", "broderie-elephant.png"},
		{"motif floral_2025.jpg", "motif-floral-2025.jpg"},
		{"à_l'aiguille!.jpg", "a-l-aiguille-.jpg"},
		{"--déjà--vu--.png", "deja-vu-.png"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaver_Save(t *testing.T) {
	root := t.TempDir()
	s := &Saver{Root: root}

	saved, err := s.Save("proj1", "Tambour À Broder.png", []byte("imagedata"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Filename != "tambour-a-broder.png" {
		t.Errorf("Filename = %q", saved.Filename)
	}
	if saved.URL != "/uploads/images/proj1/tambour-a-broder.png" {
		t.Errorf("URL = %q", saved.URL)
	}

	data, err := os.ReadFile(filepath.Join(root, "proj1", "tambour-a-broder.png"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "imagedata" {
		t.Errorf("content = %q", data)
	}
}

func TestSaver_RejectsEmptyName(t *testing.T) {
	s := &Saver{Root: t.TempDir()}
	if _, err := s.Save("proj1", "???", []byte("x")); err == nil {
		t.Fatal("expected error for unusable filename")
	}
}
