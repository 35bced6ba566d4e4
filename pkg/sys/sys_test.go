package sys

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "file"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Errorf("IsTerminal(regular file) = true, want false")
	}
	if IsATTY(f.Fd()) {
		t.Errorf("IsATTY(regular file) = true, want false")
	}
}

func TestIsTerminal_Nil(t *testing.T) {
	if IsTerminal(nil) {
		t.Errorf("IsTerminal(nil) = true, want false")
	}
}
