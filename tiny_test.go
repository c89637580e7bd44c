package tiny

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestView_FrameInRoot(t *testing.T) {
	root := NewView("root", NewRect(0, 0, 800, 600))
	panel := NewView("panel", NewRect(100, 50, 200, 200))
	button := NewView("button", NewRect(10, 20, 80, 30))
	root.Add(panel)
	panel.Add(button)

	if got, want := button.FrameInRoot(), NewRect(110, 70, 80, 30); got != want {
		t.Errorf("FrameInRoot() = %v, want %v", got, want)
	}
	if got := root.Subview("button"); got != button {
		t.Errorf("Subview(\"button\") = %v, want button", got)
	}
}

func TestView_ConstraintQueries(t *testing.T) {
	root := NewView("root", NewRect(0, 0, 100, 100))
	child := NewView("child", NewRect(0, 0, 10, 10))
	root.Add(child)

	width := &Constraint{First: child, FirstAttr: AttrWidth, Relation: Equal, Multiplier: 1, Constant: 10}
	leading := &Constraint{First: child, FirstAttr: AttrLeading, Relation: Equal, Second: root, SecondAttr: AttrLeading, Multiplier: 1}
	child.AddConstraint(width)
	root.AddConstraint(leading)

	if got := child.ConstraintBy(AttrWidth); got != width {
		t.Errorf("ConstraintBy(width) = %v, want the width constraint", got)
	}

	Deactivate(width)
	if got := child.ConstraintBy(AttrWidth); got != nil {
		t.Errorf("ConstraintBy(width) after Deactivate = %v, want nil", got)
	}
	Activate(width)
	if got := child.ConstraintBy(AttrWidth); got != width {
		t.Errorf("ConstraintBy(width) after Activate = %v, want the width constraint", got)
	}
}

func TestBundleValue(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "App.bundle")
	if err := EnsureDirectory(dir); err != nil {
		t.Fatalf("EnsureDirectory() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Info.json"), []byte(`{"app":{"name":"tiny"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := OpenBundle(dir, WithoutBundleCache())
	if err != nil {
		t.Fatalf("OpenBundle() error: %v", err)
	}
	name, ok, err := BundleValue[string](context.Background(), b, "app.name")
	if err != nil || !ok || name != "tiny" {
		t.Errorf("BundleValue() = %q, %v, %v, want \"tiny\", true, nil", name, ok, err)
	}

	found, err := DiscoverBundles(filepath.Dir(dir), "")
	if err != nil || len(found) != 1 || found[0] != dir {
		t.Errorf("DiscoverBundles() = %v, %v, want [%s]", found, err, dir)
	}
}

func TestOpenBundle_NoInfo(t *testing.T) {
	_, err := OpenBundle(t.TempDir())
	if !errors.Is(err, ErrNoInfo) {
		t.Errorf("OpenBundle() error = %v, want ErrNoInfo", err)
	}
}

func TestEnsureDirectory_FileInTheWay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDirectory(path); !errors.Is(err, ErrFileAlreadyExists) {
		t.Errorf("EnsureDirectory() error = %v, want ErrFileAlreadyExists", err)
	}
	if DirectoryExists(path) {
		t.Error("DirectoryExists() = true for a file")
	}
}
