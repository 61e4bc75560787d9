package vrmmeta_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/vrmmeta"
)

// TestOpenMany_Cancellation verifies that a cancelled context yields no files.
func TestOpenMany_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths := make([]string, 5)
	for i := range paths {
		paths[i] = writeTemp(t, fmt.Sprintf("a%d.vrm", i), glb(legacyJSON))
	}

	files, err := vrmmeta.OpenMany(ctx, paths)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if files != nil {
		t.Errorf("expected nil files on error, got %d files", len(files))
	}
}

// TestOpenMany_PartialFailure verifies that one bad path fails the batch.
func TestOpenMany_PartialFailure(t *testing.T) {
	good := writeTemp(t, "good.vrm", glb(legacyJSON))
	bad := writeTemp(t, "bad.vrm", glb(legacyJSON)[:30])

	files, err := vrmmeta.OpenMany(context.Background(), []string{good, bad})
	if err == nil {
		t.Fatal("expected error when one file fails")
	}
	if !errors.Is(err, vrmmeta.ErrTruncatedFile) {
		t.Errorf("expected TruncatedFile in chain, got %v", err)
	}
	if files != nil {
		t.Error("expected nil files on partial failure")
	}
	if n := strings.Count(err.Error(), bad); n != 1 {
		t.Errorf("error should name %s once, got %d times: %v", bad, n, err)
	}

	missing := filepath.Join(t.TempDir(), "nope.vrm")
	_, err = vrmmeta.OpenMany(context.Background(), []string{good, missing})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if n := strings.Count(err.Error(), missing); n != 1 {
		t.Errorf("error should name %s once, got %d times: %v", missing, n, err)
	}

	notGLB := writeTemp(t, "song.wav", []byte("RIFF\x00\x00\x00\x00WAVEfmt "))
	_, err = vrmmeta.OpenMany(context.Background(), []string{good, notGLB})
	if !errors.Is(err, vrmmeta.ErrBadMagic) {
		t.Fatalf("expected BadMagic, got %v", err)
	}
	if n := strings.Count(err.Error(), notGLB); n != 1 {
		t.Errorf("error should name %s once, got %d times: %v", notGLB, n, err)
	}
}

func TestOpenMany_PreservesOrder(t *testing.T) {
	paths := []string{
		writeTemp(t, "legacy.vrm", glb(legacyJSON)),
		writeTemp(t, "current.vrm", glb(currentJSON)),
		writeTemp(t, "plain.glb", glb(`{"asset":{"version":"2.0"}}`)),
	}

	files, err := vrmmeta.OpenMany(context.Background(), paths, vrmmeta.WithStrictLength())
	if err != nil {
		t.Fatalf("OpenMany() error = %v", err)
	}

	want := []vrmmeta.Generation{vrmmeta.GenerationLegacy, vrmmeta.GenerationCurrent, vrmmeta.GenerationUnknown}
	for i, f := range files {
		if f.Path != paths[i] {
			t.Errorf("files[%d].Path = %s, want %s", i, f.Path, paths[i])
		}
		if f.Generation != want[i] {
			t.Errorf("files[%d].Generation = %s, want %s", i, f.Generation, want[i])
		}
	}

	if files, err := vrmmeta.OpenMany(context.Background(), nil); files != nil || err != nil {
		t.Errorf("OpenMany(nil) = %v, %v", files, err)
	}
}

func TestOpenContext(t *testing.T) {
	path := writeTemp(t, "legacy.vrm", glb(legacyJSON))

	if _, err := vrmmeta.OpenContext(context.Background(), path); err != nil {
		t.Fatalf("OpenContext() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := vrmmeta.OpenContext(ctx, path); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
