package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/AkatukiSora/gto-poker-ref/internal/locale"
)

func TestCheckBundle_ReportsMissingAndEmpty(t *testing.T) {
	src := []byte(`
BoardAdviceBluffs: "Bluff: molto efficaci"
BoardAdviceHighCBet: "  "
`)
	ids := []string{"BoardAdviceBluffs", "BoardAdviceHighCBet", "BoardAdviceSmallSizing"}

	violations, stale, err := checkBundle("active.it.yaml", src, ids)
	if err != nil {
		t.Fatalf("checkBundle: %v", err)
	}
	if len(stale) != 0 {
		t.Fatalf("expected no stale ids, got %v", stale)
	}
	if len(violations) != 2 {
		t.Fatalf("expected 2 violations, got %v", violations)
	}
	if violations[0].id != "BoardAdviceHighCBet" || violations[0].message != "empty message" {
		t.Errorf("unexpected first violation: %+v", violations[0])
	}
	if violations[1].id != "BoardAdviceSmallSizing" || violations[1].message != "missing message" {
		t.Errorf("unexpected second violation: %+v", violations[1])
	}
}

func TestCheckBundle_ReportsStaleIDs(t *testing.T) {
	src := []byte("OldKey: x\nBoardAdviceBluffs: y\nAnotherOldKey: z\n")

	violations, stale, err := checkBundle("active.it.yaml", src, []string{"BoardAdviceBluffs"})
	if err != nil {
		t.Fatalf("checkBundle: %v", err)
	}
	if len(violations) != 0 {
		t.Fatalf("expected 0 violations, got %v", violations)
	}
	if len(stale) != 2 || stale[0] != "AnotherOldKey" || stale[1] != "OldKey" {
		t.Fatalf("stale = %v", stale)
	}
}

func TestCheckBundle_RejectsMalformedYAML(t *testing.T) {
	if _, _, err := checkBundle("bad.yaml", []byte("key: [unclosed"), nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestShippedBundlesAreComplete(t *testing.T) {
	dir := filepath.Join("..", "..", "internal", "locale", "locales")
	files, err := collectBundles(dir)
	if err != nil {
		t.Fatalf("collectBundles: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("no bundles under %s", dir)
	}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		violations, stale, err := checkBundle(path, data, locale.MessageIDs())
		if err != nil {
			t.Fatalf("checkBundle(%s): %v", path, err)
		}
		if len(violations) != 0 || len(stale) != 0 {
			t.Errorf("%s: violations %v, stale %v", path, violations, stale)
		}
	}
}
