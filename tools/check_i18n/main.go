// check_i18n compares the embedded translation bundles with the message IDs
// the core packages emit. It reports IDs a bundle is missing and bundle
// entries nothing looks up, and exits non-zero on any missing ID.
//
// Usage:
//
//	go run ./tools/check_i18n [-dir internal/locale/locales]
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AkatukiSora/gto-poker-ref/internal/locale"
)

const bundlePattern = "active.*.yaml"

type violation struct {
	bundle  string
	id      string
	message string
}

func main() {
	dir := flag.String("dir", filepath.Join("internal", "locale", "locales"), "directory holding the message bundles")
	flag.Parse()

	files, err := collectBundles(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to collect bundles: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "no %s files in %s\n", bundlePattern, *dir)
		os.Exit(1)
	}

	ids := locale.MessageIDs()
	missing := 0
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
			os.Exit(1)
		}
		violations, stale, err := checkBundle(filepath.ToSlash(path), data, ids)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", path, err)
			os.Exit(1)
		}
		for _, id := range stale {
			fmt.Printf("WARN %s: unused message %q\n", filepath.ToSlash(path), id)
		}
		for _, v := range violations {
			fmt.Printf("%s: %s %q\n", v.bundle, v.message, v.id)
		}
		missing += len(violations)
	}

	if missing > 0 {
		os.Exit(1)
	}
}

func collectBundles(root string) ([]string, error) {
	files := make([]string, 0)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(bundlePattern, d.Name()); ok {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// checkBundle returns a violation per ID the bundle lacks or leaves blank,
// plus the sorted bundle IDs that are never looked up.
func checkBundle(name string, data []byte, ids []string) ([]violation, []string, error) {
	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, nil, err
	}

	var violations []violation
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
		text, ok := messages[id]
		switch {
		case !ok:
			violations = append(violations, violation{bundle: name, id: id, message: "missing message"})
		case strings.TrimSpace(text) == "":
			violations = append(violations, violation{bundle: name, id: id, message: "empty message"})
		}
	}

	var stale []string
	for id := range messages {
		if _, ok := known[id]; !ok {
			stale = append(stale, id)
		}
	}
	sort.Strings(stale)
	return violations, stale, nil
}
