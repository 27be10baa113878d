// Package latextest provides fake LaTeX engines for tests.
package latextest

import (
	"os"
	"path/filepath"
	"testing"
)

// FakeEngine imitates a LaTeX engine. It writes <stem>.log and <stem>.pdf into the
// -output-directory. A source containing FAIL produces a "! Missing $ inserted."
// diagnostic and exit status 1; a source containing SILENT fails without a log.
// When LOCK_DIR is set it holds <LOCK_DIR>/lock for the duration of the pass and
// fails loudly if another pass already holds it.
const FakeEngine = `#!/bin/sh
for arg in "$@"; do
  case "$arg" in
    -output-directory=*) out="${arg#-output-directory=}" ;;
  esac
  src="$arg"
done
stem=$(basename "$src" .tex)

if [ -n "$LOCK_DIR" ]; then
  if ! (set -C; echo $$ > "$LOCK_DIR/lock") 2>/dev/null; then
    echo overlap >> "$LOCK_DIR/overlaps"
  fi
  echo run >> "$LOCK_DIR/runs"
  sleep "${PASS_DELAY:-0}"
  rm -f "$LOCK_DIR/lock"
fi

echo "This is fakeTeX, Version 3.14"
if grep -q SILENT "$src"; then
  exit 2
fi
if grep -q FAIL "$src"; then
  printf 'This is fakeTeX\n! Missing $ inserted.\n<inserted text>\n' > "$out/$stem.log"
  exit 1
fi
printf 'Output written on %s.pdf (1 page).\n' "$stem" > "$out/$stem.log"
printf '%%PDF-1.5\n' > "$out/$stem.pdf"
`

// Install writes script as an executable named name into a temp dir and puts
// that dir first on PATH for the rest of the test.
func Install(t *testing.T, name, script string) string {
	t.Helper()

	bin := t.TempDir()
	path := filepath.Join(bin, name)
	//nolint:gosec // Test requires executable file
	if err := os.WriteFile(path, []byte(script), 0o700); err != nil {
		t.Fatalf("failed to install fake engine: %v", err)
	}

	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}
