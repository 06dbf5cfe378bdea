package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

const mod = "github.com/telatin/seqfu-amplify"

// Domain packages under core/ must stay free of app-side imports, and the
// leaf layers must not reach back up into the app.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		mod + "/core/": {
			mod + "/internal/", mod + "/cmd/",
		},
		mod + "/internal/matcher": {
			mod + "/internal/app", mod + "/internal/cli",
			mod + "/internal/writers", mod + "/internal/output", mod + "/cmd/",
		},
		mod + "/internal/output": {
			mod + "/internal/app", mod + "/internal/cli",
			mod + "/internal/writers", mod + "/internal/matcher", mod + "/cmd/",
		},
		mod + "/internal/writers": {
			mod + "/internal/app", mod + "/internal/cli",
			mod + "/internal/matcher", mod + "/cmd/",
		},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" imports "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
