// Package toolchain resolves the interpreter used by later build and test
// steps. The orchestrator contract is "a matching interpreter is
// available"; resolution fails the run when it is not.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

var ErrNoInterpreter = errors.New("no matching python interpreter found")

// Interpreter is a resolved python binary.
type Interpreter struct {
	// Path is the binary as resolvable from PATH.
	Path string
	// Version is the interpreter's reported version.
	Version *goversion.Version
}

// versionRe matches the output of `python -V`, e.g. "Python 3.11.4".
var versionRe = regexp.MustCompile(`Python (\d+\.\d+(?:\.\d+)?)`)

// probe is swapped in tests.
var probe = func(ctx context.Context, bin string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, "-V").CombinedOutput()
	return string(out), err
}

// Resolve finds a python interpreter whose version satisfies spec, a
// constraint like "3.11". Candidates are probed most specific first:
// python<spec>, python3, python.
func Resolve(ctx context.Context, spec string) (*Interpreter, error) {
	// "3.11" means any 3.11.x, not 3.12. The pessimistic operator pins
	// the final segment, so pad minor-only specs to three segments.
	pinned := spec
	if strings.Count(pinned, ".") == 1 {
		pinned += ".0"
	}
	constraint, err := goversion.NewConstraint("~> " + pinned)
	if err != nil {
		return nil, fmt.Errorf("bad interpreter version %q: %w", spec, err)
	}

	candidates := []string{"python" + spec, "python3", "python"}
	for _, bin := range candidates {
		out, err := probe(ctx, bin)
		if err != nil {
			continue
		}
		v, err := parseVersion(out)
		if err != nil {
			continue
		}
		if constraint.Check(v) {
			return &Interpreter{Path: bin, Version: v}, nil
		}
	}
	return nil, fmt.Errorf("%w: version %s", ErrNoInterpreter, spec)
}

func parseVersion(out string) (*goversion.Version, error) {
	m := versionRe.FindStringSubmatch(strings.TrimSpace(out))
	if m == nil {
		return nil, fmt.Errorf("unrecognized interpreter version output %q", strings.TrimSpace(out))
	}
	return goversion.NewVersion(m[1])
}
