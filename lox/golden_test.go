package lox

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	expectOutput       = regexp.MustCompile(`// expect: (.*)$`)
	expectRuntimeError = regexp.MustCompile(`// expect runtime error: (.+)$`)
	expectStaticError  = regexp.MustCompile(`// expect error: (.+)$`)
)

type expectations struct {
	output       []string
	runtimeError string
	staticErrors []string
}

func readExpectations(t *testing.T, path string) expectations {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var want expectations
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if m := expectOutput.FindStringSubmatch(line); m != nil {
			want.output = append(want.output, m[1])
		} else if m := expectRuntimeError.FindStringSubmatch(line); m != nil {
			want.runtimeError = m[1]
		} else if m := expectStaticError.FindStringSubmatch(line); m != nil {
			want.staticErrors = append(want.staticErrors, m[1])
		}
	}
	require.NoError(t, sc.Err())
	return want
}

// TestScripts runs every testdata/*.lox file and checks its output against
// the // expect comments in the file.
func TestScripts(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.lox"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			want := readExpectations(t, path)
			s := newSession(t)
			err := s.RunFile(path)

			if diff := cmp.Diff(want.output, splitLines(s.out.String())); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			switch {
			case want.staticErrors != nil:
				require.ErrorIs(t, err, ErrStatic)
				assert.Equal(t, want.staticErrors, splitLines(s.errOut.String()))
			case want.runtimeError != "":
				var re *RuntimeError
				require.ErrorAs(t, err, &re)
				assert.Equal(t, want.runtimeError, re.Message)
				assert.True(t, s.HadRuntimeError())
			default:
				require.NoError(t, err)
				assert.Empty(t, s.errOut.String())
			}
		})
	}
}
