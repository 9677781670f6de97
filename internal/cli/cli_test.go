// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/fold/internal/config"
)

const sampleConfig = `sequences:
  - name: sample
    values: [12, 3, 4]
  - name: empty
    values: []
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foldcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSummaryCommand(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	stdout, _, err := execute(t, "summary", "--config", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"NAME", "SIZE", "SUM", "PRODUCT", "MIN", "MAX", "FOLDR(-)", "FOLDL(-)"}, strings.Fields(lines[0]))
	// foldr(-, 0) = 12-(3-(4-0)) = 13, foldl(-, 0) = ((0-12)-3)-4 = -19
	assert.Equal(t, []string{"sample", "3", "19", "144", "3", "12", "13", "-19"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"empty", "0", "0", "1", "empty", "empty", "0", "0"}, strings.Fields(lines[2]))
}

func TestLawsCommand(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	stdout, stderr, err := execute(t, "laws", "-c", path, "--log-level", "debug")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "FAIL")
	assert.Contains(t, stdout, "ok   sample: foldr direction")
	assert.Contains(t, stdout, "ok   empty: derived agrees with native")
	assert.Contains(t, stdout, "ok   -: foldMap of empty is identity")
	assert.Contains(t, stderr, "laws checked")
	assert.Contains(t, stderr, "checking sequence")
}

func TestRunLawsCountsEveryCheck(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	failed, err := runLaws(&out, logger, []config.Sequence{
		{Name: "a", Values: []float64{1, 2, 3}},
		{Name: "b", Values: []float64{-0.5}},
	})
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Equal(t, 1+2*len(laws), strings.Count(out.String(), "\n"))
}

func TestMissingConfig(t *testing.T) {
	_, _, err := execute(t, "summary", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "sequences:\n  - name: x\n  - name: x\n")
	_, _, err := execute(t, "laws", "--config", path)
	assert.ErrorIs(t, err, config.ErrDuplicateSequence)
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	_, _, err := execute(t, "summary", "--config", path, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "summary", "extra")
	assert.Error(t, err)
}
