//go:build unix

package exec

import (
	"bytes"
	"errors"
	osexec "os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealRunner_RelaysStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &RealRunner{Stdin: strings.NewReader(""), Stderr: &stderr}

	res, err := r.Run("sh", []string{"-c", `printf 'hello\nworld\n'`}, &stdout)
	require.NoError(t, err)
	assert.True(t, res.OK(), "result: %+v", res)
	assert.Equal(t, "hello\nworld\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRealRunner_LongLines(t *testing.T) {
	var stdout bytes.Buffer
	r := &RealRunner{Stdin: strings.NewReader(""), Stderr: &bytes.Buffer{}}

	// 3 lines of 5000 bytes each plus newline.
	res, err := r.Run("sh", []string{"-c", `i=0; while [ $i -lt 3 ]; do head -c 5000 /dev/zero | tr '\0' 'y'; echo; i=$((i+1)); done`}, &stdout)
	require.NoError(t, err)
	require.True(t, res.OK(), "result: %+v", res)

	line := strings.Repeat("y", 5000) + "\n"
	assert.Equal(t, strings.Repeat(line, 3), stdout.String())
}

func TestRealRunner_StderrNotCaptured(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &RealRunner{Stdin: strings.NewReader(""), Stderr: &stderr}

	res, err := r.Run("sh", []string{"-c", "echo out; echo err >&2"}, &stdout)
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRealRunner_NonZeroExit(t *testing.T) {
	var stdout bytes.Buffer
	r := &RealRunner{Stdin: strings.NewReader(""), Stderr: &bytes.Buffer{}}

	res, err := r.Run("sh", []string{"-c", "echo partial; exit 3"}, &stdout)
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, 3, res.ExitCode)

	var exitErr *osexec.ExitError
	assert.True(t, errors.As(res.Err, &exitErr), "Err = %v, want *exec.ExitError", res.Err)
	assert.Equal(t, "partial\n", stdout.String())
}

func TestRealRunner_Signaled(t *testing.T) {
	r := &RealRunner{Stdin: strings.NewReader(""), Stderr: &bytes.Buffer{}}

	res, err := r.Run("sh", []string{"-c", "kill -9 $$"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, -1, res.ExitCode)
}

func TestRealRunner_MissingBinary(t *testing.T) {
	r := &RealRunner{}

	_, err := r.Run("./nonexistent-interpreter-xyz-12345", []string{"app.py"}, &bytes.Buffer{})
	var startErr *StartError
	require.True(t, errors.As(err, &startErr), "err = %v, want *StartError", err)
	assert.Equal(t, "./nonexistent-interpreter-xyz-12345", startErr.Name)
}

func TestRealRunner_StartFuncError(t *testing.T) {
	originalStartFunc := startFunc
	defer func() { startFunc = originalStartFunc }()

	expectedErr := errors.New("resource temporarily unavailable")
	startFunc = func(cmd *osexec.Cmd) error {
		return expectedErr
	}

	r := &RealRunner{}
	_, err := r.Run("sh", []string{"-c", "true"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, expectedErr)
}

func TestRealRunner_StdoutWriteFailureStillWaits(t *testing.T) {
	r := &RealRunner{Stdin: strings.NewReader(""), Stderr: &bytes.Buffer{}}

	// The child writes more than a pipe buffer after the first failed write.
	res, err := r.Run("sh", []string{"-c", "echo first; head -c 200000 /dev/zero"}, failingWriter{})
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, 0, res.ExitCode)
	assert.ErrorContains(t, res.Err, "relay output")
}
