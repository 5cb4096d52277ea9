package proc

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPath(t *testing.T, name string) string {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
	return path
}

func TestRunSuccess(t *testing.T) {
	p := New(lookPath(t, "true"), nil)
	assert.NoError(t, p.Run())
}

func TestRunExitStatus(t *testing.T) {
	sh := lookPath(t, "sh")
	p := New(sh, []string{"-c", "echo 'undefined reference to `foo'\\' >&2; exit 3"})
	err := p.Run()

	var ee *ExitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 3, ee.Code)
	assert.Equal(t, "undefined reference to `foo'", ee.Stderr)
	assert.Contains(t, err.Error(), "exit status 3")
}

func TestRunMissingProgram(t *testing.T) {
	p := New("ldrv-no-such-linker", nil)
	err := p.Run()
	require.Error(t, err)
	var ee *ExitError
	assert.False(t, errors.As(err, &ee))
}

func TestString(t *testing.T) {
	p := New("ld", []string{"-o", "a.out", "x.o"})
	assert.Equal(t, "ld -o a.out x.o", p.String())
}

func TestTail(t *testing.T) {
	tw := tail{max: 4}
	n, err := tw.Write([]byte("ab"))
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	tw.Write([]byte("cde"))
	assert.Equal(t, "bcde", tw.String())
	n, _ = tw.Write([]byte(strings.Repeat("x", 9) + "yz"))
	assert.Equal(t, 11, n)
	assert.Equal(t, "xxyz", tw.String())
}
