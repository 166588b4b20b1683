package maincmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/joeycumines/floatkey"
	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (mainer.ExitCode, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}
	c := Cmd{BuildVersion: `1.2.3`, BuildDate: `2026-10-14`}
	code := c.Main(append([]string{binName}, args...), stdio)
	return code, stdout.String(), stderr.String()
}

func TestCmd_Main_help(t *testing.T) {
	code, stdout, stderr := run(t, ``, `--help`)
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, longUsage, stdout)
	assert.Empty(t, stderr)
}

func TestCmd_Main_version(t *testing.T) {
	code, stdout, _ := run(t, ``, `-v`)
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, "floatkey 1.2.3 2026-10-14\n", stdout)
}

func TestCmd_Main_invalidArgs(t *testing.T) {
	for _, tc := range [...]struct {
		name string
		args []string
		want string
	}{
		{`no command`, nil, `no command specified`},
		{`unknown command`, []string{`sort`}, `unknown command: sort`},
		{`compare one literal`, []string{`compare`, `1`}, `compare: exactly two literals must be provided`},
		{`compare three literals`, []string{`compare`, `1`, `2`, `3`}, `compare: exactly two literals must be provided`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := run(t, ``, tc.args...)
			assert.Equal(t, mainer.InvalidArgs, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tc.want)
			assert.Contains(t, stderr, shortUsage)
		})
	}
}

func TestCmd_Inspect_args(t *testing.T) {
	code, stdout, stderr := run(t, ``, `inspect`, `1`, `inf`, `nan`, `0.5`)
	require.Equal(t, mainer.Success, code, stderr)
	assert.Equal(t, "Finite\t1\t{\"Value\":1}\tbff0000000000000\n"+
		"PositiveInfinity\tinf\t\"PlusInf\"\tfff0000000000000\n"+
		"NaN\tNaN\t\"Nan\"\tffffffffffffffff\n"+
		"Finite\t0.5\t{\"Value\":0.5}\tbfe0000000000000\n", stdout)
	assert.Empty(t, stderr)
}

func TestCmd_Inspect_stdin(t *testing.T) {
	code, stdout, stderr := run(t, "-inf\n\n  -0  \n1e400\n", `inspect`)
	require.Equal(t, mainer.Success, code, stderr)
	assert.Equal(t, "NegativeInfinity\t-inf\t\"MinusInf\"\t000fffffffffffff\n"+
		"Finite\t-0\t{\"Value\":-0}\t8000000000000000\n"+
		"PositiveInfinity\tinf\t\"PlusInf\"\tfff0000000000000\n", stdout)
	assert.Empty(t, stderr)
}

func TestCmd_Inspect_invalid(t *testing.T) {
	code, stdout, stderr := run(t, "2\nnot-a-number-text\n3\n", `inspect`)
	assert.Equal(t, mainer.Failure, code)
	assert.Equal(t, "Finite\t2\t{\"Value\":2}\tc000000000000000\n"+
		"Finite\t3\t{\"Value\":3}\tc008000000000000\n", stdout)
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"lvl":"err"`)
	assert.Contains(t, lines[0], `"input":"not-a-number-text"`)
	assert.Contains(t, lines[0], `"msg":"invalid literal"`)
	assert.Contains(t, lines[1], `"err":"inspect: 1 invalid literal(s)"`)
}

func TestCmd_Inspect_verbose(t *testing.T) {
	code, stdout, stderr := run(t, ``, `--verbose`, `inspect`, `NaN`)
	require.Equal(t, mainer.Success, code, stderr)
	assert.Equal(t, "NaN\tNaN\t\"Nan\"\tffffffffffffffff\n", stdout)
	assert.Contains(t, stderr, `"lvl":"debug"`)
	assert.Contains(t, stderr, `"kind":"NaN"`)
	assert.Contains(t, stderr, `"msg":"parsed literal"`)
}

func TestCmd_Compare(t *testing.T) {
	for _, tc := range [...]struct {
		a, b string
		want string
	}{
		{`1`, `2`, "-1\n"},
		{`2`, `1`, "1\n"},
		{`0`, `0.0`, "0\n"},
		{`inf`, `nan`, "-1\n"},
		{`NaN`, `nan`, "0\n"},
		{`nan`, `1e308`, "1\n"},
		{`infinity`, `1e400`, "0\n"},
	} {
		t.Run(tc.a+` `+tc.b, func(t *testing.T) {
			code, stdout, stderr := run(t, ``, `compare`, tc.a, tc.b)
			require.Equal(t, mainer.Success, code, stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestCmd_Compare_invalid(t *testing.T) {
	code, stdout, stderr := run(t, ``, `compare`, `1`, `x`)
	assert.Equal(t, mainer.Failure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `"input":"x"`)
	assert.Contains(t, stderr, `floatkey: invalid float literal`)
}

func TestCmd_Inspect_jsonColumn(t *testing.T) {
	literals := []string{`0`, `1e21`, `1e-9`, `inf`, `-inf`, `nan`, `123.456`}
	code, stdout, stderr := run(t, strings.Join(literals, "\n"), `inspect`)
	require.Equal(t, mainer.Success, code, stderr)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, len(literals))
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 4, line)
		want, err := json.Marshal(floatkey.MustParse(literals[i]))
		require.NoError(t, err)
		assert.Equal(t, string(want), fields[2], literals[i])
	}
}
