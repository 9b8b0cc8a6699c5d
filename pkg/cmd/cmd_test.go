// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		args     []string
		expected string
	}{
		{[]string{"100", "+", "20"}, "19"},
		{[]string{"10", "-", "20"}, "91"},
		{[]string{"10", "*", "20"}, "99"},
		{[]string{"50", "add", "60"}, "9"},
		{[]string{"99", "/", "20"}, "10"},
		{[]string{"2", "^", "3"}, "8"},
		// Exponents are not reduced modulo p
		{[]string{"2", "^", "101"}, "2"},
		{[]string{"2", "pow", "0x65"}, "2"},
		{[]string{"3", "^", "200"}, "1"},
		{[]string{"0x10", "+", "1"}, "17"},
		{[]string{"--", "-1", "+", "0"}, "100"},
	}
	//
	for _, tt := range tests {
		out, err := run(t, append([]string{"eval"}, tt.args...)...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.expected, out, tt.args)
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "eval", "1", "/", "0")
	assert.ErrorIs(t, err, ErrDivisionByZero)
	// 101 reduces to zero
	_, err = run(t, "eval", "1", "/", "101")
	assert.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = run(t, "eval", "1", "%", "2")
	assert.ErrorContains(t, err, "unknown operator")
	//
	_, err = run(t, "eval", "one", "+", "2")
	assert.ErrorContains(t, err, "invalid field element")
	//
	_, err = run(t, "--field", "GF_7", "eval", "1", "+", "2")
	assert.ErrorContains(t, err, "unknown field")
	//
	_, err = run(t, "eval", "--", "2", "^", "-1")
	assert.ErrorContains(t, err, "invalid exponent")
	//
	_, err = run(t, "--base", "63", "eval", "1", "+", "2")
	assert.ErrorContains(t, err, "invalid base")
}

func TestEvalBase(t *testing.T) {
	out, err := run(t, "--base", "16", "eval", "10", "*", "10")
	require.NoError(t, err)
	assert.Equal(t, "64", out)
	// Bases beyond 36 use upper case digits after 'z'
	out, err = run(t, "--base", "40", "eval", "1", "+", "2")
	require.NoError(t, err)
	assert.Equal(t, "3", out)
	// 100 = 1*62 + 38
	out, err = run(t, "--base", "62", "eval", "10", "*", "10")
	require.NoError(t, err)
	assert.Equal(t, "1C", out)
	//
	out, err = run(t, "--base", "62", "--field", "KOALABEAR_16", "eval", "10", "*", "10")
	require.NoError(t, err)
	assert.Equal(t, "1C", out)
	//
	out, err = run(t, "--base", "62", "inv", "10")
	require.NoError(t, err)
	assert.Equal(t, "1t", out) // 91 = 1*62 + 29
}

func TestEvalOtherFields(t *testing.T) {
	out, err := run(t, "--field", "KOALABEAR_16", "eval", "2130706432", "+", "2")
	require.NoError(t, err)
	assert.Equal(t, "1", out)
	//
	out, err = run(t, "--field", "BLS12_377", "eval", "3", "*", "4")
	require.NoError(t, err)
	assert.Equal(t, "12", out)
}

func TestInverse(t *testing.T) {
	out, err := run(t, "inv", "10")
	require.NoError(t, err)
	assert.Equal(t, "91", out) // 10 * 91 = 910 = 9*101 + 1
	//
	_, err = run(t, "inv", "0")
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPow(t *testing.T) {
	out, err := run(t, "pow", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "8", out)
	//
	out, err = run(t, "pow", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "1", out)
	//
	out, err = run(t, "pow", "42", "100")
	require.NoError(t, err)
	assert.Equal(t, "1", out)
	//
	_, err = run(t, "pow", "2", "-3")
	assert.Error(t, err)
}

func TestOrder(t *testing.T) {
	out, err := run(t, "order", "2")
	require.NoError(t, err)
	assert.Equal(t, "100", out)
	//
	out, err = run(t, "order", "100")
	require.NoError(t, err)
	assert.Equal(t, "2", out)
	//
	_, err = run(t, "order", "0")
	assert.Error(t, err)
	//
	_, err = run(t, "order", "--limit", "10", "2")
	assert.ErrorContains(t, err, "exceeds 10")
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "field:     GF_101")
	assert.Contains(t, out, "modulus:   101")
	assert.Contains(t, out, "generator: 2")
	//
	out, err = run(t, "--field", "BLS12_377", "info")
	require.NoError(t, err)
	assert.NotContains(t, out, "generator")
}

func TestTable(t *testing.T) {
	out, err := run(t, "table", "--op", "+", "--size", "3")
	require.NoError(t, err)
	//
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, " + | 0 1 2", lines[0])
	assert.Equal(t, "----------", lines[1])
	assert.Equal(t, " 0 | 0 1 2", lines[2])
	assert.Equal(t, " 2 | 2 3 4", lines[4])
}

func TestTableBlocks(t *testing.T) {
	out, err := run(t, "table", "--width", "40")
	require.NoError(t, err)
	// Every row of every block fits
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 40)
	}
	// The whole table is printed
	assert.Contains(t, out, " 99 | ")
}

func TestTableBase(t *testing.T) {
	out, err := run(t, "--base", "16", "table", "--size", "12")
	require.NoError(t, err)
	// 11 * 11 = 121 = 20 (mod 101)
	assert.Contains(t, out, "\n b |")
	assert.True(t, strings.HasSuffix(out, " 14"))
	// Labels and entries agree on bases beyond 36
	out, err = run(t, "--base", "62", "table", "--size", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "\n b |")
	assert.True(t, strings.HasSuffix(out, " k"))
	// All of GF(101) in base 40, where 99 = 2*40 + 19
	out, err = run(t, "--base", "40", "table", "--op", "+", "--width", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "\n 2j |")
}

func TestTableJSON(t *testing.T) {
	out, err := run(t, "table", "--op", "/", "--size", "4", "--json")
	require.NoError(t, err)
	//
	var table [][]*uint64
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	require.Len(t, table, 4)
	// Division by zero is undefined
	assert.Nil(t, table[1][0])
	// 3 / 2 = 3 * 51 = 153 = 52
	require.NotNil(t, table[3][2])
	assert.Equal(t, uint64(52), *table[3][2])
}

func TestTableTooLarge(t *testing.T) {
	_, err := run(t, "--field", "BLS12_377", "table")
	assert.ErrorContains(t, err, "too large")
}

// Execute the root command with the given arguments, returning its (trimmed)
// output.  Flags are reset beforehand, since commands are shared globals.
func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	//
	t.Helper()
	resetFlags(rootCmd)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	//
	err := rootCmd.Execute()
	//
	return strings.TrimRight(out.String(), "\n"), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	//
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	//
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
