// Package testutil holds fixtures and helpers shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/rangeeval/internal/config"
)

// WriteConfig writes content to a file called name inside a fresh temporary
// directory and returns its path.
func WriteConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

// ExampleRecord is the logical record every entry in Fixtures encodes.
var ExampleRecord = config.NewRecord(0, 1, 3, 1.0, 2.0, 0.5)

// Fixtures holds ExampleRecord encoded in each supported format, keyed by
// the file name a test should write it to.
var Fixtures = map[string]string{
	"config.json": `{"n0":0,"h":1,"nk":3,"a":1.0,"b":2.0,"c":0.5}`,
	"config.yaml": "n0: 0\nh: 1\nnk: 3\na: 1.0\nb: 2.0\nc: 0.5\n",
	"config.xml": `<?xml version="1.0"?>
<config>
  <n0>0</n0>
  <h>1</h>
  <nk>3</nk>
  <a>1.0</a>
  <b>2.0</b>
  <c>0.5</c>
</config>
`,
	"config.csv": "n0,h,nk,a,b,c\n0,1,3,1.0,2.0,0.5\n",
	"config.txt": "n0=0 h=1 nk=3 a=1.0 b=2.0 c=0.5\n",
	"config.hcl": "n0 = 0\nh  = 1\nnk = 3\na  = 1.0\nb  = 2.0\nc  = 0.5\n",
}

// FixturesWithout returns Fixtures re-encoded with field removed from every
// document.
func FixturesWithout(field string) map[string]string {
	values := map[string]string{"n0": "0", "h": "1", "nk": "3", "a": "1.0", "b": "2.0", "c": "0.5"}
	return encodeAll(values, field)
}

// FixturesWithValue returns Fixtures re-encoded with field set to the raw
// literal value.
func FixturesWithValue(field, value string) map[string]string {
	values := map[string]string{"n0": "0", "h": "1", "nk": "3", "a": "1.0", "b": "2.0", "c": "0.5"}
	values[field] = value
	return encodeAll(values, "")
}
