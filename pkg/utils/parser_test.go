package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fext/pkg/network"
)

// writeTemp writes a BLIF snippet to a temp file and returns its path
func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.blif")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleBlif = `# A small two-level network
.model sample
.inputs a b c
.outputs f
.names a b x
11 1
.names x c f
11 1
0- 1
.end
`

func TestParseBlifFile(t *testing.T) {
	ntk, err := ParseBlifFile(writeTemp(t, sampleBlif))
	require.NoError(t, err)

	assert.Equal(t, "sample", ntk.Name)
	assert.Len(t, ntk.PIs, 3)
	assert.Len(t, ntk.POs, 1)
	assert.Equal(t, 2, ntk.NodeNum())

	// Identifiers: PIs first, then logic nodes in order of appearance, then POs
	x := ntk.Obj(3)
	require.NotNil(t, x)
	assert.Equal(t, "x", x.Name)
	assert.Equal(t, []int{0, 1}, x.FaninIDs())
	assert.Equal(t, "11", x.Cover.String())

	f := ntk.Obj(4)
	require.NotNil(t, f)
	assert.Equal(t, "f", f.Name)
	assert.Equal(t, []int{3, 2}, f.FaninIDs())
	assert.Equal(t, "11\n0-", f.Cover.String())

	assert.NoError(t, ntk.Check())
}

func TestParseBlifContinuation(t *testing.T) {
	content := ".model cont\n.inputs a \\\nb\n.outputs f\n.names a b f\n11 1\n.end\n"
	ntk, err := ParseBlifFile(writeTemp(t, content))
	require.NoError(t, err)
	assert.Len(t, ntk.PIs, 2)
}

func TestParseBlifConstantNode(t *testing.T) {
	content := ".model konst\n.outputs f\n.names f\n1\n.end\n"
	ntk, err := ParseBlifFile(writeTemp(t, content))
	require.NoError(t, err)

	f := ntk.Obj(0)
	require.NotNil(t, f)
	assert.Equal(t, 0, f.FaninNum())
	assert.Equal(t, 1, f.Cover.CubeNum())
}

func TestParseBlifErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"undriven fanin", ".model m\n.outputs f\n.names a f\n1 1\n.end\n"},
		{"undriven output", ".model m\n.inputs a\n.outputs g\n.names a f\n1 1\n.end\n"},
		{"off-set row", ".model m\n.inputs a\n.outputs f\n.names a f\n1 0\n.end\n"},
		{"driven twice", ".model m\n.inputs a\n.outputs f\n.names a f\n1 1\n.names a f\n0 1\n.end\n"},
		{"unsupported directive", ".model m\n.latch a b\n.end\n"},
		{"row outside block", ".model m\n11 1\n.end\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBlifFile(writeTemp(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestBlifRoundTrip(t *testing.T) {
	ntk, err := ParseBlifFile(writeTemp(t, sampleBlif))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.blif")
	require.NoError(t, WriteBlifFile(out, ntk))

	back, err := ParseBlifFile(out)
	require.NoError(t, err)

	assert.Equal(t, ntk.Name, back.Name)
	assert.Equal(t, ntk.NodeNum(), back.NodeNum())
	assert.Equal(t, ntk.LitNum(), back.LitNum())
	assert.Len(t, back.PIs, len(ntk.PIs))
	assert.Len(t, back.POs, len(ntk.POs))

	ntk.ForEachNode(func(node *network.Node) {
		var match *network.Node
		back.ForEachNode(func(cand *network.Node) {
			if cand.Name == node.Name {
				match = cand
			}
		})
		require.NotNil(t, match, "node %s survives the round trip", node.Name)
		assert.Equal(t, node.Cover.String(), match.Cover.String())
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(false)
	require.NoError(t, err)
	require.NotNil(t, logger)

	verbose, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(-1), "verbose logger must enable debug")
}
