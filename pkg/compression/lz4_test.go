//go:build !nolz4

package compression

import (
	"bytes"
	"os"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_LZ4(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "open_lz4_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err = w.Write([]byte(openTestPayload))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := writeTempFile(t, tmpDir, "data.fa.lz4", buf.Bytes())

	kind, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, LZ4, kind)

	assert.True(t, Default().Available(LZ4))
	assert.Equal(t, openTestPayload, readAllAndClose(t, path))
}
