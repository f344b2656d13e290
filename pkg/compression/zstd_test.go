//go:build !nozstd

package compression

import (
	"bytes"
	"os"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Zstandard(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "open_zstd_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(openTestPayload))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	path := writeTempFile(t, tmpDir, "data.fa.zst", buf.Bytes())

	kind, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, Zstandard, kind)

	assert.True(t, Default().Available(Zstandard))
	assert.Equal(t, openTestPayload, readAllAndClose(t, path))
}
