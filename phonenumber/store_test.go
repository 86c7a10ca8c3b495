package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telekit/phonenumber/internal/metadata"
)

func TestLoadMetadataAcceptsExportedCorpus(t *testing.T) {
	data, err := metadata.Export(metadata.Default())
	require.NoError(t, err)

	require.NoError(t, LoadMetadata(data))
	t.Cleanup(func() { loadedStore.Store(nil) })

	n, err := Parse("CH", "044 668 18 00")
	require.NoError(t, err)
	assert.Equal(t, 41, n.CountryCode)
}

func TestLoadMetadataRejectsCorruptBytes(t *testing.T) {
	err := LoadMetadata([]byte("not a gob stream"))
	require.Error(t, err)

	var metaErr *MetadataError
	require.ErrorAs(t, err, &metaErr)
	assert.Equal(t, CorruptMetadata, metaErr.Kind)
}
