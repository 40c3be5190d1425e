package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeyFromURL(t *testing.T) {
	const (
		host   = "minio.local:9000"
		bucket = "portal-juridico"
	)

	key, err := objectKeyFromURL(host, bucket, "http://minio.local:9000/portal-juridico/uploads/abc123.png")
	require.NoError(t, err)
	assert.Equal(t, "uploads/abc123.png", key)

	tests := []struct {
		name string
		url  string
	}{
		{name: "WrongHost", url: "http://cdn.example.test/portal-juridico/uploads/abc123.png"},
		{name: "WrongBucket", url: "http://minio.local:9000/other-bucket/uploads/abc123.png"},
		{name: "BucketOnly", url: "http://minio.local:9000/portal-juridico/"},
		{name: "NoPath", url: "http://minio.local:9000"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := objectKeyFromURL(host, bucket, test.url)
			assert.ErrorIs(t, err, ErrForeignURL)
		})
	}
}
