package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signordemola/belize-app/internal/utils/pagination"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	date := time.Date(2026, 8, 31, 12, 30, 45, 123456789, time.UTC).Format(pagination.TimeFormat)
	id := "b2f5c8a1-9d3e-4f6a-8b7c-1e2d3f4a5b6c"

	token := pagination.EncodeMultiFieldToken(date, id)
	require.NotEmpty(t, token)

	fields, err := pagination.DecodeMultiFieldToken(token)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, date, fields[0])
	assert.Equal(t, id, fields[1])
}

func TestDecodeMultiFieldToken_InvalidBase64(t *testing.T) {
	_, err := pagination.DecodeMultiFieldToken("not-valid-base64!!!")
	assert.Error(t, err)
}

func TestEncodeMultiFieldToken_SingleField(t *testing.T) {
	token := pagination.EncodeMultiFieldToken("only")
	fields, err := pagination.DecodeMultiFieldToken(token)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "only", fields[0])
}
