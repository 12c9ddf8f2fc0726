package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalPrice(t *testing.T) {
	discount := 25.0
	zero := 0.0

	assert.Equal(t, 100.0, Product{Price: 100}.FinalPrice())
	assert.Equal(t, 75.0, Product{Price: 100, Discount: &discount}.FinalPrice())
	assert.Equal(t, 100.0, Product{Price: 100, Discount: &zero}.FinalPrice())
}

func TestUUIDList_Contains(t *testing.T) {
	a := uuid.Must(uuid.NewV7())
	b := uuid.Must(uuid.NewV7())
	list := UUIDList{a}

	assert.True(t, list.Contains(a))
	assert.False(t, list.Contains(b))
	assert.False(t, UUIDList(nil).Contains(a))
}

func TestUUIDList_ScanRoundTrip(t *testing.T) {
	original := UUIDList{uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7())}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned UUIDList
	require.NoError(t, scanned.Scan(value.([]byte)))
	assert.Equal(t, original, scanned)
}

func TestUUIDList_ScanNil(t *testing.T) {
	var list UUIDList
	require.NoError(t, list.Scan(nil))
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
