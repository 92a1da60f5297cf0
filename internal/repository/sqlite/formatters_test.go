package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateForDB(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "2024-03-09", FormatDateForDB(time.Date(2024, 3, 9, 23, 59, 0, 0, loc)))
}

func TestFormatDatePtrForDB(t *testing.T) {
	assert.Nil(t, FormatDatePtrForDB(nil))

	d := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-31", FormatDatePtrForDB(&d))
}

func TestParseDateFromDB(t *testing.T) {
	got, err := ParseDateFromDB("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDateFromDB("31/01/2024")
	assert.Error(t, err)
}

func TestTimeRoundTrip(t *testing.T) {
	original := time.Date(2024, 6, 23, 11, 47, 24, 0, time.UTC)

	parsed, err := ParseTimeFromDB(FormatTimeForDB(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}
