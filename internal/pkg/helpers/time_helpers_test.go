package helpers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hrmslite/internal/pkg/helpers"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := helpers.ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-03-01", helpers.FormatDate(d))

	_, err = helpers.ParseDate("01/03/2024")
	require.ErrorContains(t, err, "invalid date")
}

func TestParseOptionalDate(t *testing.T) {
	t.Parallel()

	d, err := helpers.ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = helpers.ParseOptionalDate("2024-01-05")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 5, d.Day())

	_, err = helpers.ParseOptionalDate("2024-13-01")
	require.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30*time.Minute, helpers.ParseDuration("30m", time.Hour))
	assert.Equal(t, time.Hour, helpers.ParseDuration("soon", time.Hour))
}
