package compose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	fields := map[string]string{
		"name":         "part.gco",
		"time":         "1:02:03",
		"printer_name": "Shop Printer",
	}

	got, err := Render("{printer_name} job complete: {name} done printing after {time}", fields)
	require.NoError(t, err)
	assert.Equal(t, "Shop Printer job complete: part.gco done printing after 1:02:03", got)
}

func TestRender_Deterministic(t *testing.T) {
	fields := map[string]string{"filename": "benchy.gcode", "printer_name": "P1"}
	template := "{printer_name}: {filename} finished"

	first, err := Render(template, fields)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Render(template, fields)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_MissingField(t *testing.T) {
	got, err := Render("{printer_name} done after {elapsed_time}", map[string]string{
		"printer_name": "Shop Printer",
	})

	require.Error(t, err)
	assert.Empty(t, got, "no partial string on error")

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "elapsed_time", missing.Field)
}

func TestRender_NoPlaceholders(t *testing.T) {
	got, err := Render("print finished", nil)
	require.NoError(t, err)
	assert.Equal(t, "print finished", got)
}

func TestRender_RepeatedPlaceholder(t *testing.T) {
	got, err := Render("{name} {name}", map[string]string{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, "x x", got)
}
