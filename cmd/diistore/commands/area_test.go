package commands

import (
	"bytes"
	"errors"
	"testing"

	"diistore/internal/area"
	"diistore/internal/dashboard"
	"diistore/internal/upstream"

	"github.com/stretchr/testify/require"
)

var coverage = area.Dataset{
	{Province: "Jawa Barat", Regency: "Bandung", AreaLabel: "Zona A"},
	{Province: "Bali", Regency: "Denpasar", AreaLabel: "Zona C"},
}

func TestPrintAreaFetchFailure(t *testing.T) {
	var buf bytes.Buffer
	printArea(&buf, nil, upstream.Network("area_table", errors.New("connection refused")), "bali")
	require.Equal(t, dashboard.AreaEmptyMessage+"\n", buf.String())
}

func TestPrintAreaSuggestions(t *testing.T) {
	var buf bytes.Buffer
	printArea(&buf, coverage, nil, "jawa barta")
	require.Contains(t, buf.String(), dashboard.AreaEmptyMessage)
	require.Contains(t, buf.String(), "Mungkin maksud anda: Jawa Barat")
}

func TestPrintAreaRows(t *testing.T) {
	var buf bytes.Buffer
	printArea(&buf, coverage, nil, "")
	require.Contains(t, buf.String(), "Denpasar")
	require.Contains(t, buf.String(), "2 / 2")
	require.NotContains(t, buf.String(), dashboard.AreaEmptyMessage)
}
