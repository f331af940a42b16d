package diag_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spiderweb/bridges"
	"github.com/katalvlaran/spiderweb/diag"
	"github.com/katalvlaran/spiderweb/web"
)

// the sinks must satisfy web.Diagnostics
var (
	_ web.Diagnostics = (*diag.Logger)(nil)
	_ web.Diagnostics = (*diag.Writer)(nil)
	_ web.Diagnostics = (*diag.Recorder)(nil)
	_ web.Diagnostics = diag.Discard{}
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	d := diag.NewLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	d.ReportError("Invalid strand", "strand 9 not in [0,5)")
	d.ReportInfo("Spider", "respawned")
	d.ReportFatal("bad input")

	out := buf.String()
	assert.Contains(t, out, `level=ERROR msg="strand 9 not in [0,5)" title="Invalid strand"`)
	assert.Contains(t, out, `level=INFO msg=respawned title=Spider`)
	assert.Contains(t, out, `msg="bad input" fatal=true`)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	d := diag.NewWriter(&buf)
	d.ReportError("Bridge in conflict", "0-20")
	d.ReportFatal("no strands")
	assert.Equal(t, "[error] Bridge in conflict: 0-20\n[fatal] no strands\n", buf.String())
}

func TestRecorder_WithWeb(t *testing.T) {
	rec := &diag.Recorder{}
	w, err := web.New(5, 100, web.WithDiagnostics(rec), web.WithVisible(true))
	require.NoError(t, err)

	require.Error(t, w.AddBridge("a", 10, 9, bridges.Normal))
	w.RespawnAgent()

	reports := rec.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, diag.LevelError, reports[0].Level)
	assert.Equal(t, "Invalid strand", reports[0].Title)
	assert.Equal(t, diag.Report{Level: diag.LevelInfo, Title: "Spider", Message: "The spider has been respawned"}, reports[1])

	_, err = web.FromSpecs(0, web.NoFavorite, nil, web.WithDiagnostics(rec))
	require.Error(t, err)
	assert.Len(t, rec.Filter(diag.LevelFatal), 1)

	rec.Reset()
	assert.Empty(t, rec.Reports())
}
