package go_sball

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Logger_Structured(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tree, err := New([]Point{{Lon: 0, Lat: 0}, {Lon: 10, Lat: 0}}, WithLogger(logger), WithLeafSize(1))
	require.NoError(t, err)

	_, err = tree.Query(context.Background(), []Point{{Lon: 1, Lat: 1}}, WithK(2), WithWorkers(2))
	require.NoError(t, err)

	_, err = tree.Query(context.Background(), []Point{{Lon: 1, Lat: 1}}, WithK(3))
	require.Error(t, err)

	logOutput := buf.String()
	require.Contains(t, logOutput, `"msg":"building tree"`)
	require.Contains(t, logOutput, `"nodes":3`)
	require.Contains(t, logOutput, `"msg":"searching data"`)
	require.Contains(t, logOutput, `"workers":2`)
	require.Contains(t, logOutput, `"msg":"searching data failed"`)
	require.Contains(t, logOutput, `"k":3`)
}

func Test_Logger_Noop(t *testing.T) {
	tree, err := New([]Point{{Lon: 0, Lat: 0}}, WithLogger(nil))
	require.NoError(t, err)
	require.NotNil(t, tree.logger)
	require.False(t, tree.logger.Enabled(context.Background(), slog.LevelError))
}
