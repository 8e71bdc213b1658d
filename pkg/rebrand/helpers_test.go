package rebrand_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rebrand/pkg/log"
	"github.com/walteh/rebrand/pkg/text"
)

// 🧪 writeTree creates files under root from a path -> content map
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// 🧪 testContext returns a context carrying a console logger that writes to
// the returned buffer, with colors disabled
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	zlog := zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
	buf := &bytes.Buffer{}
	ctx := zlog.WithContext(context.Background())
	ctx = log.NewContext(ctx, log.New(buf, zlog))
	return ctx, buf
}

// 🧪 removingReplacer deletes target right after reading it, so rewriting
// that one file fails even when the tests run as root
type removingReplacer struct {
	text.SimpleTextReplacer
	target string
}

func (r *removingReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []text.ReplacementRule) (*text.ReplacementResult, error) {
	result, err := r.SimpleTextReplacer.ReplaceText(ctx, content, rules)
	if err != nil {
		return nil, err
	}
	if f, ok := content.(*os.File); ok && f.Name() == r.target {
		if err := os.Remove(f.Name()); err != nil {
			return nil, err
		}
	}
	return result, nil
}
