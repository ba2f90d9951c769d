package typeface

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/glowtext/internal/logger"
)

// BuiltinGoRegular selects the Go Regular font shipped with x/image.
const BuiltinGoRegular = "builtin:goregular"

// maxFontBytes bounds how much of a remote font is read.
const maxFontBytes = 32 << 20

// Result is the outcome of one asynchronous font load.
type Result struct {
	Source  string
	Font    Font
	Err     error
	Elapsed time.Duration
}

// Loader fetches and decodes fonts from URLs, files, or the builtin font.
type Loader struct {
	client *http.Client
	log    *zap.Logger
}

// NewLoader creates a loader. timeout bounds each HTTP request; zero means none.
func NewLoader(timeout time.Duration) *Loader {
	return &Loader{
		client: &http.Client{Timeout: timeout},
		log:    logger.Named("typeface"),
	}
}

// Load starts fetching source in the background. Exactly one Result is sent
// on the returned channel, which is buffered so the goroutine never blocks
// when nobody reads it.
func (l *Loader) Load(ctx context.Context, source string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		start := time.Now()
		f, err := l.Fetch(ctx, source)
		ch <- Result{Source: source, Font: f, Err: err, Elapsed: time.Since(start)}
	}()
	return ch
}

// Fetch loads source synchronously.
func (l *Loader) Fetch(ctx context.Context, source string) (Font, error) {
	if source == BuiltinGoRegular {
		return GoRegular()
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = l.download(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("reading font %s: %w", source, err)
	}

	l.log.Debug("font data read", zap.String("source", source), zap.Int("bytes", len(data)))
	return Decode(source, data)
}

func (l *Loader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFontBytes))
}

// Decode picks the format from the file extension, falling back to sniffing
// for a JSON object.
func Decode(name string, data []byte) (Font, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return ParseJSON(data)
	case ".ttf", ".otf":
		return ParseOpenType(name, data)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return ParseJSON(data)
	}
	return ParseOpenType(name, data)
}
