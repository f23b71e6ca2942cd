package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"legacy-gateway/internal/config"
)

// New builds the logger an embedding service injects into the gateway.
// Logging is a collaborator rather than process-global state, so multiple
// gateway instances in tests neither interleave output nor share
// configuration. The returned closer is non-nil only when a file sink is
// configured.
func New(cfg config.LogConfig) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var sink io.Writer = os.Stdout
	if cfg.Pretty {
		sink = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	var closer io.Closer
	if cfg.File != "" {
		fw, err := newSizeLimitedWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		sink = io.MultiWriter(sink, fw)
		closer = fw
	}

	logger := zerolog.New(sink).Level(level).With().Timestamp().Logger()
	if cfg.SampleEvery > 1 {
		logger = logger.Sample(&zerolog.BasicSampler{N: uint32(cfg.SampleEvery)})
	}
	return logger, closer, nil
}
