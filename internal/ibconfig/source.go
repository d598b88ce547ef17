package ibconfig

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/source_generated.go -package ibconfigmocks Source

// DefaultConfigFile is the configuration shipped with the package.
const DefaultConfigFile = "ib_config_futures.csv"

//go:embed ib_config_futures.csv
var defaultFS embed.FS

// Source provides the raw CSV configuration.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// DefaultSource reads the configuration embedded into the package.
func DefaultSource() Source {
	return FSSource(defaultFS, DefaultConfigFile)
}

func FSSource(fsys fs.FS, name string) Source {
	return fsSource{fsys: fsys, name: name}
}

func FileSource(path string) Source {
	return fileSource(path)
}

type fsSource struct {
	fsys fs.FS
	name string
}

func (s fsSource) Name() string                 { return s.name }
func (s fsSource) Open() (io.ReadCloser, error) { return s.fsys.Open(s.name) }

type fileSource string

func (s fileSource) Name() string { return string(s) }

func (s fileSource) Open() (io.ReadCloser, error) {
	return os.Open(string(s)) //nolint:gosec
}

// Load reads the configuration from the source.
// Any failure is logged and results in MissingConfig, Load never fails.
func Load(src Source, logger zerolog.Logger) *Config {
	cfg, err := load(src)
	if err != nil {
		configLoads.With(l{"result": loadResultMissing}).Inc()
		logger.Warn().Err(err).Msgf("Can't read file %s", src.Name())
		return MissingConfig()
	}

	configLoads.With(l{"result": loadResultOK}).Inc()
	logger.Debug().Str("file", src.Name()).Int("rows", cfg.Len()).Msg("IB configuration loaded")
	return cfg
}

func load(src Source) (*Config, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %v", err)
	}
	defer rc.Close()

	return Parse(rc)
}
