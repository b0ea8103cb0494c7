// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvVar selects an alternate set of files, e.g. WELLNESS_ENV=dev.
const EnvVar = "WELLNESS_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string

	configFilePath string
	dbFilePath     string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// New computes the application paths for env. An empty env selects the
// default file names. Missing parent directories are created.
func New(env string) (*Paths, error) {
	p := &Paths{
		configDir:      "wellness",
		configFileName: "config.yml",
		dbFileName:     "wellness.db",
		logFileName:    "wellness.log",
	}

	if env = strings.TrimSpace(env); env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("wellness_%s.db", env)
		p.logFileName = fmt.Sprintf("wellness_%s.log", env)
	}

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths, initErr = New(os.Getenv(EnvVar))
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) ConfigFilePath() string {
	return p.configFilePath
}

func (p *Paths) DBFilePath() string {
	return p.dbFilePath
}

func (p *Paths) LogFilePath() string {
	return p.logFilePath
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.configDir, p.configFileName))
	if err != nil {
		return err
	}

	p.dbFilePath, err = xdg.DataFile(filepath.Join(p.configDir, p.dbFileName))
	if err != nil {
		return err
	}

	p.logFilePath, err = xdg.DataFile(filepath.Join(p.configDir, "log", p.logFileName))
	if err != nil {
		return err
	}

	return nil
}
