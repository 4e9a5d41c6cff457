package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/campos-estilistas/salon-sdk/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type DatabaseOptions struct {
	Opts     string `env:"-"`
	Name     string `env:"DB_NAME" envDefault:"salon"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

type ImportOptions struct {
	// Source artifacts exported from the previous booking system.
	LedgerPath string `env:"LEDGER_PATH" envDefault:"extra_data/clientes.csv"`
	RosterPath string `env:"ROSTER_PATH" envDefault:"extra_data/profesionales.json"`

	// BatchSize only controls progress-report granularity; batches carry no
	// transactional meaning.
	BatchSize   int    `env:"IMPORT_BATCH_SIZE" envDefault:"50"`
	EmailDomain string `env:"IMPORT_EMAIL_DOMAIN" envDefault:"camposestilistas.com"`

	// RoleOverrides maps "first last" (lowercase) to a role name, e.g.
	// "maximo movsovich=manager;jane doe=admin". Everyone else gets staff.
	RoleOverrides string `env:"IMPORT_ROLE_OVERRIDES" envDefault:"maximo movsovich=manager"`

	// ErrorCap bounds how many error details the run summary prints. The
	// error counter itself is never capped.
	ErrorCap int `env:"IMPORT_ERROR_CAP" envDefault:"10"`
}

func (i *ImportOptions) Validate() error {
	if i.BatchSize <= 0 {
		return fmt.Errorf("IMPORT_BATCH_SIZE must be positive, got %d", i.BatchSize)
	}
	if i.ErrorCap < 0 {
		return fmt.Errorf("IMPORT_ERROR_CAP must be non-negative, got %d", i.ErrorCap)
	}
	if strings.TrimSpace(i.EmailDomain) == "" {
		return fmt.Errorf("IMPORT_EMAIL_DOMAIN must not be empty")
	}
	if _, err := ParseRoleOverrides(i.RoleOverrides); err != nil {
		return fmt.Errorf("IMPORT_ROLE_OVERRIDES: %w", err)
	}
	return nil
}

// ParseRoleOverrides parses a "first last=role;first last=role" mapping.
// Names are lowercased and whitespace-collapsed; role names are validated
// against the known set.
func ParseRoleOverrides(raw string) (map[string]string, error) {
	overrides := make(map[string]string)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, role, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid entry %q (expected \"first last=role\")", pair)
		}
		name = strings.ToLower(strings.Join(strings.Fields(name), " "))
		role = strings.ToLower(strings.TrimSpace(role))
		if name == "" {
			return nil, fmt.Errorf("invalid entry %q: empty name", pair)
		}
		switch role {
		case "admin", "manager", "staff":
		default:
			return nil, fmt.Errorf("invalid entry %q: unknown role %q", pair, role)
		}
		overrides[name] = role
	}
	return overrides, nil
}

type Configuration struct {
	Database DatabaseOptions
	Import   ImportOptions

	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath          string `env:"LOG_PATH" envDefault:"./logs/import.log"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.Import.Validate(); err != nil {
		return fmt.Errorf("import configuration error: %w", err)
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	c.Database.Opts = c.Database.ConnectionString()
	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
