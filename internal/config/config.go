package config

// Environment variables consumed by Load.
const (
	// EnvConfigFile names an optional YAML file layered over the defaults.
	EnvConfigFile = "PORTAL_CONFIG"
	// EnvApplicationMode selects the deployment-mode overlay.
	EnvApplicationMode = "APPLICATION_MODE"
)

// Deployment modes understood by Load. Unknown values fall back to
// ModeDevelopment.
const (
	ModeDevelopment = "DEVELOPMENT"
	ModeProduction  = "PRODUCTION"
	ModeStaging     = "STAGING"
	ModeTesting     = "TESTING"
)

// Config is the effective application configuration after all overlay
// sources have been applied. It is built once by Load and passed by
// reference to the components that need it.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Paths    PathsConfig    `yaml:"paths"`
	Database DatabaseConfig `yaml:"database"`
	Mail     MailConfig     `yaml:"mail"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Mode records which deployment-mode overlay was applied.
	Mode string `yaml:"-"`
}

// AppConfig holds application identity settings.
type AppConfig struct {
	Name    string `yaml:"name"`
	Debug   bool   `yaml:"debug"`
	Testing bool   `yaml:"testing"`
}

// ServerConfig holds HTTP listener settings. Timeouts are in seconds.
type ServerConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	ReadTimeout     int    `yaml:"read_timeout"`
	WriteTimeout    int    `yaml:"write_timeout"`
	ShutdownTimeout int    `yaml:"shutdown_timeout"`
}

// PathsConfig locates the static and template directories. NotebookSubdir
// is the subdirectory of TemplateDir holding exported notebook HTML files.
type PathsConfig struct {
	StaticDir      string `yaml:"static_dir"`
	TemplateDir    string `yaml:"template_dir"`
	NotebookSubdir string `yaml:"notebook_subdir"`
}

// DatabaseConfig holds the database extension settings. The pool is opened
// lazily; PingOnStart forces a connectivity check at startup.
type DatabaseConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Driver          string `yaml:"driver"`
	DSN             string `yaml:"dsn"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
	PingOnStart     bool   `yaml:"ping_on_start"`
}

// MailConfig holds the SMTP mail extension settings.
type MailConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Sender   string `yaml:"sender"`
}

// LoggingConfig controls the application logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}
