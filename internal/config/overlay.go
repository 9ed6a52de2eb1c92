package config

// Overlay is a partial configuration source. Only fields that are set
// overwrite the accumulated value; assignment is shallow and per key, with
// no merging of nested structures. The caller-supplied source, the
// PORTAL_CONFIG file, and the deployment-mode objects are all overlays.
type Overlay struct {
	App      AppOverlay      `yaml:"app"`
	Server   ServerOverlay   `yaml:"server"`
	Paths    PathsOverlay    `yaml:"paths"`
	Database DatabaseOverlay `yaml:"database"`
	Mail     MailOverlay     `yaml:"mail"`
	Logging  LoggingOverlay  `yaml:"logging"`
}

type AppOverlay struct {
	Name    *string `yaml:"name"`
	Debug   *bool   `yaml:"debug"`
	Testing *bool   `yaml:"testing"`
}

type ServerOverlay struct {
	Host            *string `yaml:"host"`
	Port            *int    `yaml:"port"`
	ReadTimeout     *int    `yaml:"read_timeout"`
	WriteTimeout    *int    `yaml:"write_timeout"`
	ShutdownTimeout *int    `yaml:"shutdown_timeout"`
}

type PathsOverlay struct {
	StaticDir      *string `yaml:"static_dir"`
	TemplateDir    *string `yaml:"template_dir"`
	NotebookSubdir *string `yaml:"notebook_subdir"`
}

type DatabaseOverlay struct {
	Enabled         *bool   `yaml:"enabled"`
	Driver          *string `yaml:"driver"`
	DSN             *string `yaml:"dsn"`
	MaxOpenConns    *int    `yaml:"max_open_conns"`
	MaxIdleConns    *int    `yaml:"max_idle_conns"`
	ConnMaxLifetime *int    `yaml:"conn_max_lifetime"`
	PingOnStart     *bool   `yaml:"ping_on_start"`
}

type MailOverlay struct {
	Enabled  *bool   `yaml:"enabled"`
	Host     *string `yaml:"host"`
	Port     *int    `yaml:"port"`
	Username *string `yaml:"username"`
	Password *string `yaml:"password"`
	Sender   *string `yaml:"sender"`
}

type LoggingOverlay struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
	Output *string `yaml:"output"`
}

// Apply writes every set field of the overlay onto cfg. Later applications
// win; earlier values are overwritten wholesale.
func (o Overlay) Apply(cfg *Config) {
	assign(&cfg.App.Name, o.App.Name)
	assign(&cfg.App.Debug, o.App.Debug)
	assign(&cfg.App.Testing, o.App.Testing)

	assign(&cfg.Server.Host, o.Server.Host)
	assign(&cfg.Server.Port, o.Server.Port)
	assign(&cfg.Server.ReadTimeout, o.Server.ReadTimeout)
	assign(&cfg.Server.WriteTimeout, o.Server.WriteTimeout)
	assign(&cfg.Server.ShutdownTimeout, o.Server.ShutdownTimeout)

	assign(&cfg.Paths.StaticDir, o.Paths.StaticDir)
	assign(&cfg.Paths.TemplateDir, o.Paths.TemplateDir)
	assign(&cfg.Paths.NotebookSubdir, o.Paths.NotebookSubdir)

	assign(&cfg.Database.Enabled, o.Database.Enabled)
	assign(&cfg.Database.Driver, o.Database.Driver)
	assign(&cfg.Database.DSN, o.Database.DSN)
	assign(&cfg.Database.MaxOpenConns, o.Database.MaxOpenConns)
	assign(&cfg.Database.MaxIdleConns, o.Database.MaxIdleConns)
	assign(&cfg.Database.ConnMaxLifetime, o.Database.ConnMaxLifetime)
	assign(&cfg.Database.PingOnStart, o.Database.PingOnStart)

	assign(&cfg.Mail.Enabled, o.Mail.Enabled)
	assign(&cfg.Mail.Host, o.Mail.Host)
	assign(&cfg.Mail.Port, o.Mail.Port)
	assign(&cfg.Mail.Username, o.Mail.Username)
	assign(&cfg.Mail.Password, o.Mail.Password)
	assign(&cfg.Mail.Sender, o.Mail.Sender)

	assign(&cfg.Logging.Level, o.Logging.Level)
	assign(&cfg.Logging.Format, o.Logging.Format)
	assign(&cfg.Logging.Output, o.Logging.Output)
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Helpers for building overlays in code.

func String(v string) *string { return &v }
func Int(v int) *int          { return &v }
func Bool(v bool) *bool       { return &v }
