// Package config loads the site configuration from an optional YAML file,
// PORTFOLIO_* environment variables and the legacy variable names.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/Zachkp/cyber-portfolio/internal/contact"
	"github.com/Zachkp/cyber-portfolio/internal/motion"
)

type Config struct {
	Port        string              `mapstructure:"port"`
	Mode        string              `mapstructure:"mode"`
	ContentFile string              `mapstructure:"contentFile"`
	ImagesDir   string              `mapstructure:"imagesDir"`
	ResumePath  string              `mapstructure:"resumePath"`
	OutputDir   string              `mapstructure:"outputDir"`
	Database    string              `mapstructure:"database"`
	Contact     ContactConfig       `mapstructure:"contact"`
	SMTP        contact.SMTPConfig  `mapstructure:"smtp"`
	Admin       AdminConfig         `mapstructure:"admin"`
	Tracking    TrackingConfig      `mapstructure:"tracking"`
	Spring      motion.SpringConfig `mapstructure:"spring"`
}

// ContactConfig selects where contact messages go. Transports are any of
// "simulated", "smtp" and "outbox", tried in order.
type ContactConfig struct {
	Transports []string      `mapstructure:"transports"`
	Delay      time.Duration `mapstructure:"delay"`
}

type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type TrackingConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Retention time.Duration `mapstructure:"retention"`
}

// legacyEnv maps keys to the environment names the site used before it had a
// config file.
var legacyEnv = map[string]string{
	"port":           "PORT",
	"smtp.host":      "SMTP_HOST",
	"smtp.port":      "SMTP_PORT",
	"smtp.user":      "SMTP_USER",
	"smtp.pass":      "SMTP_PASS",
	"smtp.to":        "TO_EMAIL",
	"admin.username": "ADMIN_USERNAME",
	"admin.password": "ADMIN_PASSWORD",
}

// SetDefaults installs every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("mode", "debug")
	v.SetDefault("contentFile", "")
	v.SetDefault("imagesDir", "./images")
	v.SetDefault("resumePath", "./resume.pdf")
	v.SetDefault("outputDir", "public")
	v.SetDefault("database", "")

	v.SetDefault("contact.transports", []string{"simulated"})
	v.SetDefault("contact.delay", contact.SimulatedDelay)

	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", "587")
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.pass", "")
	v.SetDefault("smtp.to", "")

	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")

	v.SetDefault("tracking.enabled", true)
	v.SetDefault("tracking.retention", 365*24*time.Hour)

	v.SetDefault("spring.stiffness", motion.DefaultSpring.Stiffness)
	v.SetDefault("spring.damping", motion.DefaultSpring.Damping)
	v.SetDefault("spring.mass", motion.DefaultSpring.Mass)
	v.SetDefault("spring.restDelta", motion.DefaultSpring.RestDelta)
	v.SetDefault("spring.restSpeed", motion.DefaultSpring.RestSpeed)
}

// Load reads file (or ./config.yaml when file is empty and one exists) and
// the environment into a Config. A missing default file is not an error.
func Load(v *viper.Viper, file string) (cfg Config, err error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		err = v.BindEnv(key, "PORTFOLIO_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env)
		if err != nil {
			err = errors.Wrapf(err, "failed to bind %s", env)
			return cfg, err
		}
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			err = errors.Wrap(err, "failed to read config file")
			return cfg, err
		}
		err = nil
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		err = errors.Wrap(err, "unable to decode config into struct")
		return cfg, err
	}

	return cfg, err
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
