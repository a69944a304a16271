package cmd

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/cyber-portfolio/internal/config"
	"github.com/Zachkp/cyber-portfolio/internal/portfolio"
)

//nolint:gochecknoglobals // Cobra boilerplate
var cfgFile string

//nolint:gochecknoglobals // Cobra boilerplate
var appConfig config.Config

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page personal portfolio: hero, about, skills,
experience, projects and a contact form, rendered from a markdown content file
or the built-in content.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		appConfig, err = config.Load(viper.New(), cfgFile)
		if err != nil {
			return err
		}
		gin.SetMode(appConfig.Mode)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// loadContent returns the configured content file, or the built-in content
// when none is set.
func loadContent(cfg config.Config) (*portfolio.Store, error) {
	if cfg.ContentFile == "" {
		return portfolio.Default(), nil
	}
	return portfolio.Load(cfg.ContentFile)
}
