package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Example gallery server and indexer",
	Long: `showcase indexes example documents (Markdown/MDX with YAML front matter),
groups them by category with resolved preview images, and serves the gallery.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the showcase version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("showcase %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./showcase.yaml)")
	rootCmd.PersistentFlags().String("content", "pages", "directory holding example documents")
	rootCmd.PersistentFlags().String("database", "data/examples.db", "SQLite example index")
	rootCmd.PersistentFlags().String("examples-url", "", "examples host (default $NEXT_PUBLIC_EXAMPLES_URL)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	v.BindPFlag("content", rootCmd.PersistentFlags().Lookup("content"))
	v.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))
	v.BindPFlag("examples_url", rootCmd.PersistentFlags().Lookup("examples-url"))
	v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(serveCmd, indexCmd, listCmd, thumbsCmd, versionCmd)
}

func initializeConfig(_ *cobra.Command) error {
	v.SetDefault("name", "Examples")
	v.SetDefault("url", "http://localhost:3000")
	v.SetDefault("addr", ":3000")
	v.SetDefault("language", "react")
	v.SetDefault("cache_ttl", "5m")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("showcase")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SHOWCASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func newLogger() *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if v.GetBool("debug") {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
