package cmd

import (
	"log/slog"
	"os"

	"github.com/akorhonen/librarian/internal/config"
	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

// CLI represents the complete command structure for the librarian application
type CLI struct {
	// Global flags
	DBFile string `help:"Path to the SQLite library database" default:"./library.db"`

	Ingest IngestCmd `cmd:"" help:"Ingest a batch of book references into the library"`
	Doctor DoctorCmd `cmd:"" help:"Report availability of the optional OCR toolchain"`
}

// IngestCmd represents the ingest command
type IngestCmd struct {
	Input  string `short:"f" help:"Path to a JSON or YAML batch file (reads JSON from stdin when omitted)"`
	APIKey string `help:"Google Books API key (falls back to googlebooks.apikey in config or GOOGLE_BOOKS_API_KEY)"`
}

// DoctorCmd represents the doctor command
type DoctorCmd struct{}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("librarian"),
		kong.Description("Download books from known sources into a local SQLite library."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("dbfile", "./library.db")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("googlebooks.apikey", "GOOGLE_BOOKS_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
		// No config file is fine; defaults and flags cover everything.
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetDBFile(cli.DBFile)
}

func initLogging() {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	slog.SetDefault(slog.New(handler))
}
