package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// DBFile is the path to the SQLite library database
	DBFile string
	// GoogleBooksAPIKey is the optional API key for the Google Books volumes API
	GoogleBooksAPIKey string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("dbfile", "./library.db")

	// Get values from viper
	DBFile = viper.GetString("dbfile")
	GoogleBooksAPIKey = viper.GetString("googlebooks.apikey")
}

// SetDBFile sets the library database path
func SetDBFile(path string) {
	DBFile = path
}

// SetGoogleBooksAPIKey sets the Google Books API key
func SetGoogleBooksAPIKey(key string) {
	GoogleBooksAPIKey = key
}
