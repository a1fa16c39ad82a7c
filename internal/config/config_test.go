package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()
	require.Equal(t, "./library.db", DBFile)
	require.Equal(t, "", GoogleBooksAPIKey)
}

func TestInitConfigReadsViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("dbfile", "/tmp/test.db")
	viper.Set("googlebooks.apikey", "key123")

	InitConfig()
	require.Equal(t, "/tmp/test.db", DBFile)
	require.Equal(t, "key123", GoogleBooksAPIKey)
}

func TestSetters(t *testing.T) {
	SetDBFile("/var/lib/library.db")
	require.Equal(t, "/var/lib/library.db", DBFile)

	SetGoogleBooksAPIKey("abc")
	require.Equal(t, "abc", GoogleBooksAPIKey)
}
