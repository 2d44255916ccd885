package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func findStringFlag(flags []cli.Flag, name string) *cli.StringFlag {
	for _, flag := range flags {
		if f, ok := flag.(*cli.StringFlag); ok && f.Name == name {
			return f
		}
	}
	return nil
}

func findIntFlag(flags []cli.Flag, name string) *cli.IntFlag {
	for _, flag := range flags {
		if f, ok := flag.(*cli.IntFlag); ok && f.Name == name {
			return f
		}
	}
	return nil
}

func TestDatabaseFlagDefaults(t *testing.T) {
	flags := databaseFlags()

	t.Run("db has default path", func(t *testing.T) {
		f := findStringFlag(flags, "db")
		require.NotNil(t, f)
		assert.Equal(t, "./sparta_db", f.Value)
		assert.Contains(t, f.Aliases, "d")
	})

	t.Run("embedding-host has default value", func(t *testing.T) {
		f := findStringFlag(flags, "embedding-host")
		require.NotNil(t, f)
		assert.Equal(t, "http://localhost:11434/v1", f.Value)
	})

	t.Run("embedding-model has default value", func(t *testing.T) {
		f := findStringFlag(flags, "embedding-model")
		require.NotNil(t, f)
		assert.Equal(t, "embeddinggemma", f.Value)
	})
}

func TestSearchFlagDefaults(t *testing.T) {
	flags := searchFlags()

	t.Run("index has default path", func(t *testing.T) {
		f := findStringFlag(flags, "index")
		require.NotNil(t, f)
		assert.Equal(t, defaultIndexPath, f.Value)
	})

	t.Run("top-k default", func(t *testing.T) {
		f := findIntFlag(flags, "top-k")
		require.NotNil(t, f)
		assert.Equal(t, 5, f.Value)
	})
}

func TestQueryCommand_RequiresQueryText(t *testing.T) {
	app := &cli.App{
		Name: "sparta",
		Commands: []*cli.Command{
			{
				Name:   "query",
				Action: queryCommand,
				Flags:  append(databaseFlags(), searchFlags()...),
			},
		},
	}

	err := app.Run([]string{"sparta", "query", "--db", filepath.Join(t.TempDir(), "db")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query text is required")
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	app := &cli.App{
		Name: "sparta",
		Commands: []*cli.Command{
			{
				Name:   "export",
				Action: exportCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{Name: "format", Value: "records"},
					&cli.StringFlag{Name: "output", Value: "-"},
				),
			},
		},
	}

	err := app.Run([]string{
		"sparta", "export",
		"--db", filepath.Join(t.TempDir(), "db"),
		"--format", "yaml",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export format")
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error { return nil },
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newApp().Run([]string{"test", "--log-level", level}))
			})
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				require.NoError(t, newApp().Run([]string{"test", "-l", level}))
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
