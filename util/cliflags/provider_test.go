package cliflags_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/parrot/util/cliflags"
)

func TestProvider_OnlySetFlags(t *testing.T) {
	var mp map[string]any

	app := &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "body-limit"},
			&cli.BoolFlag{Name: "body-strict"},
			&cli.StringFlag{Name: "log-level", Value: "info"},
			&cli.DurationFlag{Name: "timeout"},
		},
		Action: func(ctx *cli.Context) error {
			provider := cliflags.Provider(ctx, ".", func(s string) string {
				return strings.ReplaceAll(s, "-", ".")
			})

			var err error
			mp, err = provider.Read()
			return err
		},
	}

	err := app.Run([]string{"test", "--body-limit", "42", "--timeout", "3s"})
	require.NoError(t, err)

	require.Contains(t, mp, "body")
	assert.Equal(t, map[string]any{"limit": int64(42)}, mp["body"])
	assert.Equal(t, 3*time.Second, mp["timeout"])
	assert.NotContains(t, mp, "log")
}

func TestProvider_ReadBytes(t *testing.T) {
	app := &cli.App{
		Name: "test",
		Action: func(ctx *cli.Context) error {
			_, err := cliflags.Provider(ctx, "", nil).ReadBytes()
			return err
		},
	}

	assert.Error(t, app.Run([]string{"test"}))
}
