package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAWSLambda(t *testing.T) {
	t.Setenv("AWS_LAMBDA_RUNTIME_API", "")
	assert.False(t, isAWSLambda())

	t.Setenv("AWS_LAMBDA_RUNTIME_API", "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}

func TestRun_Help(t *testing.T) {
	code := run(context.Background(), []string{appName, "--help"})
	assert.Equal(t, 0, code)
}

func TestRun_InvalidConfigFile(t *testing.T) {
	code := run(context.Background(), []string{appName, "--config", "/does/not/exist.json", "serve"})
	assert.Equal(t, 1, code)
}

func TestRun_Commands(t *testing.T) {
	names := make([]string, 0, len(rootApp.Commands))
	for _, c := range rootApp.Commands {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(t, []string{"serve", "lambda", "run"}, names)
}
