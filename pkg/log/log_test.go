package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsRelevantField(t *testing.T) {
	assert.True(t, isRelevantField("account_id"))
	assert.True(t, isRelevantField("batch_key"))
	assert.True(t, isRelevantField(correlationIDField))
	assert.False(t, isRelevantField("remote_addr"))
}

func TestContextWithCorrelationID(t *testing.T) {
	ctx := ContextWithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetCorrelationID(ctx))
}

func TestSetLevel(t *testing.T) {
	original := logrus.GetLevel()
	defer logrus.SetLevel(original)

	tests := []struct {
		name  string
		input string
		want  logrus.Level
	}{
		{name: "nível válido", input: "warn", want: logrus.WarnLevel},
		{name: "nível em maiúsculas", input: "DEBUG", want: logrus.DebugLevel},
		{name: "nível inválido cai para info", input: "verboso", want: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SetLevel(tt.input))
			assert.Equal(t, tt.want, logrus.GetLevel())
		})
	}
}

func TestSetup(t *testing.T) {
	original := logrus.StandardLogger().Formatter
	defer logrus.SetFormatter(original)

	t.Setenv("APP_ENV", "production")
	Setup()
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	t.Setenv("APP_ENV", "development")
	Setup()
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}
