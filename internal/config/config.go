package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lueurxax/linked-list/internal/printer"
)

type PromptMode string

const (
	PromptsAuto   PromptMode = "auto"
	PromptsAlways PromptMode = "always"
	PromptsNever  PromptMode = "never"
)

var ErrUnknownPromptMode = errors.New("unknown prompt mode")

type Config struct {
	LoggerLevel  logrus.Level   `envconfig:"LOG_LEVEL" default:"warn"`
	LogToEcs     bool           `envconfig:"LOG_TO_ECS" default:"false"`
	Prompts      PromptMode     `envconfig:"PROMPTS" default:"auto"`
	OutputFormat printer.Format `envconfig:"OUTPUT_FORMAT" default:"text"`
	MetricsFile  string         `envconfig:"METRICS_FILE"`
}

// ShowPrompts reports whether prompts should be written. In auto mode they
// are shown only when stdin is a terminal.
func (c *Config) ShowPrompts(stdin *os.File) (bool, error) {
	switch c.Prompts {
	case PromptsAlways:
		return true, nil
	case PromptsNever:
		return false, nil
	case PromptsAuto:
		return term.IsTerminal(int(stdin.Fd())), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownPromptMode, c.Prompts)
	}
}

func GetConfig() *Config {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	return cfg
}
