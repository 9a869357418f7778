package main

import (
	"flag"
	"fmt"
	"os"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"

	"github.com/lueurxax/linked-list/internal/app"
	"github.com/lueurxax/linked-list/internal/config"
	"github.com/lueurxax/linked-list/internal/log"
	"github.com/lueurxax/linked-list/internal/metrics"
	"github.com/lueurxax/linked-list/internal/printer"
)

var version = "dev"

const pkgKey = "pkg"

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := config.GetConfig()

	// init logger
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(cfg.LoggerLevel)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{pkgKey},
		TimestampFormat: "01-02|15:04:05",
	})

	if cfg.LogToEcs {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	logger := log.NewLogger(logrusLogger)

	showPrompts, err := cfg.ShowPrompts(os.Stdin)
	if err != nil {
		panic(err)
	}

	p, err := printer.New(cfg.OutputFormat)
	if err != nil {
		panic(err)
	}

	m := metrics.NewMetrics(logger.WithField(pkgKey, "metrics"))

	runErr := app.NewApp(p, m, showPrompts, logger.WithField(pkgKey, "app")).Run(os.Stdin, os.Stdout)

	if cfg.MetricsFile != "" {
		if err = m.WriteToTextfile(cfg.MetricsFile); err != nil {
			logger.WithError(err).Error("write metrics")
		}
	}

	if runErr != nil {
		logger.WithError(runErr).Error("run failed")
		os.Exit(1)
	}
}
