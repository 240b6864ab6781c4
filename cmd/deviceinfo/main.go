package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/deviceinfo/pkg/config"
	"github.com/dmitrymomot/deviceinfo/pkg/deviceinfo"
	"github.com/dmitrymomot/deviceinfo/pkg/logger"
	"github.com/dmitrymomot/deviceinfo/pkg/requestid"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := newLogger(cfg, requestid.LoggerExtractor(), deviceinfo.LoggerExtractor())
	logger.SetAsDefault(log)

	if err := newRootCmd(cfg, log).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
