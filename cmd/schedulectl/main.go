package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shift-scheduler-api/internal/cli"
	"github.com/vfg2006/shift-scheduler-api/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "erro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logrus.SetLevel(logrus.WarnLevel)

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("carregando configuração: %w", err)
	}

	return cli.NewApp(nil, cfg).Execute()
}
