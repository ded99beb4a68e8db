package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/noah-isme/syntaxscout-api/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, cli.DefaultOpener, os.Args[1:], os.Stdin, color.Output, color.Error); err != nil {
		fmt.Fprintln(color.Error, cli.DescribeError(err))
		stop()
		os.Exit(1)
	}
}
