package main

import (
	"bmpsteg/internal/cli"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // subscribe to system signals
	go func() {
		<-c
		cli.StopProfilers()
		os.Exit(0)
	}()

	err := cli.RootCommand().Execute()
	cli.StopProfilers()
	if err != nil {
		os.Exit(1)
	}
}
