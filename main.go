package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/forumlab/board-contract-tests/api"
	"github.com/forumlab/board-contract-tests/boardtests"
	"github.com/forumlab/board-contract-tests/framework"
)

const statusQueryTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	client, err := api.NewClient(params.serviceURL, statusQueryTimeout, mainDebugLogger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Board service error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters,
		client.MissingCapabilities(boardtests.AllCapabilities))

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := boardtests.RunTestSuite(client, params.filters.AsFilter, testLogger)

	if params.stopServiceAtEnd {
		fmt.Println("Stopping board service")
		if err := client.StopService(); err != nil {
			fmt.Fprintf(os.Stderr, "Error stopping service: %s\n", err)
		}
	}

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun just the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(os.Args[0], params, results))
		os.Exit(1)
	}
}
