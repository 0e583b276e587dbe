// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tpccd/storage"
	"github.com/bitmark-inc/tpccd/tpcc"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		printHelp(program)
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	if 0 == len(arguments) {
		exitwithstatus.Message("%s: missing transaction profile argument, try: %s --help", program, program)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("database: %q", theConfiguration.Database)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// start the transaction engine
	log.Info("initialise tpcc")
	err = tpcc.Initialise()
	if nil != err {
		log.Criticalf("tpcc initialise error: %s", err)
		exitwithstatus.Message("tpcc initialise error: %s", err)
	}
	defer tpcc.Finalise()

	// profile name with optional JSON parameters
	profile := arguments[0]
	parameters := []byte("{}")
	if len(arguments) > 1 {
		parameters = []byte(arguments[1])
	}

	result, err := tpcc.Invoke(profile, parameters)
	if nil != err {
		log.Criticalf("%s error: %s", profile, err)
		exitwithstatus.Message("%s error: %s", profile, err)
	}

	log.Infof("%s result: %s", profile, result)
	if 0 == len(options["quiet"]) {
		fmt.Printf("%s\n", result)
	}
}

func printHelp(program string) {
	fmt.Printf("usage: %s --config-file=FILE [options] profile ['{JSON parameters}']\n", program)
	fmt.Printf("       --help             -h            this message\n")
	fmt.Printf("       --verbose          -v            more log messages\n")
	fmt.Printf("       --quiet            -q            less console output\n")
	fmt.Printf("       --version          -V            show version and exit\n")
	fmt.Printf("       --config-file=FILE -c FILE       *required* configuration file\n")
	fmt.Printf("\n")
	fmt.Printf("profiles:\n")
	fmt.Printf("       init                             load the initial dataset\n")
	fmt.Printf("       newOrder                         place an order\n")
	fmt.Printf("       payment                          record a customer payment\n")
	fmt.Printf("       orderStatus                      query a customer's latest order\n")
	fmt.Printf("       delivery                         deliver pending orders\n")
	fmt.Printf("       stockLevel                       count low stocks of recent orders\n")
	fmt.Printf("       ping                             connectivity check\n")
	fmt.Printf("       readWarehouse readOrder readItem readNewOrder\n")
	fmt.Printf("                                        single record diagnostic reads\n")
}
