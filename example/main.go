// Copyright (C) 2024-2026, the ccukit authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Example program connecting to a CCU, printing its method catalog and
// calling a couple of operations.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ccukit/ccurpc"
)

func main() {
	address := flag.String("address", "192.168.1.26", "CCU address")
	verbose := flag.Bool("verbose", false, "log every call and response")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	client, err := ccurpc.New(*address)
	if err != nil {
		log.Fatal("create client", "err", err)
	}

	// Forces the connection and prints everything the CCU offers.
	if err := client.PrintMethods(os.Stdout); err != nil {
		log.Fatal("list methods", "err", err)
	}

	serial, err := client.Invoke("ccu_get_serial")
	if err != nil {
		log.Fatal("get serial", "err", err)
	}
	fmt.Println("serial:", serial)

	// The same call through a bound method func.
	getVersion, err := client.Method("ccu_get_version")
	if err != nil {
		log.Fatal("resolve method", "err", err)
	}
	version, err := getVersion()
	if err != nil {
		log.Fatal("get version", "err", err)
	}
	fmt.Println("version:", version)
}
