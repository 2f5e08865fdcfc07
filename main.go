package main

import (
	"fmt"
	"os"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/fool/config"
	"github.com/ratel-online/fool/network"
	"github.com/ratel-online/fool/state"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	c, err := config.Parse("fool", os.Args[1:], os.Stderr)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	state.Setup(c)
	if c.WsAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(c.WsAddr).Serve())
		})
	}
	log.Error(network.NewTcpServer(c.Addr).Serve())
}
