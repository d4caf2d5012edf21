// Copyright (c) 2026 Coinbase Agent Authors

package subcmds

import "flag"

type ServerFlags struct {
	port int
	ip   string
}

func (sf *ServerFlags) SetFlags(fset *flag.FlagSet) {
	fset.IntVar(&sf.port, "listen-port", 10000, "TCP port number for the api endpoint")
	fset.StringVar(&sf.ip, "listen-ip", "127.0.0.1", "TCP ip address for the api endpoint")
}
