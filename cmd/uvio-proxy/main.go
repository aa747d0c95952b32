// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command uvio-proxy is a peripheral demo TCP relay built on
// netio.Forwarder, illustrating one forwarding task per direction over a
// pair of TcpStreams; it is not part of the core.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"code.hybscloud.com/uvio/loop"
	"code.hybscloud.com/uvio/netio"
)

func main() {
	listenAddr := flag.String("listen", "127.0.0.1:7001", "listen address")
	upstreamAddr := flag.String("upstream", "127.0.0.1:7000", "upstream address")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	root := loop.New(func() (any, error) {
		return nil, serve(*listenAddr, *upstreamAddr, logger)
	})
	if _, err := loop.BlockOn(root); err != nil {
		logger.Error("proxy exited", "err", err)
		os.Exit(1)
	}
}

func serve(listenAddr, upstreamAddr string, logger *slog.Logger) error {
	ln, err := netio.Bind(listenAddr)
	if err != nil {
		return err
	}
	defer ln.Close()
	logger.Info("relaying", "listen", ln.Addr().String(), "upstream", upstreamAddr)

	ctx := context.Background()
	for {
		downstream, err := ln.Accept(ctx)
		if err != nil {
			return err
		}
		loop.Spawn(loop.New(func() (any, error) {
			return nil, relay(ctx, downstream, upstreamAddr, logger)
		}))
	}
}

func relay(ctx context.Context, downstream *netio.TcpStream, upstreamAddr string, logger *slog.Logger) error {
	defer downstream.Close()

	upstream, err := netio.Connect(ctx, upstreamAddr)
	if err != nil {
		logger.Warn("upstream connect failed", "err", err)
		return err
	}
	defer upstream.Close()

	clientToUpstream := loop.New(func() (any, error) {
		return nil, pump(downstream, upstream)
	})
	upstreamToClient := loop.New(func() (any, error) {
		return nil, pump(upstream, downstream)
	})
	loop.Spawn(clientToUpstream)
	loop.Spawn(upstreamToClient)

	_, err1 := loop.Await(clientToUpstream)
	_, err2 := loop.Await(upstreamToClient)
	if err1 != nil {
		return err1
	}
	return err2
}

func pump(src io.Reader, dst io.Writer) error {
	f := netio.NewForwarder(dst, src, 32*1024)
	for {
		if _, err := f.ForwardOnce(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
