// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command uvio-echo is a peripheral demo server: it is not part of the
// core, only an illustration of loop/netio/stream/codec wired together.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"code.hybscloud.com/uvio/codec/fixed32"
	"code.hybscloud.com/uvio/loop"
	"code.hybscloud.com/uvio/netio"
	"code.hybscloud.com/uvio/stream"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:7000", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	root := loop.New(func() (any, error) {
		return nil, serve(*addr, logger)
	})
	if _, err := loop.BlockOn(root); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func serve(addr string, logger *slog.Logger) error {
	ln, err := netio.Bind(addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	logger.Info("listening", "addr", ln.Addr().String())

	ctx := context.Background()
	for {
		conn, err := ln.Accept(ctx)
		if err != nil {
			return err
		}
		loop.Spawn(loop.New(func() (any, error) {
			return nil, handleConn(conn, logger)
		}))
	}
}

func handleConn(conn *netio.TcpStream, logger *slog.Logger) error {
	defer conn.Close()
	readSize, writeSize := conn.BufferSizes()
	bs := stream.NewBufStream(conn, readSize, writeSize)
	for {
		msg, err := fixed32.Decode(bs)
		if err != nil {
			logger.Warn("connection closed", "remote", conn.RemoteAddr(), "err", err)
			return err
		}
		if err := fixed32.Encode(bs, msg); err != nil {
			return err
		}
	}
}
