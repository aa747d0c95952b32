// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"code.hybscloud.com/uvio/errs"
)

func TestEchoOverLoopback(t *testing.T) {
	ln, err := Bind("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverDone := make(chan error, 1)
	go func() {
		conn, err := ln.Accept(ctx)
		if err != nil {
			serverDone <- err
			return
		}
		buf := make([]byte, 5)
		if _, err := io.ReadFull(conn, buf); err != nil {
			serverDone <- err
			return
		}
		if _, err := conn.Write(buf); err != nil {
			serverDone <- err
			return
		}
		serverDone <- nil
	}()

	client, err := Connect(ctx, ln.Addr().String())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer client.Close()

	if _, err := client.Write([]byte("hello")); err != nil {
		t.Fatalf("client Write: %v", err)
	}
	got := make([]byte, 5)
	if _, err := io.ReadFull(client, got); err != nil {
		t.Fatalf("client Read: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("echo = %q, want %q", got, "hello")
	}
	if err := <-serverDone; err != nil {
		t.Fatalf("server: %v", err)
	}
}

func TestSplitAndReunite(t *testing.T) {
	ln, err := Bind("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		conn, err := ln.Accept(ctx)
		if err != nil {
			return
		}
		io.Copy(conn, conn)
	}()

	client, err := Connect(ctx, ln.Addr().String())
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer client.Close()

	rh, wh := Split(client)
	if _, err := wh.Write([]byte("abc")); err != nil {
		t.Fatalf("write half: %v", err)
	}
	got := make([]byte, 3)
	if _, err := io.ReadFull(rh, got); err != nil {
		t.Fatalf("read half: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("got %q", got)
	}

	reunited, err := Reunite(rh, wh)
	if err != nil {
		t.Fatalf("Reunite: %v", err)
	}
	if reunited != client {
		t.Fatal("Reunite did not return the original stream")
	}
}

func TestReunite_MismatchedHalvesFails(t *testing.T) {
	ln, err := Bind("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		for i := 0; i < 2; i++ {
			conn, err := ln.Accept(ctx)
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	a, err := Connect(ctx, ln.Addr().String())
	if err != nil {
		t.Fatalf("Connect a: %v", err)
	}
	defer a.Close()
	b, err := Connect(ctx, ln.Addr().String())
	if err != nil {
		t.Fatalf("Connect b: %v", err)
	}
	defer b.Close()

	ra, _ := Split(a)
	_, wb := Split(b)

	_, err = Reunite(ra, wb)
	if !errors.Is(err, errs.ErrReunite) {
		t.Fatalf("err = %v, want errs.ErrReunite", err)
	}
}

func TestForwarder_RelaysBytesAcrossChunkBoundary(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))
	var dst bytes.Buffer

	f := NewForwarder(&dst, src, 4)
	for {
		_, err := f.ForwardOnce()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ForwardOnce: %v", err)
		}
	}
	if dst.String() != "0123456789" {
		t.Fatalf("dst = %q", dst.String())
	}
}
