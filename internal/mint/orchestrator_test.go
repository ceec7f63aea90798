package mint

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime"
	"testing"
)

type fakeMinter struct {
	calls []Request
	id    string
	err   error
	panic interface{}
	block chan struct{}
}

func (f *fakeMinter) Mint(_ context.Context, req Request) (string, error) {
	f.calls = append(f.calls, req)
	if f.block != nil {
		<-f.block
	}
	if f.panic != nil {
		panic(f.panic)
	}
	return f.id, f.err
}

type fakeSession struct {
	wallet     bool
	connection bool
}

func (s fakeSession) HasWallet() bool     { return s.wallet }
func (s fakeSession) HasConnection() bool { return s.connection }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func connected() fakeSession { return fakeSession{wallet: true, connection: true} }

func TestSubmitSuccess(t *testing.T) {
	fm := &fakeMinter{id: "abc"}
	o := NewOrchestrator(fm, testLogger())

	meta := Metadata{Title: "My Song", Copies: 5, Price: 0.5}
	out := o.Submit(context.Background(), meta, "/tmp/a.mp3", "/tmp/c.png", connected())

	if !out.OK || out.Identifier != "abc" || out.Message != "" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if len(fm.calls) != 1 {
		t.Fatalf("expected one mint call, got %d", len(fm.calls))
	}
	req := fm.calls[0]
	if req.Title != "My Song" || req.Copies != 5 || req.Price != "0.5" {
		t.Fatalf("unexpected request %+v", req)
	}
	if o.InFlight() {
		t.Fatalf("in-flight flag still set after success")
	}
}

func TestSubmitNormalizesMetadata(t *testing.T) {
	fm := &fakeMinter{id: "x"}
	o := NewOrchestrator(fm, testLogger())

	meta := Metadata{ArtistName: " Artist ", Title: "  My Song  ", Description: " desc ", Copies: 2, Price: 0.1}
	o.Submit(context.Background(), meta, "a", "b", connected())

	req := fm.calls[0]
	if req.ArtistName != "Artist" || req.Title != "My Song" || req.Description != "desc" {
		t.Fatalf("metadata not trimmed: %+v", req)
	}
	if req.Price != "0.1" {
		t.Fatalf("price not rendered as decimal string: %q", req.Price)
	}
}

func TestSubmitBlockedByValidationNeverCallsMinter(t *testing.T) {
	fm := &fakeMinter{}
	o := NewOrchestrator(fm, testLogger())

	cases := []struct {
		meta  Metadata
		audio string
		image string
	}{
		{Metadata{Title: "t", Copies: 0, Price: 0.5}, "a", "b"},
		{Metadata{Title: "t", Copies: 1, Price: 0}, "a", "b"},
		{Metadata{Title: "  ", Copies: 1, Price: 0.5}, "a", "b"},
		{Metadata{Title: "t", Copies: 1, Price: 0.5}, "", "b"},
		{Metadata{Title: "t", Copies: 1, Price: 0.5}, "a", ""},
	}
	for i, c := range cases {
		out := o.Submit(context.Background(), c.meta, c.audio, c.image, connected())
		if out.OK || out.Message == "" {
			t.Fatalf("case %d: expected blocked outcome, got %+v", i, out)
		}
	}
	if len(fm.calls) != 0 {
		t.Fatalf("minter was called %d times for invalid input", len(fm.calls))
	}
}

func TestSubmitDistinguishesMissingWalletAndConnection(t *testing.T) {
	fm := &fakeMinter{}
	o := NewOrchestrator(fm, testLogger())
	meta := Metadata{Title: "t", Copies: 1, Price: 0.5}

	out := o.Submit(context.Background(), meta, "a", "b", fakeSession{wallet: false, connection: true})
	if out.Message != MsgNoWallet {
		t.Fatalf("missing wallet: got %q", out.Message)
	}
	out = o.Submit(context.Background(), meta, "a", "b", fakeSession{wallet: true, connection: false})
	if out.Message != MsgNoConnection {
		t.Fatalf("missing connection: got %q", out.Message)
	}
	if len(fm.calls) != 0 {
		t.Fatalf("minter called without a session")
	}
}

func TestSubmitFailureClassification(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{errors.New("insufficient deposit for storage"), MsgFundsShortage},
		{errors.New("rpc: token class ID already exists for title"), MsgDuplicateTitle},
		{errors.New("connection refused"), "connection refused"},
	}
	for _, c := range cases {
		fm := &fakeMinter{err: c.err}
		o := NewOrchestrator(fm, testLogger())
		out := o.Submit(context.Background(), Metadata{Title: "t", Copies: 1, Price: 0.5}, "a", "b", connected())
		if out.OK || out.Message != c.want {
			t.Fatalf("err %q: got %+v, want message %q", c.err, out, c.want)
		}
		if o.InFlight() {
			t.Fatalf("in-flight flag still set after failure")
		}
	}
}

func TestSubmitRecoversErrorPanic(t *testing.T) {
	fm := &fakeMinter{panic: errors.New("insufficient deposit while building transaction")}
	o := NewOrchestrator(fm, testLogger())

	out := o.Submit(context.Background(), Metadata{Title: "t", Copies: 1, Price: 0.5}, "a", "b", connected())
	if out.OK || out.Message != MsgFundsShortage {
		t.Fatalf("panicked error should still be classified, got %+v", out)
	}
	if o.InFlight() {
		t.Fatalf("in-flight flag still set after panic")
	}
}

func TestSubmitRecoversNonErrorPanic(t *testing.T) {
	fm := &fakeMinter{panic: "boom"}
	o := NewOrchestrator(fm, testLogger())

	out := o.Submit(context.Background(), Metadata{Title: "t", Copies: 1, Price: 0.5}, "a", "b", connected())
	if out.OK || out.Message != MsgUnknown {
		t.Fatalf("non-error panic should map to the generic message, got %+v", out)
	}
	if o.InFlight() {
		t.Fatalf("in-flight flag still set after panic")
	}
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	fm := &fakeMinter{id: "abc", block: make(chan struct{})}
	o := NewOrchestrator(fm, testLogger())
	meta := Metadata{Title: "t", Copies: 1, Price: 0.5}

	done := make(chan Outcome, 1)
	go func() {
		done <- o.Submit(context.Background(), meta, "a", "b", connected())
	}()

	for !o.InFlight() {
		runtime.Gosched()
	}

	out := o.Submit(context.Background(), meta, "a", "b", connected())
	if out.Message != MsgInFlight {
		t.Fatalf("expected in-flight rejection, got %+v", out)
	}

	close(fm.block)
	first := <-done
	if !first.OK {
		t.Fatalf("first submission should have succeeded: %+v", first)
	}
	if len(fm.calls) != 1 {
		t.Fatalf("expected a single mint call, got %d", len(fm.calls))
	}
}
