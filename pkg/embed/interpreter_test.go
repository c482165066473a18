package embed_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/funvibe/funlang/pkg/embed"
)

func TestEval(t *testing.T) {
	var out bytes.Buffer
	in := embed.New(embed.WithOutput(&out))

	res, err := in.Eval(`
	fun square(x) { return x * x }
	println(square(7))
	return square(3)
	`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if out.String() != "49\n" {
		t.Errorf("output = %q", out.String())
	}
	if !res.Returned || !res.HasValue || res.Value != 9 {
		t.Errorf("outcome = %+v, want returned 9", res)
	}
}

func TestEval_NoReturn(t *testing.T) {
	res, err := embed.New().Eval(`var x = 1`)
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if res.Returned || res.HasValue {
		t.Errorf("outcome = %+v, want empty", res)
	}
}

func TestEval_RunsAreIsolated(t *testing.T) {
	in := embed.New()
	if _, err := in.Eval(`var shared = 1`); err != nil {
		t.Fatalf("first Eval failed: %v", err)
	}
	// A fresh scope stack per run: the redeclaration is fine, the read is not.
	if _, err := in.Eval(`var shared = 2`); err != nil {
		t.Errorf("second Eval failed: %v", err)
	}
	_, err := in.Eval(`println(shared)`)
	if !errors.Is(err, embed.ErrVariableUndefined) {
		t.Errorf("expected ErrVariableUndefined, got %v", err)
	}
}

func TestEval_ParseError(t *testing.T) {
	_, err := embed.New().Eval("var = 1\nvar y = 1 +")
	var parseErr *embed.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T: %v", err, err)
	}
	if len(parseErr.Diagnostics) < 2 {
		t.Errorf("expected every diagnostic, got %d", len(parseErr.Diagnostics))
	}
	if !strings.HasPrefix(err.Error(), "parsing errors:") {
		t.Errorf("Error() = %q", err.Error())
	}
	if err := embed.New().Check("var = 1"); err == nil {
		t.Error("Check should report the parse error")
	}
	if err := embed.New().Check("var x = 1"); err != nil {
		t.Errorf("Check on valid code: %v", err)
	}
}

func TestEval_ShortPrograms(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"println(1)", "1\n"},
		{"var x = 1", ""},
		{"println(1) println(2)", "1\n2\n"},
		{"", ""},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		if _, err := embed.New(embed.WithOutput(&out)).Eval(tt.code); err != nil {
			t.Errorf("Eval(%q): %v", tt.code, err)
			continue
		}
		if out.String() != tt.want {
			t.Errorf("Eval(%q) output = %q, want %q", tt.code, out.String(), tt.want)
		}
	}
}

func TestEval_NulByteIsIllegal(t *testing.T) {
	for _, code := range []string{"println(1)\x00println(2)", "println(1)\x00 this is ( garbage"} {
		var out bytes.Buffer
		_, err := embed.New(embed.WithOutput(&out)).Eval(code)
		var parseErr *embed.ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Eval(%q): expected *ParseError, got %v", code, err)
			continue
		}
		if !strings.Contains(parseErr.Diagnostics[0].Error(), "[P001]") {
			t.Errorf("first diagnostic = %v", parseErr.Diagnostics[0])
		}
		if out.Len() != 0 {
			t.Errorf("program with parse errors produced output %q", out.String())
		}
	}
}

func TestEval_RuntimeError(t *testing.T) {
	var out bytes.Buffer
	_, err := embed.New(embed.WithOutput(&out)).Eval(`println(1) println(2 / 0)`)
	if !errors.Is(err, embed.ErrArithmetic) {
		t.Fatalf("expected ErrArithmetic, got %v", err)
	}
	var rtErr *embed.RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if out.String() != "1\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestEval_MaxCallDepth(t *testing.T) {
	in := embed.New(embed.WithMaxCallDepth(25))
	_, err := in.Eval(`fun loop(n) { return loop(n + 1) } loop(0)`)
	if !errors.Is(err, embed.ErrCallDepthExceeded) {
		t.Errorf("expected ErrCallDepthExceeded, got %v", err)
	}
}

func TestEvalContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := embed.New().EvalContext(ctx, `while (1) {}`)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.fun")
	sjis, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), "// 挨拶\nprintln(1, 2)\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(sjis), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	in := embed.New(embed.WithOutput(&out), embed.WithEncoding("shift_jis"))
	if _, err := in.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if out.String() != "1 2\n" {
		t.Errorf("output = %q", out.String())
	}

	if _, err := in.LoadFile(filepath.Join(dir, "missing.fun")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestEval_ConcurrentInterpreters(t *testing.T) {
	const workers = 8
	var wg sync.WaitGroup
	outs := make([]bytes.Buffer, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := embed.New(embed.WithOutput(&outs[i]))
			_, errs[i] = in.Eval(`
			fun fib(n) { if (n <= 1) { return 1 } return fib(n - 1) + fib(n - 2) }
			var i = 0
			while (i < 10) { i = i + 1 }
			println(fib(15), i)
			`)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Errorf("worker %d: %v", i, errs[i])
		}
		if outs[i].String() != "987 10\n" {
			t.Errorf("worker %d output = %q", i, outs[i].String())
		}
	}
}
