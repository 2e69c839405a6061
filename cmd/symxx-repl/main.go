// Command symxx-repl is the interactive `symxx>` shell: it parses,
// normalizes, and prints symbolic expressions, exposing the same
// command surface as original_source/include/symxx/cli.hpp::mainloop
// (normalize/func/constant/print/factor/version/quit) over a
// bufio.Scanner REPL loop instead of a raw std::getline loop.
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/caozhanhao/symxx"
)

const version = "0.1.0"

const (
	phi        = 1.618033988749894848
	eulerGamma = 0.577215664901532860
)

type funcDef struct {
	args []string
	body *symxx.ExprNode
}

type shell struct {
	out       *bufio.Writer
	log       zerolog.Logger
	printer   symxx.Printer
	funcs     map[string]funcDef
	constants map[string]float64
}

func newShell(latex bool, log zerolog.Logger) *shell {
	s := &shell{
		out:       bufio.NewWriter(os.Stdout),
		log:       log,
		printer:   symxx.Printer{LaTeX: latex},
		funcs:     map[string]funcDef{},
		constants: map[string]float64{"pi": math.Pi, "e": math.E, "phi": phi, "egamma": eulerGamma},
	}
	fib, err := symxx.ParseExpr("((1/5)^0.5)*(((1+5^0.5)/2)^n-((1-5^0.5)/2)^n)")
	if err != nil {
		s.log.Fatal().Err(err).Msg("failed to build built-in fib function")
	}
	fib, err = fib.Normalize()
	if err != nil {
		s.log.Fatal().Err(err).Msg("failed to normalize built-in fib function")
	}
	s.funcs["fib"] = funcDef{args: []string{"n"}, body: fib}
	return s
}

func (s *shell) printFunc(name string) {
	f := s.funcs[name]
	fmt.Fprintf(s.out, "Function: %s(%s) = %s\n", name, strings.Join(f.args, ","), s.printer.Print(f.body))
}

func (s *shell) printConstant(name string) {
	fmt.Fprintf(s.out, "Constant: %s = %s\n", name, s.printer.PrintFloat(s.constants[name]))
}

// printResult mirrors cli.hpp's print_result: print the normal form,
// then append " = <numeric>" only when the expression isn't already a
// bare integer, evaluating symbols against the constants environment.
func (s *shell) printResult(expr *symxx.ExprNode) error {
	n, err := expr.Normalize()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, s.printer.Print(n))

	if fp, err := n.TryEval(); err == nil && fp != nil {
		if t, ok := fp.Numer.AsSingleTerm(); ok && t.IsSymbolFree() && fp.IsTrivialDenominator() &&
			t.Coe.IsRational() && t.Coe.Coe.IsInt() {
			fmt.Fprintln(s.out)
			return nil
		}
	}
	if v, ok := n.TryEvalEnv(s.constants); ok {
		fmt.Fprintf(s.out, " = %s\n", s.printer.PrintFloat(v))
	} else {
		fmt.Fprintln(s.out)
	}
	return nil
}

func (s *shell) cmdNormalize(body string) error {
	expr, err := symxx.ParseExpr(body)
	if err != nil {
		return err
	}
	return s.printResult(expr)
}

func (s *shell) cmdFactor(body string) error {
	expr, err := symxx.ParseExpr(body)
	if err != nil {
		return err
	}
	n, err := expr.Normalize()
	if err != nil {
		return err
	}
	fp, err := n.TryEval()
	if err != nil {
		return err
	}
	if fp == nil {
		return symxx.NewDomainError("expression contains free symbols")
	}
	t, ok := fp.Numer.AsSingleTerm()
	if !ok || !t.IsSymbolFree() || !fp.IsTrivialDenominator() || !t.Coe.IsRational() || !t.Coe.Coe.IsInt() {
		return symxx.NewDomainError("factor requires a single integer value")
	}
	for _, f := range symxx.Factorize(t.Coe.Coe.Numer) {
		fmt.Fprintf(s.out, "%s ", f.String())
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *shell) cmdFunc(body string) error {
	lp := strings.IndexByte(body, '(')
	rp := strings.IndexByte(body, ')')
	if lp < 0 || rp < 0 || rp < lp {
		return symxx.NewParseError("function needs '(' and ')'")
	}
	name := strings.TrimSpace(body[:lp])
	var args []string
	for _, a := range strings.Split(body[lp+1:rp], ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			return symxx.NewParseError(`argument can not be ""`)
		}
		args = append(args, a)
	}
	rest := strings.TrimSpace(body[rp+1:])
	if !strings.HasPrefix(rest, "=") {
		return symxx.NewParseError("expected '='")
	}
	expr, err := symxx.ParseExpr(rest[1:])
	if err != nil {
		return err
	}
	n, err := expr.Normalize()
	if err != nil {
		return err
	}
	s.funcs[name] = funcDef{args: args, body: n}
	s.printFunc(name)
	return nil
}

func (s *shell) cmdConstant(body string) error {
	eq := strings.IndexByte(body, '=')
	if eq < 0 {
		return symxx.NewParseError("expected '='")
	}
	name := strings.TrimSpace(body[:eq])
	if name == "" {
		return symxx.NewParseError("constant's name can not be empty")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(body[eq+1:]), 64)
	if err != nil {
		return symxx.WrapParseError("invalid constant value", err)
	}
	s.constants[name] = v
	s.printConstant(name)
	return nil
}

func (s *shell) cmdPrint(body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		names := make([]string, 0, len(s.funcs))
		for n := range s.funcs {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			s.printFunc(n)
		}
		cnames := make([]string, 0, len(s.constants))
		for n := range s.constants {
			cnames = append(cnames, n)
		}
		sort.Strings(cnames)
		for _, n := range cnames {
			s.printConstant(n)
		}
		return
	}
	if _, ok := s.funcs[body]; ok {
		s.printFunc(body)
	}
	if _, ok := s.constants[body]; ok {
		s.printConstant(body)
	}
}

func (s *shell) cmdCall(name, argstr string) error {
	f, ok := s.funcs[name]
	if !ok {
		return symxx.NewStructuralError("unknown function " + name)
	}
	var vals []symxx.Rational
	for _, a := range strings.Split(argstr, ",") {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		r, err := symxx.RationalFromString(a)
		if err != nil {
			return err
		}
		vals = append(vals, r)
	}
	if len(vals) != len(f.args) {
		return symxx.NewStructuralError(fmt.Sprintf("expected %d arguments", len(f.args)))
	}
	env := make(map[string]symxx.Surd, len(f.args))
	for i, name := range f.args {
		env[name] = symxx.SurdFromRational(vals[i])
	}
	substituted, err := f.body.Substitute(env)
	if err != nil {
		return err
	}
	return s.printResult(substituted)
}

func (s *shell) cmdVersion() {
	fmt.Fprintf(s.out, "symxx | version - %s | int - %s\n", version, symxx.BackendName())
}

func (s *shell) dispatch(line string) error {
	cmd, body, _ := strings.Cut(line, " ")
	switch cmd {
	case "normalize":
		return s.cmdNormalize(body)
	case "func":
		return s.cmdFunc(body)
	case "constant":
		return s.cmdConstant(body)
	case "print":
		s.cmdPrint(body)
		return nil
	case "factor":
		return s.cmdFactor(body)
	case "version":
		s.cmdVersion()
		return nil
	case "quit":
		return errQuit
	default:
		lp := strings.IndexByte(cmd, '(')
		rp := strings.IndexByte(cmd, ')')
		if lp < 0 || rp < 0 {
			return s.cmdNormalize(line)
		}
		fname := cmd[:lp]
		if _, ok := s.funcs[fname]; !ok {
			return s.cmdNormalize(line)
		}
		return s.cmdCall(fname, cmd[lp+1:rp])
	}
}

var errQuit = fmt.Errorf("quit")

func (s *shell) runLine(line string) (quit bool) {
	defer func() {
		s.out.Flush()
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("recovered from panic in command dispatch")
			fmt.Fprintln(os.Stderr, "internal error, see log")
		}
	}()
	s.log.Debug().Str("line", line).Msg("dispatching command")
	if err := s.dispatch(line); err != nil {
		if err == errQuit {
			return true
		}
		if d, ok := symxx.AsDiagnostic(err); ok {
			fmt.Fprintln(os.Stderr, d.Error())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
	return false
}

func main() {
	latex := pflag.Bool("latex", false, "render results as LaTeX instead of plain text")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug-level command-dispatch logging")
	pflag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	s := newShell(*latex, log)
	s.cmdVersion()
	s.out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "symxx> ")
		if !scanner.Scan() {
			break
		}
		if s.runLine(scanner.Text()) {
			break
		}
	}
}
