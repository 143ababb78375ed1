// Command tvmtool is the CLI front-end over the assembler and disassembler
// packages: a thin plumbing layer in the style of original_source's
// tonlabs-cli, reduced to the subcommands that don't require talking to a
// live network (out of scope per §1's "no RPC/signing/ABI front-end").
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tonlabs/tvmtool/asm"
	"github.com/tonlabs/tvmtool/cell"
	"github.com/tonlabs/tvmtool/config"
	"github.com/tonlabs/tvmtool/disasm"
)

var (
	dashv        bool
	dashConfig   string
	dashOut      string
	dashURL      string
	dashABIPath  string
	dashKeysPath string
)

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose")
	flag.StringVar(&dashConfig, "c", defaultConfigPath(), "path to the CLI config file")
	flag.StringVar(&dashOut, "o", "-", "output file (or - for stdout)")
	flag.StringVar(&dashURL, "url", "", "set config: network endpoint")
	flag.StringVar(&dashABIPath, "abi", "", "set config: path to contract ABI")
	flag.StringVar(&dashKeysPath, "keys", "", "set config: path to keypair file")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tonlabs-cli.conf.json"
	}
	return filepath.Join(home, "tonlabs-cli.conf.json")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+f+"\n", args...)
	os.Exit(1)
}

func logf(f string, args ...interface{}) {
	if !dashv {
		return
	}
	if f[len(f)-1] != '\n' {
		f += "\n"
	}
	fmt.Fprintf(os.Stderr, f, args...)
}

func openOutput() (*os.File, func()) {
	if dashOut == "-" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(dashOut)
	if err != nil {
		exitf("creating %s: %s", dashOut, err)
	}
	return f, func() { f.Close() }
}

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	invocation := uuid.NewString()
	logf("invocation %s: %s %v", invocation, args[0], args[1:])

	switch args[0] {
	case "version":
		cmdVersion()
	case "config":
		cmdConfig(args[1:])
	case "asm":
		cmdAsm(args[1:])
	case "disasm":
		cmdDisasm(args[1:])
	case "genaddr", "deploy", "call", "run", "account":
		exitf("%s requires network access, which this build does not provide", args[0])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "    %s version\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        print the tool version\n")
	fmt.Fprintf(os.Stderr, "    %s config [-url U] [-abi PATH] [-keys PATH]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        show or update the persisted CLI configuration\n")
	fmt.Fprintf(os.Stderr, "    %s asm <source.s> [lib.s...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        assemble source (+ optional libraries) and report its symbol table\n")
	fmt.Fprintf(os.Stderr, "    %s disasm <file>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        disassemble a file of raw code bytes (not a bag-of-cells) into mnemonics\n")
	flag.Usage()
}

func cmdVersion() {
	fmt.Fprintln(os.Stdout, "tvmtool 0.1.0")
}

func cmdConfig(args []string) {
	// accept -url/-abi/-keys after the subcommand as well as before it
	flag.CommandLine.Parse(args)
	cfg, err := config.Load(dashConfig)
	if err != nil {
		exitf("%s", err)
	}
	changed := false
	if dashURL != "" {
		cfg.URL = dashURL
		changed = true
	}
	if dashABIPath != "" {
		cfg.ABIPath = dashABIPath
		changed = true
	}
	if dashKeysPath != "" {
		cfg.KeysPath = dashKeysPath
		changed = true
	}
	if changed {
		if err := config.Save(dashConfig, cfg); err != nil {
			exitf("%s", err)
		}
		logf("wrote %s", dashConfig)
	}
	fmt.Fprintln(os.Stdout, cfg.String())
}

func cmdAsm(args []string) {
	if len(args) < 1 {
		exitf("usage: asm <source.s> [lib.s...]")
	}
	source := openReadSeeker(args[0])
	defer source.Close()

	var libs []io.ReadSeeker
	for _, path := range args[1:] {
		f := openReadSeeker(path)
		defer f.Close()
		libs = append(libs, f)
	}

	p := asm.NewParseEngine()
	if err := p.Parse(source, libs); err != nil {
		exitf("assembling %s: %s", args[0], err)
	}

	out, closeOut := openOutput()
	defer closeOut()
	fmt.Fprintf(out, "entry point:\n%s\n", p.Entry())
	fmt.Fprintf(out, "fingerprint: %016x\n", p.Fingerprint())
	fmt.Fprintf(out, "functions:\n")
	signed := p.Signed()
	for id, body := range p.Globals() {
		fmt.Fprintf(out, "  id=%08x signed=%v\n%s\n", id, signed[id], body)
	}
}

func openReadSeeker(path string) *os.File {
	f, err := os.Open(path)
	if err != nil {
		exitf("opening %s: %s", path, err)
	}
	return f
}

func cmdDisasm(args []string) {
	if len(args) != 1 {
		exitf("usage: disasm <file>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		exitf("reading %s: %s", args[0], err)
	}

	out, closeOut := openOutput()
	defer closeOut()

	table := disasm.NewCodePage0()
	s := cell.NewSlice(data, len(data)*8, nil)
	for s.RemainingBits() >= 8 {
		ins, err := table.Decode(s)
		if err != nil {
			exitf("disassembling %s: %s", args[0], err)
		}
		fmt.Fprintf(out, "%s %v\n", ins.Mnemonic, ins.Operands)
	}
}
