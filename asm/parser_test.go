package asm

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"
)

func seekReaderFrom(s string) *bytes.Reader {
	return bytes.NewReader([]byte(s))
}

func TestFunctionIDConstructorWorkedExample(t *testing.T) {
	if got := calcFuncID("constructor"); got != 0x68B55F3F {
		t.Fatalf("calcFuncID(constructor) = %#08x, want 0x68b55f3f", got)
	}
}

const sampleSource = `
.selector
PUSHINT 0
	.type	constructor, @function
.globl	constructor
	PUSHINT 1
	PUSHINT 2
	ADD
.globl	helper
	.type	helper, @function
	PUSHINT 42
`

const sampleLibrary = `
.internal-alias :on_bounce, -1
.internal	:on_bounce
	PUSHINT 0
`

func TestTwoFileParseBuildsSymbolTables(t *testing.T) {
	p := NewParseEngine()
	libs := []io.ReadSeeker{seekReaderFrom(sampleLibrary)}
	if err := p.Parse(seekReaderFrom(sampleSource), libs); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Entry() == "" {
		t.Fatal("entry point not captured")
	}
	funcs := p.Globals()
	if len(funcs) != 2 {
		t.Fatalf("Globals() = %d entries, want 2", len(funcs))
	}
	id, body, ok := p.InternalByName(":on_bounce")
	if !ok {
		t.Fatal("internal function :on_bounce not found")
	}
	if id != -1 {
		t.Fatalf("internal id = %d, want -1", id)
	}
	if !strings.Contains(body, "PUSHINT 0") {
		t.Fatalf("internal body = %q", body)
	}
}

func TestSignedFlagFollowsAuthorizedSuffix(t *testing.T) {
	src := `
.selector
NOP
.type	set_price_authorized, @function
.globl	set_price_authorized
	NOP
`
	p := NewParseEngine()
	if err := p.Parse(seekReaderFrom(src), nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	id := calcFuncID("set_price_authorized")
	if !p.Signed()[id] {
		t.Fatalf("set_price_authorized should be signed")
	}
}

func TestDuplicateFunctionDefinitionIsRejected(t *testing.T) {
	src := `
.selector
NOP
.type	constructor, @function
.globl	constructor
	NOP
.type	constructor, @function
.globl	constructor
	NOP
`
	p := NewParseEngine()
	if err := p.Parse(seekReaderFrom(src), nil); err == nil {
		t.Fatal("expected duplicate-function error")
	}
}

func TestDataSegmentAssemblesDeclaredValues(t *testing.T) {
	src := `
.selector
NOP
.data
	.globl	g_counter
	.type	g_counter, @object
	.size	g_counter, 8
	.long	7
	.long	-1
`
	p := NewParseEngine()
	if err := p.Parse(seekReaderFrom(src), nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c, err := p.Data()
	if err != nil {
		t.Fatalf("Data: %v", err)
	}
	if len(c.Refs()) != 1 {
		t.Fatalf("data cell should wrap exactly one reference, got %d", len(c.Refs()))
	}
}

func TestLabelSubstitutionResolvesFunctionReference(t *testing.T) {
	src := `
.selector
PUSHINT $constructor$
	.type	constructor, @function
.globl	constructor
	NOP
`
	p := NewParseEngine()
	if err := p.Parse(seekReaderFrom(src), nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	id := calcFuncID("constructor")
	want := strconv.FormatUint(uint64(id), 10)
	if !strings.Contains(p.Entry(), want) {
		t.Fatalf("entry = %q, want substring %q", p.Entry(), want)
	}
}

func TestUnresolvedLabelBecomesLiteralPlaceholder(t *testing.T) {
	src := `
.selector
PUSHINT $does_not_exist$
`
	p := NewParseEngine()
	if err := p.Parse(seekReaderFrom(src), nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(p.Entry(), "???") {
		t.Fatalf("entry = %q, want literal ??? placeholder", p.Entry())
	}
}

func TestFingerprintIsStableAcrossDeclarationOrder(t *testing.T) {
	srcA := `
.selector
NOP
.type	a, @function
.globl	a
	NOP
.type	b, @function
.globl	b
	NOP
`
	srcB := `
.selector
NOP
.type	b, @function
.globl	b
	NOP
.type	a, @function
.globl	a
	NOP
`
	pa := NewParseEngine()
	if err := pa.Parse(seekReaderFrom(srcA), nil); err != nil {
		t.Fatalf("Parse A: %v", err)
	}
	pb := NewParseEngine()
	if err := pb.Parse(seekReaderFrom(srcB), nil); err != nil {
		t.Fatalf("Parse B: %v", err)
	}
	if pa.Fingerprint() != pb.Fingerprint() {
		t.Fatal("Fingerprint should not depend on declaration order of unrelated globals")
	}
}

func TestMissingSelectorIsAnError(t *testing.T) {
	p := NewParseEngine()
	err := p.Parse(seekReaderFrom(".type a, @function\n.globl a\n\tNOP\n"), nil)
	if err == nil {
		t.Fatal("expected missing-selector error")
	}
}

