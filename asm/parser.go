// Package asm implements the two-pass textual assembler: it reads TVM
// assembly source, builds the symbol tables a linker needs (function IDs,
// internal-label IDs, the data segment), and substitutes label references
// in the instruction text once every symbol is known (§4.2).
//
// This package never interprets or validates instruction mnemonics — that
// is the disasm package's (and the external loader bodies') concern. It
// only recognizes the small set of directives and label syntax that carry
// linking information: .globl, .type, .size, .internal, .internal-alias,
// .data, .selector, label: lines, and $NAME$ / $:NAME$ references.
package asm

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"

	"github.com/tonlabs/tvmtool/cell"
)

// ParseEngine accumulates the symbol tables and data segment produced by
// assembling one or more source files. Its field names mirror parser.rs's
// ParseEngine exactly, since they're also the vocabulary used throughout
// SPEC_FULL.md's description of the assembler's laws.
type ParseEngine struct {
	globals    map[string]*object
	globalSeq  map[string]int
	nextSeq    int
	xrefs      map[string]uint32
	intrefs    map[string]int32
	aliases    map[string]int32
	internals  map[int32]string
	signed     map[uint32]bool
	entryPoint string
}

// NewParseEngine returns an empty engine, ready to have one or more sources
// parsed into it.
func NewParseEngine() *ParseEngine {
	return &ParseEngine{
		globals:   make(map[string]*object),
		globalSeq: make(map[string]int),
		xrefs:     make(map[string]uint32),
		intrefs:   make(map[string]int32),
		aliases:   make(map[string]int32),
		internals: make(map[int32]string),
		signed:    make(map[uint32]bool),
	}
}

// Parse assembles libs (in order) followed by source, each in two passes:
// a first pass that builds the symbol tables and data segment without
// resolving label references, and a second pass, over the same text, that
// captures the .selector body and substitutes label references using every
// symbol known so far (§4.2 "Two-pass assembly").
//
// Each input runs both of its passes before the next input is read, with
// the library files first, mirroring parser.rs: a source file's bodies can
// reference symbols a library defines, but a library's bodies cannot
// reference symbols that only a later input defines (those become "???").
func (p *ParseEngine) Parse(source io.ReadSeeker, libs []io.ReadSeeker) error {
	for _, lib := range libs {
		if err := p.parseCode(lib, true); err != nil {
			return err
		}
		if _, err := lib.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("asm: seeking library file: %w", err)
		}
		if err := p.parseCode(lib, false); err != nil {
			return err
		}
	}
	if err := p.parseCode(source, true); err != nil {
		return err
	}
	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("asm: seeking source file: %w", err)
	}
	if err := p.parseCode(source, false); err != nil {
		return err
	}
	if p.entryPoint == "" {
		return fmt.Errorf("asm: selector not found")
	}
	return nil
}

// Data serializes the assembled data segment: a cell whose sole reference is
// the persistent-map root built by buildData (§4.2 "Data segment").
func (p *ParseEngine) Data() (*cell.Cell, error) {
	dict, err := p.buildData()
	if err != nil {
		return nil, err
	}
	return dict.Root()
}

// Entry returns the .selector body captured during the second pass.
func (p *ParseEngine) Entry() string { return p.entryPoint }

// Internals returns the internal-function bodies keyed by their (aliased)
// integer id.
func (p *ParseEngine) Internals() map[int32]string {
	return p.internals
}

// InternalByName resolves an internal label name to its id and body.
func (p *ParseEngine) InternalByName(name string) (int32, string, bool) {
	id, ok := p.intrefs[name]
	if !ok {
		return 0, "", false
	}
	body, ok := p.internals[id]
	return id, body, ok
}

// Globals returns every function-typed .globl object, keyed by its function
// id, in the same shape parser.rs's globals() returns.
func (p *ParseEngine) Globals() map[uint32]string {
	funcs := make(map[uint32]string, len(p.globals))
	for _, obj := range p.orderedGlobals() {
		if obj.dtype == objectFunction {
			funcs[obj.funcID] = obj.funcBody
		}
	}
	return funcs
}

// Signed reports, for each function id, whether its interface name ends in
// "_authorized" (§4.2 "Signature requirement").
func (p *ParseEngine) Signed() map[uint32]bool {
	return p.signed
}

// Fingerprint summarizes the whole assembled unit (entry point, every
// function body, every internal body) into a single 64-bit content hash,
// independent of declaration order. A redeploy tool can compare two
// Fingerprints to skip a deploy whose code is byte-for-byte identical to
// what's already on-chain — this is the assembler's one outward-facing use
// of a domain hashing library beyond the mandatory SHA-256 function ids.
func (p *ParseEngine) Fingerprint() uint64 {
	const k0, k1 = 0x646f6e277420756e, 0x6465727374616e64

	var ids []uint32
	for id := range p.Globals() {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var buf strings.Builder
	buf.WriteString(p.entryPoint)
	funcs := p.Globals()
	for _, id := range ids {
		fmt.Fprintf(&buf, "\x00%08x\x00%s", id, funcs[id])
	}
	var internalIDs []int32
	for id := range p.internals {
		internalIDs = append(internalIDs, id)
	}
	slices.Sort(internalIDs)
	for _, id := range internalIDs {
		fmt.Fprintf(&buf, "\x00%08x\x00%s", id, p.internals[id])
	}
	return siphash.Hash(k0, k1, []byte(buf.String()))
}

// orderedGlobals returns every global object in declaration order. A Go map
// has no iteration order; §9's "Deterministic data-segment layout" open
// question resolves this by tracking each symbol's first-seen sequence
// number and sorting on it before any operation — data-segment assembly,
// Globals(), Fingerprint() — that must not depend on map iteration order.
func (p *ParseEngine) orderedGlobals() []*object {
	out := make([]*object, 0, len(p.globals))
	for _, obj := range p.globals {
		out = append(out, obj)
	}
	slices.SortFunc(out, func(a, b *object) bool {
		return p.globalSeq[a.name] < p.globalSeq[b.name]
	})
	return out
}

func (p *ParseEngine) globalEntry(name string) *object {
	obj, ok := p.globals[name]
	if !ok {
		obj = newObject(name)
		p.globals[name] = obj
		p.globalSeq[name] = p.nextSeq
		p.nextSeq++
	}
	return obj
}

func (p *ParseEngine) parseCode(r io.Reader, firstPass bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	section := sectionNone
	objBody := ""
	objName := ""
	lnum := 0

	for scanner.Scan() {
		lnum++
		line := scanner.Text() + "\n"

		switch {
		case patternType.MatchString(line):
			m := patternType.FindStringSubmatch(line)
			name, typeName := m[1], m[2]
			p.globalEntry(name).setType(typeName)

		case patternSize.MatchString(line):
			m := patternSize.FindStringSubmatch(line)
			name, sizeStr := m[1], m[2]
			size, err := strconv.Atoi(sizeStr)
			if err != nil {
				return parseErrorf(lnum, ".size option is invalid")
			}
			p.globalEntry(name).size = size

		case patternGlobl.MatchString(line):
			if err := p.update(section, objName, objBody, firstPass, lnum); err != nil {
				return err
			}
			section = sectionGlobl
			objBody = ""
			objName = patternGlobl.FindStringSubmatch(line)[1]
			p.globalEntry(objName)

		case patternData.MatchString(line):
			if err := p.update(section, objName, objBody, firstPass, lnum); err != nil {
				return err
			}
			section = sectionData
			objName = ""
			objBody = ""

		case patternSelector.MatchString(line):
			if err := p.update(section, objName, objBody, firstPass, lnum); err != nil {
				return err
			}
			if firstPass {
				section = sectionNone
			} else {
				section = sectionSelector
			}
			objName = ""
			objBody = ""

		case patternInternal.MatchString(line):
			if err := p.update(section, objName, objBody, firstPass, lnum); err != nil {
				return err
			}
			section = sectionInternal
			objBody = ""
			objName = patternInternal.FindStringSubmatch(line)[1]

		case patternAlias.MatchString(line):
			m := patternAlias.FindStringSubmatch(line)
			id, err := strconv.ParseInt(m[2], 10, 32)
			if err != nil {
				return parseErrorf(lnum, "failed to parse id: %q", line)
			}
			p.aliases[m[1]] = int32(id)

		case patternLabel.MatchString(line):
			// a bare "name:" label line carries no linking information by
			// itself; it is skipped and not appended to the section body.

		case patternParam.MatchString(line):
			objBody += line

		default:
			if firstPass {
				objBody += line
			} else {
				objBody += p.replaceLabels(line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("asm: reading source: %w", err)
	}
	return p.update(section, objName, objBody, firstPass, lnum)
}

func (p *ParseEngine) update(section, name, body string, firstPass bool, lnum int) error {
	switch section {
	case sectionSelector:
		if p.entryPoint == "" {
			p.entryPoint = strings.TrimRight(body, "\n\r\t ")
		} else {
			return parseErrorf(lnum, "another selector found")
		}

	case sectionGlobl:
		obj := p.globalEntry(name)
		switch obj.dtype {
		case objectFunction:
			signed := strings.HasSuffix(name, funcSuffixAuth)
			funcID := calcFuncID(name)
			obj.funcID = funcID
			obj.funcBody = strings.TrimRight(body, "\n\r\t ")
			p.signed[funcID] = signed
			_, existed := p.xrefs[name]
			p.xrefs[name] = funcID
			if firstPass && existed {
				return parseErrorf(lnum, "global function with id = %08x already exists", funcID)
			}
		case objectData:
			if !firstPass {
				break
			}
			if err := p.updateData(body, obj); err != nil {
				return fmt.Errorf("line %d: %w", lnum, err)
			}
		case objectNone:
			return parseErrorf(lnum, "the type of global object %s is unknown; use .type %s, xxx", name, name)
		}

	case sectionInternal:
		id, ok := p.aliases[name]
		if !ok {
			return parseErrorf(lnum, "id for %q not found", name)
		}
		_, existed := p.internals[id]
		p.internals[id] = strings.TrimRight(body, "\n\r\t ")
		if firstPass && existed {
			return parseErrorf(lnum, "internal function with id = %d already exists", id)
		}
		p.intrefs[name] = id
	}
	return nil
}

func (p *ParseEngine) updateData(body string, obj *object) error {
	for _, param := range strings.Split(body, "\n") {
		m := patternParam.FindStringSubmatch(param)
		if m == nil {
			continue
		}
		width, err := dataWidthOf(m[1])
		if err != nil {
			return err
		}
		if obj.size < width {
			return fmt.Errorf("global object has invalid .size parameter: too small")
		}
		obj.size -= width
		idx := strings.Index(param, "."+m[1])
		rest := param[idx+len("."+m[1]):]
		rest = strings.TrimLeft(strings.TrimSpace(rest), ",")
		rest = strings.TrimSpace(rest)
		value, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return fmt.Errorf("value is invalid number")
		}
		obj.data = append(obj.data, dataValue{value: value, width: width})
	}
	if obj.size > 0 {
		return fmt.Errorf("global object has invalid .size parameter: bigger than defined values")
	}
	return nil
}

// buildData lays out every data-typed global's values, in declaration
// order, into a single 64-bit-keyed persistent map (§4.2 "Data segment"):
// the index is a dense counter across all data objects, not per-object.
func (p *ParseEngine) buildData() (*cell.Dict, error) {
	dict := cell.NewDict(64)
	var index uint64
	for _, obj := range p.orderedGlobals() {
		if obj.dtype != objectData {
			continue
		}
		for _, v := range obj.data {
			b := cell.NewBuilder()
			if err := v.serialize(b); err != nil {
				return nil, err
			}
			if err := dict.Set(index, b); err != nil {
				return nil, err
			}
			index++
		}
	}
	return dict, nil
}

// replaceLabels substitutes every $NAME$ / $:NAME$ reference in line with
// the decimal function id ($NAME$, looked up in xrefs) or internal-label id
// ($:NAME$, looked up in intrefs). An unresolved reference becomes the
// literal "???" rather than an error (§4.2 "Unresolved references").
func (p *ParseEngine) replaceLabels(line string) string {
	return patternLabelRef.ReplaceAllStringFunc(line, func(m string) string {
		name := m[1 : len(m)-1]
		if strings.HasPrefix(name, ":") {
			if id, ok := p.intrefs[name]; ok {
				return strconv.FormatInt(int64(id), 10)
			}
			return "???"
		}
		if id, ok := p.xrefs[name]; ok {
			return strconv.FormatUint(uint64(id), 10)
		}
		return "???"
	})
}

// calcFuncID computes a function's interface id: the first four bytes of
// SHA-256(name), big-endian, interpreted as an unsigned 32-bit integer
// (§4.2 "Function id"). function_id("constructor") == 0x68B55F3F is the
// worked example the tests check against.
func calcFuncID(name string) uint32 {
	sum := sha256.Sum256([]byte(name))
	return uint32(sum[0])<<24 | uint32(sum[1])<<16 | uint32(sum[2])<<8 | uint32(sum[3])
}

