package asm

import "regexp"

// These mirror parser.rs's PATTERN_* constants line for line: the assembler
// recognizes its directives and labels by regular expression, not by a
// tokenizing lexer, because the surrounding instruction text is opaque to
// this package (§1, loader bodies are out of scope — only the lines that
// matter for symbol-table/data-segment bookkeeping are parsed here).
var (
	patternGlobl    = regexp.MustCompile(`^[\t ]*\.globl[\t ]+([a-zA-Z0-9_]+)`)
	patternData     = regexp.MustCompile(`^[\t ]*\.data`)
	patternInternal = regexp.MustCompile(`^[\t ]*\.internal[\t ]+(:[a-zA-Z0-9_]+)`)
	patternSelector = regexp.MustCompile(`^[\t ]*\.selector`)
	patternAlias    = regexp.MustCompile(`^[\t ]*\.internal-alias (:[a-zA-Z0-9_]+),[\t ]+(-?\d+)`)
	patternLabel    = regexp.MustCompile(`^[a-zA-Z0-9_]+:`)
	patternParam    = regexp.MustCompile(`^[\t ]+\.([a-zA-Z0-9_]+)`)
	patternType     = regexp.MustCompile(`^[\t ]*\.type[\t ]+([a-zA-Z0-9_]+),[\t ]*@([a-zA-Z]+)`)
	patternSize     = regexp.MustCompile(`^[\t ]*\.size[\t ]+([a-zA-Z0-9_]+),[\t ]*([.a-zA-Z0-9_]+)`)
	patternLabelRef = regexp.MustCompile(`\$:?[A-Za-z0-9_]+\$`)
)

const (
	sectionNone     = ""
	sectionGlobl    = ".globl"
	sectionInternal = ".internal"
	sectionData     = ".data"
	sectionSelector = ".selector"
)

const funcSuffixAuth = "_authorized"
