package lang

import "regexp"

// Patterns is the fixed lexical surface of §4.3, reimplemented from the
// original Rust revisions' lazy_static regex table (original_source
// src/utils/regex.rs). Pure data: every other component treats these as
// read-only classifiers, never mutating them.
var (
	reInstantiator = regexp.MustCompile(`^[ \t]*gebruik[ \t]+(kleurOog|zwOog|kompas|[a-z])[ \t]*$`)
	rePrint        = regexp.MustCompile(`^[ \t]*print[ \t]+(.+?)[ \t]*$`)
	reAssignment   = regexp.MustCompile(`^[ \t]*([a-z])[ \t]*=[ \t]*(.+?)[ \t]*$`)
	reZolangHeader = regexp.MustCompile(`^[ \t]*zolang[ \t]+(.+?)[ \t]*\{[ \t]*$`)
	reAlsHeader    = regexp.MustCompile(`^[ \t]*als[ \t]+(.+?)[ \t]*\{[ \t]*$`)

	// reIntExpr's left group is greedy so a chain like "a + b - c" splits at
	// its last operator first, making the left side "a + b" a candidate for
	// recursive re-parsing (left-associativity by source order).
	reIntExpr  = regexp.MustCompile(`^[ \t]*(.+)[ \t]+(\+|-|\*|/|%)[ \t]+(\S+)[ \t]*$`)
	reBoolExpr = regexp.MustCompile(`^[ \t]*(\S+)[ \t]+(==|!=|>|<)[ \t]+(.+)[ \t]*$`)

	reStrayBrace = regexp.MustCompile(`[ \t]*\S[ \t]*\}[ \t]*$`)
	reHangingOp  = regexp.MustCompile(`(==|!=|>|<|\+|-|\*|/|%)[ \t\{\}]*$`)

	reElseToggle = regexp.MustCompile(`^\}[ \t]*anders[ \t]*\{$`)

	reActionLine = regexp.MustCompile(`^[ \t]*(draaiLinks|draaiRechts|stapVooruit|stapAchteruit)[ \t]*$`)

	reIntLiteral = regexp.MustCompile(`^[0-9]+$`)
	reLetter     = regexp.MustCompile(`^[a-z]$`)
)
