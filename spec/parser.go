package spec

import (
	"io"

	verr "github.com/openvt/vtgen/error"
)

type RootNode struct {
	MetaData *MetaDataNode
	Blocks   []*StateBlockNode
}

type MetaDataNode struct {
	Name string
	Pos  Position
}

type StateBlockNode struct {
	State *SymbolNode
	Rules []*RuleNode
	Pos   Position
}

type RuleNode struct {
	Pattern    *PatternNode
	Transition *TransitionNode
	Pos        Position
}

// PatternNode is an input pattern. A byte literal is represented as a
// degenerate range with Start == End.
type PatternNode struct {
	Start int
	End   int
	Range bool
	Pos   Position
}

type TransitionNode struct {
	Symbols []*SymbolNode
	Pos     Position
}

type SymbolNode struct {
	Name string
	Pos  Position
}

func raiseSyntaxError(synErr *SyntaxError, pos Position) {
	panic(&verr.SpecError{
		Cause: synErr,
		Row:   pos.Row,
		Col:   pos.Col,
	})
}

func Parse(src io.Reader) (*RootNode, error) {
	p := newParser(src)
	root, err := p.parse()
	if err != nil {
		return nil, err
	}
	return root, nil
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) *parser {
	return &parser{
		lex: newLexer(src),
	}
}

func (p *parser) parse() (root *RootNode, retErr error) {
	defer func() {
		err := recover()
		if err != nil {
			specErr, ok := err.(*verr.SpecError)
			if !ok {
				panic(err)
			}
			retErr = verr.SpecErrors{specErr}
			return
		}
	}()
	return p.parseRoot(), nil
}

func (p *parser) parseRoot() *RootNode {
	var md *MetaDataNode
	if p.consume(tokenKindMetaDataMarker) {
		md = p.parseMetaData()
	}
	var blocks []*StateBlockNode
	for {
		blk := p.parseStateBlock()
		if blk == nil {
			break
		}
		blocks = append(blocks, blk)
	}
	return &RootNode{
		MetaData: md,
		Blocks:   blocks,
	}
}

func (p *parser) parseMetaData() *MetaDataNode {
	pos := p.lastTok.pos
	if !p.consume(tokenKindID) || p.lastTok.text != "name" {
		raiseSyntaxError(synErrUnsupportedMetaData, p.errorPos())
	}
	if !p.consume(tokenKindID) {
		raiseSyntaxError(synErrNoMetaDataParam, p.errorPos())
	}
	return &MetaDataNode{
		Name: p.lastTok.text,
		Pos:  pos,
	}
}

func (p *parser) parseStateBlock() *StateBlockNode {
	if p.consume(tokenKindEOF) {
		return nil
	}
	if !p.consume(tokenKindID) {
		raiseSyntaxError(synErrNoStateName, p.errorPos())
	}
	state := &SymbolNode{
		Name: p.lastTok.text,
		Pos:  p.lastTok.pos,
	}
	if !p.consume(tokenKindFatArrow) {
		raiseSyntaxError(synErrNoBlockArrow, p.errorPos())
	}
	if !p.consume(tokenKindBlockOpen) {
		raiseSyntaxError(synErrNoBlockOpen, p.errorPos())
	}
	var rules []*RuleNode
	for {
		rule := p.parseRule()
		if rule == nil {
			break
		}
		rules = append(rules, rule)
	}
	if !p.consume(tokenKindBlockClose) {
		raiseSyntaxError(synErrUnclosedBlock, p.errorPos())
	}
	p.consume(tokenKindComma)
	return &StateBlockNode{
		State: state,
		Rules: rules,
		Pos:   state.Pos,
	}
}

func (p *parser) parseRule() *RuleNode {
	pat := p.parsePattern()
	if pat == nil {
		return nil
	}
	if !p.consume(tokenKindFatArrow) {
		raiseSyntaxError(synErrNoRuleArrow, p.errorPos())
	}
	tr := p.parseTransition()
	p.consume(tokenKindComma)
	return &RuleNode{
		Pattern:    pat,
		Transition: tr,
		Pos:        pat.Pos,
	}
}

func (p *parser) parsePattern() *PatternNode {
	if !p.consume(tokenKindInt) {
		return nil
	}
	start := p.lastTok.num
	pos := p.lastTok.pos
	if start > 0xff {
		raiseSyntaxError(synErrByteOutOfRange, pos)
	}
	if !p.consume(tokenKindRange) {
		return &PatternNode{
			Start: start,
			End:   start,
			Pos:   pos,
		}
	}
	if !p.consume(tokenKindInt) {
		raiseSyntaxError(synErrNoRangeEnd, p.errorPos())
	}
	end := p.lastTok.num
	if end > 0xff {
		raiseSyntaxError(synErrByteOutOfRange, p.lastTok.pos)
	}
	if start > end {
		raiseSyntaxError(synErrRangeReversed, pos)
	}
	return &PatternNode{
		Start: start,
		End:   end,
		Range: true,
		Pos:   pos,
	}
}

func (p *parser) parseTransition() *TransitionNode {
	switch {
	case p.consume(tokenKindID):
		sym := &SymbolNode{
			Name: p.lastTok.text,
			Pos:  p.lastTok.pos,
		}
		return &TransitionNode{
			Symbols: []*SymbolNode{sym},
			Pos:     sym.Pos,
		}
	case p.consume(tokenKindTupleOpen):
		pos := p.lastTok.pos
		if !p.consume(tokenKindID) {
			raiseSyntaxError(synErrInvalidTransition, p.errorPos())
		}
		first := &SymbolNode{
			Name: p.lastTok.text,
			Pos:  p.lastTok.pos,
		}
		if !p.consume(tokenKindComma) {
			raiseSyntaxError(synErrInvalidTransition, p.errorPos())
		}
		if !p.consume(tokenKindID) {
			raiseSyntaxError(synErrInvalidTransition, p.errorPos())
		}
		second := &SymbolNode{
			Name: p.lastTok.text,
			Pos:  p.lastTok.pos,
		}
		if !p.consume(tokenKindTupleClose) {
			raiseSyntaxError(synErrInvalidTransition, p.errorPos())
		}
		return &TransitionNode{
			Symbols: []*SymbolNode{first, second},
			Pos:     pos,
		}
	}
	raiseSyntaxError(synErrNoTransition, p.errorPos())
	return nil
}

func (p *parser) consume(expected tokenKind) bool {
	var tok *token
	if p.peekedTok != nil {
		tok = p.peekedTok
		p.peekedTok = nil
	} else {
		var err error
		tok, err = p.lex.next()
		if err != nil {
			specErr, ok := err.(*verr.SpecError)
			if !ok {
				panic(err)
			}
			panic(specErr)
		}
	}
	p.lastTok = tok
	if tok.kind == tokenKindInvalid {
		panic(&verr.SpecError{
			Cause:  synErrInvalidToken,
			Detail: tok.text,
			Row:    tok.pos.Row,
			Col:    tok.pos.Col,
		})
	}
	if tok.kind == expected {
		return true
	}
	p.peekedTok = tok
	p.lastTok = nil

	return false
}

// errorPos returns the position of the token that refused to match, or of the
// last consumed token when nothing is pending.
func (p *parser) errorPos() Position {
	if p.peekedTok != nil {
		return p.peekedTok.pos
	}
	if p.lastTok != nil {
		return p.lastTok.pos
	}
	return Position{}
}
