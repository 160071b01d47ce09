package scope

import (
	"github.com/metamath-go/mmverify/mm/mmerr"
	"github.com/metamath-go/mmverify/mm/token"
)

// FrameStack is a nonempty ordered sequence of frames. The top (the last
// element) is the active scope; declarations always mutate it, and lookups
// walk from top outward. FrameStack is mutated only by the database driver
// (mm/session) — every other component only reads it.
type FrameStack struct {
	frames []*Frame
}

// New returns a FrameStack with a single root frame already pushed.
func New() *FrameStack {
	return &FrameStack{frames: []*Frame{newFrame()}}
}

// Push opens a new, empty scope on entering ${.
func (fs *FrameStack) Push() {
	fs.frames = append(fs.frames, newFrame())
}

// Pop closes the current scope on leaving $}. It never pops the root frame.
func (fs *FrameStack) Pop() {
	if len(fs.frames) > 1 {
		fs.frames = fs.frames[:len(fs.frames)-1]
	}
}

// Depth returns the number of frames currently on the stack.
func (fs *FrameStack) Depth() int {
	return len(fs.frames)
}

func (fs *FrameStack) top() *Frame {
	return fs.frames[len(fs.frames)-1]
}

// AddConst declares tok as a constant in the top frame.
func (fs *FrameStack) AddConst(tok token.Token) error {
	top := fs.top()
	if top.consts[tok] {
		return mmerr.New(mmerr.DuplicateConst, "constant %q already declared in this scope", tok)
	}
	if top.vars[tok] {
		return mmerr.New(mmerr.ConstVarConflict, "%q already declared as a variable in this scope", tok)
	}
	top.consts[tok] = true
	return nil
}

// AddVar declares tok as a variable in the top frame.
func (fs *FrameStack) AddVar(tok token.Token) error {
	top := fs.top()
	if top.vars[tok] {
		return mmerr.New(mmerr.DuplicateVar, "variable %q already declared in this scope", tok)
	}
	if top.consts[tok] {
		return mmerr.New(mmerr.ConstVarConflict, "%q already declared as a constant in this scope", tok)
	}
	top.vars[tok] = true
	return nil
}

// AddFloating registers a $f hypothesis on the top frame.
func (fs *FrameStack) AddFloating(v, kind token.Token, label string) error {
	if !fs.LookupVar(v) {
		return mmerr.New(mmerr.UnknownVar, "variable %q in $f is not active", v)
	}
	if !fs.LookupConst(kind) {
		return mmerr.New(mmerr.UnknownConst, "constant %q in $f is not active", kind)
	}
	top := fs.top()
	if _, ok := top.floatingIndex[v]; ok {
		return mmerr.New(mmerr.DuplicateFloating, "variable %q already has a floating hypothesis in this scope", v)
	}
	top.floating = append(top.floating, FloatingHyp{Var: v, Typecode: kind, Label: label})
	top.floatingIndex[v] = label
	return nil
}

// AddEssential registers an $e hypothesis on the top frame.
func (fs *FrameStack) AddEssential(expr Expression, label string) {
	top := fs.top()
	top.essential = append(top.essential, EssentialHyp{Expr: expr, Label: label})
	top.essentialIndex[expr.key()] = label
}

// AddDisjoint declares every unordered pair among toks distinct, the $d
// directive's compound form.
func (fs *FrameStack) AddDisjoint(toks []token.Token) {
	top := fs.top()
	for i, x := range toks {
		for _, y := range toks[i+1:] {
			if x == y {
				continue
			}
			top.disjoint[canonicalPair(x, y)] = true
		}
	}
}

// LookupConst reports whether tok is a constant in any frame on the stack.
func (fs *FrameStack) LookupConst(tok token.Token) bool {
	for i := len(fs.frames) - 1; i >= 0; i-- {
		if fs.frames[i].consts[tok] {
			return true
		}
	}
	return false
}

// LookupVar reports whether tok is a variable in any frame on the stack.
func (fs *FrameStack) LookupVar(tok token.Token) bool {
	for i := len(fs.frames) - 1; i >= 0; i-- {
		if fs.frames[i].vars[tok] {
			return true
		}
	}
	return false
}

// LookupDisjoint reports whether x and y are declared disjoint in any
// frame on the stack.
func (fs *FrameStack) LookupDisjoint(x, y token.Token) bool {
	pair := canonicalPair(x, y)
	for i := len(fs.frames) - 1; i >= 0; i-- {
		if fs.frames[i].disjoint[pair] {
			return true
		}
	}
	return false
}

// LookupFloating returns the label of the floating hypothesis associated
// with v, walking top-to-bottom and returning the nearest-scope result.
func (fs *FrameStack) LookupFloating(v token.Token) (string, error) {
	for i := len(fs.frames) - 1; i >= 0; i-- {
		if label, ok := fs.frames[i].floatingIndex[v]; ok {
			return label, nil
		}
	}
	return "", mmerr.New(mmerr.NotFound, "no floating hypothesis for variable %q", v)
}

// LookupEssential returns the label of the essential hypothesis matching
// expr, walking top-to-bottom and returning the nearest-scope result.
func (fs *FrameStack) LookupEssential(expr Expression) (string, error) {
	key := expr.key()
	for i := len(fs.frames) - 1; i >= 0; i-- {
		if label, ok := fs.frames[i].essentialIndex[key]; ok {
			return label, nil
		}
	}
	return "", mmerr.New(mmerr.NotFound, "no essential hypothesis matching expression")
}
