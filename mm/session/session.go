// Package session implements the database driver (§4.7): it drives a
// token stream to completion, dispatching top-level declarations into the
// frame stack and label table, and exposes the two public entry points
// (§6) surrounding code calls into this module through.
package session

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/metamath-go/mmverify/mm/labels"
	"github.com/metamath-go/mmverify/mm/mmerr"
	"github.com/metamath-go/mmverify/mm/proof"
	"github.com/metamath-go/mmverify/mm/scope"
	"github.com/metamath-go/mmverify/mm/token"
)

// Session owns one database's frame stack and label table for the duration
// of a single verification run; the token stream is supplied per Ingest call. It is not safe for
// concurrent use — a database session is strictly single-threaded (§5).
type Session struct {
	id  uuid.UUID
	fs  *scope.FrameStack
	tbl *labels.Table

	verbosity int
	logger    *zap.SugaredLogger
}

// New creates an empty session. verbosity controls diagnostic output only
// (§6): 0 is silent, 1 logs at info level (one line per verified theorem,
// matching the original's vprint(1, 'verifying', label)), 2+ logs at debug
// level; the only debug-level lines (one per $f) are emitted from verbosity
// 15 up. It never affects verification semantics.
func New(verbosity int) *Session {
	var zl *zap.Logger
	var err error
	switch {
	case verbosity <= 0:
		zl = zap.NewNop()
	case verbosity == 1:
		zl, err = zap.NewProduction()
	default:
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		zl = zap.NewNop()
	}

	id := uuid.New()
	return &Session{
		id:        id,
		fs:        scope.New(),
		tbl:       labels.New(),
		verbosity: verbosity,
		logger:    zl.Sugar().With("session", id.String()),
	}
}

// ID returns the session's identifier, included in every log line so that
// several concurrent mmverify invocations stay distinguishable in
// aggregated logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Labels returns a defensive copy of the current label table, for
// introspection (the original's MM.dump()).
func (s *Session) Labels() map[string]labels.Entry {
	return s.tbl.Snapshot()
}

// IngestFile opens path and ingests it as a database. If verify is false,
// $p bodies are accepted without being checked.
func (s *Session) IngestFile(path string, verify bool) error {
	stream, err := token.NewFile(path)
	if err != nil {
		return err
	}
	defer stream.Close()
	return s.Ingest(stream, verify)
}

// IngestString ingests src, an in-memory database (most useful for tests).
func (s *Session) IngestString(src string, verify bool) error {
	stream := token.New(strings.NewReader(src))
	defer stream.Close()
	return s.Ingest(stream, verify)
}

// Ingest drives stream to completion, updating the session's database.
func (s *Session) Ingest(stream *token.Stream, verify bool) error {
	return s.read(stream, verify)
}

// Prove runs the proof checker standalone against the session's current
// database state. If expected is non-nil, the derived expression must
// equal it; otherwise the derived expression is returned as-is.
func (s *Session) Prove(label string, expected scope.Expression, proofToks []token.Token) (scope.Expression, error) {
	return proof.New(s.fs, s.tbl).Prove(label, expected, proofToks)
}

// read implements the top-level dispatch table of §4.7. It pushes a fresh
// scope on entry and pops it on $}, end-of-stream, or error — the "root
// frame" the database driver owns for the call is exactly this pushed
// scope; FrameStack itself never drops below one frame (§3's non-empty
// invariant), so the very first call runs at depth 2 and leaves the stack
// at depth 1 rather than 0. The frame left behind is the empty root frame
// from scope.New, so lookups after Ingest (e.g. from Session.Prove) see no
// declarations either way.
func (s *Session) read(stream *token.Stream, verify bool) error {
	s.fs.Push()
	defer s.fs.Pop()

	pending := ""
	for {
		tok, ok, err := stream.Next()
		if err != nil {
			s.diag(1, "read error: %v", err)
			return err
		}
		if !ok || tok == "$}" {
			return nil
		}

		switch {
		case tok == "$c":
			stat, err := stream.ReadStatement()
			if err != nil {
				return err
			}
			for _, c := range stat {
				if err := s.fs.AddConst(c); err != nil {
					return err
				}
			}

		case tok == "$v":
			stat, err := stream.ReadStatement()
			if err != nil {
				return err
			}
			for _, v := range stat {
				if err := s.fs.AddVar(v); err != nil {
					return err
				}
			}

		case tok == "$d":
			stat, err := stream.ReadStatement()
			if err != nil {
				return err
			}
			s.fs.AddDisjoint(stat)

		case tok == "$f":
			if pending == "" {
				return mmerr.New(mmerr.MalformedStatement, "$f must have a label")
			}
			stat, err := stream.ReadStatement()
			if err != nil {
				return err
			}
			if len(stat) != 2 {
				return mmerr.WithLabel(mmerr.MalformedStatement, pending, "$f must have exactly 2 tokens, got %d", len(stat))
			}
			kind, v := stat[0], stat[1]
			if err := s.fs.AddFloating(v, kind, pending); err != nil {
				return err
			}
			if err := s.tbl.Declare(pending, labels.Entry{
				Kind:     labels.Floating,
				Floating: labels.FloatingPayload{Typecode: kind, Var: v},
			}); err != nil {
				return err
			}
			s.diag(15, "%s $f %s %s $.", pending, kind, v)
			pending = ""

		case tok == "$e":
			if pending == "" {
				return mmerr.New(mmerr.MalformedStatement, "$e must have a label")
			}
			stat, err := stream.ReadStatement()
			if err != nil {
				return err
			}
			s.fs.AddEssential(stat, pending)
			if err := s.tbl.Declare(pending, labels.Entry{Kind: labels.Essential, Essential: stat}); err != nil {
				return err
			}
			pending = ""

		case tok == "$a":
			if pending == "" {
				return mmerr.New(mmerr.MalformedStatement, "$a must have a label")
			}
			stat, err := stream.ReadStatement()
			if err != nil {
				return err
			}
			af := scope.MakeAssertion(s.fs, stat)
			if err := s.tbl.Declare(pending, labels.Entry{Kind: labels.Axiom, Frame: af}); err != nil {
				return err
			}
			pending = ""

		case tok == "$p":
			if pending == "" {
				return mmerr.New(mmerr.MalformedStatement, "$p must have a label")
			}
			label := pending
			stat, err := stream.ReadStatement()
			if err != nil {
				return err
			}
			eq := indexOf(stat, "$=")
			if eq < 0 {
				return mmerr.WithLabel(mmerr.MalformedProof, label, "$p must contain a proof after $=")
			}
			concl, proofToks := scope.Expression(stat[:eq]), stat[eq+1:]

			if verify {
				s.diag(1, "verifying %s", label)
				if _, err := proof.New(s.fs, s.tbl).Prove(label, concl, proofToks); err != nil {
					s.diag(1, "%s failed: %v", label, err)
					return err
				}
			}
			af := scope.MakeAssertion(s.fs, concl)
			if err := s.tbl.Declare(label, labels.Entry{Kind: labels.Theorem, Frame: af}); err != nil {
				return err
			}
			pending = ""

		case tok == "${":
			if err := s.read(stream, verify); err != nil {
				return err
			}

		case strings.HasPrefix(tok, "$"):
			return mmerr.New(mmerr.UnknownDirective, "unknown directive %q", tok)

		default:
			if pending != "" {
				return mmerr.New(mmerr.StrayLabel, "label %q was never consumed by a following statement", pending)
			}
			pending = tok
		}
	}
}

func indexOf(toks []token.Token, target token.Token) int {
	for i, t := range toks {
		if t == target {
			return i
		}
	}
	return -1
}

func (s *Session) diag(level int, format string, args ...any) {
	if s.verbosity < level {
		return
	}
	if level <= 1 {
		s.logger.Infof(format, args...)
		return
	}
	s.logger.Debugf(format, args...)
}
