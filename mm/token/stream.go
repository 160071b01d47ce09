// Package token implements the Metamath source tokenizer: a layered reader
// that turns a stream of bytes (with $[ file inclusion and $( comments
// stripped) into whitespace-delimited tokens and whole $.-terminated
// statements.
package token

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/metamath-go/mmverify/mm/mmerr"
)

// Token is an opaque whitespace-delimited identifier. The stream never
// interprets a token's meaning beyond the directives it dispatches on;
// whether a token names a constant or a variable is decided by the scope
// that consumes it (see mm/scope).
type Token = string

type source struct {
	path   string // canonical path, "" for anonymous in-memory sources
	scan   *bufio.Scanner
	closer io.Closer
}

// Stream is a single-threaded, strictly sequential tokenizer. It is
// consumed exactly once; nothing about it is safe for concurrent use.
type Stream struct {
	sources  []*source
	included map[string]bool
}

// New creates a Stream over an in-memory source (e.g. a database embedded
// as a Go string in a test). It has no canonical path, so it never
// participates in include-once suppression.
func New(r io.Reader) *Stream {
	return &Stream{
		sources:  []*source{newSource("", r, nil)},
		included: map[string]bool{},
	}
}

// NewFile opens path as the root source of a Stream.
func NewFile(path string) (*Stream, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, mmerr.WithFile(mmerr.MalformedInclusion, path, "cannot resolve path: %v", err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, mmerr.WithFile(mmerr.MalformedInclusion, path, "cannot open: %v", err)
	}
	s := &Stream{included: map[string]bool{abs: true}}
	s.sources = []*source{newSource(abs, f, f)}
	return s, nil
}

func newSource(path string, r io.Reader, closer io.Closer) *source {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	return &source{path: path, scan: sc, closer: closer}
}

// Close releases every source still open on the stack. Safe to call after
// the stream is exhausted or after an error aborted reading midway.
func (s *Stream) Close() error {
	var first error
	for _, src := range s.sources {
		if src.closer == nil {
			continue
		}
		if err := src.closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	s.sources = nil
	return first
}

// raw returns the next whitespace-delimited token from the current source,
// closing and popping exhausted sources and resuming the next outer one.
// ok is false only when every source is exhausted (true end-of-stream).
func (s *Stream) raw() (tok Token, ok bool, err error) {
	for len(s.sources) > 0 {
		top := s.sources[len(s.sources)-1]
		if top.scan.Scan() {
			return top.scan.Text(), true, nil
		}
		if serr := top.scan.Err(); serr != nil {
			return "", false, mmerr.WithFile(mmerr.MalformedStatement, top.path, "read error: %v", serr)
		}
		if top.closer != nil {
			top.closer.Close()
		}
		s.sources = s.sources[:len(s.sources)-1]
	}
	return "", false, nil
}

// withInclusion layers $[ path $] file-inclusion handling over raw.
func (s *Stream) withInclusion() (Token, bool, error) {
	for {
		tok, ok, err := s.raw()
		if err != nil || !ok {
			return tok, ok, err
		}
		if tok != "$[" {
			return tok, ok, nil
		}
		filename, ok, err := s.raw()
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, mmerr.New(mmerr.MalformedInclusion, "end of input after $[")
		}
		end, ok, err := s.raw()
		if err != nil {
			return "", false, err
		}
		if !ok || end != "$]" {
			return "", false, mmerr.WithFile(mmerr.MalformedInclusion, filename, "inclusion not terminated with $]")
		}
		abs, err := filepath.Abs(filename)
		if err != nil {
			return "", false, mmerr.WithFile(mmerr.MalformedInclusion, filename, "cannot resolve path: %v", err)
		}
		if s.included[abs] {
			continue // include-once: silently skip, resume the current source
		}
		f, err := os.Open(abs)
		if err != nil {
			return "", false, mmerr.WithFile(mmerr.MalformedInclusion, filename, "cannot open: %v", err)
		}
		s.included[abs] = true
		s.sources = append(s.sources, newSource(abs, f, f))
	}
}

// withComments layers $( ... $) comment-skipping over withInclusion.
// Comments never nest and their contents are read raw: a $[ inside a
// comment is just another token, not a live inclusion directive.
func (s *Stream) withComments() (Token, bool, error) {
	for {
		tok, ok, err := s.withInclusion()
		if err != nil || !ok {
			return tok, ok, err
		}
		if tok != "$(" {
			return tok, ok, nil
		}
		for {
			inner, ok, err := s.raw()
			if err != nil {
				return "", false, err
			}
			if !ok {
				return "", false, mmerr.New(mmerr.MalformedStatement, "end of input inside comment")
			}
			if inner == "$)" {
				break
			}
		}
	}
}

// Next returns the next token with comments stripped and inclusions
// followed, or ok=false at true end-of-stream.
func (s *Stream) Next() (Token, bool, error) {
	return s.withComments()
}

// ReadStatement accumulates tokens until the $. terminator and returns them,
// excluding the terminator itself.
func (s *Stream) ReadStatement() ([]Token, error) {
	var stat []Token
	for {
		tok, ok, err := s.withComments()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, mmerr.New(mmerr.MalformedStatement, "end of input before $.")
		}
		if tok == "$." {
			return stat, nil
		}
		stat = append(stat, tok)
	}
}
