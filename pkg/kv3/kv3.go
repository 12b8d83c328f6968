// Package kv3 parses Valve KV3 text documents into a flat,
// path-addressable property store.
//
// The parser does not model the tree; it flattens every leaf into a
// map keyed by dotted paths with bracketed array indices, e.g.
// "m_parts[0].m_rnShape.m_hulls[3].m_Hull.m_Faces". Leaf values keep
// their raw textual form: quoted strings keep their quotes, byte runs
// (#[ ... ]) are stored as space-separated hex pairs. Interpretation
// is left to the caller.
package kv3

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// KV3 parse errors.
var (
	ErrEmptyDocument = errors.New("empty KV3 document")
	ErrNoRootObject  = errors.New("KV3 document has no root object")
)

// Document is a parsed KV3 document.
type Document struct {
	values map[string]string
}

// Get returns the raw leaf value at the given path. The second return
// distinguishes an absent path from a present-but-empty value.
func (d *Document) Get(path string) (string, bool) {
	v, ok := d.values[path]
	return v, ok
}

// Len returns the number of leaf values in the document.
func (d *Document) Len() int {
	return len(d.values)
}

// Parse parses KV3 text into a Document.
func Parse(data []byte) (*Document, error) {
	s := &scanner{data: data}
	s.skipSpace()
	if s.eof() {
		return nil, ErrEmptyDocument
	}

	if !s.consume('{') {
		return nil, fmt.Errorf("%w: expected '{' at offset %d", ErrNoRootObject, s.pos)
	}

	doc := &Document{values: make(map[string]string)}
	if err := s.parseObject(doc, ""); err != nil {
		return nil, err
	}
	return doc, nil
}

// scanner is a single-pass cursor over the document text.
type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.data)
}

func (s *scanner) peek() byte {
	return s.data[s.pos]
}

// consume advances past c if it is the next byte.
func (s *scanner) consume(c byte) bool {
	if !s.eof() && s.data[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// skipSpace skips whitespace, comments, and the <!-- --> header block.
func (s *scanner) skipSpace() {
	for !s.eof() {
		c := s.data[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ',':
			s.pos++
		case c == '/' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '/':
			for !s.eof() && s.data[s.pos] != '\n' {
				s.pos++
			}
		case c == '/' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '*':
			s.pos += 2
			for s.pos+1 < len(s.data) && !(s.data[s.pos] == '*' && s.data[s.pos+1] == '/') {
				s.pos++
			}
			s.pos += 2
		case c == '<' && s.pos+3 < len(s.data) && string(s.data[s.pos:s.pos+4]) == "<!--":
			s.pos += 4
			for s.pos+2 < len(s.data) && string(s.data[s.pos:s.pos+3]) != "-->" {
				s.pos++
			}
			s.pos += 3
		default:
			return
		}
	}
}

// parseObject parses key/value pairs until the closing brace. The
// opening brace has already been consumed.
func (s *scanner) parseObject(doc *Document, prefix string) error {
	for {
		s.skipSpace()
		if s.eof() {
			return fmt.Errorf("unterminated object at %q", prefix)
		}
		if s.consume('}') {
			return nil
		}

		key := s.readIdentifier()
		if key == "" {
			return fmt.Errorf("expected key at offset %d", s.pos)
		}

		s.skipSpace()
		if !s.consume('=') {
			return fmt.Errorf("expected '=' after key %q at offset %d", key, s.pos)
		}

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if err := s.parseValue(doc, path); err != nil {
			return err
		}
	}
}

// parseArray parses elements until the closing bracket. The opening
// bracket has already been consumed.
func (s *scanner) parseArray(doc *Document, prefix string) error {
	for i := 0; ; i++ {
		s.skipSpace()
		if s.eof() {
			return fmt.Errorf("unterminated array at %q", prefix)
		}
		if s.consume(']') {
			return nil
		}
		if err := s.parseValue(doc, prefix+"["+strconv.Itoa(i)+"]"); err != nil {
			return err
		}
	}
}

func (s *scanner) parseValue(doc *Document, path string) error {
	s.skipSpace()
	if s.eof() {
		return fmt.Errorf("missing value at %q", path)
	}

	switch c := s.peek(); {
	case c == '{':
		s.pos++
		return s.parseObject(doc, path)
	case c == '[':
		s.pos++
		return s.parseArray(doc, path)
	case c == '#' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '[':
		s.pos += 2
		return s.parseByteRun(doc, path)
	case c == '"':
		return s.parseString(doc, path)
	default:
		doc.values[path] = s.readToken()
		return nil
	}
}

// parseByteRun captures a #[ ... ] hex run, normalizing line breaks
// and indentation to single-space byte separators.
func (s *scanner) parseByteRun(doc *Document, path string) error {
	start := s.pos
	for !s.eof() && s.data[s.pos] != ']' {
		s.pos++
	}
	if s.eof() {
		return fmt.Errorf("unterminated byte run at %q", path)
	}
	raw := string(s.data[start:s.pos])
	s.pos++ // ']'

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		doc.values[path] = ""
		return nil
	}
	// Trailing separator matches the single-line encoding emitted by
	// the engine's own serializer.
	doc.values[path] = strings.Join(fields, " ") + " "
	return nil
}

// parseString captures a quoted or triple-quoted string. The stored
// value keeps one pair of surrounding quotes; consumers that want the
// bare text strip them.
func (s *scanner) parseString(doc *Document, path string) error {
	if s.pos+2 < len(s.data) && s.data[s.pos+1] == '"' && s.data[s.pos+2] == '"' {
		s.pos += 3
		start := s.pos
		for s.pos+2 < len(s.data) {
			if s.data[s.pos] == '"' && s.data[s.pos+1] == '"' && s.data[s.pos+2] == '"' {
				doc.values[path] = `"` + string(s.data[start:s.pos]) + `"`
				s.pos += 3
				return nil
			}
			s.pos++
		}
		return fmt.Errorf("unterminated multiline string at %q", path)
	}

	start := s.pos
	s.pos++
	for !s.eof() {
		switch s.data[s.pos] {
		case '\\':
			s.pos += 2
		case '"':
			s.pos++
			doc.values[path] = string(s.data[start:s.pos])
			return nil
		default:
			s.pos++
		}
	}
	return fmt.Errorf("unterminated string at %q", path)
}

// readIdentifier reads a key: letters, digits, '_' and '.'.
func (s *scanner) readIdentifier() string {
	start := s.pos
	for !s.eof() {
		c := s.data[s.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.' {
			s.pos++
			continue
		}
		break
	}
	return string(s.data[start:s.pos])
}

// readToken reads a bare value up to the next delimiter. Covers
// numbers, booleans, null, and resource references.
func (s *scanner) readToken() string {
	start := s.pos
	for !s.eof() {
		c := s.data[s.pos]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ',' || c == ']' || c == '}' {
			break
		}
		s.pos++
	}
	return string(s.data[start:s.pos])
}
