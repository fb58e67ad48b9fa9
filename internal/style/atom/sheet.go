package atom

import (
	"fmt"
	"io"
	"strings"
)

// Rule is one injected declaration rule.
type Rule struct {
	Class    string
	Property string
	Value    string
}

// Selector returns the escaped class selector for the rule.
func (r Rule) Selector() string {
	return "." + EscapeClass(r.Class)
}

// String renders the rule as `.{escaped} { {property}: {value}; }`.
func (r Rule) String() string {
	return fmt.Sprintf("%s { %s: %s; }", r.Selector(), r.Property, r.Value)
}

// Sheet is the single append-only stylesheet shared by every atom.
type Sheet struct {
	rules []Rule
	sink  io.Writer
}

func (s *Sheet) append(rule Rule) error {
	s.rules = append(s.rules, rule)
	if s.sink == nil {
		return nil
	}
	_, err := io.WriteString(s.sink, rule.String()+"\n")
	return err
}

// Len returns the number of rules.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Rules returns a copy of the rules in first-use order.
func (s *Sheet) Rules() []Rule {
	if s == nil {
		return nil
	}
	return append([]Rule(nil), s.rules...)
}

// String renders the whole stylesheet, one rule per line.
func (s *Sheet) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, rule := range s.rules {
		b.WriteString(rule.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the stylesheet to w.
func (s *Sheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
