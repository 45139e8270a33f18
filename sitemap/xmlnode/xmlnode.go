// Package xmlnode is a small ordered XML element tree and its renderer.
//
// encoding/xml cannot express what sitemap documents need: a fixed attribute
// order, literal prefixed names such as "xhtml:link", and self-closing empty
// elements. Element keeps everything in insertion order and Document.Render
// writes it out byte for byte.
package xmlnode

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for element tree rendering
type ErrorCode string

const (
	// ErrMixedContent is returned when an element holds both text and children
	ErrMixedContent ErrorCode = "MixedContent"
	// ErrEmptyName is returned for elements or attributes without a name
	ErrEmptyName ErrorCode = "EmptyName"
	// ErrNoRoot is returned when rendering a document without a root element
	ErrNoRoot ErrorCode = "NoRoot"
	// ErrInvalidIndent is returned when Options.Indent holds anything but spaces and tabs
	ErrInvalidIndent ErrorCode = "InvalidIndent"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Attr is a single attribute. Name may carry a prefix ("xmlns:image").
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the tree. An element has either text or children.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement creates an empty element
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// AddAttr appends an attribute and returns the element for chaining
func (e *Element) AddAttr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetText sets the character data of the element
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// AddChild appends child elements
func (e *Element) AddChild(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// AddTextChild appends a child element holding only text
func (e *Element) AddTextChild(name, text string) *Element {
	return e.AddChild(NewElement(name).SetText(text))
}

// Document is an XML declaration plus a root element
type Document struct {
	Version  string
	Encoding string
	Root     *Element
}

// Options controls the layout of rendered output.
// With an empty Indent the document is written without any whitespace
// between markup.
type Options struct {
	Indent string
}

// CheckIndent reports whether indent is usable as Options.Indent.
// Only spaces and tabs are allowed; anything else would end up as text
// between elements.
func CheckIndent(indent string) error {
	if strings.Trim(indent, " \t") != "" {
		return failure.New(ErrInvalidIndent,
			failure.Message(fmt.Sprintf("indent must be spaces or tabs, got %q", indent)),
			failure.Context{"indent": indent},
		)
	}
	return nil
}

// Render writes the document to w
func (d *Document) Render(w io.Writer, opts Options) error {
	if d.Root == nil {
		return failure.New(ErrNoRoot, failure.Message("document has no root element"))
	}
	if err := CheckIndent(opts.Indent); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	r := &renderer{w: bw, indent: opts.Indent}

	r.writeString(`<?xml version="`)
	r.writeEscaped(d.Version)
	r.writeString(`" encoding="`)
	r.writeEscaped(d.Encoding)
	r.writeString(`"?>`)
	if r.indent != "" {
		r.writeString("\n")
	}

	if err := r.element(d.Root, 0); err != nil {
		return err
	}
	if r.err != nil {
		return failure.Wrap(r.err)
	}
	if err := bw.Flush(); err != nil {
		return failure.Wrap(err)
	}
	return nil
}

// String renders the document into a string, mostly for debugging and tests
func (d *Document) String(opts Options) (string, error) {
	var sb strings.Builder
	if err := d.Render(&sb, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type renderer struct {
	w      *bufio.Writer
	indent string
	err    error
}

func (r *renderer) writeString(s string) {
	if r.err != nil {
		return
	}
	_, r.err = r.w.WriteString(s)
}

// writeEscaped applies the XML 1.0 escaping rules.
// xml.EscapeText turns tabs and newlines into character references, which is
// what attribute values need to survive normalization, and replaces invalid
// UTF-8 and characters outside the XML Char range with U+FFFD.
func (r *renderer) writeEscaped(s string) {
	if r.err != nil {
		return
	}
	r.err = xml.EscapeText(r.w, []byte(s))
}

func (r *renderer) newline(depth int) {
	if r.indent == "" {
		return
	}
	r.writeString("\n")
	r.writeString(strings.Repeat(r.indent, depth))
}

func (r *renderer) element(e *Element, depth int) error {
	if e.Name == "" {
		return failure.New(ErrEmptyName, failure.Message("element has no name"))
	}
	if e.Text != "" && len(e.Children) > 0 {
		return failure.New(ErrMixedContent,
			failure.Message("element has both text and children"),
			failure.Context{"element": e.Name},
		)
	}

	r.writeString(strings.Repeat(r.indent, depth))
	r.writeString("<")
	r.writeString(e.Name)
	for _, a := range e.Attrs {
		if a.Name == "" {
			return failure.New(ErrEmptyName,
				failure.Message("attribute has no name"),
				failure.Context{"element": e.Name},
			)
		}
		r.writeString(" ")
		r.writeString(a.Name)
		r.writeString(`="`)
		r.writeEscaped(a.Value)
		r.writeString(`"`)
	}

	switch {
	case len(e.Children) > 0:
		r.writeString(">")
		for _, c := range e.Children {
			if r.indent != "" {
				r.writeString("\n")
			}
			if err := r.element(c, depth+1); err != nil {
				return err
			}
		}
		r.newline(depth)
		r.writeString("</")
		r.writeString(e.Name)
		r.writeString(">")
	case e.Text != "":
		r.writeString(">")
		r.writeEscaped(e.Text)
		r.writeString("</")
		r.writeString(e.Name)
		r.writeString(">")
	default:
		r.writeString("/>")
	}

	if depth == 0 && r.indent != "" {
		r.writeString("\n")
	}
	// write errors are collected in r.err and reported by Render
	return nil
}
