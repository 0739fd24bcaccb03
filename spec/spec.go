// Package spec implements the typed JSON nodes that agent
// configuration documents are built from.
//
// A node is a JSON object carrying an inline "type" field which names
// a registered configuration type:
//
//	{"type": "adam", "learning_rate": 0.00025}
//
// Each family of nodes (optimizers, memories, decay schedules, ...)
// owns a Registry mapping type tags to concrete configuration structs.
// Decoding a node pops the tag, copies the registered default
// configuration for that tag, and unmarshals the remaining fields over
// the copy, so that fields absent from the document keep their default
// values. Encoding goes the other way: the configuration is marshalled
// and the tag is injected back as the "type" field.
package spec

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Registry maps the type tags of one node family to the concrete
// configuration structs they decode into.
//
// A Registry is written to only by Register, which is expected to be
// called from package init functions. After program initialization a
// Registry is read-only and safe for concurrent use.
type Registry struct {
	kind       string
	prototypes map[string]prototype
}

// prototype holds a registered configuration type along with its
// default field values in marshalled form. Copies of the default
// configuration are made by unmarshalling the defaults into a fresh
// struct, so copies never share slices or pointers with each other or
// with the registered original.
type prototype struct {
	rtype    reflect.Type
	defaults []byte
}

// NewRegistry returns an empty Registry for a family of nodes. The
// kind is used in error messages only, e.g. "optimizer".
func NewRegistry(kind string) *Registry {
	return &Registry{
		kind:       kind,
		prototypes: make(map[string]prototype),
	}
}

// Register records the default configuration struct to decode nodes
// with the given type tag into. The prototype may be a struct or a
// pointer to one; its field values become the defaults for fields a
// document does not set.
//
// Register panics if the tag is empty, if the prototype is not a
// struct or cannot be marshalled, or if the tag was already
// registered, since registration runs at init time and such errors
// are programming mistakes.
func (r *Registry) Register(tag string, proto interface{}) {
	if tag == "" {
		panic("register: empty type tag")
	}

	v := reflect.ValueOf(proto)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		panic(fmt.Sprintf("register: prototype for %s type %q must be "+
			"a struct but got %T", r.kind, tag, proto))
	}

	if _, exists := r.prototypes[tag]; exists {
		panic(fmt.Sprintf("register: %s type %q registered twice", r.kind,
			tag))
	}

	defaults, err := json.Marshal(v.Interface())
	if err != nil {
		panic(fmt.Sprintf("register: cannot marshal defaults for %s "+
			"type %q: %v", r.kind, tag, err))
	}
	r.prototypes[tag] = prototype{rtype: v.Type(), defaults: defaults}
}

// Contains returns whether the tag names a registered type.
func (r *Registry) Contains(tag string) bool {
	_, exists := r.prototypes[tag]
	return exists
}

// Tags returns the registered type tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.prototypes))
	for tag := range r.prototypes {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// New returns a pointer to a fresh copy of the default configuration
// registered for the tag. The copy shares no memory with previous
// copies or with the registered original.
func (r *Registry) New(tag string) (interface{}, error) {
	proto, exists := r.prototypes[tag]
	if !exists {
		return nil, &Error{
			Kind: r.kind,
			Op:   "new",
			Tag:  tag,
			Err: fmt.Errorf("%w, expected one of %v", errUnknownType,
				r.Tags()),
		}
	}

	clone := reflect.New(proto.rtype).Interface()
	if err := json.Unmarshal(proto.defaults, clone); err != nil {
		return nil, &Error{Kind: r.kind, Op: "new", Tag: tag, Err: err}
	}
	return clone, nil
}

// Decode unmarshals a node into the concrete configuration struct
// registered for its "type" tag. The returned value is the struct
// itself, not a pointer to it, along with the tag that selected it.
// Fields the node does not set keep the registered defaults.
func (r *Registry) Decode(data []byte) (interface{}, string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, "", &Error{Kind: r.kind, Op: "decode", Err: err}
	}

	rawTag, exists := fields["type"]
	if !exists {
		return nil, "", &Error{Kind: r.kind, Op: "decode",
			Err: errMissingType}
	}

	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil {
		return nil, "", &Error{Kind: r.kind, Op: "decode",
			Err: fmt.Errorf(`"type" field: %v`, err)}
	}

	config, err := r.New(tag)
	if err != nil {
		return nil, tag, err
	}

	// The concrete struct has no "type" field so the tag is simply
	// ignored here.
	if err := json.Unmarshal(data, config); err != nil {
		return nil, tag, &Error{Kind: r.kind, Op: "decode", Tag: tag,
			Err: err}
	}

	return reflect.ValueOf(config).Elem().Interface(), tag, nil
}

// TypeTag returns the "type" field of a node without decoding the
// rest of it.
func TypeTag(data []byte) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", &Error{Kind: "node", Op: "tag", Err: err}
	}

	rawTag, exists := fields["type"]
	if !exists {
		return "", &Error{Kind: "node", Op: "tag", Err: errMissingType}
	}

	var tag string
	if err := json.Unmarshal(rawTag, &tag); err != nil {
		return "", &Error{Kind: "node", Op: "tag",
			Err: fmt.Errorf(`"type" field: %v`, err)}
	}
	return tag, nil
}

// MarshalNode marshals a configuration struct and injects the type
// tag back in as the "type" field. The configuration must encode to a
// JSON object and must not set "type" itself.
func MarshalNode(tag string, config interface{}) ([]byte, error) {
	if tag == "" {
		return nil, &Error{Kind: "node", Op: "marshal", Err: errMissingType}
	}

	data, err := json.Marshal(config)
	if err != nil {
		return nil, &Error{Kind: "node", Op: "marshal", Tag: tag, Err: err}
	}

	fields := map[string]interface{}{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &Error{Kind: "node", Op: "marshal", Tag: tag,
			Err: fmt.Errorf("configuration must encode to a JSON "+
				"object: %v", err)}
	}

	if _, exists := fields["type"]; exists {
		return nil, &Error{Kind: "node", Op: "marshal", Tag: tag,
			Err: errTagCollision}
	}

	fields["type"] = tag
	return json.Marshal(fields)
}

// Equal reports whether two JSON documents describe the same
// structure: the same nesting of objects and arrays with equal keys
// and equal values, regardless of key order or formatting.
func Equal(a, b []byte) (bool, error) {
	var va, vb interface{}
	if err := json.Unmarshal(a, &va); err != nil {
		return false, &Error{Kind: "node", Op: "equal", Err: err}
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false, &Error{Kind: "node", Op: "equal", Err: err}
	}
	return reflect.DeepEqual(va, vb), nil
}

// Canonical re-encodes a JSON document in a canonical form: two-space
// indentation with object keys in sorted order. Structurally equal
// documents have identical canonical forms.
func Canonical(data []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &Error{Kind: "node", Op: "canonical", Err: err}
	}
	return json.MarshalIndent(v, "", "  ")
}
