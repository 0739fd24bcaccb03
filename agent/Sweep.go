package agent

import (
	"fmt"
	"reflect"

	"github.com/agentspec/agentspec/spec"
)

// ConfigList represents a list of agent configurations in a compact
// form. Each exported field of a concrete ConfigList is a slice
// holding the candidate values for the Config field of the same name,
// and the list describes every combination of candidates. Listing
// ten candidate learning rates and five candidate discounts therefore
// describes fifty configurations.
type ConfigList interface {
	// Type returns the type tag of the agent the listed
	// configurations describe
	Type() Type

	// Config returns an empty Config of the concrete type stored in
	// the list
	Config() Config

	// Len returns the number of configurations in the list
	Len() int
}

// ConfigAt returns the configuration at index i of the list.
//
// Candidates are combined in mixed-radix order with the list's first
// field varying fastest: walking i from 0 to Len()-1 cycles the first
// field's candidates, advancing the second field's candidate once per
// cycle, and so on.
func ConfigAt(i int, list ConfigList) (Config, error) {
	if i < 0 || i >= list.Len() {
		return nil, fmt.Errorf("config at: index %v out of range for "+
			"list of %v configurations", i, list.Len())
	}

	lv := reflect.ValueOf(list)
	if lv.Kind() == reflect.Ptr {
		lv = lv.Elem()
	}

	base := list.Config()
	config := reflect.New(reflect.TypeOf(base)).Elem()
	config.Set(reflect.ValueOf(base))

	for f := 0; f < lv.NumField(); f++ {
		field := lv.Field(f)
		name := lv.Type().Field(f).Name
		if !field.CanInterface() {
			continue
		}
		if field.Kind() != reflect.Slice {
			return nil, fmt.Errorf("config at: list field %v must be "+
				"a slice of candidates", name)
		}

		target := config.FieldByName(name)
		if !target.IsValid() {
			return nil, fmt.Errorf("config at: configuration has no "+
				"field %v", name)
		}
		if target.Type() != field.Type().Elem() {
			return nil, fmt.Errorf("config at: field %v lists %v "+
				"candidates for a %v field", name, field.Type().Elem(),
				target.Type())
		}

		idx := i % field.Len()
		i /= field.Len()
		target.Set(field.Index(idx))
	}

	return config.Interface().(Config), nil
}

// Sweep wraps a ConfigList so that it can be JSON marshalled and
// unmarshalled with an inline "type" tag. A sweep document reads like
// an agent document whose hyperparameter values are replaced by
// arrays of candidates.
type Sweep struct {
	ConfigList
}

// NewSweep types and returns the argument ConfigList.
func NewSweep(list ConfigList) (*Sweep, error) {
	if list == nil {
		return nil, fmt.Errorf("new: no configuration list")
	}
	return &Sweep{ConfigList: list}, nil
}

// SweepFromJSON returns the sweep described by a document, decoded by
// its "type" tag. Fields the document does not set keep a single
// candidate holding the registered default value.
func SweepFromJSON(data []byte) (*Sweep, error) {
	var s Sweep
	if err := s.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &s, nil
}

// MarshalJSON implements the json.Marshaler interface
func (s Sweep) MarshalJSON() ([]byte, error) {
	if s.ConfigList == nil {
		return nil, fmt.Errorf("marshal: no configuration list")
	}
	return spec.MarshalNode(string(s.ConfigList.Type()), s.ConfigList)
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (s *Sweep) UnmarshalJSON(data []byte) error {
	decoded, _, err := sweeps.Decode(data)
	if err != nil {
		return err
	}
	s.ConfigList = decoded.(ConfigList)
	return nil
}

// At returns the configuration at index i of the sweep.
func (s *Sweep) At(i int) (Config, error) {
	return ConfigAt(i, s.ConfigList)
}

// Validate returns an error if the sweep lists no configurations or
// its fields do not mirror the configuration's fields.
func (s *Sweep) Validate() error {
	if s.ConfigList == nil {
		return fmt.Errorf("no configuration list")
	}
	if s.Len() < 1 {
		return fmt.Errorf("sweep of type %v lists no configurations",
			s.Type())
	}
	if _, err := s.At(0); err != nil {
		return err
	}
	return nil
}
