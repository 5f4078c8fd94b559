package quikka

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type operationState int

const (
	stateUnattached operationState = iota
	stateAttached
	statePerformed
)

func (s operationState) String() string {
	switch s {
	case stateAttached:
		return "attached"
	case statePerformed:
		return "performed"
	default:
		return "unattached"
	}
}

// Operation binds a named transform to the Wav it runs on. It must be used
// in order: Attach, Apply, then Bytes or WriteFile as often as needed.
// Anything else fails with ErrPreconditionViolated.
type Operation struct {
	Name        string
	Description string
	Transform   Transform

	wav   *Wav
	state operationState
}

// NewOperation returns an unattached operation.
func NewOperation(name, description string, t Transform) *Operation {
	return &Operation{Name: name, Description: description, Transform: t}
}

// Clone returns an unattached copy sharing name, description and transform.
func (o *Operation) Clone() *Operation {
	return NewOperation(o.Name, o.Description, o.Transform)
}

func (o *Operation) log() logrus.FieldLogger {
	return logger.WithFields(logrus.Fields{"operation": o.Name, "state": o.state.String()})
}

// Attach decodes buf and keeps the result for Apply. A failed decode leaves
// the operation unattached.
func (o *Operation) Attach(buf []byte) error {
	w, err := Decode(buf)
	if err != nil {
		o.wav = nil
		o.state = stateUnattached

		return err
	}

	o.wav = w
	o.state = stateAttached
	o.log().WithField("bytes", len(buf)).Debug("attached wav")

	return nil
}

// Apply runs the bound transform on the attached Wav.
func (o *Operation) Apply() error {
	switch o.state {
	case stateUnattached:
		return fmt.Errorf("%w: %s: no wav attached", ErrPreconditionViolated, o.Name)
	case statePerformed:
		return fmt.Errorf("%w: %s: already applied", ErrPreconditionViolated, o.Name)
	}

	if err := o.wav.Apply(o.Transform); err != nil {
		return fmt.Errorf("%s: %w", o.Name, err)
	}

	o.state = statePerformed
	o.log().Debug("applied operation")

	return nil
}

// Bytes serializes the transformed Wav.
func (o *Operation) Bytes() ([]byte, error) {
	if o.state != statePerformed {
		return nil, fmt.Errorf("%w: %s: apply was never called", ErrPreconditionViolated, o.Name)
	}

	return o.wav.Encode(), nil
}

// Wav returns the Wav after Apply, or nil before.
func (o *Operation) Wav() *Wav {
	if o.state != statePerformed {
		return nil
	}

	return o.wav
}

// WriteFile writes the transformed Wav to path.
func (o *Operation) WriteFile(path string) error {
	data, err := o.Bytes()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	o.log().WithField("path", path).Debug("wrote output")

	return nil
}

// OperationRegistry resolves operation names.
type OperationRegistry struct {
	operations []*Operation
}

// NewOperationRegistry returns a registry holding the built-in operations.
func NewOperationRegistry() *OperationRegistry {
	return &OperationRegistry{
		operations: []*Operation{
			NewOperation("2x", "Apply 'chipmunk' transformation to wav, doubling speed and raising pitch", DoubleSpeed),
		},
	}
}

// Register appends an operation. A later registration with the same name
// shadows the earlier one.
func (r *OperationRegistry) Register(op *Operation) {
	if r == nil || op == nil {
		return
	}

	r.operations = append(r.operations, op)
}

// Lookup returns a fresh unattached copy of the operation called name.
func (r *OperationRegistry) Lookup(name string) (*Operation, error) {
	if r != nil {
		for i := len(r.operations) - 1; i >= 0; i-- {
			if r.operations[i].Name == name {
				return r.operations[i].Clone(), nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// Operations returns copies of the registered operations in registration
// order.
func (r *OperationRegistry) Operations() []*Operation {
	if r == nil {
		return nil
	}

	out := make([]*Operation, len(r.operations))
	for i, op := range r.operations {
		out[i] = op.Clone()
	}

	return out
}
