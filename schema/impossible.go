package schema

import "github.com/1ean267/nexustack-sub001/oaserrors"

// Impossible stands in for a sub-builder that a session never produces
// successfully. It is only handed out together with a non-nil error, so
// callers that honor the error never reach it. Every method returns
// oaserrors.ErrUnreachable.
type Impossible struct{}

var (
	_ StructBuilder     = Impossible{}
	_ MapBuilder        = Impossible{}
	_ EnumBuilder       = Impossible{}
	_ CombinatorBuilder = Impossible{}
	_ TupleBuilder      = ImpossibleTuple{}
)

func (Impossible) DescribeField(string, FieldOptions, Schema) error {
	return oaserrors.ErrUnreachable
}

func (Impossible) DescribeOptionalField(string, FieldOptions, Schema) error {
	return oaserrors.ErrUnreachable
}

func (Impossible) SkipField(string) error      { return oaserrors.ErrUnreachable }
func (Impossible) FlattenField(Schema) error   { return oaserrors.ErrUnreachable }
func (Impossible) SkipElement(string) error    { return oaserrors.ErrUnreachable }
func (Impossible) FlattenElement(Schema) error { return oaserrors.ErrUnreachable }

func (Impossible) DescribeElement(string, FieldOptions, Schema) error {
	return oaserrors.ErrUnreachable
}

func (Impossible) DescribeOptionalElement(string, FieldOptions, Schema) error {
	return oaserrors.ErrUnreachable
}

func (Impossible) DescribeAdditionalElements(Schema, Schema, FieldOptions) error {
	return oaserrors.ErrUnreachable
}

func (Impossible) DescribeSubschema(Schema) error {
	return oaserrors.ErrUnreachable
}

func (Impossible) DescribeUnitVariant(int, string, VariantOptions) error {
	return oaserrors.ErrUnreachable
}

func (Impossible) DescribeNewtypeVariant(int, string, VariantOptions, Schema) error {
	return oaserrors.ErrUnreachable
}

func (Impossible) DescribeTupleVariant(int, string, VariantOptions, int) (TupleBuilder, error) {
	return ImpossibleTuple{}, oaserrors.ErrUnreachable
}

func (Impossible) DescribeStructVariant(int, string, VariantOptions, int) (StructBuilder, error) {
	return Impossible{}, oaserrors.ErrUnreachable
}

func (Impossible) End() error { return oaserrors.ErrUnreachable }

// ImpossibleTuple is the tuple counterpart of Impossible.
type ImpossibleTuple struct{}

func (ImpossibleTuple) DescribeElement(Schema, ElementOptions) error {
	return oaserrors.ErrUnreachable
}

func (ImpossibleTuple) End() error { return oaserrors.ErrUnreachable }
