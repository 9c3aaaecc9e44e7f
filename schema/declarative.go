package schema

// Field is one entry of a record declared with Struct.
type Field struct {
	Name    string
	Options FieldOptions
	Schema  Schema
	// Optional fields may be absent and are not required.
	Optional bool
	// Flatten merges the fields of Schema into the record; Name is ignored.
	Flatten bool
	// Skip records a field that never appears on the wire.
	Skip bool
}

// Struct returns a Schema describing a record from a field table.
//
//	var petSchema = schema.Struct(schema.NewID("Pet"), schema.StructOptions{},
//		schema.Field{Name: "id", Schema: schema.Int64()},
//		schema.Field{Name: "tag", Schema: schema.Text(), Optional: true},
//	)
//
// The id is captured once, so the returned value may be stored and reused.
// Unless opts carries examples, records are composed from the field
// examples.
func Struct(id SchemaID, opts StructOptions, fields ...Field) Schema {
	if opts.Len == 0 {
		opts.Len = len(fields)
	}
	if opts.Examples == nil {
		opts.Examples = lazily(func() []any {
			sc, _ := exampleScope{}.enter(id)
			return sc.recordExamples(fields)
		})
		opts.composed = true
	}
	return SchemaFunc(func(b Builder) error {
		sb, err := b.DescribeStruct(id, opts)
		if err != nil {
			return err
		}
		if err := describeFields(sb, fields); err != nil {
			return err
		}
		return sb.End()
	})
}

func describeFields(sb StructBuilder, fields []Field) error {
	for _, f := range fields {
		var err error
		switch {
		case f.Skip:
			err = sb.SkipField(f.Name)
		case f.Flatten:
			err = sb.FlattenField(f.Schema)
		case f.Optional:
			err = sb.DescribeOptionalField(f.Name, f.Options, f.Schema)
		default:
			err = sb.DescribeField(f.Name, f.Options, f.Schema)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// VariantKind is the payload shape of a union variant.
type VariantKind int

const (
	// UnitKind variants carry no payload.
	UnitKind VariantKind = iota
	// NewtypeKind variants carry one value.
	NewtypeKind
	// TupleKind variants carry an ordered list of values.
	TupleKind
	// StructKind variants carry named fields.
	StructKind
)

// Variant is one alternative of a union declared with Enum.
type Variant struct {
	Name    string
	Kind    VariantKind
	Options VariantOptions
	// Payload is the value of a newtype variant.
	Payload Schema
	// Items are the elements of a tuple variant.
	Items []Schema
	// Fields are the fields of a struct variant.
	Fields []Field
}

// UnitVariant declares a variant without payload.
func UnitVariant(name string) Variant {
	return Variant{Name: name, Kind: UnitKind}
}

// NewtypeVariant declares a variant carrying payload.
func NewtypeVariant(name string, payload Schema) Variant {
	return Variant{Name: name, Kind: NewtypeKind, Payload: payload}
}

// TupleVariant declares a variant carrying an ordered list of values.
func TupleVariant(name string, items ...Schema) Variant {
	return Variant{Name: name, Kind: TupleKind, Items: items}
}

// StructVariant declares a variant carrying named fields.
func StructVariant(name string, fields ...Field) Variant {
	return Variant{Name: name, Kind: StructKind, Fields: fields}
}

// WithOptions returns v with its description and deprecation set.
func (v Variant) WithOptions(opts VariantOptions) Variant {
	v.Options = opts
	return v
}

// Enum returns a Schema describing a tagged union from a variant table.
// Variant indices follow the table order. Unless opts carries examples,
// the first example of every variant is used.
func Enum(id SchemaID, opts EnumOptions, variants ...Variant) Schema {
	if opts.Len == 0 {
		opts.Len = len(variants)
	}
	if opts.Examples == nil {
		tag := opts.Tag
		opts.Examples = lazily(func() []any {
			sc, _ := exampleScope{}.enter(id)
			return sc.unionExamples(tag, variants)
		})
		opts.composed = true
	}
	return SchemaFunc(func(b Builder) error {
		eb, err := b.DescribeEnum(id, opts)
		if err != nil {
			return err
		}
		for i, v := range variants {
			if err := describeVariant(eb, i, v); err != nil {
				return err
			}
		}
		return eb.End()
	})
}

func describeVariant(eb EnumBuilder, index int, v Variant) error {
	switch v.Kind {
	case NewtypeKind:
		return eb.DescribeNewtypeVariant(index, v.Name, v.Options, v.Payload)
	case TupleKind:
		tb, err := eb.DescribeTupleVariant(index, v.Name, v.Options, len(v.Items))
		if err != nil {
			return err
		}
		return describeElements(tb, v.Items...)
	case StructKind:
		sb, err := eb.DescribeStructVariant(index, v.Name, v.Options, len(v.Fields))
		if err != nil {
			return err
		}
		if err := describeFields(sb, v.Fields); err != nil {
			return err
		}
		return sb.End()
	default:
		return eb.DescribeUnitVariant(index, v.Name, v.Options)
	}
}

// Compose returns a Schema combining subschemas with kind.
func Compose(kind Combinator, opts CombinatorOptions, subschemas ...Schema) Schema {
	opts.Len = len(subschemas)
	return SchemaFunc(func(b Builder) error {
		cb, err := b.DescribeCombinator(kind, opts)
		if err != nil {
			return err
		}
		for _, s := range subschemas {
			if err := cb.DescribeSubschema(s); err != nil {
				return err
			}
		}
		return cb.End()
	})
}

// Not returns a Schema matching everything inner does not.
func Not(opts NotOptions, inner Schema) Schema {
	return SchemaFunc(func(b Builder) error {
		return b.DescribeNot(opts, inner)
	})
}
