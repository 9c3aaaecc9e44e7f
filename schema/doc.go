// Package schema defines the capability protocol through which Go types
// describe their JSON shape, and the adapters that transform sessions of it.
//
// # The Protocol
//
// A type implements [Schema] by making exactly one shape call on a
// [Builder]: DescribeBool, DescribeInt32, DescribeString, DescribeOption,
// DescribeStruct and so on. Shapes with members return a sub-builder
// ([StructBuilder], [MapBuilder], [TupleBuilder], [EnumBuilder],
// [CombinatorBuilder]) that must reach End exactly once:
//
//	func (Point) DescribeSchema(b schema.Builder) error {
//		sb, err := b.DescribeStruct(schema.NewID("Point"), schema.StructOptions{Len: 2})
//		if err != nil {
//			return err
//		}
//		if err := sb.DescribeField("x", schema.FieldOptions{}, schema.Float64()); err != nil {
//			return err
//		}
//		if err := sb.DescribeField("y", schema.FieldOptions{}, schema.Float64()); err != nil {
//			return err
//		}
//		return sb.End()
//	}
//
// Sessions are single use. The consuming call finishes the session and any
// further call panics with "builder session already finished"; errors such
// as duplicate fields travel through the returned error instead.
//
// # Results
//
// Builders do not return their result. A [Factory] binds each session to a
// [Sink] that receives the result once the shape is complete; [Describe]
// runs one walk and hands the result back.
//
// # Adapters
//
//   - [Optionalize] reports whether the outermost shape is an option.
//   - [PostProcess] maps results into another type.
//   - [Nop] accepts everything and returns a fixed result.
//   - [Flatten] merges record fields and map entries into a parent map.
//   - [Impossible] stands in for sub-builders that only exist on error paths.
//
// # Per-Type Descriptions
//
// [Type] pairs a Schema with its representative examples. Constructors such
// as [Integer], [String], [Option], [Slice], [Map], [Tuple2] and [Named]
// build descriptions whose examples always satisfy the declared constraints.
// [Struct] and [Enum] declare records and tagged unions from tables.
package schema
