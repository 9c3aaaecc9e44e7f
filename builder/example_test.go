package builder_test

import (
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/1ean267/nexustack-sub001/builder"
	"github.com/1ean267/nexustack-sub001/openapi"
	"github.com/1ean267/nexustack-sub001/schema"
)

// Pet represents a pet in the store.
type Pet struct {
	ID   int64
	Name string
	Tag  *string
}

// DescribeSchema describes Pet as a named record.
func (Pet) DescribeSchema(b schema.Builder) error {
	sb, err := b.DescribeStruct(schema.NewID("Pet"), schema.StructOptions{Len: 3, Description: "A pet"})
	if err != nil {
		return err
	}
	if err := sb.DescribeField("id", schema.FieldOptions{Description: "Unique pet identifier"}, schema.Int64()); err != nil {
		return err
	}
	if err := sb.DescribeField("name", schema.FieldOptions{}, schema.String(schema.StringOptions{MinLength: openapi.Ptr(1)})); err != nil {
		return err
	}
	if err := sb.DescribeField("tag", schema.FieldOptions{}, schema.Option(schema.Text(), schema.OptionOptions{})); err != nil {
		return err
	}
	return sb.End()
}

// getPet describes GET /pets/{id}.
func getPet(b builder.OperationBuilder) error {
	if err := b.DescribePathParameter("id", builder.ParameterOptions{}, schema.Int64()); err != nil {
		return err
	}
	rb, err := b.DescribeOperation(builder.NewOperationID("getPet"), http.MethodGet, "/pets/{id}",
		builder.OperationOptions{Tags: []string{"pets"}})
	if err != nil {
		return err
	}
	ct, err := rb.DescribeResponse("200", builder.ResponseOptions{Description: "the pet"})
	if err != nil {
		return err
	}
	if err := ct.DescribeContentType("application/json", builder.ContentOptions{}, Pet{}); err != nil {
		return err
	}
	if err := ct.End(); err != nil {
		return err
	}
	if err := rb.DescribeEmptyResponse("404", builder.ResponseOptions{Description: "not found"}); err != nil {
		return err
	}
	return rb.End()
}

// Example demonstrates basic builder usage.
func Example() {
	doc, err := builder.New(openapi.Version31).
		SetTitle("Pet Store API").
		SetVersion("1.0.0").
		AddOperation(builder.OperationFunc(getPet)).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	op := doc.Paths["/pets/{id}"].Get
	fmt.Printf("OpenAPI: %s\n", doc.Version)
	fmt.Printf("Operation: %s\n", op.OperationID)
	fmt.Printf("Schema: %s\n", op.Responses["200"].Content["application/json"].Schema.Ref)
	fmt.Printf("Required: %v\n", doc.Components.Schemas["Pet"].Required)
	// Output:
	// OpenAPI: 3.1.0
	// Operation: getPet
	// Schema: #/components/schemas/Pet
	// Required: [id name]
}

// Example_duplicateOperation shows that a second operation on the same
// method and path fails the build.
func Example_duplicateOperation() {
	_, err := builder.New(openapi.Version31).
		SetTitle("Pet Store API").
		SetVersion("1.0.0").
		AddOperation(builder.OperationFunc(getPet)).
		AddOperation(builder.OperationFunc(getPet)).
		Build()
	fmt.Println(err)
	// Output:
	// builder: operation GET /pets/{id} [operationId: getPet]: duplicate entry for operation GET /pets/{id}
}

// Example_withServer demonstrates adding servers and tags.
func Example_withServer() {
	doc, err := builder.New(openapi.Version30).
		SetTitle("My API").
		SetVersion("1.0.0").
		AddServer("https://{region}.example.com/v1",
			builder.WithServerDescription("Production server"),
			builder.WithServerVariable("region", "eu", builder.WithServerVariableEnum("eu", "us")),
		).
		AddTag("pets", builder.WithTagDescription("Pet operations")).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	keys := make([]string, 0)
	for k := range doc.ToMap() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println(keys)
	fmt.Println(doc.Servers[0].Variables["region"].Default)
	// Output:
	// [info openapi paths servers tags]
	// eu
}
