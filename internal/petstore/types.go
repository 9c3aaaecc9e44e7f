package petstore

import (
	"github.com/1ean267/nexustack-sub001/example"
	"github.com/1ean267/nexustack-sub001/schema"
)

var (
	petID       = schema.NewID("Pet")
	newPetID    = schema.NewID("NewPet")
	ownerID     = schema.NewID("Owner")
	kindID      = schema.NewID("PetKind")
	eventID     = schema.NewID("PetEvent")
	paymentID   = schema.NewID("Payment")
	contactID   = schema.NewID("ContactMethod")
	locationID  = schema.NewID("Location")
	pageID      = schema.NewID("PetPage")
	pagingID    = schema.NewID("Paging")
	problemID   = schema.NewID("Problem")
	petRefID    = schema.NewID("PetRef")
	catalogueID = schema.NewID("Inventory")
)

func (c *Catalog) field(name string, s schema.Schema) schema.Field {
	return schema.Field{Name: c.rule.Apply(name), Schema: s}
}

func (c *Catalog) optional(name string, s schema.Schema) schema.Field {
	return schema.Field{Name: c.rule.Apply(name), Schema: s, Optional: true}
}

func (c *Catalog) described(name, description string, s schema.Schema) schema.Field {
	f := c.field(name, s)
	f.Options.Description = description
	return f
}

func (c *Catalog) petKind() schema.Schema {
	return schema.Enum(kindID, schema.EnumOptions{Description: "The species of a pet"},
		schema.UnitVariant(c.rule.Apply("Dog")),
		schema.UnitVariant(c.rule.Apply("Cat")),
		schema.UnitVariant(c.rule.Apply("Bird")).WithOptions(schema.VariantOptions{Description: "Any bird"}),
		schema.UnitVariant(c.rule.Apply("Hamster")).WithOptions(schema.VariantOptions{Deprecated: true}),
	)
}

func (c *Catalog) contactMethod() schema.Schema {
	return schema.Enum(contactID, schema.EnumOptions{
		Description: "How an owner prefers to be reached",
		Tag:         schema.Untagged{},
	},
		schema.NewtypeVariant("Email", schema.String(schema.StringOptions{Format: "email"})),
		schema.NewtypeVariant("Phone", schema.String(schema.StringOptions{Pattern: `^\+[0-9]{6,15}$`})),
		schema.StructVariant("Post",
			c.field("Street", schema.Text()),
			c.field("City", schema.Text()),
			c.optional("PostalCode", schema.Text()),
		),
	)
}

func (c *Catalog) owner() schema.Schema {
	return schema.Struct(ownerID, schema.StructOptions{Description: "The person responsible for a pet"},
		c.field("Name", schema.String(schema.StringOptions{MinLength: ptr(1)})),
		c.optional("Contact", c.contactMethod()),
		c.field("Since", schema.Time(schema.StringOptions{})),
	)
}

func (c *Catalog) location() schema.Schema {
	return schema.Named(locationID,
		schema.Tuple2(
			schema.Float(schema.FloatOptions[float64]{Min: schema.Inclusive(-90.0), Max: schema.Inclusive(90.0)}),
			schema.Float(schema.FloatOptions[float64]{Min: schema.Inclusive(-180.0), Max: schema.Inclusive(180.0)}),
			schema.TupleOptions{},
		),
		schema.NewtypeOptions{Description: "Latitude and longitude in degrees"},
	)
}

func (c *Catalog) petFields() []schema.Field {
	return []schema.Field{
		c.described("Name", "The pet's name", schema.String(schema.StringOptions{MinLength: ptr(1), MaxLength: ptr(64)})),
		c.field("Kind", c.petKind()),
		c.optional("Tag", schema.Text()),
		c.field("PhotoUrls", schema.Seq(schema.URL(schema.StringOptions{}), schema.SeqOptions{Unique: true})),
		c.optional("Birthday", schema.Date(schema.StringOptions{})),
		c.field("Labels", schema.Map(schema.Text(), schema.Text(), schema.MapOptions{})),
		c.optional("Location", c.location()),
	}
}

func (c *Catalog) newPet() schema.Schema {
	return schema.Struct(newPetID, schema.StructOptions{Description: "A pet that has not been stored yet"}, c.petFields()...)
}

func (c *Catalog) pet() schema.Schema {
	fields := append([]schema.Field{
		c.described("ID", "Unique identifier", schema.Uint64()),
	}, c.petFields()...)
	owner := c.field("Owner", schema.Nullable(c.owner(), schema.OptionOptions{}))
	fields = append(fields, owner, schema.Field{Name: c.rule.Apply("Secret"), Skip: true})
	return schema.Struct(petID, schema.StructOptions{
		Description: "A pet in the store",
		Examples: example.Any(example.Of(map[string]any{
			c.rule.Apply("ID"):        1,
			c.rule.Apply("Name"):      "Rex",
			c.rule.Apply("Kind"):      c.rule.Apply("Dog"),
			c.rule.Apply("PhotoUrls"): []string{},
			c.rule.Apply("Labels"):    map[string]string{},
			c.rule.Apply("Owner"):     nil,
		})),
	}, fields...)
}

func (c *Catalog) paging() schema.Schema {
	return schema.Struct(pagingID, schema.StructOptions{},
		c.field("Offset", schema.Uint32()),
		c.optional("Next", schema.URL(schema.StringOptions{})),
	)
}

func (c *Catalog) petPage() schema.Schema {
	return schema.Struct(pageID, schema.StructOptions{Description: "One page of pets"},
		c.field("Items", schema.Seq(c.pet(), schema.SeqOptions{MaxItems: ptr(100)})),
		schema.Field{Flatten: true, Schema: c.paging()},
	)
}

// petRef is recursive through its parent.
func (c *Catalog) petRef() schema.Schema {
	var ref schema.Schema
	ref = schema.SchemaFunc(func(b schema.Builder) error {
		return schema.Struct(petRefID, schema.StructOptions{Description: "A pet and its ancestry"},
			c.field("ID", schema.Uint64()),
			c.optional("Parent", ref),
		).DescribeSchema(b)
	})
	return ref
}

func (c *Catalog) petEvent() schema.Schema {
	return schema.Enum(eventID, schema.EnumOptions{
		Description: "Something that happened to a pet",
		Tag:         schema.InternallyTagged{Tag: "type"},
	},
		schema.StructVariant(c.rule.Apply("Adopted"),
			c.field("PetID", schema.Uint64()),
			c.field("Owner", c.owner()),
			c.optional("AdoptionID", schema.NonNilUUID(schema.UUIDHyphenated, schema.StringOptions{})),
		),
		schema.NewtypeVariant(c.rule.Apply("Updated"), c.pet()),
		schema.UnitVariant(c.rule.Apply("Archived")),
	)
}

func (c *Catalog) payment() schema.Schema {
	return schema.Enum(paymentID, schema.EnumOptions{
		Description:   "A payment for an adoption",
		Tag:           schema.AdjacentlyTagged{Tag: "method", Content: "details"},
		NonExhaustive: true,
	},
		schema.NewtypeVariant(c.rule.Apply("Card"), schema.String(schema.StringOptions{Pattern: `^[0-9]{12,19}$`})),
		schema.UnitVariant(c.rule.Apply("Cash")),
		schema.TupleVariant(c.rule.Apply("Transfer"), schema.Text(), schema.Uint64()),
		schema.StructVariant(c.rule.Apply("Voucher"),
			c.field("Code", schema.Text()),
			c.optional("ExpiresAt", schema.Time(schema.StringOptions{})),
		).WithOptions(schema.VariantOptions{Deprecated: true}),
	)
}

func (c *Catalog) problem() schema.Schema {
	return schema.Struct(problemID, schema.StructOptions{Description: "An RFC 9457 problem detail"},
		c.field("Title", schema.Text()),
		c.field("Status", schema.Integer(schema.IntOptions[uint16]{Min: schema.Inclusive[uint16](400), Max: schema.Exclusive[uint16](600)})),
		c.optional("Detail", schema.Text()),
	)
}

func (c *Catalog) inventory() schema.Schema {
	return schema.Named(catalogueID,
		schema.Map(c.kindKey(), schema.Uint32(), schema.MapOptions{}),
		schema.NewtypeOptions{Description: "Number of pets per kind"},
	)
}

// kindKey is the pet kind as a map key.
func (c *Catalog) kindKey() schema.Type[string] {
	names := []string{c.rule.Apply("Dog"), c.rule.Apply("Cat"), c.rule.Apply("Bird"), c.rule.Apply("Hamster")}
	return schema.String(schema.StringOptions{Only: names, Examples: example.Of(names...)})
}

func ptr[T any](v T) *T { return &v }
