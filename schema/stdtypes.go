package schema

import (
	"errors"
	"iter"
	"net/netip"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/1ean267/nexustack-sub001/example"
)

// Descriptions of common standard library values as they appear in JSON.

const (
	ipv4Octet = `(?:25[0-5]|2[0-4]\d|1\d{2}|[1-9]\d|\d)`
	ipv4Addr  = `(?:` + ipv4Octet + `\.){3}` + ipv4Octet
	h16       = `[0-9a-fA-F]{1,4}`
	port      = `(?:6553[0-5]|655[0-2]\d|65[0-4]\d{2}|6[0-4]\d{3}|[0-5]\d{4}|\d{1,4})`
	zone      = `(?:%[0-9a-zA-Z]+)?`
)

// ipv6Addr covers the full, compressed, link-local and IPv4-embedded forms.
const ipv6Addr = `(?:` +
	`(?:` + h16 + `:){7}` + h16 +
	`|(?:` + h16 + `:){1,7}:` +
	`|(?:` + h16 + `:){1,6}:` + h16 +
	`|(?:` + h16 + `:){1,5}(?::` + h16 + `){1,2}` +
	`|(?:` + h16 + `:){1,4}(?::` + h16 + `){1,3}` +
	`|(?:` + h16 + `:){1,3}(?::` + h16 + `){1,4}` +
	`|(?:` + h16 + `:){1,2}(?::` + h16 + `){1,5}` +
	`|` + h16 + `:(?:(?::` + h16 + `){1,6})` +
	`|:(?:(?::` + h16 + `){1,7}|:)` +
	`|fe80:(?::[0-9a-fA-F]{0,4}){0,4}%[0-9a-zA-Z]+` +
	`|::(?:ffff(?::0{1,4})?:)?` + ipv4Addr +
	`|(?:` + h16 + `:){1,4}:` + ipv4Addr +
	`)`

const (
	ipv4Pattern       = `^` + ipv4Addr + `$`
	ipv6Pattern       = `^` + ipv6Addr + `$`
	socketV4Pattern   = `^` + ipv4Addr + `:` + port + `$`
	socketV6Pattern   = `^\[` + ipv6Addr + zone + `\]:` + port + `$`
	uuidHex           = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`
	uuidPattern       = `^` + uuidHex + `$`
	uuidSimplePattern = `^[0-9a-fA-F]{32}$`
	uuidURNPattern    = `^urn:uuid:` + uuidHex + `$`
	uuidBracedPattern = `^\{` + uuidHex + `\}$`
)

// textType describes a Go value that encodes as a JSON string. Examples
// given in the options are parsed back into T; all examples are checked
// against the string constraints after formatting.
type textType[T any] struct {
	opts     StringOptions
	defaults []T
	parse    func(string) (T, error)
	format   func(T) string
}

func (t textType[T]) Examples() iter.Seq[T] {
	candidates := example.Of(t.defaults...)
	if t.opts.Examples != nil {
		candidates = func(yield func(T) bool) {
			for s := range t.opts.Examples {
				v, err := t.parse(s)
				if err != nil {
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	}
	return example.Filter(candidates, func(v T) bool { return t.opts.allows(t.format(v)) })
}

func (t textType[T]) EncodeExample(v T) any { return t.format(v) }

func (t textType[T]) DescribeSchema(b Builder) error {
	opts := t.opts
	opts.Examples = distinct(example.Map(t.Examples(), t.format))
	return b.DescribeString(opts)
}

// withDefaults fills the unset string constraints of opts.
func withDefaults(opts StringOptions, description, format, pattern string, minLen, maxLen int) StringOptions {
	if opts.Description == "" {
		opts.Description = description
	}
	if opts.Format == "" {
		opts.Format = format
	}
	if opts.Pattern == "" {
		opts.Pattern = pattern
	}
	if opts.MinLength == nil && minLen > 0 {
		opts.MinLength = &minLen
	}
	if opts.MaxLength == nil && maxLen > 0 {
		opts.MaxLength = &maxLen
	}
	return opts
}

// Time describes a time.Time encoded as an RFC 3339 date-time string.
// Examples in opts are parsed as RFC 3339; unparsable ones are dropped.
func Time(opts StringOptions) Type[time.Time] {
	opts.Format = "date-time"
	return textType[time.Time]{
		opts: opts,
		defaults: []time.Time{
			time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.February, 29, 12, 30, 0, 0, time.FixedZone("", 2*60*60)),
		},
		parse: func(s string) (time.Time, error) {
			return time.Parse(time.RFC3339Nano, s)
		},
		format: func(v time.Time) string {
			return v.Format(time.RFC3339Nano)
		},
	}
}

// Date describes a calendar date string such as "2024-02-29".
func Date(opts StringOptions) Type[string] {
	opts.Format = "date"
	if opts.Examples == nil {
		opts.Examples = example.Of("1970-01-01", "2024-02-29")
	}
	return String(opts)
}

// Duration describes a duration string in Go syntax such as "1h30m".
func Duration(opts StringOptions) Type[string] {
	opts.Format = "duration"
	if opts.Pattern == "" {
		opts.Pattern = `^-?([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$|^0$`
	}
	if opts.Examples == nil {
		opts.Examples = example.Of("0", "1.5s", "1h30m")
	}
	return String(opts)
}

// URL describes an absolute URI.
func URL(opts StringOptions) Type[string] {
	opts.Format = "uri"
	if opts.Examples == nil {
		opts.Examples = example.Of("https://example.com", "https://example.com/path?query=1")
	}
	return String(opts)
}

func addrType(opts StringOptions, defaults ...string) Type[netip.Addr] {
	addrs := make([]netip.Addr, len(defaults))
	for i, s := range defaults {
		addrs[i] = netip.MustParseAddr(s)
	}
	return textType[netip.Addr]{opts: opts, defaults: addrs, parse: netip.ParseAddr, format: netip.Addr.String}
}

// IPv4 describes a netip.Addr holding an IPv4 address.
func IPv4(opts StringOptions) Type[netip.Addr] {
	opts = withDefaults(opts, "An IPv4 address according to RFC 791.", "ipv4", ipv4Pattern,
		len("0.0.0.0"), len("255.255.255.255"))
	return addrType(opts, "1.2.3.4", "101.102.103.104", "127.0.0.1", "192.168.0.1")
}

// IPv6 describes a netip.Addr holding an IPv6 address.
func IPv6(opts StringOptions) Type[netip.Addr] {
	opts = withDefaults(opts, "An IPv6 address according to RFC 4291.", "ipv6", ipv6Pattern,
		len("::"), len("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"))
	return addrType(opts,
		"2001:db8:3333:4444:5555:6666:7777:8888",
		"2001:db8:3333:4444:cccc:dddd:eeee:ffff",
		"::",
		"::1",
		"2001:db8::",
		"::1234:5678",
		"2001:db8::1234:5678",
		"2001:db8::8a2e:370:7334",
		"::ffff:1.2.3.4",
	)
}

// IP describes a netip.Addr holding either an IPv4 or an IPv6 address.
func IP(opts CombinatorOptions) Type[netip.Addr] {
	if opts.Description == "" {
		opts.Description = "An IPv4 or IPv6 address."
	}
	return unionType[netip.Addr]{
		opts:   opts,
		subs:   []Type[netip.Addr]{IPv4(StringOptions{}), IPv6(StringOptions{})},
		format: netip.Addr.String,
	}
}

func socketType(opts StringOptions, addrs Type[netip.Addr]) Type[netip.AddrPort] {
	var defaults []netip.AddrPort
	for _, p := range []uint16{80, 1234} {
		for a := range addrs.Examples() {
			defaults = append(defaults, netip.AddrPortFrom(a, p))
		}
	}
	return textType[netip.AddrPort]{
		opts:     opts,
		defaults: defaults,
		parse:    netip.ParseAddrPort,
		format:   netip.AddrPort.String,
	}
}

// SocketAddrV4 describes a netip.AddrPort such as "1.2.3.4:80".
func SocketAddrV4(opts StringOptions) Type[netip.AddrPort] {
	opts = withDefaults(opts, "An IPv4 socket address: an IPv4 address and a 16-bit port.", "", socketV4Pattern,
		len("0.0.0.0:0"), len("255.255.255.255:65535"))
	return socketType(opts, IPv4(StringOptions{}))
}

// SocketAddrV6 describes a netip.AddrPort such as "[2001:db8::]:80".
func SocketAddrV6(opts StringOptions) Type[netip.AddrPort] {
	opts = withDefaults(opts, "An IPv6 socket address: an IPv6 address, an optional zone and a 16-bit port.", "",
		socketV6Pattern, len("[::]:0"), 0)
	return socketType(opts, IPv6(StringOptions{}))
}

// SocketAddr describes a netip.AddrPort holding an IPv4 or IPv6 socket
// address.
func SocketAddr(opts CombinatorOptions) Type[netip.AddrPort] {
	if opts.Description == "" {
		opts.Description = "An IPv4 or IPv6 socket address."
	}
	return unionType[netip.AddrPort]{
		opts:   opts,
		subs:   []Type[netip.AddrPort]{SocketAddrV4(StringOptions{}), SocketAddrV6(StringOptions{})},
		format: netip.AddrPort.String,
	}
}

// unionType describes T as exactly one of several string encodings.
type unionType[T any] struct {
	opts   CombinatorOptions
	subs   []Type[T]
	format func(T) string
}

func (t unionType[T]) Examples() iter.Seq[T] {
	seqs := make([]iter.Seq[T], len(t.subs))
	for i, s := range t.subs {
		seqs[i] = s.Examples()
	}
	return example.Chain(seqs...)
}

func (t unionType[T]) EncodeExample(v T) any { return t.format(v) }

func (t unionType[T]) DescribeSchema(b Builder) error {
	opts := t.opts
	opts.Len = len(t.subs)
	if opts.Examples == nil {
		opts.Examples = example.Map(t.Examples(), t.EncodeExample)
	}
	cb, err := b.DescribeCombinator(OneOf, opts)
	if err != nil {
		return err
	}
	for _, s := range t.subs {
		if err := cb.DescribeSubschema(s); err != nil {
			return err
		}
	}
	return cb.End()
}

// UUIDFormat selects the text form of a UUID.
type UUIDFormat int

const (
	// UUIDHyphenated is "550e8400-e29b-41d4-a716-446655440000".
	UUIDHyphenated UUIDFormat = iota
	// UUIDSimple is "550e8400e29b41d4a716446655440000".
	UUIDSimple
	// UUIDURN is "urn:uuid:550e8400-e29b-41d4-a716-446655440000".
	UUIDURN
	// UUIDBraced is "{550e8400-e29b-41d4-a716-446655440000}".
	UUIDBraced
)

func (f UUIDFormat) format(u uuid.UUID) string {
	switch f {
	case UUIDSimple:
		return strings.ReplaceAll(u.String(), "-", "")
	case UUIDURN:
		return u.URN()
	case UUIDBraced:
		return "{" + u.String() + "}"
	default:
		return u.String()
	}
}

func (f UUIDFormat) pattern() string {
	switch f {
	case UUIDSimple:
		return uuidSimplePattern
	case UUIDURN:
		return uuidURNPattern
	case UUIDBraced:
		return uuidBracedPattern
	default:
		return uuidPattern
	}
}

var uuidExamples = []uuid.UUID{
	uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
	uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
	uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	uuid.MustParse("987fbc97-4bed-5078-9f07-9141ba07c9f3"),
	uuid.Nil,
	uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff"),
	uuid.MustParse("00000001-0002-0003-0004-000000000005"),
	uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
	uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301"),
}

var errNilUUID = errors.New("nil uuid")

// UUID describes a uuid.UUID in the given text form. Only the hyphenated
// form carries the "uuid" format.
func UUID(form UUIDFormat, opts StringOptions) Type[uuid.UUID] {
	return uuidType(form, opts, "A universally unique identifier (UUID).", uuid.Parse)
}

// NonNilUUID is UUID excluding the nil UUID from its examples.
func NonNilUUID(form UUIDFormat, opts StringOptions) Type[uuid.UUID] {
	return uuidType(form, opts, "A non-nil universally unique identifier (UUID).", func(s string) (uuid.UUID, error) {
		u, err := uuid.Parse(s)
		if err == nil && u == uuid.Nil {
			return u, errNilUUID
		}
		return u, err
	})
}

func uuidType(form UUIDFormat, opts StringOptions, description string, parse func(string) (uuid.UUID, error)) Type[uuid.UUID] {
	format := ""
	if form == UUIDHyphenated {
		format = "uuid"
	}
	n := len(form.format(uuid.Nil))
	opts = withDefaults(opts, description, format, form.pattern(), n, n)
	var defaults []uuid.UUID
	for _, u := range uuidExamples {
		if _, err := parse(u.String()); err == nil {
			defaults = append(defaults, u)
		}
	}
	return textType[uuid.UUID]{opts: opts, defaults: defaults, parse: parse, format: form.format}
}
