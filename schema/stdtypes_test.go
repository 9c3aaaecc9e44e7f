package schema

import (
	"net/netip"
	"testing"
	"time"

	"github.com/1ean267/nexustack-sub001/example"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stringRecorder captures the options of a string description.
type stringRecorder struct {
	Builder
	opts StringOptions
}

func newStringRecorder() *stringRecorder {
	return &stringRecorder{Builder: Nop(0)(func(int) error { return nil })}
}

func (r *stringRecorder) DescribeString(opts StringOptions) error {
	r.opts = opts
	return nil
}

func describeString(t *testing.T, s Schema) StringOptions {
	t.Helper()
	r := newStringRecorder()
	require.NoError(t, s.DescribeSchema(r))
	return r.opts
}

func TestTime(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := describeString(t, Time(StringOptions{}))
		assert.Equal(t, "date-time", opts.Format)
		assert.Equal(t, []string{"1970-01-01T00:00:00Z", "2024-02-29T12:30:00+02:00"}, example.Collect(opts.Examples))
	})

	t.Run("given examples are parsed", func(t *testing.T) {
		typ := Time(StringOptions{Examples: example.Of("2020-05-01T10:00:00Z", "yesterday")})
		got := example.Collect(typ.Examples())
		require.Len(t, got, 1)
		assert.True(t, got[0].Equal(time.Date(2020, time.May, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("examples are filtered", func(t *testing.T) {
		opts := describeString(t, Time(StringOptions{Pattern: `^1970-`}))
		assert.Equal(t, []string{"1970-01-01T00:00:00Z"}, example.Collect(opts.Examples))
	})
}

func TestIP(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type[netip.Addr]
		pattern string
		is4     bool
	}{
		{name: "v4", typ: IPv4(StringOptions{}), pattern: ipv4Pattern, is4: true},
		{name: "v6", typ: IPv6(StringOptions{}), pattern: ipv6Pattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := describeString(t, tt.typ)
			assert.Equal(t, tt.pattern, opts.Pattern)
			got := example.Collect(tt.typ.Examples())
			require.NotEmpty(t, got)
			for _, a := range got {
				s := a.String()
				assert.True(t, matchPattern(tt.pattern, s), "%s does not match the pattern", s)
				assert.True(t, opts.allows(s), "%s violates the constraints", s)
				assert.Equal(t, tt.is4, a.Is4())
			}
		})
	}

	t.Run("patterns reject malformed addresses", func(t *testing.T) {
		for _, s := range []string{"256.1.1.1", "1.2.3", "01.2.3.4"} {
			assert.False(t, matchPattern(ipv4Pattern, s), s)
		}
		for _, s := range []string{":::", "2001:db8::1::2", "12345::"} {
			assert.False(t, matchPattern(ipv6Pattern, s), s)
		}
	})

	t.Run("union", func(t *testing.T) {
		ip := IP(CombinatorOptions{})
		got := example.Collect(EncodedExamples(ip))
		assert.Len(t, got, 13)
		assert.Contains(t, got, "1.2.3.4")
		assert.Contains(t, got, "::1")
	})
}

func TestSocketAddr(t *testing.T) {
	v4 := example.Collect(SocketAddrV4(StringOptions{}).Examples())
	require.Len(t, v4, 8)
	assert.Equal(t, "1.2.3.4:80", v4[0].String())
	for _, a := range v4 {
		assert.True(t, matchPattern(socketV4Pattern, a.String()), a.String())
	}

	v6 := example.Collect(SocketAddrV6(StringOptions{}).Examples())
	require.Len(t, v6, 18)
	assert.Equal(t, "[2001:db8:3333:4444:5555:6666:7777:8888]:80", v6[0].String())
	for _, a := range v6 {
		assert.True(t, matchPattern(socketV6Pattern, a.String()), a.String())
	}
	assert.True(t, matchPattern(socketV6Pattern, "[fe80::1%eth0]:8080"))
	assert.False(t, matchPattern(socketV6Pattern, "[::1]:65536"))

	assert.Len(t, example.Collect(SocketAddr(CombinatorOptions{}).Examples()), 26)
}

func TestUUID(t *testing.T) {
	forms := []struct {
		name   string
		form   UUIDFormat
		format string
		sample string
	}{
		{name: "hyphenated", form: UUIDHyphenated, format: "uuid", sample: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "simple", form: UUIDSimple, sample: "550e8400e29b41d4a716446655440000"},
		{name: "urn", form: UUIDURN, sample: "urn:uuid:550e8400-e29b-41d4-a716-446655440000"},
		{name: "braced", form: UUIDBraced, sample: "{550e8400-e29b-41d4-a716-446655440000}"},
	}
	for _, tt := range forms {
		t.Run(tt.name, func(t *testing.T) {
			opts := describeString(t, UUID(tt.form, StringOptions{}))
			assert.Equal(t, tt.format, opts.Format)
			assert.Equal(t, len(tt.sample), *opts.MinLength)
			assert.Equal(t, len(tt.sample), *opts.MaxLength)

			got := example.Collect(opts.Examples)
			require.Len(t, got, 9)
			assert.Equal(t, tt.sample, got[0])
			for _, s := range got {
				assert.True(t, matchPattern(opts.Pattern, s), s)
				_, err := uuid.Parse(s)
				assert.NoError(t, err, s)
			}
		})
	}

	t.Run("non nil", func(t *testing.T) {
		got := example.Collect(NonNilUUID(UUIDHyphenated, StringOptions{}).Examples())
		assert.Len(t, got, 8)
		assert.NotContains(t, got, uuid.Nil)

		given := NonNilUUID(UUIDSimple, StringOptions{Examples: example.Of(uuid.Nil.String(), "6ba7b8109dad11d180b400c04fd430c8")})
		assert.Equal(t, []uuid.UUID{uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")}, example.Collect(given.Examples()))
	})
}
