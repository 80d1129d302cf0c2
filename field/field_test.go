package field

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stack-rs/human-bandwidth/bandwidth"
	"github.com/stack-rs/human-bandwidth/codec"
)

type link struct {
	Limit Bandwidth  `json:"limit" yaml:"limit" toml:"limit"`
	Burst *Bandwidth `json:"burst,omitempty" yaml:"burst,omitempty" toml:"burst,omitempty"`
}

// =============================================================================
// JSON Tests
// =============================================================================

func TestBandwidth_JSON(t *testing.T) {
	in := link{Limit: New(bandwidth.New(9_420, 0))}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"limit":"9Tbps 420Gbps"}`, string(data))

	var out link
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestBandwidth_JSONSubGigabit(t *testing.T) {
	data, err := json.Marshal(New(bandwidth.New(0, 1_000)))
	require.NoError(t, err)
	assert.Equal(t, `"1kbps"`, string(data))

	var b Bandwidth
	require.NoError(t, json.Unmarshal([]byte(`"1kbps"`), &b))
	assert.Equal(t, bandwidth.New(0, 1_000), b.Bandwidth)
}

func TestBandwidth_JSONOptional(t *testing.T) {
	data, err := json.Marshal(link{Limit: New(bandwidth.New(1, 0))})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "burst")

	var out link
	require.NoError(t, json.Unmarshal([]byte(`{"limit":"1Gbps","burst":"32Mbps"}`), &out))
	require.NotNil(t, out.Burst)
	assert.Equal(t, bandwidth.New(0, 32_000_000), out.Burst.Bandwidth)

	out = link{}
	require.NoError(t, json.Unmarshal([]byte(`{"limit":"1Gbps","burst":null}`), &out))
	assert.Nil(t, out.Burst)
}

func TestBandwidth_JSONDecodeErrors(t *testing.T) {
	var out link

	err := json.Unmarshal([]byte(`{"limit":"5Xbps"}`), &out)
	require.Error(t, err)
	// The codec error crosses the serialization boundary intact.
	assert.ErrorIs(t, err, codec.ErrUnknownUnit)
	assert.ErrorIs(t, err, codec.ErrInvalidFormat)

	err = json.Unmarshal([]byte(`{"limit":"100000000000000000000bps"}`), &out)
	assert.ErrorIs(t, err, codec.ErrOverflow)
}

// =============================================================================
// YAML Tests
// =============================================================================

func TestBandwidth_YAML(t *testing.T) {
	in := link{Limit: New(bandwidth.New(0, 32_000_000))}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "limit: 32Mbps\n", string(data))

	var out link
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestBandwidth_YAMLDecodeErrors(t *testing.T) {
	var out link
	err := yaml.Unmarshal([]byte("limit: 5Xbps\n"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrUnknownUnit)
}

// =============================================================================
// TOML Tests
// =============================================================================

func TestBandwidth_TOML(t *testing.T) {
	in := link{Limit: New(bandwidth.New(4, 500_000_000))}

	data, err := toml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `limit = "4Gbps 500Mbps"`)

	var out link
	require.NoError(t, toml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestBandwidth_TOMLDecodeErrors(t *testing.T) {
	var out link
	err := toml.Unmarshal([]byte("limit = \"Gbps5\"\n"), &out)
	require.Error(t, err)
}

// =============================================================================
// Binary Prefix Adapter Tests
// =============================================================================

func TestBinary_JSON(t *testing.T) {
	type pipe struct {
		Rate Binary `json:"rate"`
	}

	in := pipe{Rate: NewBinary(bandwidth.New(0, 8*1024))}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rate":"1kiB/s"}`, string(data))

	var out pipe
	require.NoError(t, json.Unmarshal([]byte(`{"rate":"15MiB/s"}`), &out))
	assert.Equal(t, bandwidth.New(0, 15*8*1024*1024), out.Rate.Bandwidth)

	err = json.Unmarshal([]byte(`{"rate":"15Mbps"}`), &out)
	assert.ErrorIs(t, err, codec.ErrUnknownUnit)
}

func TestBinary_YAML(t *testing.T) {
	in := NewBinary(bandwidth.New(82_772, 609_728_512))

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "9TiB/s 420GiB/s\n", string(data))

	var out Binary
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

// =============================================================================
// Schema Tests
// =============================================================================

func TestBandwidth_JSONSchema(t *testing.T) {
	s := (Bandwidth{}).JSONSchema()
	require.NotNil(t, s)
	assert.Equal(t, "string", s.Type)
	assert.NotEmpty(t, s.Pattern)

	s = (Binary{}).JSONSchema()
	require.NotNil(t, s)
	assert.Equal(t, "string", s.Type)
}

func TestBandwidth_SchemaReflection(t *testing.T) {
	schema := jsonschema.Reflect(&link{})
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	if !strings.Contains(string(data), "bandwidth") &&
		!strings.Contains(string(data), "Bandwidth") {
		t.Errorf("reflected schema does not describe the bandwidth field: %s", data)
	}
}
