package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	Topic string
	QoS   int
}

type sinkConf struct {
	Topic string `json:"topic"`
	QoS   int    `json:"qos"`
}

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sink]()
	require.NoError(t, reg.Register("mqtt", func(conf map[string]any) (*sink, error) {
		var c sinkConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sink{Topic: c.Topic, QoS: c.QoS}, nil
	}))

	// qos arrives as a string when overridden from the environment
	inst, err := reg.Create(ModuleConfig{Type: "mqtt", Conf: map[string]any{"topic": "evtrip/sweeps", "qos": "1"}})
	require.NoError(t, err)
	assert.Equal(t, "evtrip/sweeps", inst.Topic)
	assert.Equal(t, 1, inst.QoS)
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.Error(t, reg.Register("x", func(map[string]any) (int, error) { return 2, nil }))
	assert.Error(t, reg.Register("nil", nil))
	_, err := reg.Create(ModuleConfig{Type: "y"})
	assert.ErrorContains(t, err, `unknown module type "y"`)
	assert.Equal(t, []string{"x"}, reg.Names())
}
