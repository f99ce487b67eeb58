package mqtt

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/evtrip/core/metrics"
	"github.com/kilianp07/evtrip/core/model"
)

type fakeToken struct{ err error }

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t *fakeToken) Error() error { return t.err }

type published struct {
	topic   string
	qos     byte
	retain  bool
	payload []byte
}

type fakeClient struct {
	mu        sync.Mutex
	connected bool
	failures  int
	msgs      []published
}

func (c *fakeClient) IsConnected() bool { return c.connected }
func (c *fakeClient) Connect() paho.Token {
	c.connected = true
	return &fakeToken{}
}
func (c *fakeClient) Disconnect(uint) { c.connected = false }
func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failures > 0 {
		c.failures--
		return &fakeToken{err: errors.New("not connected")}
	}
	c.msgs = append(c.msgs, published{topic, qos, retained, payload.([]byte)})
	return &fakeToken{}
}

func withFakeClient(t *testing.T, fc *fakeClient) {
	t.Helper()
	orig := newMQTTClient
	newMQTTClient = func(*paho.ClientOptions) pahoClient { return fc }
	t.Cleanup(func() { newMQTTClient = orig })
}

func TestPublisherRecordSweep(t *testing.T) {
	fc := &fakeClient{}
	withFakeClient(t, fc)
	p, err := NewPublisher(Config{Broker: "tcp://localhost:1883", QoS: 1, Retain: true})
	require.NoError(t, err)

	ev := coremetrics.SweepEvent{RunID: "r1", Vehicle: "cla250", FastestSpeedKmh: 210}
	require.NoError(t, p.RecordSweep(ev))
	require.NoError(t, p.RecordSamples(ev, []model.SpeedSample{{SpeedKmh: 45, TotalTimeH: 22.2}}))

	require.Len(t, fc.msgs, 2)
	assert.Equal(t, DefaultTopic, fc.msgs[0].topic)
	assert.Equal(t, byte(1), fc.msgs[0].qos)
	assert.True(t, fc.msgs[0].retain)
	var got coremetrics.SweepEvent
	require.NoError(t, json.Unmarshal(fc.msgs[0].payload, &got))
	assert.Equal(t, "cla250", got.Vehicle)
	assert.Equal(t, 210.0, got.FastestSpeedKmh)
	assert.Equal(t, "evtrip/sweeps/r1/samples", fc.msgs[1].topic)

	require.NoError(t, p.Close())
	assert.False(t, fc.connected)
}

func TestPublisherRetries(t *testing.T) {
	fc := &fakeClient{failures: 2}
	withFakeClient(t, fc)
	p, err := NewPublisher(Config{Broker: "tcp://localhost:1883", BackoffMS: 1})
	require.NoError(t, err)
	require.NoError(t, p.RecordSweep(coremetrics.SweepEvent{RunID: "r2"}))
	assert.Len(t, fc.msgs, 1)

	fc.failures = 10
	err = p.RecordSweep(coremetrics.SweepEvent{RunID: "r3"})
	assert.ErrorContains(t, err, "not connected")
}

func TestPublisherRequiresBroker(t *testing.T) {
	_, err := NewPublisher(Config{})
	assert.Error(t, err)
}

func TestLoadTLSConfigMissingFiles(t *testing.T) {
	_, err := Config{UseTLS: true}.LoadTLSConfig()
	assert.Error(t, err)
}
