package mykafka

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProducer_NoBrokers(t *testing.T) {
	p, err := NewProducer(nil)
	require.Error(t, err)
	require.Nil(t, p)
}

func TestNilProducer_IsNoOp(t *testing.T) {
	var p *Producer

	err := p.PublishEvent(context.Background(), TopicProductEvents, "1", map[string]any{
		"type": "product_created",
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}
