package schemainfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/romain-gilliotte/graphql-schema-infer/trace"
)

func TestInferEndToEnd(t *testing.T) {
	traces := []trace.Trace{
		&trace.Record{
			Request:  []byte(`{"query":"{ user { id name } }"}`),
			Response: []byte(`{"data":{"user":{"__typename":"User","id":"1","name":"Alice"}}}`),
		},
	}

	result, err := Infer(context.Background(), traces)
	assert.Nil(t, err)
	assert.Contains(t, result.SDL, "type Query {")
	assert.Contains(t, result.SDL, "type User {")
	assert.Contains(t, result.SDL, "  id: String")
}

func TestInferEmptyTraceListYieldsEmptySDL(t *testing.T) {
	result, err := Infer(context.Background(), nil)
	assert.Nil(t, err)
	assert.Equal(t, "", result.SDL)
}

func TestInferRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Infer(ctx, nil)
	assert.NotNil(t, err)
}
