package cheader

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("shaders")
	require.NoError(t, err)
	assert.Equal(t, KindShaders, k)

	k, err = ParseKind("assets")
	require.NoError(t, err)
	assert.Equal(t, KindAssets, k)

	_, err = ParseKind("fonts")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestWriteAggregate_Shaders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAggregate(&buf, KindShaders, []string{"basic_vert", "basic_frag"}))

	want := `#ifndef SHADERS_H
#define SHADERS_H

// Auto-generated header that includes all shader headers

#include "./shaders/basic_vert.h"
#include "./shaders/basic_frag.h"

#endif // SHADERS_H
`
	assert.Equal(t, want, buf.String())
}

func TestWriteAggregate_AssetsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAggregate(&buf, KindAssets, nil))

	want := `#ifndef ASSETS_H
#define ASSETS_H

// Auto-generated header that includes all asset headers


#endif // ASSETS_H
`
	assert.Equal(t, want, buf.String())
}

func TestWriteAggregate_UnknownKind(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, WriteAggregate(&buf, Kind("fonts"), []string{"a"}), ErrUnknownKind)
	assert.Zero(t, buf.Len())
}
