package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.cli")
	defer teardown()
	//
	cases := []struct {
		line string
		code int
		arg  string
	}{
		{"quit", QUIT, ""},
		{"load  fonts/Go-Bold.ttf ", LOAD, "fonts/Go-Bold.ttf"},
		{"NAMES win", NAMES, "win"},
		{"rebuild my config.yaml", REBUILD, "my config.yaml"},
		{"frobnicate", HELP, ""},
	}
	for _, c := range cases {
		op := parseCommand(c.line)
		assert.Equal(t, c.code, op.code, c.line)
		assert.Equal(t, c.arg, op.arg, c.line)
	}
}

func TestCommandsNeedFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.cli")
	defer teardown()
	//
	intp := &Intp{}
	for _, code := range []int{TABLES, INFO, CMAP, NAMES, FIX, REBUILD, MACOFFICE} {
		err, quit := intp.execute(&Op{code: code})
		assert.ErrorIs(t, err, errNoFont)
		assert.False(t, quit)
	}
	err, quit := intp.execute(&Op{code: QUIT})
	assert.NoError(t, err)
	assert.True(t, quit)
}
