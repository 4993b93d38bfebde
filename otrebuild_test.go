package otrebuild

import (
	"testing"

	"github.com/npillmayer/otrebuild/reconcile"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRepairGoFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "otrebuild.reconcile")
	defer teardown()
	//
	data, _, err := Repair(goregular.TTF, reconcile.DefaultJobs(), nil)
	require.NoError(t, err)
	otf, err := FromBinary(data)
	require.NoError(t, err)
	family, subfamily := FamilyName(otf)
	assert.Equal(t, "Go", family)
	assert.Equal(t, "Regular", subfamily)
}

func TestRepairRejectsGarbage(t *testing.T) {
	_, _, err := Repair([]byte("no font"), reconcile.DefaultJobs(), nil)
	assert.Error(t, err)
}
