package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mogaika/scenefbx/fbxnode"
	"github.com/mogaika/scenefbx/ids"
	"github.com/mogaika/scenefbx/scene"
)

func TestBuildDefinitionsCountsIncludeGlobalSettingsPlusEachClass(t *testing.T) {
	b := New(ids.New(), scene.DefaultOptions())
	b.addObject(fbxnode.New("Model"))
	b.addObject(fbxnode.New("Model"))
	b.addObject(fbxnode.New("Material"))

	def := b.BuildDefinitions()

	require.Equal(t, "Version", def.Children[0].Name)
	require.Equal(t, "Count", def.Children[1].Name)
	require.Equal(t, int32(4), def.Children[1].Properties[0].Int32) // GlobalSettings + 2 Model + 1 Material

	globalSettingsType := def.Children[2]
	require.Equal(t, "GlobalSettings", globalSettingsType.Properties[0].Str)

	modelType := def.Children[3]
	require.Equal(t, "Model", modelType.Properties[0].Str)
	require.Equal(t, int32(2), modelType.Child("Count").Properties[0].Int32)

	materialType := def.Children[4]
	require.Equal(t, "Material", materialType.Properties[0].Str)
	require.Equal(t, int32(1), materialType.Child("Count").Properties[0].Int32)
}

func TestBuildDefinitionsWithNoObjectsStillCountsGlobalSettings(t *testing.T) {
	b := New(ids.New(), scene.DefaultOptions())
	def := b.BuildDefinitions()
	require.Equal(t, int32(1), def.Children[1].Properties[0].Int32)
}
