// Command scenefbxcli exercises scenefbx.Parse end to end against a
// YAML-described scene fixture, mirroring god_of_war_browser.go's
// flag-driven main.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/scenefbx"
	"github.com/mogaika/scenefbx/scenetest"
)

// fixtureNode is the YAML shape of one scene node: a plain translation-
// only empty or mesh placeholder, recursively nested under Children.
type fixtureNode struct {
	Name        string        `yaml:"name"`
	Kind        string        `yaml:"kind"` // "null", "mesh", "bone"
	Translation [3]float32    `yaml:"translation"`
	Children    []fixtureNode `yaml:"children"`
}

type fixtureFile struct {
	Root fixtureNode `yaml:"root"`
}

func loadFixture(path string) (*scenetest.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading fixture %q", path)
	}

	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parsing fixture %q", path)
	}

	return buildFixtureNode(f.Root), nil
}

func buildFixtureNode(f fixtureNode) *scenetest.Node {
	n := scenetest.NewNode(f.Name)
	n.Trans = mgl32.Vec3(f.Translation)
	switch f.Kind {
	case "mesh":
		n.NodeKind = scenefbx.KindMesh
	case "bone":
		n.NodeKind = scenefbx.KindBone
	default:
		n.NodeKind = scenefbx.KindNull
	}
	for _, c := range f.Children {
		n.AddChild(buildFixtureNode(c))
	}
	return n
}

func main() {
	var fixturePath, outPath string
	var scale float64
	var exportSkin, exportMaterials, embedImages bool

	flag.StringVar(&fixturePath, "fixture", "", "Path to a YAML scene fixture")
	flag.StringVar(&outPath, "o", "out.fbx", "Output FBX file path")
	flag.Float64Var(&scale, "scale", 100, "Output vertex/translation scale")
	flag.BoolVar(&exportSkin, "skin", true, "Export skinned meshes")
	flag.BoolVar(&exportMaterials, "materials", true, "Export materials")
	flag.BoolVar(&embedImages, "embed-images", true, "Embed texture PNGs")
	flag.Parse()

	if fixturePath == "" {
		flag.PrintDefaults()
		return
	}

	root, err := loadFixture(fixturePath)
	if err != nil {
		log.Fatal(err)
	}

	opts := scenefbx.DefaultOptions()
	opts.Scale = float32(scale)
	opts.ExportSkin = exportSkin
	opts.ExportMaterials = exportMaterials
	opts.EmbedImages = embedImages

	data, err := scenefbx.Parse(root, opts)
	if err != nil {
		log.Fatal(errors.Wrap(err, "encoding scene"))
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		log.Fatal(errors.Wrapf(err, "writing %q", outPath))
	}

	log.Printf("wrote %d bytes to %s", len(data), outPath)
}
