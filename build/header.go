package build

import "github.com/mogaika/scenefbx/fbxnode"

// These constants mirror the teacher's utils/fbxbuilder.go header
// scaffolding, renamed for this module's domain.
const (
	creator      = "scenefbx encoder"
	dateTimeGMT  = "01/01/1970 00:00:00.000"
	creationTime = "1970-01-01 00:00:00:000"
)

// fileID is a fixed per-module constant embedded in the FileId top-level
// node. FBX readers treat it as an opaque GUID-equivalent; it need not be
// globally unique across exports.
var fileID = []byte{
	0x3c, 0x6f, 0x7b, 0x2e, 0x9a, 0x41, 0x4f, 0x13,
	0x8e, 0xc5, 0x0a, 0xd2, 0x77, 0x4b, 0x61, 0x90,
}

// BuildHeader constructs the fixed top-level scaffolding: FileId,
// CreationTime, Creator, FBXHeaderExtension, GlobalSettings, Documents,
// References (FBX_FULL §4.3). Objects/Connections/Definitions are built
// separately since they depend on the rest of the scene.
func BuildHeader(documentID int64) (fileID_, creationTime_, creator_, headerExt, globalSettings, documents, references *fbxnode.Node) {
	headerExt = fbxnode.New("FBXHeaderExtension").Add(
		fbxnode.New("FBXHeaderVersion", fbxnode.Int32Val(1003)),
		fbxnode.New("FBXVersion", fbxnode.Int32Val(7500)),
		fbxnode.New("CreationTimeStamp").Add(
			fbxnode.New("Version", fbxnode.Int32Val(1000)),
			fbxnode.New("Year", fbxnode.Int32Val(1970)),
			fbxnode.New("Month", fbxnode.Int32Val(1)),
			fbxnode.New("Day", fbxnode.Int32Val(1)),
			fbxnode.New("Hour", fbxnode.Int32Val(0)),
			fbxnode.New("Minute", fbxnode.Int32Val(0)),
			fbxnode.New("Second", fbxnode.Int32Val(0)),
			fbxnode.New("Millisecond", fbxnode.Int32Val(0)),
		),
		fbxnode.New("Creator", fbxnode.String(creator)),
		fbxnode.New("SceneInfo", fbxnode.String("GlobalInfo\x00\x01SceneInfo"), fbxnode.String("UserData")).Add(
			fbxnode.New("Type", fbxnode.String("UserData")),
			fbxnode.New("Version", fbxnode.Int32Val(100)),
			fbxnode.New("MetaData").Add(
				fbxnode.New("Version", fbxnode.Int32Val(100)),
				fbxnode.New("Title", fbxnode.String("")),
				fbxnode.New("Subject", fbxnode.String("")),
				fbxnode.New("Author", fbxnode.String("")),
				fbxnode.New("Keywords", fbxnode.String("")),
				fbxnode.New("Revision", fbxnode.String("")),
				fbxnode.New("Comment", fbxnode.String("")),
			),
			properties70(
				p70("Original|DateTime_GMT", "DateTime", "", "", fbxnode.String(dateTimeGMT)),
			),
		),
	)

	fileID_ = fbxnode.New("FileId", fbxnode.Raw(fileID))
	creationTime_ = fbxnode.New("CreationTime", fbxnode.String(creationTime))
	creator_ = fbxnode.New("Creator", fbxnode.String(creator))

	globalSettings = fbxnode.New("GlobalSettings").Add(
		fbxnode.New("Version", fbxnode.Int32Val(1000)),
		properties70(
			p70("UpAxis", "int", "Integer", "", fbxnode.Int32Val(1)),
			p70("UpAxisSign", "int", "Integer", "", fbxnode.Int32Val(1)),
			p70("FrontAxis", "int", "Integer", "", fbxnode.Int32Val(2)),
			p70("FrontAxisSign", "int", "Integer", "", fbxnode.Int32Val(1)),
			p70("CoordAxis", "int", "Integer", "", fbxnode.Int32Val(0)),
			p70("CoordAxisSign", "int", "Integer", "", fbxnode.Int32Val(1)),
			p70("OriginalUpAxis", "int", "Integer", "", fbxnode.Int32Val(1)),
			p70("OriginalUpAxisSign", "int", "Integer", "", fbxnode.Int32Val(1)),
			p70("UnitScaleFactor", "double", "Number", "", fbxnode.Float64Val(1)),
			p70("OriginalUnitScaleFactor", "double", "Number", "", fbxnode.Float64Val(1)),
			p70("AmbientColor", "ColorRGB", "Color", "", fbxnode.Float64Val(0), fbxnode.Float64Val(0), fbxnode.Float64Val(0)),
		),
	)

	documents = fbxnode.New("Documents").Add(
		fbxnode.New("Count", fbxnode.Int32Val(1)),
		fbxnode.New("Document", fbxnode.Int64Val(documentID), fbxnode.String("Scene"), fbxnode.String("Scene")).Add(
			properties70(
				p70("SourceObject", "object", "", ""),
				p70("ActiveAnimStackName", "KString", "", "", fbxnode.String("")),
			),
			fbxnode.New("RootNode", fbxnode.Int64Val(0)),
		),
	)

	references = fbxnode.New("References")

	return fileID_, creationTime_, creator_, headerExt, globalSettings, documents, references
}
